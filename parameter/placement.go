package parameter

// Placement rules, all distances in grid cells
const (
	// MinItemLengthCells and MaxItemLengthCells bound |start-end| in cell numbers
	MinItemLengthCells = 10
	MaxItemLengthCells = 20

	// Column distance caps between an item's endpoints
	SnakeMaxXDistanceCells  = 5
	LadderMaxXDistanceCells = 5

	// ExclusionZoneRadius is the minimum Chebyshev distance between same-type endpoints
	ExclusionZoneRadius = 2

	// PlacementAttempts caps random draws per quadrant slot or seed slot
	PlacementAttempts = 300

	// TopRowSnakes are seeded from the last row before quadrant sampling
	TopRowSnakes = 2
)

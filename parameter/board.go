package parameter

// Board geometry defaults
const (
	BoardGridSize = 10 // Cells per side, numbering is serpentine from bottom-left
	BoardCellSize = 60 // Pixels per cell
	BoardMargin   = 50 // Pixels around the grid
)

// Board population ranges, count drawn uniformly within [min, max]
const (
	MinSnakesToGenerate  = 8
	MaxSnakesToGenerate  = 10
	MinLaddersToGenerate = 8
	MaxLaddersToGenerate = 10
)

// ForbiddenCells keeps the start and finish tiles clear of endpoints
var ForbiddenCells = []int{1, 2, 3, 99, 100}

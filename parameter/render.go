package parameter

// Snake body stroke widths in pixels, tapering toward the tail
const (
	SnakeMaxOutline        = 18
	SnakeMinOutline        = 10
	SnakeMaxInner          = 14
	SnakeMinInner          = 6
	SnakeTaperStart        = 0.8 // Curve progress where taper begins
	SnakeStripeHeight      = 8
	SnakePatternSizeFactor = 0.95
)

// Ladder strokes in pixels
const (
	LadderRailThickness = 6
	LadderRungThickness = 4
	LadderRailOffset    = 12
	LadderRungSpacing   = 30
	LadderRungMargin    = 0.1 // Fraction of length kept clear at each end
	LadderMinLength     = 10
)

// Head sprites
const (
	BaseHeadSize   = 50
	HeadAssetDir   = "assets/snake"
	PNGSupersample = 2
)

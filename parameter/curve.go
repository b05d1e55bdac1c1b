package parameter

// Snake curve synthesis
const (
	// BezierSamplesPerSegment is the number of t values per cubic segment, ends included
	BezierSamplesPerSegment = 60

	// SnakeMinBodyDistance is the minimum pixel gap kept between snake curves (best effort)
	SnakeMinBodyDistance = 30.0

	// MaxCurveGenerationAttempts bounds curve retries per snake
	MaxCurveGenerationAttempts = 10

	// CurveIntersectStride samples every Nth curve point in the intersection test
	CurveIntersectStride = 5
)

// Snake pattern stripes, pixels along the curve
const (
	PatternStart       = 40
	PatternStartJitter = 10 // ± around PatternStart
	PatternSpacing     = 25
	PatternSpacingLow  = -5 // Jitter range added to PatternSpacing
	PatternSpacingHigh = 10
	PatternEndMargin   = 40
)

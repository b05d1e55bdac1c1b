package visual

import "github.com/lixenwraith/snakeboard/core"

// PastelColors tint board tiles (lightened) and ladders (as is)
var PastelColors = []core.RGB{
	{255, 182, 193}, // Pink
	{173, 216, 230}, // Light blue
	{255, 255, 153}, // Pale yellow
	{152, 251, 152}, // Pale green
	{221, 160, 221}, // Plum
	{255, 204, 153}, // Peach
}

// SnakeStyle pairs body and stripe colors with a head sprite file
type SnakeStyle struct {
	Name    string
	Body    core.RGB
	Stripe  core.RGB
	HeadImg string // File name under the head asset directory
}

// SnakeStyles is the distinct pool assigned to snakes before repeats
var SnakeStyles = []SnakeStyle{
	{"purple", core.RGB{132, 0, 190}, core.RGB{155, 27, 235}, "snake_head_484px_purple.png"},
	{"blue", core.RGB{0, 121, 190}, core.RGB{27, 176, 235}, "snake_head_484px_blue.png"},
	{"yellow", core.RGB{190, 170, 0}, core.RGB{235, 196, 27}, "snake_head_484px_yellow.png"},
	{"red", core.RGB{190, 28, 0}, core.RGB{235, 41, 27}, "snake_head_484px_red.png"},
	{"green", core.RGB{129, 189, 0}, core.RGB{187, 235, 27}, "snake_head_484px_green.png"},
}

// Board surface colors
var (
	RgbTileText     = core.RGB{80, 80, 80}
	RgbMarkerRing   = core.RGB{255, 255, 255}
	RgbSnakeTail    = core.RGB{255, 200, 0}
	RgbLadderFoot   = core.RGB{0, 200, 0}
	RgbLadderTop    = core.RGB{0, 100, 255}
	RgbBackground   = core.RGB{200, 200, 200}
	TileLightenRate = 0.6
	RailDarkenRate  = 0.8
	OutlineDarken   = 0.6
	StripeDarken    = 0.5
)

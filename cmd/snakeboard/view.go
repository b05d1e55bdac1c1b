package main

import (
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/snakeboard/board"
	"github.com/lixenwraith/snakeboard/config"
	"github.com/lixenwraith/snakeboard/core"
	"github.com/lixenwraith/snakeboard/grid"
	"github.com/lixenwraith/snakeboard/logging"
	"github.com/lixenwraith/snakeboard/render"
	"github.com/lixenwraith/snakeboard/sound"
)

var exactWin bool

func init() {
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Browse boards in the terminal",
		Long: `Show generated boards in the terminal.

Keys:
  space    deal a new board
  r        roll the die and move the token
  q, esc   quit`,
		RunE: runView,
	}

	viewCmd.Flags().BoolVar(&exactWin, "exact-win", false, "Require an exact roll to reach the last cell")

	rootCmd.AddCommand(viewCmd)
}

// viewer is the interactive board browser state
type viewer struct {
	screen tcell.Screen
	gen    *board.Generator
	geo    grid.Geometry
	layout board.Layout
	sounds *sound.Manager
	dice   *rand.Rand
	token  grid.Cell
	status string
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}

	// Panic recovery: restore the terminal before reporting the crash
	core.SetCrashScreen(screen)
	defer func() {
		core.HandleCrash(recover())
	}()
	defer screen.Fini()

	sounds := sound.NewManager(nil)
	if err := sounds.Initialize(); err != nil {
		logging.Log.WithError(err).Info("continuing without audio")
	}
	defer sounds.Cleanup()

	v := newViewer(screen, cfg, sounds)
	v.deal()
	v.loop()
	return nil
}

func newViewer(screen tcell.Screen, cfg config.Config, sounds *sound.Manager) *viewer {
	g := board.New(cfg)
	return &viewer{
		screen: screen,
		gen:    g,
		geo:    g.Geometry(),
		sounds: sounds,
		dice:   rand.New(rand.NewSource(g.Seed())),
	}
}

func (v *viewer) deal() {
	v.layout = v.gen.Generate()
	v.token = 1
	r := v.layout.Report
	v.status = fmt.Sprintf("seed %d  snakes %d  ladders %d  retries %d",
		r.Seed, len(v.layout.Snakes), len(v.layout.Ladders), r.CurveRetries)
	v.sounds.PlayRegenerate()
}

// roll moves the token by one die throw and reports the outcome
func (v *viewer) roll() {
	steps := v.dice.Intn(6) + 1
	path := board.MovePath(v.layout, v.token, steps, v.geo.CellCount(), exactWin)
	if len(path) == 0 {
		v.status = fmt.Sprintf("rolled %d, need an exact roll", steps)
		return
	}

	from := v.token
	v.token = path[len(path)-1]
	// A trailing jump shows up as the last walked cell mapping onto the final one
	landing := v.token
	if n := len(path); n > 1 && path[n-2] != v.token && v.layout.Destination(path[n-2]) == v.token {
		landing = path[n-2]
	}

	switch {
	case v.token < landing:
		v.sounds.PlaySnake()
		v.status = fmt.Sprintf("rolled %d: %d -> %d, snake down to %d", steps, from, landing, v.token)
	case v.token > landing:
		v.sounds.PlayLadder()
		v.status = fmt.Sprintf("rolled %d: %d -> %d, ladder up to %d", steps, from, landing, v.token)
	default:
		v.status = fmt.Sprintf("rolled %d: %d -> %d", steps, from, v.token)
	}
	if int(v.token) == v.geo.CellCount() {
		v.status += "  finished!"
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	render.PaintTerminal(v.screen, v.layout, v.geo)

	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	if pos, ok := v.geo.CellToGrid(v.token); ok {
		v.screen.SetContent(pos.Col*4, pos.Row*2+1, '@', nil, style)
	}

	_, h := render.TerminalSize(v.geo)
	v.text(0, h, v.status, tcell.StyleDefault)
	v.text(0, h+1, "[space] new board  [r] roll  [q] quit", tcell.StyleDefault.Dim(true))
	v.screen.Show()
}

func (v *viewer) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *viewer) loop() {
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				return
			case ev.Rune() == ' ':
				v.deal()
			case ev.Rune() == 'r':
				v.roll()
			}
		case nil:
			return
		}
	}
}

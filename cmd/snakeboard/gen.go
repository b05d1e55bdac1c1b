package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/snakeboard/board"
	"github.com/lixenwraith/snakeboard/grid"
)

var (
	numBoards  int
	jsonOutput bool
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate boards and print them as text or JSON",
		Long: `Generate one or more boards from a single random stream.

Examples:
  snakeboard gen
  snakeboard gen --seed 7 -n 3
  snakeboard gen --json`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&numBoards, "number", "n", 1, "Number of boards to generate")
	genCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print boards as JSON")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	if numBoards < 1 {
		return fmt.Errorf("number of boards must be at least 1, got %d", numBoards)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	g := board.New(cfg)
	out := cmd.OutOrStdout()

	if jsonOutput {
		boards := make([]jsonBoard, numBoards)
		for i := range boards {
			boards[i] = toJSON(g.Generate())
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if numBoards == 1 {
			return enc.Encode(boards[0])
		}
		return enc.Encode(boards)
	}

	drawGrid := fitsTerminal(g.Geometry())
	for i := 0; i < numBoards; i++ {
		if i > 0 {
			fmt.Fprintln(out)
		}
		l := g.Generate()
		if drawGrid {
			writeGrid(out, l, g.Geometry())
		}
		writeSummary(out, l)
	}
	return nil
}

// asciiCellWidth is the printed width of one board cell
const asciiCellWidth = 6

// fitsTerminal reports whether the text grid fits stdout; pipes always get it
func fitsTerminal(geo grid.Geometry) bool {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return true
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return true
	}
	return width >= geo.Size*asciiCellWidth+1
}

// writeGrid prints the board top row first: cell number and item marker
// S/s snake head/tail, L/l ladder foot/top
func writeGrid(w io.Writer, l board.Layout, geo grid.Geometry) {
	marks := make(map[grid.Cell]byte)
	for _, s := range l.Snakes {
		marks[s.Start], marks[s.End] = 'S', 's'
	}
	for _, ld := range l.Ladders {
		marks[ld.Start], marks[ld.End] = 'L', 'l'
	}

	sep := "+" + strings.Repeat(strings.Repeat("-", asciiCellWidth-1)+"+", geo.Size)
	fmt.Fprintln(w, sep)
	for row := 0; row < geo.Size; row++ {
		var sb strings.Builder
		sb.WriteByte('|')
		for col := 0; col < geo.Size; col++ {
			c, _ := geo.GridToCell(grid.Pos{Row: row, Col: col})
			m := byte(' ')
			if v, ok := marks[c]; ok {
				m = v
			}
			fmt.Fprintf(&sb, "%3d%c |", c, m)
		}
		fmt.Fprintln(w, sb.String())
		fmt.Fprintln(w, sep)
	}
}

func writeSummary(w io.Writer, l board.Layout) {
	r := l.Report
	fmt.Fprintf(w, "seed %d: %d/%d snakes, %d/%d ladders, %d placement attempts, %d curve retries\n",
		r.Seed, len(l.Snakes), r.RequestedSnakes, len(l.Ladders), r.RequestedLadders,
		r.Sampling.Attempts, r.CurveRetries)

	jumps := l.Jumps()
	from := make([]grid.Cell, 0, len(jumps))
	for c := range jumps {
		from = append(from, c)
	}
	sort.Slice(from, func(i, j int) bool { return from[i] < from[j] })
	for _, c := range from {
		kind := "ladder"
		if jumps[c] < c {
			kind = "snake"
		}
		fmt.Fprintf(w, "  %-6s %3d -> %3d\n", kind, c, jumps[c])
	}
}

type jsonItem struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Style string `json:"style,omitempty"`
	Color string `json:"color"`
}

type jsonBoard struct {
	Seed         int64      `json:"seed"`
	Snakes       []jsonItem `json:"snakes"`
	Ladders      []jsonItem `json:"ladders"`
	Attempts     int        `json:"placement_attempts"`
	CurveRetries int        `json:"curve_retries"`
	DirtyCurves  int        `json:"dirty_curves"`
}

func toJSON(l board.Layout) jsonBoard {
	b := jsonBoard{
		Seed:         l.Report.Seed,
		Snakes:       make([]jsonItem, 0, len(l.Snakes)),
		Ladders:      make([]jsonItem, 0, len(l.Ladders)),
		Attempts:     l.Report.Sampling.Attempts,
		CurveRetries: l.Report.CurveRetries,
		DirtyCurves:  l.Report.DirtyCurves,
	}
	for _, s := range l.Snakes {
		b.Snakes = append(b.Snakes, jsonItem{
			Start: int(s.Start),
			End:   int(s.End),
			Style: s.Style.Name,
			Color: s.Style.Body.Hex(),
		})
	}
	for _, ld := range l.Ladders {
		b.Ladders = append(b.Ladders, jsonItem{
			Start: int(ld.Start),
			End:   int(ld.End),
			Color: ld.Color.Hex(),
		})
	}
	return b
}

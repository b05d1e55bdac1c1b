package board

import (
	"slices"
	"testing"

	"github.com/lixenwraith/snakeboard/config"
	"github.com/lixenwraith/snakeboard/grid"
	"github.com/lixenwraith/snakeboard/parameter/visual"
	"github.com/lixenwraith/snakeboard/placement"
)

func seeded(seed int64) config.Config {
	cfg := config.Default()
	cfg.Seed = seed
	return cfg
}

func TestGenerateProperties(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		cfg := seeded(seed)
		g := New(cfg)
		l := g.Generate()
		geo := g.Geometry()

		if g.Stage() != StageComplete {
			t.Fatalf("seed %d: expected complete stage, got %v", seed, g.Stage())
		}
		if len(l.Snakes) > cfg.Snakes.Max || len(l.Ladders) > cfg.Ladders.Max {
			t.Errorf("seed %d: too many items: %d snakes %d ladders", seed, len(l.Snakes), len(l.Ladders))
		}
		if len(l.Centers) != 101 || l.Centers[1] != geo.CellCenter(1) {
			t.Errorf("seed %d: expected 101 centers", seed)
		}

		used := make(map[grid.Cell]bool)
		for _, it := range l.Items() {
			sp := it.Endpoints()
			for _, c := range []grid.Cell{sp.Start, sp.End} {
				if used[c] {
					t.Errorf("seed %d: cell %d shared by two items", seed, c)
				}
				used[c] = true
				if slices.Contains(cfg.ForbiddenCells, int(c)) {
					t.Errorf("seed %d: forbidden cell %d used", seed, c)
				}
			}
			if n := sp.Length(); n < cfg.ItemLength.Min || n > cfg.ItemLength.Max {
				t.Errorf("seed %d: item %v length %d", seed, sp, n)
			}
		}

		for _, s := range l.Snakes {
			if s.Start <= s.End {
				t.Errorf("seed %d: snake %v does not descend", seed, s.Span)
			}
			if geo.ColumnDistance(s.Start, s.End) > cfg.SnakeMaxXDistance {
				t.Errorf("seed %d: snake %v exceeds the column cap", seed, s.Span)
			}
			if s.Curve[0] != geo.CellCenter(s.Start) || s.Curve[len(s.Curve)-1] != geo.CellCenter(s.End) {
				t.Errorf("seed %d: snake %v body does not join its cells", seed, s.Span)
			}
		}
		for _, ld := range l.Ladders {
			if ld.Start >= ld.End {
				t.Errorf("seed %d: ladder %v does not climb", seed, ld.Span)
			}
			if geo.ColumnDistance(ld.Start, ld.End) > cfg.LadderMaxXDistance {
				t.Errorf("seed %d: ladder %v exceeds the column cap", seed, ld.Span)
			}
			if !slices.Contains(visual.PastelColors, ld.Color) {
				t.Errorf("seed %d: ladder color %v not pastel", seed, ld.Color)
			}
		}
	}
}

func TestGenerateStageTrail(t *testing.T) {
	g := New(seeded(5))
	if g.Stage() != StageEmpty {
		t.Errorf("Expected fresh generator to be empty, got %v", g.Stage())
	}
	l := g.Generate()
	want := []Stage{StageSampling, StageAssigning, StageComplete}
	if !slices.Equal(l.Report.Stages, want) {
		t.Errorf("Expected stages %v, got %v", want, l.Report.Stages)
	}
	if l.Report.Seed != 5 {
		t.Errorf("Expected seed 5 in report, got %d", l.Report.Seed)
	}
	if l.Report.Sampling.Placed != len(l.Snakes)+len(l.Ladders) {
		t.Errorf("Report placed %d, layout holds %d", l.Report.Sampling.Placed, len(l.Snakes)+len(l.Ladders))
	}
	if l.Report.DirtyCurves > len(l.Snakes) {
		t.Errorf("More dirty curves than snakes: %d", l.Report.DirtyCurves)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := New(seeded(1234)).Generate()
	b := New(seeded(1234)).Generate()

	if len(a.Snakes) != len(b.Snakes) || len(a.Ladders) != len(b.Ladders) {
		t.Fatalf("Expected identical counts, got %d/%d and %d/%d", len(a.Snakes), len(a.Ladders), len(b.Snakes), len(b.Ladders))
	}
	for i := range a.Snakes {
		sa, sb := a.Snakes[i], b.Snakes[i]
		if sa.Span != sb.Span || sa.Style.Name != sb.Style.Name || !slices.Equal(sa.Curve, sb.Curve) || !slices.Equal(sa.Pattern, sb.Pattern) {
			t.Errorf("Snake %d differs between runs", i)
		}
	}
	for i := range a.Ladders {
		if a.Ladders[i] != b.Ladders[i] {
			t.Errorf("Ladder %d differs: %v vs %v", i, a.Ladders[i], b.Ladders[i])
		}
	}
}

func TestTimeSeed(t *testing.T) {
	g := New(config.Default())
	if g.Seed() == 0 {
		t.Error("Expected a time-based seed when none is configured")
	}
}

func TestFixedCounts(t *testing.T) {
	cfg := seeded(77)
	cfg.Snakes = config.Range{Min: 8, Max: 8}
	cfg.Ladders = config.Range{Min: 8, Max: 8}
	l := New(cfg).Generate()

	if l.Report.RequestedSnakes != 8 || l.Report.RequestedLadders != 8 {
		t.Errorf("Expected 8/8 requested, got %d/%d", l.Report.RequestedSnakes, l.Report.RequestedLadders)
	}
	if len(l.Snakes) > 8 || len(l.Ladders) > 8 {
		t.Errorf("Expected at most 8/8 placed, got %d/%d", len(l.Snakes), len(l.Ladders))
	}
}

func TestNoLadders(t *testing.T) {
	cfg := seeded(8)
	cfg.Ladders = config.Range{Min: 0, Max: 0}
	l := New(cfg).Generate()
	if len(l.Ladders) != 0 {
		t.Errorf("Expected no ladders, got %d", len(l.Ladders))
	}
}

func TestStylesDistinctBeforeRepeat(t *testing.T) {
	g := New(seeded(9))
	for n := 1; n <= 9; n++ {
		styles := g.assignStyles(n)
		if len(styles) != n {
			t.Fatalf("Expected %d styles, got %d", n, len(styles))
		}
		names := make(map[string]bool)
		for _, s := range styles {
			names[s.Name] = true
		}
		if want := min(n, len(visual.SnakeStyles)); len(names) != want {
			t.Errorf("n=%d: expected %d distinct styles, got %d", n, want, len(names))
		}
	}
}

func testLayout() Layout {
	return Layout{
		Snakes:  []Snake{{Span: placement.Span{Start: 47, End: 26}}},
		Ladders: []Ladder{{Span: placement.Span{Start: 4, End: 14}}},
	}
}

func TestItemsOrder(t *testing.T) {
	l := testLayout()
	items := l.Items()
	if _, ok := items[0].(Ladder); !ok {
		t.Error("Expected ladders drawn first by default")
	}
	l.LadderOnTop = true
	items = l.Items()
	if _, ok := items[0].(Snake); !ok {
		t.Error("Expected snakes drawn first when ladders are on top")
	}
}

func TestJumps(t *testing.T) {
	l := testLayout()
	j := l.Jumps()
	if len(j) != 2 || j[47] != 26 || j[4] != 14 {
		t.Errorf("Unexpected jump table %v", j)
	}
	if l.Destination(47) != 26 || l.Destination(4) != 14 || l.Destination(5) != 5 {
		t.Error("Destination disagrees with the jump table")
	}
}

func TestMovePath(t *testing.T) {
	l := testLayout()
	tests := []struct {
		name     string
		from     grid.Cell
		steps    int
		exactWin bool
		want     []grid.Cell
	}{
		{"plain", 10, 3, false, []grid.Cell{11, 12, 13}},
		{"ladder", 1, 3, false, []grid.Cell{2, 3, 4, 14}},
		{"snake", 45, 2, false, []grid.Cell{46, 47, 26}},
		{"clamp", 97, 5, false, []grid.Cell{98, 99, 100}},
		{"exact hit", 97, 3, true, []grid.Cell{98, 99, 100}},
		{"exact overshoot", 97, 5, true, nil},
		{"no steps", 10, 0, false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MovePath(l, tt.from, tt.steps, 100, tt.exactWin)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

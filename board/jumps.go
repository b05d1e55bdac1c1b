package board

import "github.com/lixenwraith/snakeboard/grid"

// Jumps maps every trigger cell to its destination
func (l Layout) Jumps() map[grid.Cell]grid.Cell {
	m := make(map[grid.Cell]grid.Cell, len(l.Snakes)+len(l.Ladders))
	for _, ld := range l.Ladders {
		m[ld.Start] = ld.End
	}
	for _, s := range l.Snakes {
		m[s.Start] = s.End
	}
	return m
}

// Destination returns where a token landing on c ends up
func (l Layout) Destination(c grid.Cell) grid.Cell {
	for _, ld := range l.Ladders {
		if ld.Start == c {
			return ld.End
		}
	}
	for _, s := range l.Snakes {
		if s.Start == c {
			return s.End
		}
	}
	return c
}

// MovePath returns the cells visited moving steps forward from `from` on a
// board of cells squares, ending with the jump destination when the landing
// cell triggers one
// Overshooting the last cell stops on it, or when exactWin is set leaves the
// token in place and returns nil
func MovePath(l Layout, from grid.Cell, steps, cells int, exactWin bool) []grid.Cell {
	if steps <= 0 {
		return nil
	}
	last := grid.Cell(cells)
	if exactWin && from+grid.Cell(steps) > last {
		return nil
	}

	path := make([]grid.Cell, 0, steps+1)
	for k := 1; k <= steps; k++ {
		next := from + grid.Cell(k)
		if next >= last {
			path = append(path, last)
			break
		}
		path = append(path, next)
	}

	landing := path[len(path)-1]
	if dest := l.Destination(landing); dest != landing {
		path = append(path, dest)
	}
	return path
}

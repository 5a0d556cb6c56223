package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openNeighbors admits valid, unblocked cells plus the two sentinels.
func openNeighbors(tr *Translator, start, end Cell, blocked map[Cell]bool) NeighborFunc {
	return func(c Cell, _ bool) []Cell {
		var out []Cell
		for _, n := range c.Adjacent() {
			if (tr.IsCellValid(n) && !blocked[n]) || n == start || n == end {
				out = append(out, n)
			}
		}
		return out
	}
}

func buildField(t *testing.T, tr *Translator, start, end Cell, blocked ...Cell) *FlowField {
	t.Helper()
	set := make(map[Cell]bool, len(blocked))
	for _, c := range blocked {
		set[c] = true
	}
	f, err := NewFlowField(start, end, tr.Bounds().Pad(1), openNeighbors(tr, start, end, set))
	require.NoError(t, err)
	return f
}

func TestFlowFieldStraightRow(t *testing.T) {
	tr := NewTranslator(3, 3, 60)
	start, end := Cell{Col: -1, Row: 1}, Cell{Col: 3, Row: 1}
	f := buildField(t, tr, start, end)

	assert.Equal(t, []Cell{start, {0, 1}, {1, 1}, {2, 1}, end}, f.CanonicalPath())
	assert.Equal(t, 4, f.Len())

	d, ok := f.Distance(start)
	require.True(t, ok)
	assert.Equal(t, 4, d)

	// the exit keeps the direction of the last step
	delta, ok := f.BestDelta(end, Cell{})
	require.True(t, ok)
	assert.Equal(t, Cell{Col: 1}, delta)
}

func TestFlowFieldReroutesAroundBlock(t *testing.T) {
	tr := NewTranslator(3, 3, 60)
	start, end := Cell{Col: -1, Row: 1}, Cell{Col: 3, Row: 1}
	f := buildField(t, tr, start, end, Cell{Col: 1, Row: 1})

	_, ok := f.Distance(Cell{Col: 1, Row: 1})
	assert.False(t, ok)
	assert.False(t, f.Contains(Cell{Col: 1, Row: 1}))

	path := f.CanonicalPath()
	assert.Equal(t, []Cell{start, {0, 1}, {0, 0}, {1, 0}, {2, 0}, {2, 1}, end}, path)
	for _, c := range path {
		assert.NotEqual(t, Cell{Col: 1, Row: 1}, c)
	}
}

func TestFlowFieldDistanceRelation(t *testing.T) {
	tr := NewTranslator(5, 4, 10)
	start, end := Cell{Col: -1, Row: 1}, Cell{Col: 5, Row: 1}
	blocked := []Cell{{1, 0}, {1, 1}, {1, 2}, {3, 1}, {3, 2}, {3, 3}}
	f := buildField(t, tr, start, end, blocked...)
	set := map[Cell]bool{}
	for _, c := range blocked {
		set[c] = true
	}
	neighbors := openNeighbors(tr, start, end, set)

	endDist, ok := f.Distance(end)
	require.True(t, ok)
	assert.Equal(t, 0, endDist)

	b := f.Bounds()
	for row := b.Min.Row; row <= b.Max.Row; row++ {
		for col := b.Min.Col; col <= b.Max.Col; col++ {
			c := Cell{Col: col, Row: row}
			dist, ok := f.Distance(c)
			if !ok || c == end {
				continue
			}
			best := -1
			for _, n := range neighbors(c, true) {
				if nd, ok := f.Distance(n); ok && (best < 0 || nd < best) {
					best = nd
				}
			}
			assert.Equal(t, best+1, dist, "cell %v", c)
			assert.NotZero(t, f.Deltas(c).Len(), "cell %v has no deltas", c)
		}
	}
}

func TestFlowFieldCanonicalPathIsSingular(t *testing.T) {
	tr := NewTranslator(5, 4, 10)
	start, end := Cell{Col: -1, Row: 1}, Cell{Col: 5, Row: 1}
	f := buildField(t, tr, start, end, Cell{Col: 2, Row: 1}, Cell{Col: 2, Row: 2})

	path := f.CanonicalPath()
	for _, c := range path {
		assert.Equal(t, 1, f.Deltas(c).Len(), "cell %v", c)
	}

	// following the singleton deltas reaches the end in distance[start] steps
	startDist, _ := f.Distance(start)
	cur, steps := start, 0
	for cur != end {
		deltas := f.Deltas(cur).Deltas()
		require.Len(t, deltas, 1)
		cur = cur.Add(deltas[0])
		steps++
		require.LessOrEqual(t, steps, startDist)
	}
	assert.Equal(t, startDist, steps)
	assert.Equal(t, startDist, f.Len())
}

func TestFlowFieldKeepsTieSetsOffPath(t *testing.T) {
	tr := NewTranslator(3, 3, 60)
	start, end := Cell{Col: -1, Row: 0}, Cell{Col: 3, Row: 2}
	f := buildField(t, tr, start, end)

	assert.Equal(t, []Cell{start, {0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}, end}, f.CanonicalPath())

	// (1, 1) is off the walk and two moves are equally short
	off := Cell{Col: 1, Row: 1}
	assert.Equal(t, []Cell{{0, 1}, {1, 0}}, f.Deltas(off).Deltas())

	tests := []struct {
		name     string
		previous Cell
		want     Cell
	}{
		{"no previous takes first in order", Cell{}, Cell{Col: 0, Row: 1}},
		{"keeps right", Cell{Col: 1}, Cell{Col: 1}},
		{"keeps down", Cell{Row: 1}, Cell{Row: 1}},
		{"previous not optimal", Cell{Col: -1}, Cell{Col: 0, Row: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := f.BestDelta(off, tt.previous)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlowFieldUnreachable(t *testing.T) {
	tr := NewTranslator(3, 1, 10)
	start, end := Cell{Col: -1, Row: 0}, Cell{Col: 3, Row: 0}
	blocked := map[Cell]bool{{Col: 1, Row: 0}: true}

	f, err := NewFlowField(start, end, tr.Bounds().Pad(1), openNeighbors(tr, start, end, blocked))
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestFlowFieldStartEqualsEnd(t *testing.T) {
	tr := NewTranslator(2, 2, 10)
	c := Cell{Col: 1, Row: 1}
	f := buildField(t, tr, c, c)

	assert.Equal(t, []Cell{c}, f.CanonicalPath())
	assert.Equal(t, 0, f.Len())
	assert.False(t, f.Contains(c))
}

func TestFlowFieldRejectsCellsOutsideBounds(t *testing.T) {
	tr := NewTranslator(2, 2, 10)
	start, end := Cell{Col: -5, Row: 0}, Cell{Col: 2, Row: 0}

	_, err := NewFlowField(start, end, tr.Bounds().Pad(1), openNeighbors(tr, start, end, nil))
	assert.ErrorIs(t, err, ErrInvalidCell)
}

func TestDeltaSet(t *testing.T) {
	var s DeltaSet
	assert.Zero(t, s.Len())
	_, ok := s.first()
	assert.False(t, ok)

	s = singleton(Cell{Col: 1}) | singleton(Cell{Row: -1})
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(Cell{Col: 1}))
	assert.False(t, s.Has(Cell{Col: -1}))
	assert.False(t, s.Has(Cell{Col: 1, Row: 1}))
	assert.Equal(t, []Cell{{0, -1}, {1, 0}}, s.Deltas())
	assert.Zero(t, singleton(Cell{Col: 2}))
}

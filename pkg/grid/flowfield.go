// pkg/grid/flowfield.go
package grid

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrUnreachable is returned when the end cell cannot be reached from the start cell.
var ErrUnreachable = errors.New("cannot reach end from start")

// DeltaSet is a set of unit deltas, one bit per entry of AxialDirections.
type DeltaSet uint8

func singleton(d Cell) DeltaSet {
	if i := directionIndex(d); i >= 0 {
		return 1 << i
	}
	return 0
}

// Has reports whether d is in the set.
func (s DeltaSet) Has(d Cell) bool {
	i := directionIndex(d)
	return i >= 0 && s&(1<<i) != 0
}

// Len returns the number of deltas in the set.
func (s DeltaSet) Len() int {
	return bits.OnesCount8(uint8(s))
}

// Deltas returns the members of the set in AxialDirections order.
func (s DeltaSet) Deltas() []Cell {
	out := make([]Cell, 0, s.Len())
	for i, d := range AxialDirections {
		if s&(1<<i) != 0 {
			out = append(out, d)
		}
	}
	return out
}

func (s DeltaSet) first() (Cell, bool) {
	if s == 0 {
		return Cell{}, false
	}
	return AxialDirections[bits.TrailingZeros8(uint8(s))], true
}

// NeighborFunc returns the cells adjacent to c. With forward set it returns
// the cells reachable from c, otherwise the cells from which c is reachable.
// Blocked cells must be left out; start and end must always be admitted.
type NeighborFunc func(c Cell, forward bool) []Cell

// FlowField stores, for every cell that can reach the end, its hop distance
// to the end and the set of equally short next steps.
// A field is never modified after NewFlowField returns.
type FlowField struct {
	start, end Cell
	bounds     Bounds
	distances  []int      // -1 if unreachable
	deltas     []DeltaSet // 0 if no entry
	path       []Cell     // canonical walk, start..end
}

// NewFlowField builds the field from start to end. bounds is the rectangle
// the field is stored over; neighbours outside it are ignored, as are
// neighbours that are not one axial step away.
func NewFlowField(start, end Cell, bounds Bounds, neighbors NeighborFunc) (*FlowField, error) {
	if !bounds.Contains(start) || !bounds.Contains(end) {
		return nil, fmt.Errorf("path %v -> %v outside field bounds: %w", start, end, ErrInvalidCell)
	}

	size := bounds.Width() * bounds.Height()
	f := &FlowField{
		start:     start,
		end:       end,
		bounds:    bounds,
		distances: make([]int, size),
		deltas:    make([]DeltaSet, size),
	}
	for i := range f.distances {
		f.distances[i] = -1
	}

	f.generateDistances(neighbors)
	if f.distances[bounds.index(start)] < 0 {
		return nil, fmt.Errorf("path %v -> %v: %w", start, end, ErrUnreachable)
	}
	f.generateBestDeltas(neighbors)
	if err := f.singularize(); err != nil {
		return nil, err
	}
	return f, nil
}

// generateDistances runs a breadth-first search outward from the end,
// following edges backwards.
func (f *FlowField) generateDistances(neighbors NeighborFunc) {
	endIdx := f.bounds.index(f.end)
	f.distances[endIdx] = 0

	queue := make([]int, 0, len(f.distances))
	queue = append(queue, endIdx)
	for head := 0; head < len(queue); head++ {
		idx := queue[head]
		cell := f.bounds.cell(idx)
		for _, from := range neighbors(cell, false) {
			if !f.bounds.Contains(from) || directionIndex(cell.Sub(from)) < 0 {
				continue
			}
			fromIdx := f.bounds.index(from)
			if f.distances[fromIdx] >= 0 {
				continue
			}
			f.distances[fromIdx] = f.distances[idx] + 1
			queue = append(queue, fromIdx)
		}
	}
}

// generateBestDeltas records, for each reached cell, every forward neighbour
// that is nearest to the end.
func (f *FlowField) generateBestDeltas(neighbors NeighborFunc) {
	endIdx := f.bounds.index(f.end)
	for idx, dist := range f.distances {
		if dist < 0 || idx == endIdx {
			continue
		}
		cell := f.bounds.cell(idx)
		best := -1
		var set DeltaSet
		for _, to := range neighbors(cell, true) {
			if !f.bounds.Contains(to) {
				continue
			}
			dir := directionIndex(to.Sub(cell))
			if dir < 0 {
				continue
			}
			d := f.distances[f.bounds.index(to)]
			if d < 0 {
				continue
			}
			if best < 0 || d < best {
				best = d
				set = 0
			}
			if d == best {
				set |= 1 << dir
			}
		}
		f.deltas[idx] = set
	}
}

// singularize walks the canonical path from the start and collapses every
// visited cell to the delta actually taken. The end cell inherits the last
// step so units keep going straight out of the exit.
func (f *FlowField) singularize() error {
	type step struct{ cell, delta Cell }

	var steps []step
	var previous Cell
	cur := f.start
	for cur != f.end {
		if len(steps) >= len(f.distances) {
			return fmt.Errorf("path %v -> %v does not converge: %w", f.start, f.end, ErrUnreachable)
		}
		delta, ok := f.BestDelta(cur, previous)
		if !ok {
			return fmt.Errorf("path %v -> %v stops at %v: %w", f.start, f.end, cur, ErrUnreachable)
		}
		steps = append(steps, step{cell: cur, delta: delta})
		previous = delta
		cur = cur.Add(delta)
	}

	f.path = make([]Cell, 0, len(steps)+1)
	for _, s := range steps {
		f.deltas[f.bounds.index(s.cell)] = singleton(s.delta)
		f.path = append(f.path, s.cell)
	}
	f.path = append(f.path, f.end)
	if len(steps) > 0 {
		f.deltas[f.bounds.index(f.end)] = singleton(steps[len(steps)-1].delta)
	}
	return nil
}

// Start returns the start cell.
func (f *FlowField) Start() Cell { return f.start }

// End returns the end cell.
func (f *FlowField) End() Cell { return f.end }

// Bounds returns the rectangle the field covers.
func (f *FlowField) Bounds() Bounds { return f.bounds }

// Distance returns the hop count from c to the end.
func (f *FlowField) Distance(c Cell) (int, bool) {
	if !f.bounds.Contains(c) {
		return 0, false
	}
	d := f.distances[f.bounds.index(c)]
	return d, d >= 0
}

// Deltas returns the best next steps recorded for c.
func (f *FlowField) Deltas(c Cell) DeltaSet {
	if !f.bounds.Contains(c) {
		return 0
	}
	return f.deltas[f.bounds.index(c)]
}

// Contains reports whether c has a direction entry, i.e. a unit on c knows where to go.
func (f *FlowField) Contains(c Cell) bool {
	return f.Deltas(c) != 0
}

// BestDelta returns the step to take from c. previous is kept when it is
// still one of the best choices, so units do not zig-zag between equal routes.
// Pass the zero Cell when there is no previous step.
func (f *FlowField) BestDelta(c Cell, previous Cell) (Cell, bool) {
	set := f.Deltas(c)
	if !previous.IsZero() && set.Has(previous) {
		return previous, true
	}
	return set.first()
}

// CanonicalPath returns the cells of the canonical walk, start and end included.
func (f *FlowField) CanonicalPath() []Cell {
	out := make([]Cell, len(f.path))
	copy(out, f.path)
	return out
}

// Len returns the number of steps of the canonical walk.
func (f *FlowField) Len() int {
	return len(f.path) - 1
}

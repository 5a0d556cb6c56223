// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"

	"github.com/yuanwang7/TowerDefenceGame/internal/component"
	"github.com/yuanwang7/TowerDefenceGame/internal/defs"
	"github.com/yuanwang7/TowerDefenceGame/internal/event"
	"github.com/yuanwang7/TowerDefenceGame/pkg/grid"
	"github.com/yuanwang7/TowerDefenceGame/pkg/utils"
)

// ErrNotFound is returned when there is no tower at the requested cell.
var ErrNotFound = errors.New("no tower at cell")

// Place attempts to place a tower of kind at cell. It fails when the cell is
// outside the grid, already holds a tower, or the tower would cut the path.
func (g *Game) Place(cell grid.Cell, kind defs.TowerKind) bool {
	g.mu.Lock()
	placed := g.place(cell, kind)
	g.mu.Unlock()

	if placed {
		g.dispatch([]event.Event{{Type: event.TowerPlaced, Data: cell}})
	}
	return placed
}

func (g *Game) place(cell grid.Cell, kind defs.TowerKind) bool {
	if !g.grid.IsCellValid(cell) {
		return false
	}
	if _, occupied := g.world.Towers[cell]; occupied {
		return false
	}
	def, ok := defs.Tower(kind)
	if !ok {
		return false
	}
	// Поле строится по башням вместе с новой клеткой, то есть уже по итоговому набору.
	path, err := g.generatePath(cell)
	if err != nil {
		return false
	}

	g.world.AddTower(component.NewTower(def, cell, g.grid.CellToPixelCenter(cell), g.settings.CellSize))
	g.path = path
	return true
}

// Remove removes the tower at cell and returns it.
func (g *Game) Remove(cell grid.Cell) (*component.Tower, error) {
	g.mu.Lock()
	tower, err := g.remove(cell)
	g.mu.Unlock()

	if err != nil {
		return nil, err
	}
	g.dispatch([]event.Event{{Type: event.TowerRemoved, Data: cell}})
	return tower, nil
}

func (g *Game) remove(cell grid.Cell) (*component.Tower, error) {
	if err := g.grid.ValidateCell(cell); err != nil {
		return nil, fmt.Errorf("remove tower: %w", err)
	}
	tower := g.world.RemoveTower(cell)
	if tower == nil {
		return nil, fmt.Errorf("remove tower at %v: %w", cell, ErrNotFound)
	}
	path, err := g.generatePath()
	if err != nil {
		g.world.AddTower(tower)
		return nil, fmt.Errorf("remove tower at %v: %w", cell, err)
	}
	g.path = path
	return tower, nil
}

// AttemptPlacement reports whether a tower could be placed at the pixel
// position and returns the path enemies would take. For an illegal
// placement the current path is returned. Nothing is changed.
func (g *Game) AttemptPlacement(position utils.Point) (bool, *grid.FlowField) {
	g.mu.Lock()
	defer g.mu.Unlock()

	cell := g.grid.PixelToCell(position)
	if !g.grid.IsCellValid(cell) {
		return false, g.path
	}
	if _, occupied := g.world.Towers[cell]; occupied {
		return false, g.path
	}
	path, err := g.generatePath(cell)
	if err != nil {
		return false, g.path
	}
	return true, path
}

// generatePath builds a fresh field around the towers plus the extra blocked cells.
func (g *Game) generatePath(extra ...grid.Cell) (*grid.FlowField, error) {
	blocked := make(map[grid.Cell]bool, len(g.world.Towers)+len(extra))
	for cell := range g.world.Towers {
		blocked[cell] = true
	}
	for _, cell := range extra {
		blocked[cell] = true
	}

	neighbors := func(c grid.Cell, _ bool) []grid.Cell {
		out := make([]grid.Cell, 0, 4)
		for _, n := range c.Adjacent() {
			if n == g.start || n == g.end || (g.grid.IsCellValid(n) && !blocked[n]) {
				out = append(out, n)
			}
		}
		return out
	}
	return grid.NewFlowField(g.start, g.end, g.grid.Bounds().Pad(1), neighbors)
}

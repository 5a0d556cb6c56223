// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"sync"

	"github.com/yuanwang7/TowerDefenceGame/internal/component"
	"github.com/yuanwang7/TowerDefenceGame/internal/config"
	"github.com/yuanwang7/TowerDefenceGame/internal/defs"
	"github.com/yuanwang7/TowerDefenceGame/internal/entity"
	"github.com/yuanwang7/TowerDefenceGame/internal/event"
	"github.com/yuanwang7/TowerDefenceGame/internal/system"
	"github.com/yuanwang7/TowerDefenceGame/internal/utils"
	"github.com/yuanwang7/TowerDefenceGame/pkg/grid"
)

// ErrInvalidSettings is returned by NewGame for settings it cannot build a board from.
var ErrInvalidSettings = errors.New("invalid game settings")

// Settings параметры одной партии.
type Settings struct {
	Columns, Rows int
	CellSize      float64
	EntryRow      int // Строка входа слева и выхода справа
	TickDivisor   int // Логика выполняется на каждом TickDivisor-м шаге
	Seed          int64
	WaveMix       []defs.WeightedEnemy // Состав случайных волн, при пустом только простые враги
}

// DefaultSettings returns the settings of the standard 6x6 board.
func DefaultSettings() Settings {
	return Settings{
		Columns:     config.GridColumns,
		Rows:        config.GridRows,
		CellSize:    config.CellSize,
		EntryRow:    config.EntryRow,
		TickDivisor: config.TickDivisor,
		Seed:        config.DefaultSeed,
	}
}

func (s Settings) validate() error {
	switch {
	case s.Columns <= 0 || s.Rows <= 0:
		return fmt.Errorf("%dx%d grid: %w", s.Columns, s.Rows, ErrInvalidSettings)
	case s.CellSize <= 0:
		return fmt.Errorf("cell size %v: %w", s.CellSize, ErrInvalidSettings)
	case s.EntryRow < 0 || s.EntryRow >= s.Rows:
		return fmt.Errorf("entry row %d of %d: %w", s.EntryRow, s.Rows, ErrInvalidSettings)
	case s.TickDivisor < 1:
		return fmt.Errorf("tick divisor %d: %w", s.TickDivisor, ErrInvalidSettings)
	}
	return nil
}

// Game holds the board and advances it one tick per Step. All methods are
// safe for concurrent use. Events are dispatched after the game is unlocked,
// so listeners may call back into it.
type Game struct {
	mu sync.Mutex

	settings        Settings
	grid            *grid.Translator
	world           *entity.World
	spawnQueue      *component.SpawnQueue
	path            *grid.FlowField
	start, end      grid.Cell
	currentStep     int
	rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher

	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	WaveSystem       *system.WaveSystem
}

// NewGame initializes a new game instance.
func NewGame(settings Settings) (*Game, error) {
	if err := settings.validate(); err != nil {
		return nil, err
	}

	translator := grid.NewTranslator(settings.Columns, settings.Rows, settings.CellSize)
	world := entity.NewWorld()
	queue := &component.SpawnQueue{}
	g := &Game{
		settings:        settings,
		grid:            translator,
		world:           world,
		spawnQueue:      queue,
		start:           grid.Cell{Col: -1, Row: settings.EntryRow},
		end:             grid.Cell{Col: settings.Columns, Row: settings.EntryRow},
		currentStep:     -1,
		rng:             utils.NewPRNGService(settings.Seed),
		EventDispatcher: event.NewDispatcher(),
	}
	g.MovementSystem = system.NewMovementSystem(world, translator)
	g.ProjectileSystem = system.NewProjectileSystem(world)
	g.CombatSystem = system.NewCombatSystem(world, g.ProjectileSystem)
	g.WaveSystem = system.NewWaveSystem(world, queue)

	path, err := g.generatePath()
	if err != nil {
		return nil, fmt.Errorf("initial path: %w", err)
	}
	g.path = path
	return g, nil
}

// Step advances the game by one external tick and reports whether enemies
// are still live or waiting to spawn.
func (g *Game) Step() bool {
	g.mu.Lock()
	events := g.step()
	running := g.spawnQueue.Len() > 0 || len(g.world.Enemies) > 0
	g.mu.Unlock()

	g.dispatch(events)
	return running
}

func (g *Game) step() []event.Event {
	g.currentStep++
	if g.currentStep%g.settings.TickDivisor != 0 {
		return nil
	}

	g.ProjectileSystem.Update()
	events := g.stepEnemies()
	g.CombatSystem.Update()
	g.WaveSystem.Update(g.currentStep, g.spawn)
	return events
}

func (g *Game) stepEnemies() []event.Event {
	dead, escaped := g.MovementSystem.Update(g.path)

	var events []event.Event
	if len(escaped) > 0 {
		events = append(events, event.Event{Type: event.EnemyEscape, Data: escaped})
	}
	events = append(events, event.Event{Type: event.EnemyDeath, Data: dead})
	if len(g.world.Enemies) == 0 && g.spawnQueue.Len() == 0 {
		events = append(events, event.Event{Type: event.Cleared})
	}
	return events
}

func (g *Game) spawn(enemy *component.Enemy) {
	enemy.Position = g.grid.CellToPixelCenter(g.path.Start())
	enemy.LastDelta = grid.Cell{}
	g.world.AddEnemy(enemy)
}

func (g *Game) dispatch(events []event.Event) {
	for _, e := range events {
		g.EventDispatcher.Dispatch(e)
	}
}

// NewEnemy creates an unspawned enemy of kind sized for this board.
func (g *Game) NewEnemy(kind defs.EnemyKind) (*component.Enemy, error) {
	def, ok := defs.Enemy(kind)
	if !ok {
		return nil, fmt.Errorf("enemy %q: %w", kind, defs.ErrUnknownKind)
	}
	return component.NewEnemy(def, g.settings.CellSize), nil
}

// QueueWave schedules entries, whose steps are relative to the current step.
// Unless clear is set they are merged with the spawns already pending; with
// clear the pending spawns and the live enemies are dropped.
func (g *Game) QueueWave(entries []component.SpawnEntry, clear bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.WaveSystem.Queue(entries, g.currentStep, clear)
}

// QueueLevelWave schedules an authored wave.
func (g *Game) QueueLevelWave(wave []defs.WaveEntry, clear bool) error {
	entries := make([]component.SpawnEntry, 0, len(wave))
	for _, w := range wave {
		enemy, err := g.NewEnemy(w.Kind)
		if err != nil {
			return fmt.Errorf("queue wave: %w", err)
		}
		entries = append(entries, component.SpawnEntry{Step: w.Step, Enemy: enemy})
	}
	g.QueueWave(entries, clear)
	return nil
}

// SendWave queues count random enemies spread over the next steps steps,
// denser toward the end.
func (g *Game) SendWave(clear bool, count, steps int) error {
	if count < 0 || steps < 0 {
		return fmt.Errorf("send wave of %d over %d steps: %w", count, steps, ErrInvalidSettings)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	entries := make([]component.SpawnEntry, 0, count)
	for i := 0; i < count; i++ {
		step := int(float64(1+steps) - g.rng.Triangular(0, float64(steps), 0))
		kind := g.rng.ChooseWeighted(g.settings.WaveMix)
		def, ok := defs.Enemy(kind)
		if !ok {
			return fmt.Errorf("send wave: enemy %q: %w", kind, defs.ErrUnknownKind)
		}
		entries = append(entries, component.SpawnEntry{Step: step, Enemy: component.NewEnemy(def, g.settings.CellSize)})
	}
	g.WaveSystem.Queue(entries, g.currentStep, clear)
	return nil
}

// IsWaveOver reports whether nothing is live and nothing waits to spawn.
func (g *Game) IsWaveOver() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.spawnQueue.Len() == 0 && len(g.world.Enemies) == 0
}

// Reset clears the board and rebuilds the path.
func (g *Game) Reset() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.world.Clear()
	g.spawnQueue.Clear()
	path, err := g.generatePath()
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	g.path = path
	return nil
}

// Enemies returns a copy of the live enemies.
func (g *Game) Enemies() []component.Enemy {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]component.Enemy, len(g.world.Enemies))
	for i, e := range g.world.Enemies {
		out[i] = *e
	}
	return out
}

// Towers returns a copy of the towers keyed by cell.
func (g *Game) Towers() map[grid.Cell]component.Tower {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make(map[grid.Cell]component.Tower, len(g.world.Towers))
	for cell, t := range g.world.Towers {
		c := *t
		if t.Cooldown != nil {
			cd := *t.Cooldown
			c.Cooldown = &cd
		}
		out[cell] = c
	}
	return out
}

// Obstacles returns a copy of the obstacles in flight.
func (g *Game) Obstacles() []component.Obstacle {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]component.Obstacle, len(g.world.Obstacles))
	for i, o := range g.world.Obstacles {
		out[i] = *o
		out[i].Hit = nil
	}
	return out
}

// Path returns the current flow field. Fields are never modified.
func (g *Game) Path() *grid.FlowField {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.path
}

// CanonicalPath returns the cells enemies walk from start to end.
func (g *Game) CanonicalPath() []grid.Cell {
	return g.Path().CanonicalPath()
}

// Grid returns the coordinate translator of the board.
func (g *Game) Grid() *grid.Translator {
	return g.grid
}

// CurrentStep returns the number of the last external tick, -1 before the first.
func (g *Game) CurrentStep() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentStep
}

// PendingSpawns returns the number of enemies waiting to spawn.
func (g *Game) PendingSpawns() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.spawnQueue.Len()
}

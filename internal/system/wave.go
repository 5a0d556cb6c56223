// internal/system/wave.go
package system

import (
	"github.com/yuanwang7/TowerDefenceGame/internal/component"
	"github.com/yuanwang7/TowerDefenceGame/internal/entity"
)

// WaveSystem выпускает врагов из очереди появления.
type WaveSystem struct {
	world *entity.World
	queue *component.SpawnQueue
}

func NewWaveSystem(world *entity.World, queue *component.SpawnQueue) *WaveSystem {
	return &WaveSystem{world: world, queue: queue}
}

// Queue offsets entries by currentStep and merges them into the pending spawns.
// With clear set, pending spawns and live enemies are dropped first.
func (s *WaveSystem) Queue(entries []component.SpawnEntry, currentStep int, clear bool) {
	shifted := make([]component.SpawnEntry, len(entries))
	for i, e := range entries {
		shifted[i] = component.SpawnEntry{Step: e.Step + currentStep, Enemy: e.Enemy}
	}
	if clear {
		s.queue.Clear()
		s.world.ClearEnemies()
	}
	s.queue.Push(shifted...)
}

// Update spawns every enemy due at currentStep at spawn, in step order.
func (s *WaveSystem) Update(currentStep int, spawn func(*component.Enemy)) {
	for _, enemy := range s.queue.PopDue(currentStep) {
		spawn(enemy)
	}
}

// Pending returns the number of enemies waiting to spawn.
func (s *WaveSystem) Pending() int {
	return s.queue.Len()
}

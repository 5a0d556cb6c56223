// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"

	"github.com/yuanwang7/TowerDefenceGame/internal/defs"
)

// PRNGService это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Triangular returns a number in [low, high] drawn from the triangular
// distribution with the given mode.
func (s *PRNGService) Triangular(low, high, mode float64) float64 {
	if high == low {
		return low
	}
	u := s.Float64()
	c := (mode - low) / (high - low)
	if u > c {
		u = 1 - u
		c = 1 - c
		low, high = high, low
	}
	return low + (high-low)*math.Sqrt(u*c)
}

// ChooseWeighted выполняет взвешенный случайный выбор вида врага.
// Он суммирует все веса, выбирает случайное число в этом диапазоне,
// а затем находит элемент, которому соответствует это число.
func (s *PRNGService) ChooseWeighted(entries []defs.WeightedEnemy) defs.EnemyKind {
	if len(entries) == 0 {
		return defs.EnemySimple
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0].Kind
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.Kind
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].Kind
}

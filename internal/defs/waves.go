package defs

import "math"

// Difficulty масштабирует количество врагов в волнах.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

// SubWave описывает одну группу врагов внутри волны.
// Count == 0 оставляет паузу длиной Steps.
type SubWave struct {
	Steps int       // Длительность группы в шагах
	Count int       // Количество врагов
	Kind  EnemyKind // Вид врага
}

// WaveEntry один враг волны и шаг его появления относительно начала волны.
type WaveEntry struct {
	Step int
	Kind EnemyKind
}

// WeightedEnemy используется для случайных волн.
type WeightedEnemy struct {
	Kind   EnemyKind
	Weight int
}

// RandomWaveMix is the enemy mix of a randomly sent wave.
var RandomWaveMix = []WeightedEnemy{
	{Kind: EnemySimple, Weight: 8},
	{Kind: EnemyArmored, Weight: 2},
}

// WavePatterns определяет последовательность волн в игре.
// Ключ карты - это номер волны.
var WavePatterns = map[int][]SubWave{
	1:  {{Steps: 100, Count: 10, Kind: EnemySimple}},
	2:  {{Steps: 100, Count: 20, Kind: EnemySimple}},
	3:  {{Steps: 100, Count: 10, Kind: EnemySimple}, {Steps: 50, Count: 0}, {Steps: 100, Count: 15, Kind: EnemySimple}},
	4:  {{Steps: 120, Count: 4, Kind: EnemyArmored}},
	5:  {{Steps: 100, Count: 20, Kind: EnemySimple}, {Steps: 100, Count: 3, Kind: EnemyArmored}},
	6:  {{Steps: 150, Count: 30, Kind: EnemySimple}},
	7:  {{Steps: 100, Count: 6, Kind: EnemyArmored}, {Steps: 100, Count: 20, Kind: EnemySimple}},
	8:  {{Steps: 80, Count: 40, Kind: EnemySimple}},
	9:  {{Steps: 150, Count: 10, Kind: EnemyArmored}, {Steps: 30, Count: 0}, {Steps: 100, Count: 25, Kind: EnemySimple}},
	10: {{Steps: 200, Count: 15, Kind: EnemyArmored}, {Steps: 200, Count: 40, Kind: EnemySimple}},
}

// GenerateIntervals делит total на n равных отрезков и возвращает начало каждого,
// округлённое вниз.
func GenerateIntervals(total, n int) []int {
	if n <= 0 {
		return nil
	}
	step := float64(total) / float64(n)
	out := make([]int, n)
	for i := range out {
		out[i] = int(step * float64(i))
	}
	return out
}

// GenerateSubWave spreads count enemies of kind evenly over steps, starting at offset.
func GenerateSubWave(steps, count int, kind EnemyKind, offset int) []WaveEntry {
	intervals := GenerateIntervals(steps, count)
	out := make([]WaveEntry, len(intervals))
	for i, step := range intervals {
		out[i] = WaveEntry{Step: step + offset, Kind: kind}
	}
	return out
}

// GenerateSubWaves lays the sub waves out back to back.
func GenerateSubWaves(subWaves []SubWave) []WaveEntry {
	var out []WaveEntry
	offset := 0
	for _, sw := range subWaves {
		if sw.Count > 0 {
			out = append(out, GenerateSubWave(sw.Steps, sw.Count, sw.Kind, offset)...)
		}
		offset += sw.Steps
	}
	return out
}

// Level набор волн с заданной сложностью.
type Level struct {
	Difficulty Difficulty
	Patterns   map[int][]SubWave
}

// NewLevel returns a level over the default WavePatterns.
func NewLevel(difficulty Difficulty) *Level {
	return &Level{Difficulty: difficulty, Patterns: WavePatterns}
}

// MaxWave returns the number of authored waves.
func (l *Level) MaxWave() int {
	return len(l.Patterns)
}

// Wave returns the enemies of the n-th wave (1-based), sorted by step ascending.
// Waves past the last authored one repeat the last five.
func (l *Level) Wave(n int) []WaveEntry {
	if n < 1 {
		return nil
	}
	pattern, ok := l.Patterns[n]
	if !ok {
		maxWave := l.MaxWave()
		if maxWave == 0 {
			return nil
		}
		loop := 5
		if maxWave < loop {
			loop = maxWave
		}
		first := maxWave - loop + 1
		pattern = l.Patterns[((n-first)%loop)+first]
	}

	scaled := make([]SubWave, len(pattern))
	for i, sw := range pattern {
		sw.Count = l.scale(sw.Count)
		scaled[i] = sw
	}
	return GenerateSubWaves(scaled)
}

func (l *Level) scale(count int) int {
	if count == 0 {
		return 0
	}
	switch l.Difficulty {
	case DifficultyEasy:
		return int(math.Max(1, math.Round(float64(count)*0.75)))
	case DifficultyHard:
		return int(math.Round(float64(count) * 1.5))
	}
	return count
}

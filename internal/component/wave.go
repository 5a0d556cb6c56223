package component

import "sort"

// SpawnEntry враг, ожидающий своего шага появления.
type SpawnEntry struct {
	Step  int // Абсолютный шаг игры
	Enemy *Enemy
}

// SpawnQueue holds pending spawns sorted by step descending, so the next
// entry due is always at the tail.
type SpawnQueue struct {
	entries []SpawnEntry
}

// Push merges entries into the queue. Among entries due on the same step,
// the ones already queued spawn first.
func (q *SpawnQueue) Push(entries ...SpawnEntry) {
	merged := make([]SpawnEntry, 0, len(entries)+len(q.entries))
	merged = append(merged, entries...)
	q.entries = append(merged, q.entries...)
	sort.SliceStable(q.entries, func(i, j int) bool {
		return q.entries[i].Step > q.entries[j].Step
	})
}

// PopDue removes and returns every entry with Step <= step, earliest first.
func (q *SpawnQueue) PopDue(step int) []*Enemy {
	var due []*Enemy
	for len(q.entries) > 0 {
		last := q.entries[len(q.entries)-1]
		if last.Step > step {
			break
		}
		due = append(due, last.Enemy)
		q.entries = q.entries[:len(q.entries)-1]
	}
	return due
}

// Len returns the number of pending spawns.
func (q *SpawnQueue) Len() int {
	return len(q.entries)
}

// Clear drops every pending spawn.
func (q *SpawnQueue) Clear() {
	q.entries = nil
}

// Entries returns a copy of the pending spawns in queue order.
func (q *SpawnQueue) Entries() []SpawnEntry {
	out := make([]SpawnEntry, len(q.entries))
	copy(out, q.entries)
	return out
}

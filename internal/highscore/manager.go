// internal/highscore/manager.go
package highscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sort"
)

// DefaultGame is the leaderboard used when no game name is given.
const DefaultGame = "basic"

// Entry одна запись таблицы рекордов.
type Entry struct {
	Name  string          `json:"name"`
	Score int             `json:"score"`
	Data  json.RawMessage `json:"data"`
}

// Manager хранит таблицы рекордов для нескольких режимов игры и сохраняет их в JSON.
type Manager struct {
	filename  string
	topScores int
	data      map[string][]Entry
}

// NewManager loads filename. A missing file gives empty leaderboards.
func NewManager(filename string, topScores int) (*Manager, error) {
	m := &Manager{filename: filename, topScores: topScores}
	if err := m.Load(filename); err != nil {
		return nil, err
	}
	return m, nil
}

// Load replaces the leaderboards with the contents of filename.
func (m *Manager) Load(filename string) error {
	file, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		m.data = make(map[string][]Entry)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read high scores file: %w", err)
	}

	data := make(map[string][]Entry)
	if err := json.Unmarshal(file, &data); err != nil {
		return fmt.Errorf("failed to unmarshal high scores: %w", err)
	}
	m.data = data
	return nil
}

// Save writes the leaderboards to the file they were loaded from.
func (m *Manager) Save() error {
	return m.SaveAs(m.filename)
}

// SaveAs writes the leaderboards to filename.
func (m *Manager) SaveAs(filename string) error {
	file, err := json.Marshal(m.data)
	if err != nil {
		return fmt.Errorf("failed to marshal high scores: %w", err)
	}
	if err := os.WriteFile(filename, file, 0o644); err != nil {
		return fmt.Errorf("failed to write high scores file: %w", err)
	}
	log.Printf("Saved high scores to %s", filename)
	return nil
}

// LowestScore returns the lowest score on the board of game.
func (m *Manager) LowestScore(game string) (int, bool) {
	entries := m.data[game]
	if len(entries) == 0 {
		return 0, false
	}
	return entries[len(entries)-1].Score, true
}

// DoesScoreQualify reports whether score would make it onto the board. Zero never does.
func (m *Manager) DoesScoreQualify(score int, game string) bool {
	if score == 0 {
		return false
	}
	lowest, ok := m.LowestScore(game)
	if !ok {
		return true
	}
	return len(m.data[game]) < m.topScores || score > lowest
}

// AddEntry records a score and returns the entry pushed off the board, if any.
func (m *Manager) AddEntry(name string, score int, data json.RawMessage, game string) (Entry, bool) {
	entries := append(m.data[game], Entry{Name: name, Score: score, Data: data})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	var dropped Entry
	overflow := len(entries) > m.topScores
	if overflow {
		dropped = entries[len(entries)-1]
		entries = entries[:len(entries)-1]
	}
	m.data[game] = entries
	return dropped, overflow
}

// Entries returns a copy of the board of game, highest first.
func (m *Manager) Entries(game string) []Entry {
	out := make([]Entry, len(m.data[game]))
	copy(out, m.data[game])
	return out
}

package highscore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingFileIsEmpty(t *testing.T) {
	m, err := NewManager(filepath.Join(t.TempDir(), "scores.json"), 10)
	require.NoError(t, err)

	assert.Empty(t, m.Entries(DefaultGame))
	_, ok := m.LowestScore(DefaultGame)
	assert.False(t, ok)
	assert.True(t, m.DoesScoreQualify(1, DefaultGame))
	assert.False(t, m.DoesScoreQualify(0, DefaultGame))
}

func TestBoardIsCappedAndSorted(t *testing.T) {
	m, err := NewManager(filepath.Join(t.TempDir(), "scores.json"), 10)
	require.NoError(t, err)

	for score := 1; score <= 10; score++ {
		_, dropped := m.AddEntry(fmt.Sprintf("p%d", score), score, nil, DefaultGame)
		assert.False(t, dropped)
	}
	out, dropped := m.AddEntry("p11", 11, nil, DefaultGame)
	require.True(t, dropped)
	assert.Equal(t, 1, out.Score)

	entries := m.Entries(DefaultGame)
	require.Len(t, entries, 10)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Score, entries[i].Score)
	}
	assert.Equal(t, 11, entries[0].Score)

	lowest, ok := m.LowestScore(DefaultGame)
	require.True(t, ok)
	assert.Equal(t, 2, lowest)
	assert.False(t, m.DoesScoreQualify(2, DefaultGame))
	assert.True(t, m.DoesScoreQualify(3, DefaultGame))
}

func TestTiesKeepInsertionOrder(t *testing.T) {
	m, err := NewManager(filepath.Join(t.TempDir(), "scores.json"), 3)
	require.NoError(t, err)

	m.AddEntry("first", 5, nil, DefaultGame)
	m.AddEntry("second", 5, nil, DefaultGame)
	m.AddEntry("top", 9, nil, DefaultGame)

	names := []string{}
	for _, e := range m.Entries(DefaultGame) {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"top", "first", "second"}, names)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	m, err := NewManager(path, 10)
	require.NoError(t, err)

	m.AddEntry("ann", 120, json.RawMessage(`{"wave":4}`), DefaultGame)
	m.AddEntry("bob", 80, json.RawMessage(`{"wave":3}`), "hard")
	require.NoError(t, m.Save())

	reloaded, err := NewManager(path, 10)
	require.NoError(t, err)
	basic := reloaded.Entries(DefaultGame)
	require.Len(t, basic, 1)
	assert.Equal(t, "ann", basic[0].Name)
	assert.Equal(t, 120, basic[0].Score)
	assert.JSONEq(t, `{"wave":4}`, string(basic[0].Data))
	assert.Len(t, reloaded.Entries("hard"), 1)
}

func TestCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewManager(path, 10)
	assert.Error(t, err)
}

func TestEntriesIsACopy(t *testing.T) {
	m, err := NewManager(filepath.Join(t.TempDir(), "scores.json"), 10)
	require.NoError(t, err)
	m.AddEntry("ann", 10, nil, DefaultGame)

	entries := m.Entries(DefaultGame)
	entries[0].Score = 999
	assert.Equal(t, 10, m.Entries(DefaultGame)[0].Score)
}

package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/loop-arcade/internal/storage"
)

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "loop", 100, 30)
	if !strings.Contains(m.View(), "Nothing recorded yet") {
		t.Error("empty scoreboard should say so")
	}
}

func TestScoreboardViews(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("loop", "ann", 120)
	store.SaveScore("loop", "", 40)
	store.SaveRun(storage.RunRecord{Player: "ann", Score: 120, Hits: 4, Positions: 8, LoopDelay: 0.5, SpeedMultiplier: 0.5, Multiplier: 0.5})

	m := NewScoreboardModel(store, "loop", 120, 30)
	if len(m.scores) != 2 || len(m.runs) != 1 || m.best == nil {
		t.Fatalf("loaded %d scores, %d runs, best=%v", len(m.scores), len(m.runs), m.best)
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES", "120", "ann", "local", "Best run"} {
		if !strings.Contains(view, want) {
			t.Errorf("scores view missing %q", want)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.CurrentView() != ViewRuns {
		t.Fatalf("view = %s, expected runs", m.CurrentView())
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("runs view should be titled")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.CurrentView() != ViewScores {
		t.Errorf("view = %s, expected scores", m.CurrentView())
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "loop", 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !next.(ScoreboardModel).IsQuitting() {
		t.Error("esc should quit the scoreboard")
	}
}

package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"questboard/internal/engine"
	"questboard/internal/storage"
)

func newTestModel(t *testing.T) boardModel {
	t.Helper()
	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	kv := storage.NewSQLiteKV(db)
	t.Cleanup(func() { _ = kv.Close() })

	now := time.Date(2026, 10, 17, 9, 30, 0, 0, time.Local)
	svc, err := engine.NewService(ctx, kv, engine.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return newBoardModel(ctx, svc)
}

func press(t *testing.T, m boardModel, key string) (boardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	bm, ok := next.(boardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return bm, cmd
}

func TestBoardCompletesDailyOnce(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "2")
	if m.tab != tabDailies {
		t.Fatalf("tab=%d, want dailies", m.tab)
	}

	m, cmd := press(t, m, "c")
	if cmd == nil {
		t.Fatalf("expected dismiss tick")
	}
	if m.note == nil || m.note.text != "Quest Complete! +50 XP, +30 Gold" {
		t.Fatalf("note=%+v", m.note)
	}
	if got := m.svc.Stats().Gold; got != 30 {
		t.Fatalf("gold=%d, want 30", got)
	}

	m, _ = press(t, m, "c")
	if m.note == nil || m.note.kind != noteError {
		t.Fatalf("expected error note, got %+v", m.note)
	}
	if !strings.Contains(m.View(), "done today") {
		t.Fatalf("view does not mark the daily as done")
	}
}

func TestBoardNotificationDismissal(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "3")
	m, _ = press(t, m, "c") // 0 gold: not enough for the 30 G break
	if m.note == nil || m.note.text != "Not enough gold! Need 30 more." {
		t.Fatalf("note=%+v", m.note)
	}

	stale := dismissMsg{seq: m.noteSeq - 1}
	next, _ := m.Update(stale)
	m = next.(boardModel)
	if m.note == nil {
		t.Fatalf("stale dismiss cleared the current note")
	}

	next, _ = m.Update(dismissMsg{seq: m.noteSeq})
	m = next.(boardModel)
	if m.note != nil {
		t.Fatalf("note not dismissed")
	}
}

func TestBoardRemoveClampsSelection(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "3")
	m, _ = press(t, m, "j")
	m, _ = press(t, m, "j")
	if m.selected[tabShop] != 2 {
		t.Fatalf("selected=%d, want 2", m.selected[tabShop])
	}
	m, _ = press(t, m, "x")
	if got := len(m.svc.State().Rewards); got != 2 {
		t.Fatalf("rewards=%d, want 2", got)
	}
	if m.selected[tabShop] != 1 {
		t.Fatalf("selected=%d, want 1", m.selected[tabShop])
	}
}

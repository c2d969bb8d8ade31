package engine

import (
	"testing"
	"time"
)

func TestHistoryKeepsNewestFifty(t *testing.T) {
	h := History{}
	base := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 51; i++ {
		h = h.Append(HistoryEntry{ID: int64(i), Title: "q", ActionType: ActionCompleted, Date: base.Add(time.Duration(i) * time.Minute)})
	}

	if len(h) != HistoryLimit {
		t.Fatalf("len=%d, want %d", len(h), HistoryLimit)
	}
	if h[0].ID != 51 {
		t.Fatalf("newest id=%d, want 51", h[0].ID)
	}
	if h[len(h)-1].ID != 2 {
		t.Fatalf("oldest id=%d, want 2", h[len(h)-1].ID)
	}
	for i := 1; i < len(h); i++ {
		if h[i-1].ID <= h[i].ID {
			t.Fatalf("not newest-first at %d: %d then %d", i, h[i-1].ID, h[i].ID)
		}
	}
}

func TestHistoryAppendLeavesReceiverUntouched(t *testing.T) {
	h := History{{ID: 1}}
	next := h.Append(HistoryEntry{ID: 2})
	if len(h) != 1 || h[0].ID != 1 {
		t.Fatalf("receiver modified: %+v", h)
	}
	if len(next) != 2 || next[0].ID != 2 {
		t.Fatalf("next=%+v", next)
	}
}

func TestHistoryEntriesIsACopy(t *testing.T) {
	h := History{{ID: 1, Title: "a"}}
	e := h.Entries()
	e[0].Title = "b"
	if h[0].Title != "a" {
		t.Fatalf("Entries aliased the log")
	}
}

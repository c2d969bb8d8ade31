package engine

import (
	"testing"
	"time"
)

func TestIsDailyCompleted(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 30, 0, 0, time.Local)
	earlierToday := time.Date(2026, 10, 17, 0, 1, 0, 0, time.Local)
	lateYesterday := time.Date(2026, 10, 16, 23, 59, 0, 0, time.Local)
	lastYear := time.Date(2025, 10, 17, 9, 30, 0, 0, time.Local)
	storedUTC := stamp(earlierToday)

	cases := []struct {
		name string
		last *time.Time
		want bool
	}{
		{"never", nil, false},
		{"earlier today", &earlierToday, true},
		{"stored as utc", &storedUTC, true},
		{"late yesterday", &lateYesterday, false},
		{"same day last year", &lastYear, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsDailyCompleted(tc.last, now); got != tc.want {
				t.Fatalf("IsDailyCompleted=%v, want %v", got, tc.want)
			}
		})
	}
}

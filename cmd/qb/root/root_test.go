package root

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"questboard/internal/engine"
	"questboard/internal/ui"
)

func runQB(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"--db", db, "--store", "sqlite"}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCommandsEndToEnd(t *testing.T) {
	t.Setenv("QB_LOG_FILE", "")
	t.Setenv("QB_STATE_KEY", "questBoardData")
	db := filepath.Join(t.TempDir(), "qb.db")

	out, err := runQB(t, db, "add", "-d", "easy", "Write", "tests")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(out, "Quest Added!") {
		t.Fatalf("add output: %q", out)
	}

	out, err = runQB(t, db, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"Write tests", "Study DSA (1 hr)", "ready"} {
		if !strings.Contains(out, want) {
			t.Fatalf("list output missing %q: %q", want, out)
		}
	}

	out, err = runQB(t, db, "shop")
	if err != nil {
		t.Fatalf("shop: %v", err)
	}
	if !strings.Contains(out, "15 Min Break") {
		t.Fatalf("shop output: %q", out)
	}

	_, err = runQB(t, db, "buy", "1")
	var ife engine.InsufficientFundsError
	if !errors.As(err, &ife) {
		t.Fatalf("buy err=%v, want InsufficientFundsError", err)
	}
	if got := ui.ErrorMessage(err); got != "Not enough gold! Need 30 more." {
		t.Fatalf("message=%q", got)
	}

	out, err = runQB(t, db, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "No history yet") {
		t.Fatalf("history output: %q", out)
	}

	svc, cleanup, err := openService(context.Background())
	if err != nil {
		t.Fatalf("open service: %v", err)
	}
	tasks := svc.State().Tasks
	cleanup()
	if len(tasks) != 1 {
		t.Fatalf("tasks=%d, want 1", len(tasks))
	}

	out, err = runQB(t, db, "do", strconv.FormatInt(tasks[0].ID, 10))
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(out, "Quest Complete! +10 XP, +5 Gold") {
		t.Fatalf("do output: %q", out)
	}

	if _, err := runQB(t, db, "daily", "999"); err != nil {
		t.Fatalf("daily: %v", err)
	}
	_, err = runQB(t, db, "daily", "999")
	var ee engine.EligibilityError
	if !errors.As(err, &ee) {
		t.Fatalf("second daily err=%v, want EligibilityError", err)
	}

	out, err = runQB(t, db, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out, "60 / 100") {
		t.Fatalf("status output: %q", out)
	}

	out, err = runQB(t, db, "history", "-n", "1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "Study DSA (1 hr)") || strings.Contains(out, "Write tests") {
		t.Fatalf("history -n 1 output: %q", out)
	}
}

func TestIDArg(t *testing.T) {
	if err := idArg(nil); err == nil {
		t.Fatal("expected error for missing id")
	}
	if err := idArg([]string{"abc"}); err == nil {
		t.Fatal("expected error for non-integer id")
	}
	if err := idArg([]string{"42"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := parseID([]string{"42"}); got != 42 {
		t.Fatalf("parseID=%d", got)
	}
}

package ui

import (
	"fmt"
	"testing"

	"questboard/internal/engine"
)

func TestCompletionMessage(t *testing.T) {
	got := CompletionMessage(&engine.RewardResult{XPAwarded: 25, GoldAwarded: 15, LevelAfter: 1})
	if got != "Quest Complete! +25 XP, +15 Gold" {
		t.Fatalf("message=%q", got)
	}
	got = CompletionMessage(&engine.RewardResult{LevelUp: true, LevelAfter: 2})
	if got != "LEVEL UP! You are now level 2!" {
		t.Fatalf("message=%q", got)
	}
}

func TestErrorMessage(t *testing.T) {
	err := fmt.Errorf("buy: %w", engine.InsufficientFundsError{Cost: 50, Gold: 30})
	if got := ErrorMessage(err); got != "Not enough gold! Need 20 more." {
		t.Fatalf("message=%q", got)
	}
	if got := ErrorMessage(engine.EligibilityError{QuestID: 1}); got != "Already completed today! Come back tomorrow." {
		t.Fatalf("message=%q", got)
	}
}

func TestNumber(t *testing.T) {
	if got := Number(1234567); got != "1,234,567" {
		t.Fatalf("Number=%q", got)
	}
}

func TestProgressBar(t *testing.T) {
	if got := ProgressBar(15, 120, 8); got != "[#-------]" {
		t.Fatalf("bar=%q", got)
	}
	if got := ProgressBar(500, 100, 4); got != "[####]" {
		t.Fatalf("bar=%q", got)
	}
}

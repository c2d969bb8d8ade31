package engine

import (
	"strings"
	"time"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyBoss   Difficulty = "boss"
)

// Difficulties lists every difficulty in ascending reward order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyBoss}

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyBoss:
		return true
	default:
		return false
	}
}

// ParseDifficulty parses user input; matching is case-insensitive.
func ParseDifficulty(input string) (Difficulty, error) {
	d := Difficulty(strings.TrimSpace(strings.ToLower(input)))
	if !d.IsValid() {
		return "", UnknownDifficultyError{Difficulty: input}
	}
	return d, nil
}

// DifficultyReward is the fixed payout for completing a quest of one difficulty.
type DifficultyReward struct {
	XP   int
	Gold int
}

// DifficultySettings is static configuration and is never persisted.
var DifficultySettings = map[Difficulty]DifficultyReward{
	DifficultyEasy:   {XP: 10, Gold: 5},
	DifficultyMedium: {XP: 25, Gold: 15},
	DifficultyHard:   {XP: 50, Gold: 30},
	DifficultyBoss:   {XP: 100, Gold: 100},
}

// RewardFor looks up the payout for d.
func RewardFor(d Difficulty) (DifficultyReward, error) {
	r, ok := DifficultySettings[d]
	if !ok {
		return DifficultyReward{}, UnknownDifficultyError{Difficulty: string(d)}
	}
	return r, nil
}

type UserStats struct {
	Level         int `json:"level"`
	XP            int `json:"xp"`
	Gold          int `json:"gold"`
	XPToNextLevel int `json:"xpToNextLevel"`
}

// DefaultUserStats is the starting point of a fresh board.
func DefaultUserStats() UserStats {
	return UserStats{Level: 1, XP: 0, Gold: 0, XPToNextLevel: 100}
}

// Quest is a one-time task. Completed quests are removed, so Completed stays false.
type Quest struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Difficulty Difficulty `json:"difficulty"`
	Completed  bool       `json:"completed"`
}

type DailyQuest struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Difficulty    Difficulty `json:"difficulty"`
	LastCompleted *time.Time `json:"lastCompleted"`
}

type Reward struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Cost int    `json:"cost"`
}

type ActionType string

const (
	ActionCompleted      ActionType = "completed"
	ActionDailyCompleted ActionType = "daily_completed"
	ActionAbandoned      ActionType = "abandoned"
	ActionPurchased      ActionType = "purchased"
)

// HistoryRewards is {xp, gold} for earning events and {cost} for purchases.
type HistoryRewards struct {
	XP   int  `json:"xp,omitempty"`
	Gold int  `json:"gold,omitempty"`
	Cost *int `json:"cost,omitempty"`
}

func earned(r DifficultyReward) *HistoryRewards {
	return &HistoryRewards{XP: r.XP, Gold: r.Gold}
}

func spent(cost int) *HistoryRewards {
	return &HistoryRewards{Cost: &cost}
}

type HistoryEntry struct {
	ID         int64           `json:"id"`
	Title      string          `json:"title"`
	ActionType ActionType      `json:"actionType"`
	Date       time.Time       `json:"date"`
	Rewards    *HistoryRewards `json:"rewards"`
}

// RewardResult is returned by quest and daily completion for user notification.
type RewardResult struct {
	QuestID     int64
	Title       string
	XPAwarded   int
	GoldAwarded int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	Stats       UserStats
}

type PurchaseResult struct {
	RewardID   int64
	Name       string
	Cost       int
	GoldBefore int
	Stats      UserStats
}

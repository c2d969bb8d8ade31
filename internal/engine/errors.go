package engine

import "fmt"

// ValidationError reports empty or out-of-range user input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// NotFoundError reports an operation on an id that does not exist.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// EligibilityError is returned when a daily quest was already completed today.
type EligibilityError struct {
	QuestID int64
	Reason  string
}

func (e EligibilityError) Error() string {
	return fmt.Sprintf("daily %d: %s", e.QuestID, e.Reason)
}

// InsufficientFundsError is returned when a purchase costs more than the balance.
type InsufficientFundsError struct {
	RewardID int64
	Cost     int
	Gold     int
}

// Shortfall is how much more gold the purchase needs.
func (e InsufficientFundsError) Shortfall() int {
	return e.Cost - e.Gold
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("not enough gold: need %d more", e.Shortfall())
}

type UnknownDifficultyError struct {
	Difficulty string
}

func (e UnknownDifficultyError) Error() string {
	return fmt.Sprintf("unknown difficulty: %q", e.Difficulty)
}

package engine

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

// State is the whole board. It is the unit that gets persisted.
type State struct {
	Tasks     []Quest      `json:"tasks"`
	Dailies   []DailyQuest `json:"dailies"`
	Rewards   []Reward     `json:"rewards"`
	UserStats UserStats    `json:"userStats"`
	History   History      `json:"history"`
}

// DefaultState returns the seed board used when nothing has been saved yet.
func DefaultState() State {
	return State{
		Tasks: []Quest{},
		Dailies: []DailyQuest{
			{ID: 999, Title: "Study DSA (1 hr)", Difficulty: DifficultyHard},
		},
		Rewards: []Reward{
			{ID: 1, Name: "15 Min Break", Cost: 30},
			{ID: 2, Name: "Watch 1 Episode", Cost: 100},
			{ID: 3, Name: "Buy a Snack", Cost: 50},
		},
		UserStats: DefaultUserStats(),
		History:   History{},
	}
}

// Clone returns a copy that shares no slices with st.
func (st State) Clone() State {
	return State{
		Tasks:     slices.Clone(st.Tasks),
		Dailies:   slices.Clone(st.Dailies),
		Rewards:   slices.Clone(st.Rewards),
		UserStats: st.UserStats,
		History:   slices.Clone(st.History),
	}
}

func (st *State) normalize() {
	if st.Tasks == nil {
		st.Tasks = []Quest{}
	}
	if st.Dailies == nil {
		st.Dailies = []DailyQuest{}
	}
	if st.Rewards == nil {
		st.Rewards = []Reward{}
	}
	if st.History == nil {
		st.History = History{}
	}
	st.History = st.History.truncate()
}

// UnmarshalJSON fills anything missing from a snapshot with defaults.
func (st *State) UnmarshalJSON(data []byte) error {
	var w struct {
		Tasks     []Quest      `json:"tasks"`
		Dailies   []DailyQuest `json:"dailies"`
		Rewards   []Reward     `json:"rewards"`
		UserStats *UserStats   `json:"userStats"`
		History   History      `json:"history"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*st = State{
		Tasks:     w.Tasks,
		Dailies:   w.Dailies,
		Rewards:   w.Rewards,
		UserStats: DefaultUserStats(),
		History:   w.History,
	}
	if w.UserStats != nil {
		st.UserStats = *w.UserStats
	}
	st.normalize()
	return nil
}

// EncodeState serializes the snapshot stored under the state key.
func EncodeState(st State) ([]byte, error) {
	st.normalize()
	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

func DecodeState(data []byte) (State, error) {
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("decode state: %w", err)
	}
	return st, nil
}

// maxID is the largest id in use anywhere on the board.
func (st State) maxID() int64 {
	var hi int64
	for _, q := range st.Tasks {
		hi = max(hi, q.ID)
	}
	for _, d := range st.Dailies {
		hi = max(hi, d.ID)
	}
	for _, r := range st.Rewards {
		hi = max(hi, r.ID)
	}
	for _, h := range st.History {
		hi = max(hi, h.ID)
	}
	return hi
}

// stamp is how event times are stored: UTC with millisecond precision.
func stamp(now time.Time) time.Time {
	return now.UTC().Truncate(time.Millisecond)
}

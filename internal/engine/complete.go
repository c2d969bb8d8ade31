package engine

import (
	"slices"
	"time"
)

func (st *State) findQuest(id int64) int {
	return slices.IndexFunc(st.Tasks, func(q Quest) bool { return q.ID == id })
}

func (st *State) findDaily(id int64) int {
	return slices.IndexFunc(st.Dailies, func(d DailyQuest) bool { return d.ID == id })
}

// reward applies the payout for d and logs it. Nothing is written on error.
func (st *State) reward(questID int64, title string, d Difficulty, action ActionType, now time.Time, entryID int64) (*RewardResult, error) {
	payout, err := RewardFor(d)
	if err != nil {
		return nil, err
	}
	before := st.UserStats
	after, levelUp, err := ApplyReward(before, d)
	if err != nil {
		return nil, err
	}

	st.UserStats = after
	st.History = st.History.Append(HistoryEntry{
		ID:         entryID,
		Title:      title,
		ActionType: action,
		Date:       stamp(now),
		Rewards:    earned(payout),
	})

	return &RewardResult{
		QuestID:     questID,
		Title:       title,
		XPAwarded:   payout.XP,
		GoldAwarded: payout.Gold,
		LevelBefore: before.Level,
		LevelAfter:  after.Level,
		LevelUp:     levelUp,
		Stats:       after,
	}, nil
}

// CompleteQuest pays out a one-time quest and removes it.
func (st *State) CompleteQuest(id int64, now time.Time, entryID int64) (*RewardResult, error) {
	i := st.findQuest(id)
	if i < 0 {
		return nil, NotFoundError{Kind: "quest", ID: id}
	}
	q := st.Tasks[i]

	res, err := st.reward(q.ID, q.Title, q.Difficulty, ActionCompleted, now, entryID)
	if err != nil {
		return nil, err
	}
	st.Tasks = slices.Delete(st.Tasks, i, i+1)
	return res, nil
}

// CompleteDaily pays out a daily quest at most once per calendar day.
func (st *State) CompleteDaily(id int64, now time.Time, entryID int64) (*RewardResult, error) {
	i := st.findDaily(id)
	if i < 0 {
		return nil, NotFoundError{Kind: "daily", ID: id}
	}
	d := st.Dailies[i]
	if IsDailyCompleted(d.LastCompleted, now) {
		return nil, EligibilityError{QuestID: id, Reason: "already completed today"}
	}

	res, err := st.reward(d.ID, d.Title, d.Difficulty, ActionDailyCompleted, now, entryID)
	if err != nil {
		return nil, err
	}
	at := stamp(now)
	st.Dailies[i].LastCompleted = &at
	return res, nil
}

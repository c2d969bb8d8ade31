package engine

import (
	"slices"
	"time"
)

// AbandonQuest drops a one-time quest without reward. Unknown ids are a
// no-op and report false.
func (st *State) AbandonQuest(id int64, now time.Time, entryID int64) bool {
	i := st.findQuest(id)
	if i < 0 {
		return false
	}
	q := st.Tasks[i]
	st.History = st.History.Append(HistoryEntry{
		ID:         entryID,
		Title:      q.Title,
		ActionType: ActionAbandoned,
		Date:       stamp(now),
	})
	st.Tasks = slices.Delete(st.Tasks, i, i+1)
	return true
}

// DeleteDaily removes a daily quest permanently. Unknown ids are a no-op.
func (st *State) DeleteDaily(id int64, now time.Time, entryID int64) bool {
	i := st.findDaily(id)
	if i < 0 {
		return false
	}
	d := st.Dailies[i]
	st.History = st.History.Append(HistoryEntry{
		ID:         entryID,
		Title:      d.Title,
		ActionType: ActionAbandoned,
		Date:       stamp(now),
	})
	st.Dailies = slices.Delete(st.Dailies, i, i+1)
	return true
}

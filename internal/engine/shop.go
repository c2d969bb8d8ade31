package engine

import (
	"slices"
	"time"
)

func (st *State) findReward(id int64) int {
	return slices.IndexFunc(st.Rewards, func(r Reward) bool { return r.ID == id })
}

// AddReward appends a purchasable reward. Negative costs are rejected.
func (st *State) AddReward(id int64, name string, cost int) error {
	n, err := normalizeTitle("name", name)
	if err != nil {
		return err
	}
	if cost < 0 {
		return ValidationError{Field: "cost", Reason: "must not be negative"}
	}
	st.Rewards = append(st.Rewards, Reward{ID: id, Name: n, Cost: cost})
	return nil
}

// RemoveReward deletes a reward from the shop. Removal is not logged.
func (st *State) RemoveReward(id int64) bool {
	i := st.findReward(id)
	if i < 0 {
		return false
	}
	st.Rewards = slices.Delete(st.Rewards, i, i+1)
	return true
}

// Purchase spends gold on a reward. The reward stays in the shop.
func (st *State) Purchase(id int64, now time.Time, entryID int64) (*PurchaseResult, error) {
	i := st.findReward(id)
	if i < 0 {
		return nil, NotFoundError{Kind: "reward", ID: id}
	}
	r := st.Rewards[i]
	gold := st.UserStats.Gold
	if gold < r.Cost {
		return nil, InsufficientFundsError{RewardID: id, Cost: r.Cost, Gold: gold}
	}

	st.UserStats.Gold = gold - r.Cost
	st.History = st.History.Append(HistoryEntry{
		ID:         entryID,
		Title:      r.Name,
		ActionType: ActionPurchased,
		Date:       stamp(now),
		Rewards:    spent(r.Cost),
	})

	return &PurchaseResult{
		RewardID:   r.ID,
		Name:       r.Name,
		Cost:       r.Cost,
		GoldBefore: gold,
		Stats:      st.UserStats,
	}, nil
}

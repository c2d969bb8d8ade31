package engine

import "strings"

func normalizeTitle(field, title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", ValidationError{Field: field, Reason: "is required"}
	}
	return t, nil
}

// AddQuest creates a one-time quest at the top of the list, or a daily quest
// at the end of the daily list when recurring is set.
func (st *State) AddQuest(id int64, title string, d Difficulty, recurring bool) error {
	t, err := normalizeTitle("title", title)
	if err != nil {
		return err
	}
	if !d.IsValid() {
		return UnknownDifficultyError{Difficulty: string(d)}
	}

	if recurring {
		st.Dailies = append(st.Dailies, DailyQuest{ID: id, Title: t, Difficulty: d})
		return nil
	}
	st.Tasks = append([]Quest{{ID: id, Title: t, Difficulty: d}}, st.Tasks...)
	return nil
}

package tui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"questboard/internal/engine"
	"questboard/internal/ui"
)

type tab int

const (
	tabQuests tab = iota
	tabDailies
	tabShop
	tabHistory
	tabCount
)

var tabNames = [tabCount]string{"Quests", "Dailies", "Shop", "History"}

// noteTTL is how long a notification stays on screen.
const noteTTL = 3 * time.Second

type noteKind int

const (
	noteSuccess noteKind = iota
	noteLevelUp
	noteError
)

type notification struct {
	text string
	kind noteKind
}

type dismissMsg struct {
	seq int
}

// boardModel calls the service synchronously from Update so the board state
// only ever has one writer.
type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	tab      tab
	selected [tabCount]int

	note    *notification
	noteSeq int
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{ctx: ctx, svc: svc}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) notify(text string, kind noteKind) (boardModel, tea.Cmd) {
	m.noteSeq++
	m.note = &notification{text: text, kind: kind}
	seq := m.noteSeq
	return m, tea.Tick(noteTTL, func(time.Time) tea.Msg { return dismissMsg{seq: seq} })
}

func (m boardModel) fail(err error) (boardModel, tea.Cmd) {
	log.Printf("board action failed: %v", err)
	return m.notify(ui.ErrorMessage(err), noteError)
}

func (m boardModel) rowCount() int {
	st := m.svc.State()
	switch m.tab {
	case tabQuests:
		return len(st.Tasks)
	case tabDailies:
		return len(st.Dailies)
	case tabShop:
		return len(st.Rewards)
	default:
		return len(st.History)
	}
}

func (m *boardModel) clampSelection() {
	n := m.rowCount()
	if m.selected[m.tab] >= n {
		m.selected[m.tab] = n - 1
	}
	if m.selected[m.tab] < 0 {
		m.selected[m.tab] = 0
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case dismissMsg:
		if msg.seq == m.noteSeq {
			m.note = nil
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab", "right", "l":
			m.tab = (m.tab + 1) % tabCount
			return m, nil
		case "shift+tab", "left", "h":
			m.tab = (m.tab + tabCount - 1) % tabCount
			return m, nil
		case "1", "2", "3", "4":
			m.tab = tab(msg.String()[0] - '1')
			return m, nil
		case "up", "k":
			if m.selected[m.tab] > 0 {
				m.selected[m.tab]--
			}
			return m, nil
		case "down", "j":
			if m.selected[m.tab] < m.rowCount()-1 {
				m.selected[m.tab]++
			}
			return m, nil
		case "c", " ", "enter":
			var cmd tea.Cmd
			m, cmd = m.activate()
			m.clampSelection()
			return m, cmd
		case "x", "d":
			var cmd tea.Cmd
			m, cmd = m.remove()
			m.clampSelection()
			return m, cmd
		}
	}
	return m, nil
}

// activate completes the selected quest or daily, or buys the selected reward.
func (m boardModel) activate() (boardModel, tea.Cmd) {
	st := m.svc.State()
	i := m.selected[m.tab]
	switch m.tab {
	case tabQuests:
		if i >= len(st.Tasks) {
			return m, nil
		}
		res, err := m.svc.CompleteQuest(m.ctx, st.Tasks[i].ID)
		if err != nil {
			return m.fail(err)
		}
		return m.notifyReward(res)
	case tabDailies:
		if i >= len(st.Dailies) {
			return m, nil
		}
		res, err := m.svc.CompleteDaily(m.ctx, st.Dailies[i].ID)
		if err != nil {
			return m.fail(err)
		}
		return m.notifyReward(res)
	case tabShop:
		if i >= len(st.Rewards) {
			return m, nil
		}
		res, err := m.svc.Purchase(m.ctx, st.Rewards[i].ID)
		if err != nil {
			return m.fail(err)
		}
		return m.notify("Purchased: "+res.Name, noteSuccess)
	}
	return m, nil
}

func (m boardModel) notifyReward(res *engine.RewardResult) (boardModel, tea.Cmd) {
	kind := noteSuccess
	if res.LevelUp {
		kind = noteLevelUp
	}
	return m.notify(ui.CompletionMessage(res), kind)
}

// remove abandons the selected quest or daily, or takes a reward off the shelf.
func (m boardModel) remove() (boardModel, tea.Cmd) {
	st := m.svc.State()
	i := m.selected[m.tab]
	var err error
	switch m.tab {
	case tabQuests:
		if i >= len(st.Tasks) {
			return m, nil
		}
		err = m.svc.AbandonQuest(m.ctx, st.Tasks[i].ID)
	case tabDailies:
		if i >= len(st.Dailies) {
			return m, nil
		}
		err = m.svc.DeleteDaily(m.ctx, st.Dailies[i].ID)
	case tabShop:
		if i >= len(st.Rewards) {
			return m, nil
		}
		err = m.svc.RemoveReward(m.ctx, st.Rewards[i].ID)
	default:
		return m, nil
	}
	if err != nil {
		return m.fail(err)
	}
	return m, nil
}

func (m boardModel) View() string {
	st := m.svc.State()
	var b strings.Builder
	b.WriteString(m.renderHeader(st.UserStats))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.tab {
	case tabQuests:
		b.WriteString(m.renderQuests(st))
	case tabDailies:
		b.WriteString(m.renderDailies(st))
	case tabShop:
		b.WriteString(m.renderShop(st))
	case tabHistory:
		b.WriteString(m.renderHistory(st))
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m boardModel) renderHeader(s engine.UserStats) string {
	bar := ui.ProgressBar(s.XP, s.XPToNextLevel, 30)
	return fmt.Sprintf("%s | Level %d | %s %d/%d XP | %s %s",
		ui.Heading(ui.IconQuest, "Quest Board"), s.Level, bar, s.XP, s.XPToNextLevel, ui.IconCoin, ui.GoldAmount(s.Gold))
}

func (m boardModel) renderTabs() string {
	parts := make([]string, 0, tabCount)
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if tab(i) == m.tab {
			parts = append(parts, ui.ActiveTab.Render(label))
		} else {
			parts = append(parts, ui.InactiveTab.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (m boardModel) row(i int, text string) string {
	if i == m.selected[m.tab] {
		return ui.SelectedRow.Render("> "+text) + "\n"
	}
	return "  " + text + "\n"
}

func (m boardModel) renderQuests(st engine.State) string {
	if len(st.Tasks) == 0 {
		return ui.Muted.Render("No active quests. Add one with `qb add`.") + "\n"
	}
	var b strings.Builder
	for i, q := range st.Tasks {
		r := engine.DifficultySettings[q.Difficulty]
		b.WriteString(m.row(i, fmt.Sprintf("%s  %s  +%d XP +%d G", q.Title, ui.DifficultyBadge(q.Difficulty), r.XP, r.Gold)))
	}
	return b.String()
}

func (m boardModel) renderDailies(st engine.State) string {
	if len(st.Dailies) == 0 {
		return ui.Muted.Render("No daily quests.") + "\n"
	}
	now := m.svc.Now()
	var b strings.Builder
	for i, d := range st.Dailies {
		status := ui.Warn.Render("ready")
		if engine.IsDailyCompleted(d.LastCompleted, now) {
			status = ui.Good.Render(ui.IconDone + " done today")
		}
		b.WriteString(m.row(i, fmt.Sprintf("%s  %s  %s", d.Title, ui.DifficultyBadge(d.Difficulty), status)))
	}
	return b.String()
}

func (m boardModel) renderShop(st engine.State) string {
	if len(st.Rewards) == 0 {
		return ui.Muted.Render("The shop is empty. Add a reward with `qb shop add`.") + "\n"
	}
	var b strings.Builder
	for i, r := range st.Rewards {
		cost := ui.GoldAmount(r.Cost)
		if st.UserStats.Gold < r.Cost {
			cost = ui.Muted.Render(ui.Number(r.Cost) + " G")
		}
		b.WriteString(m.row(i, fmt.Sprintf("%s  %s", r.Name, cost)))
	}
	return b.String()
}

func (m boardModel) renderHistory(st engine.State) string {
	if len(st.History) == 0 {
		return ui.Muted.Render("No history yet. Start completing quests!") + "\n"
	}
	var b strings.Builder
	for i, e := range st.History {
		b.WriteString(m.row(i, fmt.Sprintf("%s  %s  %s  %s", ui.Muted.Render(ui.HistoryDate(e.Date)), ui.ActionText(e.ActionType), e.Title, ui.RewardsText(e.Rewards))))
	}
	return b.String()
}

func (m boardModel) renderFooter() string {
	keys := ui.Muted.Render("tab/1-4: switch  ↑/↓: move  c/enter: complete/buy  x: abandon/remove  q: quit")
	if m.note == nil {
		return keys
	}
	var msg string
	switch m.note.kind {
	case noteLevelUp:
		msg = ui.BadgeLevelUp + " " + ui.Gold.Render(m.note.text)
	case noteError:
		msg = ui.Bad.Render(ui.IconWarn + " " + m.note.text)
	default:
		msg = ui.Good.Render(ui.IconSparkle + " " + m.note.text)
	}
	return msg + "\n" + keys
}

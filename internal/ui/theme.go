package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"questboard/internal/engine"
)

// Quest Board theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconQuest   = "🗺️"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconLoop    = "🔁"
	IconScroll  = "📜"
	IconCoin    = "🪙"
	IconShop    = "🛒"
	IconFlag    = "🏳️"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cViolet  = lipgloss.Color("135")
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
	ActiveTab   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(cViolet).Padding(0, 1)
	InactiveTab = lipgloss.NewStyle().Foreground(cMuted).Padding(0, 1)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

// difficultyStyle holds presentation-only attributes; rewards live in engine.
type difficultyStyle struct {
	label string
	style lipgloss.Style
}

var difficultyStyles = map[engine.Difficulty]difficultyStyle{
	engine.DifficultyEasy:   {label: "Easy", style: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("48"))},
	engine.DifficultyMedium: {label: "Medium", style: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))},
	engine.DifficultyHard:   {label: "Hard", style: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("204"))},
	engine.DifficultyBoss:   {label: "Boss", style: lipgloss.NewStyle().Bold(true).Foreground(cViolet)},
}

// DifficultyBadge renders a coloured difficulty label.
func DifficultyBadge(d engine.Difficulty) string {
	s, ok := difficultyStyles[d]
	if !ok {
		return Muted.Render(string(d))
	}
	return s.style.Render(s.label)
}

var printer = message.NewPrinter(language.English)

// Number formats n with thousands separators.
func Number(n int) string {
	return printer.Sprintf("%d", n)
}

func GoldAmount(n int) string {
	return Gold.Render(Number(n) + " G")
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// ProgressBar renders value/total as a fixed-width bar.
func ProgressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := value * width / total
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// HistoryDate formats an entry date as local date plus HH:MM.
func HistoryDate(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

func ActionText(a engine.ActionType) string {
	switch a {
	case engine.ActionCompleted:
		return Good.Render(IconDone + " completed")
	case engine.ActionDailyCompleted:
		return Good.Render(IconLoop + " daily")
	case engine.ActionAbandoned:
		return Bad.Render(IconFlag + " abandoned")
	case engine.ActionPurchased:
		return Gold.Render(IconShop + " purchased")
	default:
		return Muted.Render(string(a))
	}
}

// RewardsText renders the earned or spent amounts of a history entry.
func RewardsText(r *engine.HistoryRewards) string {
	switch {
	case r == nil:
		return ""
	case r.Cost != nil:
		return Bad.Render(fmt.Sprintf("-%s G", Number(*r.Cost)))
	default:
		return fmt.Sprintf("%s %s", Gold.Render(fmt.Sprintf("+%s G", Number(r.Gold))), Key.Render(fmt.Sprintf("+%s XP", Number(r.XP))))
	}
}

// CompletionMessage is the notification shown after a quest pays out.
func CompletionMessage(res *engine.RewardResult) string {
	if res.LevelUp {
		return fmt.Sprintf("LEVEL UP! You are now level %d!", res.LevelAfter)
	}
	return fmt.Sprintf("Quest Complete! +%d XP, +%d Gold", res.XPAwarded, res.GoldAwarded)
}

// ErrorMessage turns core errors into the wording shown to the player.
func ErrorMessage(err error) string {
	var ee engine.EligibilityError
	if errors.As(err, &ee) {
		return "Already completed today! Come back tomorrow."
	}
	var ife engine.InsufficientFundsError
	if errors.As(err, &ife) {
		return fmt.Sprintf("Not enough gold! Need %d more.", ife.Shortfall())
	}
	return err.Error()
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colorbot/internal/quiz"
	"github.com/vovakirdan/colorbot/internal/wheel"
)

// cardColors maps card colors to terminal colors (ANSI 256).
var cardColors = map[wheel.Color]lipgloss.Color{
	wheel.Yellow: lipgloss.Color("11"),
	wheel.Green:  lipgloss.Color("10"),
	wheel.Blue:   lipgloss.Color("12"),
	wheel.Purple: lipgloss.Color("129"),
	wheel.Red:    lipgloss.Color("9"),
	wheel.Orange: lipgloss.Color("208"),
}

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	styleSubtle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	styleBubble = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	styleSpinner = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	styleGood    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// cardStyle returns the swatch style for a card.
func cardStyle(c wheel.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(cardColors[c]).
		Padding(0, 1)
}

// RenderCard draws a single colored card label.
func RenderCard(c wheel.Color) string {
	return cardStyle(c).Render(c.String())
}

// RenderCardRow draws the six cards with their number keys.
func RenderCardRow() string {
	cards := make([]string, 0, len(wheel.Wheel))
	for i, c := range wheel.Wheel {
		label := fmt.Sprintf("%d %s", i+1, c)
		cards = append(cards, cardStyle(c).Render(label))
	}
	return strings.Join(cards, " ")
}

// RenderStats draws a one-line summary of session stats.
func RenderStats(s quiz.Stats) string {
	return fmt.Sprintf("Rounds %d  ·  Found %d  ·  Timed out %d  ·  Hints %d  ·  Wrong cards %d",
		s.Rounds, s.Found, s.TimedOut, s.Hints, s.Misses)
}

// RenderTally draws the session totals followed by one line per mode played.
func RenderTally(t *quiz.Tally) string {
	lines := []string{RenderStats(t.Total())}
	for _, info := range quiz.List() {
		s := t.ByMode(info.Mode)
		if s.Rounds == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %s: found %d of %d, timed out %d, hints %d, wrong cards %d",
			info.Title, s.Found, s.Rounds, s.TimedOut, s.Hints, s.Misses))
	}
	return strings.Join(lines, "\n")
}

// modeTitle returns the display name for a mode.
func modeTitle(m quiz.Mode) string {
	gen, err := quiz.Create(m)
	if err != nil {
		return string(m)
	}
	return gen.Title()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	header := styleTitle.Render("colorbot") + "  " + styleSubtle.Render(modeTitle(m.round.Mode))
	if m.runtime.Player != "" {
		header += styleSubtle.Render("  ·  " + m.runtime.Player)
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	speech := string(m.speech[:m.revealed])
	if speech == "" {
		speech = "..."
	}
	bubbleWidth := max(20, min(60, m.runtime.ScreenW-4))
	b.WriteString(styleBubble.Width(bubbleWidth).Render(speech))
	b.WriteString("\n\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(styleWarn.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(RenderCardRow())
	b.WriteString("\n")
	if m.lastCard != nil {
		b.WriteString(styleSubtle.Render("You are holding: "))
		b.WriteString(RenderCard(*m.lastCard))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styleSubtle.Render(RenderTally(m.tally)))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keyMapper.Keys()))

	return b.String()
}

// statusLine describes what the robot is doing.
func (m Model) statusLine() string {
	switch m.status {
	case statusSpeaking:
		return styleSubtle.Render("The robot is talking...")
	case statusSearching:
		return m.spinner.View() + " Looking for the answer. Show the robot a card!"
	case statusHint:
		return m.spinner.View() + " Hint time!"
	case statusFound:
		return styleGood.Render("Found it! ") + RenderCard(m.round.Target)
	case statusDone:
		switch {
		case m.err != nil:
			return styleError.Render("Something went wrong: " + m.err.Error())
		case m.outcome.Found:
			return styleGood.Render("Found it! ") + RenderCard(m.round.Target) +
				styleSubtle.Render("  Press n for another question.")
		case m.outcome.TimedOut:
			return styleWarn.Render("The answer was ") + RenderCard(m.round.Target) +
				styleSubtle.Render("  Press n for another question.")
		default:
			return styleSubtle.Render("Round over. Press n for another question.")
		}
	}
	return ""
}

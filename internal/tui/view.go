package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tanmayb/wordgym/internal/session"
	"github.com/tanmayb/wordgym/internal/word"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var content string
	switch m.snap.Phase {
	case session.PhaseInitializing, session.PhaseGeneratingFirst:
		content = m.renderWaiting("Warming up...")
	case session.PhasePrefetching:
		content = m.renderWaiting("Fetching the next question...")
	case session.PhaseError:
		content = m.renderError()
	case session.PhaseComplete:
		content = m.renderSummary()
	case session.PhaseReady:
		content = m.renderQuestion()
	}

	frame := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		content,
		m.renderFooter(),
	)
	v.SetContent(lipgloss.NewStyle().Width(m.width).Render(frame))
	return v
}

func (m Model) renderHeader() string {
	left := titleStyle.Render("  wordgym")
	right := dimStyle.Render(fmt.Sprintf("Q %d/%d  score %d  ", m.snap.Index+1, m.snap.Total, m.snap.Score))
	if m.snap.Streak > 1 {
		right = streakStyle.Render(fmt.Sprintf("%dx streak  ", m.snap.Streak)) + right
	}

	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right + "\n"
}

func (m Model) renderFooter() string {
	var hints []string
	switch {
	case m.snap.Phase == session.PhaseError:
		hints = []string{"r retry", "ctrl+n restart", "esc quit"}
	case m.snap.Phase == session.PhaseComplete:
		hints = []string{"r play again", "enter quit"}
	case m.snap.Submitted:
		hints = []string{"enter next", "esc quit"}
	case m.variant == word.VariantSpelling:
		hints = []string{"enter check", "ctrl+s skip"}
		if m.snap.Attempts >= 3 {
			hints = append(hints, "ctrl+r reveal")
		}
		hints = append(hints, "esc quit")
	default:
		hints = []string{"1-4 choose", "enter submit", "s skip", "esc quit"}
	}
	return "\n" + hintStyle.Render("  "+strings.Join(hints, "  ·  "))
}

func (m Model) renderWaiting(msg string) string {
	return "\n\n" + dimStyle.Render("  "+msg)
}

func (m Model) renderError() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(incorrectStyle.Render("  Something went wrong"))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("  " + m.snap.Message))
	return b.String()
}

func (m Model) renderSummary() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  Session complete!"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Score          %d\n", m.snap.Score))
	b.WriteString(fmt.Sprintf("  Correct        %d of %d\n", m.snap.CorrectCount, m.snap.Played))
	b.WriteString(fmt.Sprintf("  Best streak    %d\n", m.snap.BestStreak))
	return b.String()
}

func (m Model) renderQuestion() string {
	q := m.snap.Question
	if q == nil {
		return m.renderWaiting("Generating question...")
	}

	var b strings.Builder
	b.WriteString("\n")

	prompt := promptStyle.Width(min(m.width-4, 72)).Render(q.Prompt)
	b.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(prompt))
	b.WriteString("\n\n")

	if m.variant == word.VariantSpelling {
		b.WriteString(m.renderSpellingBody())
	} else {
		b.WriteString(m.renderOptions())
	}

	if m.snap.Submitted {
		b.WriteString("\n")
		if m.snap.LastCorrect {
			b.WriteString(correctStyle.Render("  Correct!"))
		} else {
			b.WriteString(incorrectStyle.Render("  Not quite.") +
				dimStyle.Render("  The answer was: "+q.Answer))
		}
	}
	return b.String()
}

func (m Model) renderOptions() string {
	var b strings.Builder
	for i, opt := range m.snap.Question.Options {
		marker := "  "
		style := optionStyle
		switch {
		case m.snap.Submitted && i == m.snap.CorrectIndex:
			marker = "✓ "
			style = correctStyle
		case m.snap.Submitted && i == m.snap.Selected:
			marker = "✗ "
			style = incorrectStyle
		case i == m.snap.Selected:
			marker = "> "
			style = selectedStyle
		}
		b.WriteString(fmt.Sprintf("  %s%s\n", marker, style.Render(fmt.Sprintf("%d. %s", i+1, opt.Text))))

		if m.snap.Submitted && opt.Explanation != "" && (i == m.snap.CorrectIndex || i == m.snap.Selected) {
			b.WriteString(hintStyle.Render("       " + opt.Explanation))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderSpellingBody() string {
	var b strings.Builder
	b.WriteString("  " + m.input.View())
	b.WriteString("\n")
	if m.snap.Attempts > 0 && !m.snap.Submitted {
		b.WriteString(dimStyle.Render(fmt.Sprintf("\n  attempt %d", m.snap.Attempts+1)))
		b.WriteString("\n")
	}
	return b.String()
}

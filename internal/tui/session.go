// Package tui renders a quiz session in the terminal. The Model is a thin
// view over the engine: every engine transition arrives as a snapshot
// message, and key presses map one-to-one onto engine inputs.
package tui

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/tanmayb/wordgym/internal/session"
	"github.com/tanmayb/wordgym/internal/word"
)

// snapshotMsg carries one engine snapshot into the Bubble Tea loop.
type snapshotMsg struct {
	snap session.Snapshot
}

// engineDoneMsg fires when the engine's Done channel closes.
type engineDoneMsg struct{}

// Model is the root Bubble Tea model for a quiz session.
type Model struct {
	engine  *session.Session
	variant word.Variant

	snap  session.Snapshot
	input textinput.Model

	// shownWord tracks which item the text input was last reset for.
	shownWord string

	width    int
	height   int
	quitting bool
}

// NewModel creates the session view. Start must already have been called
// on the engine.
func NewModel(engine *session.Session, variant word.Variant) Model {
	ti := textinput.New()
	ti.Placeholder = "Type the word..."
	ti.CharLimit = 64
	ti.Focus()

	return Model{
		engine:  engine,
		variant: variant,
		snap:    engine.Snapshot(),
		input:   ti,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.listen(), m.awaitDone(), m.input.Focus())
}

// listen blocks on the engine's update channel and delivers the next
// snapshot. Re-issued after every receive.
func (m Model) listen() tea.Cmd {
	updates := m.engine.Updates()
	return func() tea.Msg {
		snap, ok := <-updates
		if !ok {
			return nil
		}
		return snapshotMsg{snap: snap}
	}
}

func (m Model) awaitDone() tea.Cmd {
	done := m.engine.Done()
	return func() tea.Msg {
		<-done
		return engineDoneMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case snapshotMsg:
		m.snap = msg.snap
		if m.snap.Question != nil && m.snap.Question.WordID != m.shownWord {
			m.shownWord = m.snap.Question.WordID
			m.input.Reset()
		}
		return m, m.listen()

	case engineDoneMsg:
		if m.quitting {
			return m, tea.Quit
		}
		// Completion: stay on the summary until the learner quits or
		// restarts.
		m.snap = m.engine.Snapshot()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.typingActive() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c", "esc":
		m.quitting = true
		m.engine.Dismiss()
		return m, tea.Quit
	}

	switch m.snap.Phase {
	case session.PhaseError:
		switch key {
		case "r":
			m.engine.Retry()
		case "ctrl+n":
			m.engine.RestartQuiz()
		}
		return m, nil

	case session.PhaseComplete:
		switch key {
		case "r":
			m.engine.RestartQuiz()
			return m, m.awaitDone()
		case "enter", "q":
			m.quitting = true
			m.engine.Dismiss()
			return m, tea.Quit
		}
		return m, nil

	case session.PhaseReady:
		if m.snap.Submitted {
			if key == "enter" || key == "n" {
				m.engine.NextItem()
			}
			return m, nil
		}
		if m.variant == word.VariantSpelling {
			return m.handleSpellingKey(msg)
		}
		return m.handleChoiceKey(key)
	}

	return m, nil
}

func (m Model) handleChoiceKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "1", "2", "3", "4":
		m.engine.SelectOption(int(key[0] - '1'))
	case "up", "k":
		if m.snap.Selected > 0 {
			m.engine.SelectOption(m.snap.Selected - 1)
		} else if m.snap.Selected < 0 {
			m.engine.SelectOption(0)
		}
	case "down", "j":
		m.engine.SelectOption(m.snap.Selected + 1)
	case "enter":
		m.engine.SubmitAnswer()
	case "s":
		m.engine.SkipItem()
	}
	return m, nil
}

func (m Model) handleSpellingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.input.Value() != "" {
			m.engine.SubmitTyped(m.input.Value())
			m.input.Reset()
		}
		return m, nil
	case "ctrl+s":
		m.engine.SkipItem()
		return m, nil
	case "ctrl+r":
		m.engine.RevealAnswer()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) typingActive() bool {
	return m.variant == word.VariantSpelling &&
		m.snap.Phase == session.PhaseReady &&
		!m.snap.Submitted
}

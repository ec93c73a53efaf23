package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 8 {
			m.input.Width = msg.Width - 8
		}
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			m.history = m.history.Push(m.input.Value(), m.preview.Err)
			m.recall = -1
			if m.preview.Err != nil {
				m.log.Debug("playground input rejected")
			}
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			return m.recallAt(m.recall + 1), nil
		case key.Matches(msg, m.keys.Next):
			return m.recallAt(m.recall - 1), nil
		case key.Matches(msg, m.keys.Toggle):
			m.showHTML = !m.showHTML
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.input.Reset()
			m.recall = -1
			m.preview = evaluate("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.preview = evaluate(m.input.Value())
	}
	return m, cmd
}

// recallAt loads the history entry back steps from the newest. Moving past
// the newest entry clears the input.
func (m Model) recallAt(back int) Model {
	if back < 0 {
		m.recall = -1
		m.input.Reset()
		m.preview = evaluate("")
		return m
	}
	entry, ok := m.history.At(back)
	if !ok {
		return m
	}
	m.recall = back
	m.input.SetValue(entry.Input)
	m.input.CursorEnd()
	m.preview = evaluate(entry.Input)
	return m
}

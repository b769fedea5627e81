package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrAborted is returned when the user leaves the welcome screen without confirming.
var ErrAborted = errors.New("aborted at welcome screen")

var promptStyle = dimStyle.MarginTop(1)

type welcomeModel struct {
	version   string
	confirmed bool
	aborted   bool
}

func (m welcomeModel) Init() tea.Cmd {
	return nil
}

func (m welcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyEnter:
		m.confirmed = true
		return m, tea.Quit
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	}

	if key.String() == "q" {
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m welcomeModel) View() string {
	if m.confirmed || m.aborted {
		return ""
	}
	return Banner(m.version) + promptStyle.Render("Hit enter.  (q to quit)") + "\n"
}

// Welcome shows the banner and waits for the user to hit enter.
func Welcome(version string) error {
	p := tea.NewProgram(welcomeModel{version: version}, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("welcome screen: %w", err)
	}
	if m, ok := final.(welcomeModel); ok && m.aborted {
		return ErrAborted
	}
	return nil
}

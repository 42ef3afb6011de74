package installer

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CorpusStep collects the path to the FAQ corpus CSV
type CorpusStep struct {
	input   textinput.Model
	warning string
}

func NewCorpusStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 60
	ti.Placeholder = "/path/to/BankFAQs.csv (Enter to use the runtime directory)"

	return &CorpusStep{
		input: ti,
	}
}

func (s *CorpusStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *CorpusStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			path := s.input.Value()
			if path == "" {
				return nil, nil
			}
			if _, err := os.Stat(path); err != nil {
				s.warning = fmt.Sprintf("cannot read %s, check the path", path)
				return s, nil
			}
			state.CorpusPath = path
			return nil, nil
		}
	}
	return s, cmd
}

func (s *CorpusStep) View(state *InstallState) string {
	view := "Where is your FAQ corpus CSV?\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
	if s.warning != "" {
		view += "\n" + errorStyle.Render(s.warning) + "\n"
	}
	return view
}

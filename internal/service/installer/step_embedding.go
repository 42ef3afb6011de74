package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type embedChoice struct {
	name         string
	defaultModel string
}

// EmbeddingStep selects the provider used to vectorize the FAQ corpus
type EmbeddingStep struct {
	choices []embedChoice
	cursor  int
}

func NewEmbeddingStep() Step {
	return &EmbeddingStep{
		choices: []embedChoice{
			{name: "Ollama", defaultModel: "nomic-embed-text"},
			{name: "OpenAI", defaultModel: "text-embedding-3-small"},
		},
		cursor: 0,
	}
}

func (s *EmbeddingStep) Init() tea.Cmd {
	return nil
}

func (s *EmbeddingStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			choice := s.choices[s.cursor]
			state.EmbedProvider = strings.ToLower(choice.name)
			state.EmbedModel = choice.defaultModel
			if state.EmbedProvider == "ollama" && state.OllamaBaseURL == "" {
				state.OllamaBaseURL = "http://localhost:11434"
			}
			return nil, nil
		}
	}
	return s, nil
}

func (s *EmbeddingStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Select your embedding provider:\n\n")
	for i, choice := range s.choices {
		cursor := " "
		if s.cursor == i {
			cursor = "❯"
			b.WriteString(selStyle.Render(fmt.Sprintf("%s %s (%s)", cursor, choice.name, choice.defaultModel)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("%s %s (%s)", cursor, choice.name, choice.defaultModel)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}

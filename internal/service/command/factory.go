package command

import (
	"github.com/sandevgo/bankassist/internal/core"
)

func NewCommands(assistant Assistant) []core.Command {
	return []core.Command{
		NewHistoryCommand(assistant),
		NewClearCommand(assistant),
	}
}

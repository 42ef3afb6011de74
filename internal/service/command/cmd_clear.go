package command

import (
	"context"
	"fmt"
)

type ClearCommand struct {
	assistant Assistant
	formatter *ResponseFormatter
}

func NewClearCommand(assistant Assistant) *ClearCommand {
	return &ClearCommand{
		assistant: assistant,
		formatter: NewResponseFormatter(),
	}
}

func (c *ClearCommand) Name() string {
	return "clear"
}

func (c *ClearCommand) Description() string {
	return "Forget your conversation history"
}

func (c *ClearCommand) Execute(ctx context.Context, userID string, args []string) (string, error) {
	if err := c.assistant.Clear(ctx, userID); err != nil {
		return "", fmt.Errorf("failed to clear history: %w", err)
	}
	return c.formatter.Success("Your conversation history was cleared"), nil
}

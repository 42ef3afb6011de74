package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sandevgo/bankassist/internal/core"
)

const defaultHistoryLimit = 10

// Assistant is the slice of the answer engine the chat commands need.
type Assistant interface {
	History(ctx context.Context, userID string, limit int) ([]core.ConversationTurn, error)
	Clear(ctx context.Context, userID string) error
}

type HistoryCommand struct {
	assistant Assistant
	formatter *ResponseFormatter
}

func NewHistoryCommand(assistant Assistant) *HistoryCommand {
	return &HistoryCommand{
		assistant: assistant,
		formatter: NewResponseFormatter(),
	}
}

func (c *HistoryCommand) Name() string {
	return "history"
}

func (c *HistoryCommand) Description() string {
	return "Show your recent questions and answers"
}

func (c *HistoryCommand) Execute(ctx context.Context, userID string, args []string) (string, error) {
	limit := defaultHistoryLimit
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return c.formatter.Usage("/history [count]"), nil
		}
		limit = n
	}

	turns, err := c.assistant.History(ctx, userID, limit)
	if err != nil {
		return "", fmt.Errorf("failed to load history: %w", err)
	}
	if len(turns) == 0 {
		return "No history yet. Ask me something about your banking.", nil
	}

	items := make([]string, 0, len(turns))
	for _, t := range turns {
		items = append(items, fmt.Sprintf("**Q**: %s\n  **A**: %s", t.Question, t.Answer))
	}

	return c.formatter.Combine(
		c.formatter.Info(fmt.Sprintf("Last %d turns", len(turns))),
		c.formatter.List(items),
	), nil
}

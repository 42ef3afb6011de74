package core

import "context"

type HistoryRepository interface {
	// Record appends the turn and returns its 1-based position within the
	// user's history.
	Record(ctx context.Context, turn ConversationTurn) (int, error)
	Query(ctx context.Context, userID string, limit int) ([]ConversationTurn, error)
	Clear(ctx context.Context, userID string) error
}

type MemoryStore interface {
	Append(userID string, turn ConversationTurn)
	Read(userID string) []ConversationTurn
	Clear(userID string)
}

package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sandevgo/bankassist/internal/core"
	"github.com/sandevgo/bankassist/pkg/log"
)

// Log is the durable record of every answered turn across all users.
// Logically append-only in memory; the backing file is rewritten wholesale
// after each mutation so it always mirrors the in-memory sequence.
type Log struct {
	mu    sync.Mutex
	path  string
	turns []core.ConversationTurn
}

// NewLog loads the persisted history, or starts empty when no file exists.
// A corrupt file is logged and treated as empty so startup stays available.
func NewLog(ctx context.Context, path string) (*Log, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	l := &Log{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	if err := json.Unmarshal(data, &l.turns); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("path", path).Msg("history file is corrupt, starting empty")
		l.turns = nil
		return l, nil
	}

	log.FromCtx(ctx).Debug().Int("turns", len(l.turns)).Msg("loaded history")
	return l, nil
}

// Record appends the turn and flushes synchronously. The in-memory append
// always succeeds; a flush error is returned so the caller can surface the
// durability risk without dropping the turn.
func (l *Log) Record(ctx context.Context, turn core.ConversationTurn) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.turns = append(l.turns, turn)

	seq := 0
	for _, t := range l.turns {
		if t.UserID == turn.UserID {
			seq++
		}
	}

	if err := l.flush(); err != nil {
		return seq, fmt.Errorf("failed to persist history: %w", err)
	}
	return seq, nil
}

// Query returns the last limit turns for the user, most-recent-last.
// limit <= 0 means all turns.
func (l *Log) Query(ctx context.Context, userID string, limit int) ([]core.ConversationTurn, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var turns []core.ConversationTurn
	for _, t := range l.turns {
		if t.UserID == userID {
			turns = append(turns, t)
		}
	}

	if limit > 0 && len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	return turns, nil
}

// Clear removes the user's turns from memory and disk. Other users'
// turns keep their relative order.
func (l *Log) Clear(ctx context.Context, userID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.turns[:0:0]
	for _, t := range l.turns {
		if t.UserID != userID {
			kept = append(kept, t)
		}
	}
	l.turns = kept

	if err := l.flush(); err != nil {
		return fmt.Errorf("failed to persist history: %w", err)
	}
	return nil
}

// Close flushes the log one final time. Safe to call on shutdown even
// when every mutation already flushed.
func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.flush()
}

// Len reports the total number of recorded turns across all users.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.turns)
}

// flush rewrites the whole file via temp-and-rename. Callers hold l.mu.
func (l *Log) flush() error {
	data, err := json.MarshalIndent(l.turns, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(l.path), ".history-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp history file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close history file: %w", err)
	}

	if err := os.Rename(tmp.Name(), l.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace history file: %w", err)
	}
	return nil
}

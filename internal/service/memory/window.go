package memory

import (
	"sync"

	"github.com/sandevgo/bankassist/internal/core"
)

// Window keeps the last k turns per user as volatile prompt context.
// The durable record lives in the history log, not here.
type Window struct {
	mu      sync.RWMutex
	size    int
	windows map[string][]core.ConversationTurn
}

func NewWindow(size int) *Window {
	if size < 1 {
		size = 1
	}
	return &Window{
		size:    size,
		windows: make(map[string][]core.ConversationTurn),
	}
}

// Append inserts at the tail of the user's window, evicting the oldest turn
// once the window exceeds its size.
func (w *Window) Append(userID string, turn core.ConversationTurn) {
	w.mu.Lock()
	defer w.mu.Unlock()

	turns := append(w.windows[userID], turn)
	if len(turns) > w.size {
		evicted := len(turns) - w.size
		turns = append([]core.ConversationTurn(nil), turns[evicted:]...)
	}
	w.windows[userID] = turns
}

// Read returns the user's current window, oldest first. Unseen users get an
// empty slice.
func (w *Window) Read(userID string) []core.ConversationTurn {
	w.mu.RLock()
	defer w.mu.RUnlock()

	turns := w.windows[userID]
	out := make([]core.ConversationTurn, len(turns))
	copy(out, turns)
	return out
}

// Clear drops the user's window. Other users are unaffected.
func (w *Window) Clear(userID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.windows, userID)
}

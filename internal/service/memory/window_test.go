package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/sandevgo/bankassist/internal/core"
)

func turn(userID, question string) core.ConversationTurn {
	return core.ConversationTurn{UserID: userID, Question: question, Answer: "answer to " + question}
}

func TestWindow_AppendAndRead(t *testing.T) {
	w := NewWindow(3)

	w.Append("alice", turn("alice", "q1"))
	w.Append("alice", turn("alice", "q2"))

	turns := w.Read("alice")
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].Question != "q1" || turns[1].Question != "q2" {
		t.Errorf("turns out of order: %+v", turns)
	}
}

func TestWindow_UnseenUserIsEmpty(t *testing.T) {
	w := NewWindow(3)
	if turns := w.Read("nobody"); len(turns) != 0 {
		t.Errorf("expected empty window, got %d turns", len(turns))
	}
}

func TestWindow_FIFOEviction(t *testing.T) {
	const k = 3
	w := NewWindow(k)

	for i := 1; i <= k+1; i++ {
		w.Append("alice", turn("alice", fmt.Sprintf("q%d", i)))
	}

	turns := w.Read("alice")
	if len(turns) != k {
		t.Fatalf("expected %d turns after eviction, got %d", k, len(turns))
	}
	for i, tr := range turns {
		want := fmt.Sprintf("q%d", i+2)
		if tr.Question != want {
			t.Errorf("turn %d = %q, want %q", i, tr.Question, want)
		}
	}
}

func TestWindow_LengthInvariant(t *testing.T) {
	const k = 5
	w := NewWindow(k)

	for i := 0; i < 50; i++ {
		w.Append("alice", turn("alice", fmt.Sprintf("q%d", i)))
		if n := len(w.Read("alice")); n > k {
			t.Fatalf("window grew past %d: %d", k, n)
		}
	}
}

func TestWindow_ClearIsolation(t *testing.T) {
	w := NewWindow(3)
	w.Append("alice", turn("alice", "qa"))
	w.Append("bob", turn("bob", "qb"))

	w.Clear("alice")

	if len(w.Read("alice")) != 0 {
		t.Error("alice's window should be empty after clear")
	}
	if len(w.Read("bob")) != 1 {
		t.Error("bob's window should be untouched")
	}
}

func TestWindow_ReadReturnsCopy(t *testing.T) {
	w := NewWindow(3)
	w.Append("alice", turn("alice", "q1"))

	turns := w.Read("alice")
	turns[0].Question = "mutated"

	if w.Read("alice")[0].Question != "q1" {
		t.Error("mutating the returned slice leaked into the window")
	}
}

func TestWindow_ConcurrentUsers(t *testing.T) {
	const k = 4
	w := NewWindow(k)

	var wg sync.WaitGroup
	for u := 0; u < 8; u++ {
		wg.Add(1)
		go func(u int) {
			defer wg.Done()
			userID := fmt.Sprintf("user-%d", u)
			for i := 0; i < 20; i++ {
				w.Append(userID, turn(userID, fmt.Sprintf("q%d", i)))
				w.Read(userID)
			}
		}(u)
	}
	wg.Wait()

	for u := 0; u < 8; u++ {
		userID := fmt.Sprintf("user-%d", u)
		turns := w.Read(userID)
		if len(turns) != k {
			t.Errorf("%s: expected %d turns, got %d", userID, k, len(turns))
		}
		if turns[len(turns)-1].Question != "q19" {
			t.Errorf("%s: last turn = %q, want q19", userID, turns[len(turns)-1].Question)
		}
	}
}

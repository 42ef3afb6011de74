package engine

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/bankassist/internal/config"
	"github.com/sandevgo/bankassist/internal/core"
	"github.com/sandevgo/bankassist/internal/index"
	"github.com/sandevgo/bankassist/pkg/log"
	"github.com/sandevgo/bankassist/pkg/retry"
)

const fallbackAnswer = "I'm sorry, I'm having trouble answering your question right now. Please try again in a moment."

type Retriever interface {
	Retrieve(ctx context.Context, question string) (index.Match, error)
}

// Engine orchestrates one answer: retrieve grounding, read memory, generate,
// then update memory and history together.
type Engine struct {
	cfg       *config.AppConfig
	retriever Retriever
	generator core.Generator
	memory    core.MemoryStore
	history   core.HistoryRepository
	retrier   *retry.Retrier

	mu    sync.Mutex
	users map[string]*sync.Mutex
}

func NewEngine(
	cfg *config.AppConfig,
	retriever Retriever,
	generator core.Generator,
	memory core.MemoryStore,
	history core.HistoryRepository,
) *Engine {
	return &Engine{
		cfg:       cfg,
		retriever: retriever,
		generator: generator,
		memory:    memory,
		history:   history,
		retrier:   retry.NewDefaultRetrier(),
		users:     make(map[string]*sync.Mutex),
	}
}

// Answer handles one question for one user. Provider failures degrade to a
// recorded fallback answer rather than an error; only a blank question is
// rejected outright.
func (e *Engine) Answer(ctx context.Context, userID, question string) (core.AnswerResult, error) {
	logger := log.FromCtx(ctx)

	question = strings.TrimSpace(question)
	if question == "" {
		return core.AnswerResult{}, core.ErrEmptyQuestion
	}

	// Same-user requests are serialized to keep the turn order coherent
	// across memory and history. Different users proceed in parallel.
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	answer, sources := e.generateAnswer(ctx, userID, question)

	turn := core.ConversationTurn{
		ID:        uuid.NewString(),
		UserID:    userID,
		Question:  question,
		Answer:    answer,
		Sources:   sources,
		CreatedAt: time.Now().UTC(),
	}

	e.memory.Append(userID, turn)

	seq, err := e.history.Record(ctx, turn)
	if err != nil {
		// Durability risk only: the in-memory log still holds the turn.
		logger.Error().Err(err).Str("user", userID).Msg("failed to persist history")
	}

	return core.AnswerResult{
		Answer:   answer,
		Sources:  sources,
		Sequence: seq,
	}, nil
}

func (e *Engine) generateAnswer(ctx context.Context, userID, question string) (string, []core.FAQSource) {
	logger := log.FromCtx(ctx)

	match, err := e.retriever.Retrieve(ctx, question)
	if err != nil {
		logger.Error().Err(err).Msg("retrieval failed")
		return fallbackAnswer, nil
	}

	logger.Debug().
		Float64("score", match.Score).
		Str("faq", match.Entry.Question).
		Msg("retrieved grounding entry")

	prior := e.memory.Read(userID)
	prompt := buildPrompt(match, prior, question, e.cfg.PromptTokenBudget)

	var answer string
	genErr := e.retrier.Do(ctx, func() error {
		text, err := e.generator.Generate(ctx, prompt)
		if err != nil {
			return err
		}
		answer = strings.TrimSpace(text)
		return nil
	})

	if genErr != nil || answer == "" {
		logger.Error().Err(genErr).Msg("generation failed")
		return fallbackAnswer, []core.FAQSource{{
			Question: match.Entry.Question,
			Answer:   match.Entry.Answer,
			Source:   core.SourceFallback,
		}}
	}

	return answer, []core.FAQSource{{
		Question: match.Entry.Question,
		Answer:   match.Entry.Answer,
		Source:   core.SourceFAQ,
	}}
}

// History returns the user's last limit turns from the durable log.
func (e *Engine) History(ctx context.Context, userID string, limit int) ([]core.ConversationTurn, error) {
	return e.history.Query(ctx, userID, limit)
}

// Clear wipes the user's memory window and history. Other users keep theirs.
func (e *Engine) Clear(ctx context.Context, userID string) error {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	e.memory.Clear(userID)
	return e.history.Clear(ctx, userID)
}

func (e *Engine) userLock(userID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()

	l, ok := e.users[userID]
	if !ok {
		l = &sync.Mutex{}
		e.users[userID] = l
	}
	return l
}

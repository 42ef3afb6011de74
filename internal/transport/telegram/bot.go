package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/sandevgo/bankassist/internal/config"
	"github.com/sandevgo/bankassist/internal/core"
	"github.com/sandevgo/bankassist/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

// Assistant is the slice of the answer engine the bot talks to.
type Assistant interface {
	Answer(ctx context.Context, userID, question string) (core.AnswerResult, error)
}

type Bot struct {
	bot       *tele.Bot
	cfg       *config.TelegramConfig
	assistant Assistant
	router    core.CmdRouter
	sender    *sender
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	assistant Assistant,
	router core.CmdRouter,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:       b,
		cfg:       cfg,
		assistant: assistant,
		router:    router,
		sender:    newSender(b),
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: restrict to the owner when one is configured
	if cfg.OwnerID != 0 {
		b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
			return func(c tele.Context) error {
				if c.Sender().ID != cfg.OwnerID {
					return nil // Ignore unauthorized users
				}
				return next(c)
			}
		})
	}

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)
	userID := fmt.Sprintf("telegram-%d", c.Chat().ID)

	if reply, handled := b.router.Execute(ctx, userID, c.Text()); handled {
		return b.sender.sendMarkdown(ctx, c.Chat(), reply, false)
	}

	// Notify user we are working
	_ = c.Notify(tele.Typing)

	result, err := b.assistant.Answer(ctx, userID, c.Text())
	if err != nil {
		logger.Error().Err(err).Str("user", userID).Msg("failed to answer")
		return c.Send("Sorry, I couldn't process that. Please try again.")
	}

	return b.sender.sendMarkdown(ctx, c.Chat(), result.Answer, false)
}

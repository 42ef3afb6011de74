package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sandevgo/bankassist/internal/config"
	"github.com/sandevgo/bankassist/internal/core"
	"github.com/sandevgo/bankassist/pkg/log"
)

// Assistant is the slice of the answer engine the HTTP API exposes.
type Assistant interface {
	Answer(ctx context.Context, userID, question string) (core.AnswerResult, error)
	History(ctx context.Context, userID string, limit int) ([]core.ConversationTurn, error)
	Clear(ctx context.Context, userID string) error
}

type Server struct {
	srv       *http.Server
	assistant Assistant
}

func NewServer(ctx context.Context, cfg *config.AppConfig, assistant Assistant) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{assistant: assistant}

	router := gin.New()
	router.Use(gin.Recovery())

	// Carry the app logger into request contexts
	logger := log.FromCtx(ctx)
	router.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))
		c.Next()
	})

	s.registerRoutes(router)

	s.srv = &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}
	return s
}

func (s *Server) registerRoutes(router *gin.Engine) {
	router.GET("/healthz", s.handleHealth)

	api := router.Group("/api/v1")
	{
		api.POST("/chat", s.handleChat)
		api.GET("/history/:user_id", s.handleHistory)
		api.DELETE("/history/:user_id", s.handleClear)
	}
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.srv.Addr).Msg("starting http server")
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sandevgo/bankassist/internal/core"
	"github.com/sandevgo/bankassist/pkg/log"
)

type chatRequest struct {
	UserID   string `json:"user_id"`
	Question string `json:"question"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"name":    core.AppName,
		"version": core.AppVersion,
	})
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	ctx := c.Request.Context()
	result, err := s.assistant.Answer(ctx, req.UserID, req.Question)
	if err != nil {
		if errors.Is(err, core.ErrEmptyQuestion) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "question is empty"})
			return
		}
		log.FromCtx(ctx).Error().Err(err).Str("user", req.UserID).Msg("chat request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleHistory(c *gin.Context) {
	userID := c.Param("user_id")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	turns, err := s.assistant.History(c.Request.Context(), userID, limit)
	if err != nil {
		log.FromCtx(c.Request.Context()).Error().Err(err).Str("user", userID).Msg("history request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": userID,
		"turns":   turns,
	})
}

func (s *Server) handleClear(c *gin.Context) {
	userID := c.Param("user_id")

	if err := s.assistant.Clear(c.Request.Context(), userID); err != nil {
		log.FromCtx(c.Request.Context()).Error().Err(err).Str("user", userID).Msg("clear request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": userID, "cleared": true})
}

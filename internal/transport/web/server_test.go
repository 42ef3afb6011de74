package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/bankassist/internal/core"
)

type fakeAssistant struct {
	result  core.AnswerResult
	err     error
	turns   []core.ConversationTurn
	cleared []string

	gotUser     string
	gotQuestion string
	gotLimit    int
}

func (f *fakeAssistant) Answer(ctx context.Context, userID, question string) (core.AnswerResult, error) {
	f.gotUser = userID
	f.gotQuestion = question
	return f.result, f.err
}

func (f *fakeAssistant) History(ctx context.Context, userID string, limit int) ([]core.ConversationTurn, error) {
	f.gotUser = userID
	f.gotLimit = limit
	return f.turns, f.err
}

func (f *fakeAssistant) Clear(ctx context.Context, userID string) error {
	f.cleared = append(f.cleared, userID)
	return f.err
}

func newTestRouter(fa *fakeAssistant) *gin.Engine {
	gin.SetMode(gin.TestMode)
	s := &Server{assistant: fa}
	router := gin.New()
	s.registerRoutes(router)
	return router
}

func TestHandleChat(t *testing.T) {
	fa := &fakeAssistant{result: core.AnswerResult{
		Answer:   "We are open 9 to 5.",
		Sources:  []core.FAQSource{{Question: "Hours?", Answer: "9-5", Source: core.SourceFAQ}},
		Sequence: 3,
	}}
	router := newTestRouter(fa)

	body := `{"user_id":"alice","question":"When are you open?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got core.AnswerResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "We are open 9 to 5.", got.Answer)
	assert.Equal(t, 3, got.Sequence)
	require.Len(t, got.Sources, 1)
	assert.Equal(t, core.SourceFAQ, got.Sources[0].Source)

	assert.Equal(t, "alice", fa.gotUser)
	assert.Equal(t, "When are you open?", fa.gotQuestion)
}

func TestHandleChat_MissingUserID(t *testing.T) {
	router := newTestRouter(&fakeAssistant{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"question":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "user_id is required")
}

func TestHandleChat_MalformedBody(t *testing.T) {
	router := newTestRouter(&fakeAssistant{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"user_id":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
	assert.NotContains(t, w.Body.String(), "user_id is required")
}

func TestHandleChat_EmptyQuestion(t *testing.T) {
	fa := &fakeAssistant{err: core.ErrEmptyQuestion}
	router := newTestRouter(fa)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"user_id":"alice","question":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "question is empty")
}

func TestHandleHistory(t *testing.T) {
	fa := &fakeAssistant{turns: []core.ConversationTurn{
		{Question: "q1", Answer: "a1"},
		{Question: "q2", Answer: "a2"},
	}}
	router := newTestRouter(fa)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history/alice?limit=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", fa.gotUser)
	assert.Equal(t, 2, fa.gotLimit)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "alice", body["user_id"])
	assert.Len(t, body["turns"], 2)
}

func TestHandleHistory_BadLimit(t *testing.T) {
	router := newTestRouter(&fakeAssistant{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history/alice?limit=banana", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleClear(t *testing.T) {
	fa := &fakeAssistant{}
	router := newTestRouter(fa)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/history/bob", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"bob"}, fa.cleared)
}

func TestHandleHealth(t *testing.T) {
	router := newTestRouter(&fakeAssistant{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), core.AppName)
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spattnaik1998/Augmenting-Wolfram/models"
)

type stubAgent struct {
	resp models.ChatResponse
	err  error

	gotMessage string
	gotHistory []models.ChatMessage
}

func (s *stubAgent) Chat(ctx context.Context, message string, history []models.ChatMessage) (models.ChatResponse, error) {
	s.gotMessage = message
	s.gotHistory = history
	return s.resp, s.err
}

func newTestRouter(agent ChatAgent) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewChatHandler(agent)

	router := gin.New()
	router.GET("/", h.Health)
	api := router.Group("/api")
	{
		api.GET("/status", h.Status)
		api.GET("/examples", h.Examples)
		api.POST("/chat", h.Chat)
	}
	return router
}

func postChat(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChatSuccess(t *testing.T) {
	agent := &stubAgent{
		resp: models.ChatResponse{
			Content:        "4",
			UsedWolfram:    true,
			Timestamp:      "2024-01-01T00:00:00Z",
			ProcessingTime: 0.5,
		},
	}
	router := newTestRouter(agent)

	body := `{"message": "What is 2+2?", "conversation_history": [{"type": "user", "content": "hi", "usedWolfram": false}]}`
	w := postChat(t, router, body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "4", resp.Content)
	assert.True(t, resp.UsedWolfram)
	assert.Equal(t, "2024-01-01T00:00:00Z", resp.Timestamp)
	assert.Equal(t, 0.5, resp.ProcessingTime)

	assert.Equal(t, "What is 2+2?", agent.gotMessage)
	require.Len(t, agent.gotHistory, 1)
	assert.Equal(t, "hi", agent.gotHistory[0].Content)
}

func TestChatAgentNotInitialized(t *testing.T) {
	router := newTestRouter(nil)

	w := postChat(t, router, `{"message": "What is 2+2?"}`)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Agent not initialized")
}

func TestChatInvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "not json"},
		{name: "missing message", body: `{"conversation_history": []}`},
		{name: "empty message", body: `{"message": ""}`},
		{name: "whitespace message", body: `{"message": "   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agent := &stubAgent{}
			router := newTestRouter(agent)

			w := postChat(t, router, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "detail")
			assert.Empty(t, agent.gotMessage)
		})
	}
}

func TestChatAgentFailure(t *testing.T) {
	agent := &stubAgent{err: errors.New("openai unreachable")}
	router := newTestRouter(agent)

	w := postChat(t, router, `{"message": "What is 2+2?"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var failure struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &failure))
	assert.Contains(t, failure.Detail, "openai unreachable")
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		agent      ChatAgent
		wantStatus string
		wantInit   bool
	}{
		{name: "initialized", agent: &stubAgent{}, wantStatus: "healthy", wantInit: true},
		{name: "not initialized", agent: nil, wantStatus: "unhealthy", wantInit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(tt.agent)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			require.Equal(t, http.StatusOK, w.Code)

			var health models.HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
			assert.Equal(t, tt.wantStatus, health.Status)
			assert.Equal(t, tt.wantInit, health.AgentInitialized)

			_, err := time.Parse(time.RFC3339, health.Timestamp)
			assert.NoError(t, err)
		})
	}
}

func TestStatus(t *testing.T) {
	router := newTestRouter(&stubAgent{})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var status struct {
		AgentInitialized bool     `json:"agent_initialized"`
		APIVersion       string   `json:"api_version"`
		Endpoints        []string `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.True(t, status.AgentInitialized)
	assert.Equal(t, apiVersion, status.APIVersion)
	assert.NotEmpty(t, status.Endpoints)
}

func TestExamples(t *testing.T) {
	router := newTestRouter(&stubAgent{})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/examples", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var examples models.ExampleSet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &examples))
	assert.NotEmpty(t, examples.WolframExamples)
	assert.NotEmpty(t, examples.GeneralExamples)
	assert.Contains(t, examples.WolframExamples, "Convert 100 fahrenheit to celsius")
}

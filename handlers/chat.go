package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/spattnaik1998/Augmenting-Wolfram/models"
)

const apiVersion = "1.0.0"

// ChatAgent answers one chat request.
type ChatAgent interface {
	Chat(ctx context.Context, message string, history []models.ChatMessage) (models.ChatResponse, error)
}

// ChatHandler handles chat-related HTTP requests. A nil agent means the
// provider integrations failed to initialize; the handlers then report
// unhealthy and refuse chat requests instead of crashing the server.
type ChatHandler struct {
	agent ChatAgent
}

// NewChatHandler creates a new chat handler
func NewChatHandler(agent ChatAgent) *ChatHandler {
	return &ChatHandler{agent: agent}
}

// Health reports whether the agent is ready to serve chat requests.
func (h *ChatHandler) Health(c *gin.Context) {
	status := "healthy"
	if h.agent == nil {
		status = "unhealthy"
	}
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:           status,
		Timestamp:        time.Now().Format(time.RFC3339),
		AgentInitialized: h.agent != nil,
	})
}

// Status returns detailed status information.
func (h *ChatHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"agent_initialized": h.agent != nil,
		"timestamp":         time.Now().Format(time.RFC3339),
		"api_version":       apiVersion,
		"endpoints":         []string{"/", "/api/chat", "/api/status"},
	})
}

// Examples returns the example queries for the frontend.
func (h *ChatHandler) Examples(c *gin.Context) {
	c.JSON(http.StatusOK, models.ExampleSet{
		WolframExamples: []string{
			"What is the integral of x² + 3x + 2?",
			"Convert 100 fahrenheit to celsius",
			"What is the population of Tokyo?",
			"Solve the equation 2x + 5 = 15",
			"Calculate the compound interest on $1000 at 5% for 10 years",
			"What is the derivative of sin(x) * cos(x)?",
			"Convert 50 miles to kilometers",
		},
		GeneralExamples: []string{
			"Tell me a joke about mathematics",
			"How are you doing today?",
			"What's your favorite color?",
			"Explain quantum computing in simple terms",
			"What's the weather like?",
			"Tell me about artificial intelligence",
		},
	})
}

// Chat handles POST /api/chat. Failures carry a human-readable detail field
// that clients surface verbatim.
func (h *ChatHandler) Chat(c *gin.Context) {
	if h.agent == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "Agent not initialized. Please check server logs."})
		return
	}

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Message must not be empty"})
		return
	}

	logger := log.With().Str("request_id", uuid.New().String()).Logger()
	logger.Info().
		Str("message", truncate(req.Message, 100)).
		Int("history_len", len(req.ConversationHistory)).
		Msg("received chat request")

	resp, err := h.agent.Chat(c.Request.Context(), req.Message, req.ConversationHistory)
	if err != nil {
		logger.Error().Err(err).Msg("chat request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error processing your request: " + err.Error()})
		return
	}

	logger.Info().
		Bool("used_wolfram", resp.UsedWolfram).
		Float64("processing_time", resp.ProcessingTime).
		Msg("response generated")
	c.JSON(http.StatusOK, resp)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

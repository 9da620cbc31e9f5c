package models

// Roles for chat messages.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// ChatMessage is one prior turn of the conversation as sent by the client.
type ChatMessage struct {
	ID          int    `json:"id,omitempty"`
	Type        string `json:"type"` // "user" or "bot"
	Content     string `json:"content"`
	Timestamp   string `json:"timestamp,omitempty"`
	UsedWolfram bool   `json:"usedWolfram"`
}

// ChatRequest is the request body for POST /api/chat.
type ChatRequest struct {
	Message             string        `json:"message" binding:"required"`
	ConversationHistory []ChatMessage `json:"conversation_history"`
}

// ChatResponse is the uniform answer returned for a chat request.
// UsedWolfram reflects whether Wolfram Alpha actually contributed the answer,
// not merely whether it was attempted.
type ChatResponse struct {
	Content        string  `json:"content"`
	UsedWolfram    bool    `json:"usedWolfram"`
	Timestamp      string  `json:"timestamp"`
	ProcessingTime float64 `json:"processingTime"`
}

// HealthResponse is returned by GET /.
type HealthResponse struct {
	Status           string `json:"status"`
	Timestamp        string `json:"timestamp"`
	AgentInitialized bool   `json:"agent_initialized"`
}

// ExampleSet holds the example queries served to the frontend.
type ExampleSet struct {
	WolframExamples []string `json:"wolfram_examples"`
	GeneralExamples []string `json:"general_examples"`
}

package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/spattnaik1998/Augmenting-Wolfram/models"
)

// ApiClient talks to the chatbot backend over HTTP.
type ApiClient struct {
	baseURL string
	client  *http.Client
}

// NewApiClient creates a client for the given base URL.
func NewApiClient(baseURL string) *ApiClient {
	return &ApiClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// CheckHealth reports whether the backend is reachable and its agent is
// initialized. Anything short of a 2xx with agent_initialized=true counts as
// disconnected.
func (c *ApiClient) CheckHealth() bool {
	resp, err := c.client.Get(c.baseURL + "/")
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false
	}

	var health models.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return false
	}
	return health.AgentInitialized
}

// FetchExamples retrieves the example queries.
func (c *ApiClient) FetchExamples() (models.ExampleSet, error) {
	var examples models.ExampleSet

	resp, err := c.client.Get(c.baseURL + "/api/examples")
	if err != nil {
		return examples, errors.Wrap(err, "failed to fetch examples")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return examples, errors.Errorf("examples request failed with status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&examples); err != nil {
		return examples, errors.Wrap(err, "failed to decode examples")
	}
	return examples, nil
}

// SendChat posts one message plus the conversation so far. On a non-2xx
// answer the backend's detail text becomes the error message, verbatim.
func (c *ApiClient) SendChat(message string, history []models.ChatMessage) (models.ChatResponse, error) {
	var chatResp models.ChatResponse

	body, err := json.Marshal(models.ChatRequest{
		Message:             message,
		ConversationHistory: history,
	})
	if err != nil {
		return chatResp, errors.Wrap(err, "failed to marshal request")
	}

	resp, err := c.client.Post(c.baseURL+"/api/chat", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return chatResp, errors.Wrap(err, "failed to send request")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return chatResp, errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode != http.StatusOK {
		var failure struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(data, &failure); err == nil && failure.Detail != "" {
			return chatResp, errors.New(failure.Detail)
		}
		return chatResp, errors.Errorf("chat request failed with status %d: %s", resp.StatusCode, string(data))
	}

	if err := json.Unmarshal(data, &chatResp); err != nil {
		return chatResp, errors.Wrap(err, "failed to decode response")
	}
	return chatResp, nil
}

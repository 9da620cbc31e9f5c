package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"

	"github.com/spattnaik1998/Augmenting-Wolfram/config"
	"github.com/spattnaik1998/Augmenting-Wolfram/models"
)

const classifierPrompt = `You are a query classifier. Determine if a user query requires Wolfram Alpha for computational, mathematical, scientific, or factual lookups.

USE WOLFRAM ALPHA for:
- Mathematical calculations, equations, derivatives, integrals
- Scientific computations or data lookups
- Unit conversions (temperature, distance, weight, etc.)
- Weather information
- Geographic or demographic data (population, area, etc.)
- Statistical analysis
- Financial calculations (compound interest, etc.)
- Physical constants or scientific facts
- Real-time data queries
- Complex mathematical word problems
- Solving equations or systems of equations
- Matrix operations
- Probability calculations
- Chemistry calculations
- Physics problems

DO NOT USE WOLFRAM ALPHA for:
- General conversation
- Creative writing requests
- Explanations that don't require computation
- Opinion-based questions
- Simple definitions
- Jokes or casual chat
- Philosophical discussions
- General advice
- Programming help (unless it involves mathematical calculations)

Respond with ONLY 'YES' if Wolfram Alpha is needed, or 'NO' if it's not needed.`

const formulationPrompt = `You are an expert at formulating queries for Wolfram Alpha.
Given a user question, create the most effective Wolfram Alpha query.

Guidelines:
- Keep it concise and specific
- Use mathematical notation when appropriate
- For unit conversions, use format like "100 fahrenheit to celsius"
- For equations, use standard mathematical syntax like "solve 2x + 5 = 15"
- For derivatives, use "derivative of x^2 + 3x"
- For integrals, use "integral of x^2 + 3x"
- For population data, use "population of [city/country]"
- For scientific constants, be specific like "speed of light"
- Remove unnecessary words and focus on the core computation

Examples:
- "What is the integral of x squared plus 3x?" → "integral of x^2 + 3x"
- "Convert 100 degrees Fahrenheit to Celsius" → "100 fahrenheit to celsius"
- "What's the population of Tokyo?" → "population of Tokyo"
- "Solve the equation 2x plus 5 equals 15" → "solve 2x + 5 = 15"

Return ONLY the Wolfram Alpha query, nothing else.`

const wolframAnswerPrompt = `You are a helpful AI assistant. The user asked a question that required computational/factual lookup, and you received results from Wolfram Alpha.

Based on the Wolfram Alpha results, provide a clear, helpful response to the user's original question.
- Explain the results in an understandable way
- If there are multiple pieces of information, organize them clearly
- Be conversational and helpful
- Don't mention "Wolfram Alpha" unless it's relevant to explain the source`

const directPrompt = `You are a helpful AI assistant. Respond to the user's question directly and conversationally.
This question doesn't require computational tools or factual lookups - just provide a helpful, engaging response.

Be friendly, informative, and conversational.`

// OpenAIService handles the OpenAI chat completion calls: classification,
// Wolfram query formulation, answer synthesis and direct conversation.
type OpenAIService struct {
	client        *openai.Client
	model         string
	temperature   float32
	historyWindow int
}

// NewOpenAIService creates a new OpenAI service
func NewOpenAIService(cfg config.OpenAI) *OpenAIService {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIService{
		client:        openai.NewClientWithConfig(clientConfig),
		model:         cfg.Model,
		temperature:   cfg.Temperature,
		historyWindow: cfg.HistoryWindow,
	}
}

// Classify decides whether a query needs Wolfram Alpha.
func (s *OpenAIService) Classify(ctx context.Context, query string) (bool, error) {
	answer, err := s.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: classifierPrompt},
		{Role: openai.ChatMessageRoleUser, Content: query},
	})
	if err != nil {
		return false, errors.Wrap(err, "classification failed")
	}
	return strings.EqualFold(strings.TrimSpace(answer), "YES"), nil
}

// FormulateQuery turns a user question into a Wolfram Alpha query string.
func (s *OpenAIService) FormulateQuery(ctx context.Context, query string) (string, error) {
	answer, err := s.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: formulationPrompt},
		{Role: openai.ChatMessageRoleUser, Content: query},
	})
	if err != nil {
		return "", errors.Wrap(err, "query formulation failed")
	}
	return strings.TrimSpace(answer), nil
}

// AnswerWithWolfram synthesizes the final answer from the Wolfram Alpha result.
func (s *OpenAIService) AnswerWithWolfram(ctx context.Context, query, wolframResult string) (string, error) {
	answer, err := s.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: wolframAnswerPrompt},
		{Role: openai.ChatMessageRoleUser, Content: "Original question: " + query},
		{Role: openai.ChatMessageRoleUser, Content: "Wolfram Alpha results: " + wolframResult},
	})
	return answer, errors.Wrap(err, "answer synthesis failed")
}

// Chat answers the message directly, with the conversation history as
// context. Only the last historyWindow turns are sent.
func (s *OpenAIService) Chat(ctx context.Context, message string, history []models.ChatMessage) (string, error) {
	if n := len(history); s.historyWindow > 0 && n > s.historyWindow {
		history = history[n-s.historyWindow:]
	}

	chatMessages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	chatMessages = append(chatMessages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: directPrompt,
	})
	for _, msg := range history {
		role := openai.ChatMessageRoleUser
		if msg.Type == models.RoleBot {
			role = openai.ChatMessageRoleAssistant
		}
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}
	chatMessages = append(chatMessages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	answer, err := s.complete(ctx, chatMessages)
	return answer, errors.Wrap(err, "chat completion failed")
}

func (s *OpenAIService) complete(ctx context.Context, chatMessages []openai.ChatCompletionMessage) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: s.temperature,
		Messages:    chatMessages,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}

package agent

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/spattnaik1998/Augmenting-Wolfram/models"
)

// LLM is the conversational provider plus the classification and
// query-shaping calls it backs.
type LLM interface {
	Classify(ctx context.Context, query string) (bool, error)
	FormulateQuery(ctx context.Context, query string) (string, error)
	AnswerWithWolfram(ctx context.Context, query, wolframResult string) (string, error)
	Chat(ctx context.Context, message string, history []models.ChatMessage) (string, error)
}

// Computational is the computational-answer provider.
type Computational interface {
	Query(ctx context.Context, query string) (string, error)
}

// Agent routes each user message through classify → dispatch → assemble.
type Agent struct {
	llm     LLM
	wolfram Computational
}

// New creates a new Agent
func New(llm LLM, wolfram Computational) *Agent {
	return &Agent{
		llm:     llm,
		wolfram: wolfram,
	}
}

// Chat processes one user message and returns the assembled response.
// A classification failure fails the whole request; a Wolfram failure falls
// back to a direct answer with UsedWolfram left false.
func (a *Agent) Chat(ctx context.Context, message string, history []models.ChatMessage) (models.ChatResponse, error) {
	start := time.Now()

	needsWolfram, err := a.llm.Classify(ctx, message)
	if err != nil {
		return models.ChatResponse{}, errors.Wrap(err, "query classification failed")
	}
	log.Info().Bool("needs_wolfram", needsWolfram).Msg("query classified")

	var (
		content     string
		usedWolfram bool
	)
	if needsWolfram {
		content, usedWolfram, err = a.computeAnswer(ctx, message, history)
	} else {
		content, err = a.llm.Chat(ctx, message, history)
	}
	if err != nil {
		return models.ChatResponse{}, err
	}

	now := time.Now()
	return models.ChatResponse{
		Content:        content,
		UsedWolfram:    usedWolfram,
		Timestamp:      now.Format(time.RFC3339),
		ProcessingTime: now.Sub(start).Seconds(),
	}, nil
}

// computeAnswer runs the Wolfram path: formulate the query, run it, then let
// the LLM explain the result. When Wolfram fails or has nothing usable the
// answer comes from the direct path instead.
func (a *Agent) computeAnswer(ctx context.Context, message string, history []models.ChatMessage) (string, bool, error) {
	query, err := a.llm.FormulateQuery(ctx, message)
	if err != nil {
		return "", false, errors.Wrap(err, "query formulation failed")
	}
	log.Info().Str("query", query).Msg("querying wolfram alpha")

	result, err := a.wolfram.Query(ctx, query)
	if err != nil {
		log.Warn().Err(err).Msg("wolfram alpha query failed, answering directly")
		content, chatErr := a.llm.Chat(ctx, message, history)
		if chatErr != nil {
			return "", false, errors.Wrap(chatErr, "fallback answer failed")
		}
		return content, false, nil
	}

	content, err := a.llm.AnswerWithWolfram(ctx, message, result)
	if err != nil {
		return "", false, err
	}
	return content, true, nil
}

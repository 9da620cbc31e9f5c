package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

// ErrNoResult reports that Wolfram Alpha answered but could not process the
// query or returned no readable pods. Distinct from transport failures so
// callers can fall back instead of failing the request.
var ErrNoResult = errors.New("wolfram alpha could not process the query")

// WolframService handles communication with the Wolfram Alpha full-results API
type WolframService struct {
	appID   string
	baseURL string
	client  *http.Client
}

// NewWolframService creates a new Wolfram Alpha service
func NewWolframService(appID, baseURL string) *WolframService {
	return &WolframService{
		appID:   appID,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Query runs a single query against the v2 query endpoint and returns the
// plaintext pods joined as "Title: text" lines. One outbound call, no retry.
func (s *WolframService) Query(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("appid", s.appID)
	params.Set("input", query)
	params.Set("format", "plaintext")
	params.Set("output", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/v2/query?%s", s.baseURL, params.Encode()), nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to create request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "wolfram alpha request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("wolfram alpha error (status %d): %s", resp.StatusCode, string(body))
	}

	queryResult := gjson.GetBytes(body, "queryresult")
	if !queryResult.Get("success").Bool() {
		return "", ErrNoResult
	}

	var lines []string
	queryResult.Get("pods").ForEach(func(_, pod gjson.Result) bool {
		title := pod.Get("title").String()
		pod.Get("subpods").ForEach(func(_, subpod gjson.Result) bool {
			if text := strings.TrimSpace(subpod.Get("plaintext").String()); text != "" {
				lines = append(lines, fmt.Sprintf("%s: %s", title, text))
			}
			return true
		})
		return true
	})

	if len(lines) == 0 {
		return "", ErrNoResult
	}

	result := strings.Join(lines, "\n")
	log.Debug().Str("query", query).Int("pods", len(lines)).Msg("wolfram alpha result")
	return result, nil
}

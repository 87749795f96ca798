package writer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sortsense/internal/config"
	"sortsense/internal/domain"
	"sortsense/internal/port"
	"sortsense/internal/summary"
)

const apiURL = "https://api.writer.com/v1/chat"

// Summarizer implements port.Summarizer using the Writer chat API.
type Summarizer struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewSummarizer creates a Writer-backed summarizer from the summary config.
func NewSummarizer(cfg *config.SummaryConfig) (port.Summarizer, error) {
	return newSummarizer(cfg, apiURL), nil
}

// NewSummarizerWithEndpoint creates a summarizer pointing at a custom API
// endpoint (for testing).
func NewSummarizerWithEndpoint(cfg *config.SummaryConfig, endpoint string) *Summarizer {
	return newSummarizer(cfg, endpoint)
}

func newSummarizer(cfg *config.SummaryConfig, endpoint string) *Summarizer {
	model := cfg.Model
	if model == "" {
		model = "palmyra-x5"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 12 * time.Second
	}
	return &Summarizer{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (s *Summarizer) Tip(ctx context.Context, label string, route domain.Route) (string, error) {
	return s.chat(ctx, summary.BuildTipPrompt(label, route))
}

func (s *Summarizer) KpiSummary(ctx context.Context, kpis domain.Kpis) (string, error) {
	return s.chat(ctx, summary.BuildKpiPrompt(kpis))
}

func (s *Summarizer) chat(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model": s.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling writer API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("writer API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty response from writer API")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

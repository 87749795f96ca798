package claude

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"sortsense/internal/config"
	"sortsense/internal/domain"
	"sortsense/internal/port"
	"sortsense/internal/summary"
)

// Summarizer implements port.Summarizer using the Anthropic Messages API.
type Summarizer struct {
	client anthropic.Client
	model  string
}

// NewSummarizer creates a Claude-backed summarizer from the summary config.
func NewSummarizer(cfg *config.SummaryConfig) (port.Summarizer, error) {
	model := cfg.Model
	if model == "" {
		model = "claude-sonnet-4-5-20250929"
	}
	return &Summarizer{
		client: anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:  model,
	}, nil
}

func (s *Summarizer) Tip(ctx context.Context, label string, route domain.Route) (string, error) {
	return s.complete(ctx, summary.BuildTipPrompt(label, route))
}

func (s *Summarizer) KpiSummary(ctx context.Context, kpis domain.Kpis) (string, error) {
	return s.complete(ctx, summary.BuildKpiPrompt(kpis))
}

func (s *Summarizer) complete(ctx context.Context, prompt string) (string, error) {
	message, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: 256,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			return strings.TrimSpace(block.Text), nil
		}
	}
	return "", fmt.Errorf("no text content in anthropic response")
}

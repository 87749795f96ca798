// Package static is the no-credentials summarizer: deterministic template
// text so tips and KPI summaries never disappear in local mode.
package static

import (
	"context"
	"fmt"

	"sortsense/internal/config"
	"sortsense/internal/domain"
	"sortsense/internal/port"
	"sortsense/internal/summary"
)

// Summarizer implements port.Summarizer with fixed templates.
type Summarizer struct{}

// NewSummarizer creates the static summarizer. The config argument exists
// to satisfy the provider factory signature.
func NewSummarizer(_ *config.SummaryConfig) (port.Summarizer, error) {
	return &Summarizer{}, nil
}

func (s *Summarizer) Tip(_ context.Context, label string, route domain.Route) (string, error) {
	return fmt.Sprintf("Place %s in the %s bin.", summary.HumanLabel(label), route), nil
}

func (s *Summarizer) KpiSummary(_ context.Context, kpis domain.Kpis) (string, error) {
	return fmt.Sprintf(
		"Diversion %.1f%%. Reduce landfill by targeting top contaminants next week.",
		kpis.DiversionRate*100,
	), nil
}

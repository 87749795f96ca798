package port

import (
	"context"

	"sortsense/internal/domain"
)

// Summarizer generates short natural-language text around the numeric
// results: a per-item sorting tip and a KPI narrative. Both are optional
// decorations; callers log failures and omit the field rather than
// failing the parent response.
type Summarizer interface {
	Tip(ctx context.Context, label string, route domain.Route) (string, error)
	KpiSummary(ctx context.Context, kpis domain.Kpis) (string, error)
}

package port

import (
	"context"

	"sortsense/internal/domain"
)

// EventStore records classified items and invoice lines and serves the
// aggregate KPI view. Writes are append-only; there is no update or delete
// path. Reset is a dev convenience that only the in-memory implementation
// supports — warehouse-backed stores return domain.ErrResetUnavailable.
type EventStore interface {
	RecordWasteEvents(ctx context.Context, events []domain.WasteEvent) error
	RecordInvoiceLines(ctx context.Context, lines []domain.InvoiceLine) error
	GetKpis(ctx context.Context) (*domain.Kpis, error)
	Reset(ctx context.Context) error
}

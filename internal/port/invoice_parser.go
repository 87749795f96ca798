package port

import (
	"context"

	"sortsense/internal/domain"
)

// InvoiceParser abstracts document-OCR extraction of hauler invoice lines.
// A PDF that cannot be recognized fails outright; implementations never
// return partial line sets alongside a nil error.
type InvoiceParser interface {
	Parse(ctx context.Context, pdfBytes []byte) (*domain.ParsedInvoice, error)
}

// Package mock provides the offline invoice parser for local mode.
package mock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sortsense/internal/config"
	"sortsense/internal/domain"
	"sortsense/internal/port"
)

// Parser implements port.InvoiceParser with one fabricated invoice.
type Parser struct{}

// NewParser creates the mock invoice parser. The config argument exists to
// satisfy the provider factory signature.
func NewParser(_ *config.VisionConfig) (port.InvoiceParser, error) {
	return &Parser{}, nil
}

func (p *Parser) Parse(_ context.Context, _ []byte) (*domain.ParsedInvoice, error) {
	invoiceID := uuid.New()
	now := time.Now().UTC()
	return &domain.ParsedInvoice{
		InvoiceID: invoiceID,
		Period:    "2025-09",
		Vendor:    "GreenCity",
		Lines: []domain.InvoiceLine{
			{
				InvoiceID: invoiceID,
				Period:    "2025-09",
				Vendor:    "GreenCity",
				LineType:  "recycling",
				WeightKg:  520,
				CostUSD:   180,
				Timestamp: now,
			},
		},
	}, nil
}

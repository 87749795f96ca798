package invoice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortsense/internal/config"
	"sortsense/internal/domain"
	"sortsense/internal/invoice"
	"sortsense/internal/port"
)

type stubParser struct{}

func (p *stubParser) Parse(_ context.Context, _ []byte) (*domain.ParsedInvoice, error) {
	return &domain.ParsedInvoice{Vendor: "stub"}, nil
}

func TestNewParser_SelectsConfiguredOCRProvider(t *testing.T) {
	invoice.RegisterProvider("stub", func(_ *config.VisionConfig) (port.InvoiceParser, error) {
		return &stubParser{}, nil
	})

	p, err := invoice.NewParser(&config.VisionConfig{OCRProvider: "stub"})
	require.NoError(t, err)

	parsed, err := p.Parse(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "stub", parsed.Vendor)
}

func TestNewParser_UnknownProvider(t *testing.T) {
	_, err := invoice.NewParser(&config.VisionConfig{OCRProvider: "no-such-ocr"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-ocr")
}

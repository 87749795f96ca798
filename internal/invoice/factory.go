package invoice

import (
	"fmt"

	"sortsense/internal/config"
	"sortsense/internal/port"
)

// ProviderFactory is a function that creates an InvoiceParser from the
// vision config (the OCR service shares the AWS region setting).
type ProviderFactory func(cfg *config.VisionConfig) (port.InvoiceParser, error)

var providers = map[string]ProviderFactory{}

// RegisterProvider registers an invoice parser provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewParser creates an InvoiceParser for the configured OCR provider.
func NewParser(cfg *config.VisionConfig) (port.InvoiceParser, error) {
	factory, ok := providers[cfg.OCRProvider]
	if !ok {
		return nil, fmt.Errorf("unknown invoice parser provider: %s", cfg.OCRProvider)
	}
	return factory(cfg)
}

package summary

import (
	"fmt"

	"sortsense/internal/config"
	"sortsense/internal/port"
)

// ProviderFactory is a function that creates a Summarizer from the summary config.
type ProviderFactory func(cfg *config.SummaryConfig) (port.Summarizer, error)

var providers = map[string]ProviderFactory{}

// RegisterProvider registers a summarizer provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewSummarizer creates a Summarizer for the configured provider.
func NewSummarizer(cfg *config.SummaryConfig) (port.Summarizer, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown summary provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

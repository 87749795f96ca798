package classifier

import (
	"fmt"

	"sortsense/internal/config"
	"sortsense/internal/port"
)

// ProviderFactory is a function that creates a Classifier from the vision config.
type ProviderFactory func(cfg *config.VisionConfig) (port.Classifier, error)

// registry of classifier provider factories, populated explicitly via
// RegisterProvider at startup.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a classifier provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewClassifier creates a Classifier for the configured provider.
func NewClassifier(cfg *config.VisionConfig) (port.Classifier, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown vision provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

package logging

import (
	"fmt"

	"jobdeck/internal/logging/adapters"
	"jobdeck/internal/logging/types"
)

// AdapterFactory creates log adapters from configuration
type AdapterFactory struct{}

// NewAdapterFactory creates a new adapter factory
func NewAdapterFactory() *AdapterFactory {
	return &AdapterFactory{}
}

// CreateAdapter creates an adapter for the given configuration
func (f *AdapterFactory) CreateAdapter(config AdapterConfig) (types.LogAdapter, error) {
	switch config.Type {
	case "stdout", "console":
		return adapters.NewStdoutAdapter(config.Name, adapters.StdoutConfig{
			Format: stringOption(config.Options, "format", "json"),
		}), nil
	case "file":
		return adapters.NewFileAdapter(config.Name, adapters.FileConfig{
			Path:   stringOption(config.Options, "path", ""),
			Format: stringOption(config.Options, "format", "json"),
		})
	default:
		return nil, fmt.Errorf("unknown adapter type %q", config.Type)
	}
}

func stringOption(options map[string]interface{}, key, fallback string) string {
	if options == nil {
		return fallback
	}
	if v, ok := options[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

package assets

import (
	"embed"
	"fmt"
)

//go:embed config/*.yaml
var projectAssets embed.FS

// DefaultConfig returns the embedded default configuration document.
func DefaultConfig() ([]byte, error) {
	data, err := projectAssets.ReadFile("config/default.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded default config: %w", err)
	}
	return data, nil
}

package level

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed *.yaml
var levelsFS embed.FS

// LoadDefault returns the built-in campaign config.
func LoadDefault() (*Config, error) {
	data, err := fs.ReadFile(levelsFS, "campaign.yaml")
	if err != nil {
		return nil, fmt.Errorf("level: read embedded campaign: %w", err)
	}
	return Parse(data)
}

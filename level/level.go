package level

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/platformer3d/vmath"
)

// Vec is a yaml-friendly 3-component vector.
type Vec [3]float64

// V converts to the simulation vector type.
func (v Vec) V() vmath.Vec3 {
	return vmath.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Platform is a static axis-aligned box. The first platform in a level is
// the ground: its top plane extends infinitely in X/Z.
type Platform struct {
	Center Vec    `yaml:"center"`
	Half   Vec    `yaml:"half"`
	Tint   string `yaml:"tint,omitempty"` // render-only, "#rrggbb"
}

// Top returns the Y coordinate of the platform's upper surface.
func (p Platform) Top() float64 {
	return p.Center[1] + p.Half[1]
}

// CompanionSpawn places one collectible companion.
type CompanionSpawn struct {
	Position Vec    `yaml:"position"`
	Species  string `yaml:"species,omitempty"` // "cat" (default) or "dog"
}

// Level is the static layout for one stage.
type Level struct {
	Name        string           `yaml:"name"`
	Platforms   []Platform       `yaml:"platforms"`
	Companions  []CompanionSpawn `yaml:"companions"`
	PlayerSpawn Vec              `yaml:"player_spawn"`
	EnemySpawn  Vec              `yaml:"enemy_spawn"`
	Goal        Vec              `yaml:"goal"`
	TargetCount int              `yaml:"target_count"`
}

// Config holds the whole campaign: exactly the two stages the progression
// machine knows how to walk.
type Config struct {
	Levels []Level `yaml:"levels"`
}

var (
	errNoLevels    = errors.New("level: config has no levels")
	errNoPlatforms = errors.New("level: level has no platforms")
)

// Parse decodes and validates a config document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("level: unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads a config file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", path, err)
	}
	return Parse(data)
}

// Validate rejects layouts the simulation cannot establish a grounded state
// on. These are the fatal init cases; everything else is a runtime guard.
func (c *Config) Validate() error {
	if c == nil || len(c.Levels) == 0 {
		return errNoLevels
	}
	for i := range c.Levels {
		l := &c.Levels[i]
		if len(l.Platforms) == 0 {
			return fmt.Errorf("%w (level %d %q)", errNoPlatforms, i, l.Name)
		}
		for j, p := range l.Platforms {
			if p.Half[0] <= 0 || p.Half[1] <= 0 || p.Half[2] <= 0 {
				return fmt.Errorf("level: level %d platform %d has non-positive half extents", i, j)
			}
		}
		if l.TargetCount < 0 {
			return fmt.Errorf("level: level %d has negative target count", i)
		}
		if l.TargetCount > len(l.Companions) {
			return fmt.Errorf("level: level %d target count %d exceeds %d companions", i, l.TargetCount, len(l.Companions))
		}
	}
	return nil
}

package internal

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Sub-hull counts only affect performance. The hull is the same for any value.
type Config struct {
	// Number of partitions for the 2D hull
	SubHullCount int `yaml:"sub_hull_count"`

	// Build sub-hulls on one goroutine per partition
	Parallel bool `yaml:"parallel"`

	// Partition counts for the 3D hull, by input size. The 3D builder is O(n^3)
	// in the worst case, so large inputs must be split into small partitions.
	// The tier with the largest MinPoints not exceeding the input size wins.
	SubHullTiers []SubHullTier `yaml:"sub_hull_tiers"`
}

type SubHullTier struct {
	MinPoints int `yaml:"min_points"`
	Count     int `yaml:"count"`
}

const DefaultSubHullCount = 1200

func DefaultConfig() Config {
	return Config{
		SubHullCount: DefaultSubHullCount,
		SubHullTiers: []SubHullTier{
			{MinPoints: 0, Count: 1},
			{MinPoints: 1000, Count: 100},
			{MinPoints: 10000, Count: 1000},
		},
	}
}

// Read a YAML config. Fields missing from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %q", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %q", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %q", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.SubHullCount < 1 {
		return errors.Errorf("sub_hull_count must be positive, got %d", c.SubHullCount)
	}
	if len(c.SubHullTiers) == 0 {
		return errors.New("sub_hull_tiers must not be empty")
	}
	if c.SubHullTiers[0].MinPoints != 0 {
		return errors.Errorf("first sub_hull_tiers entry must have min_points 0, got %d", c.SubHullTiers[0].MinPoints)
	}
	for i, tier := range c.SubHullTiers {
		if tier.Count < 1 {
			return errors.Errorf("sub_hull_tiers[%d].count must be positive, got %d", i, tier.Count)
		}
	}
	if !sort.SliceIsSorted(c.SubHullTiers, func(i, j int) bool {
		return c.SubHullTiers[i].MinPoints < c.SubHullTiers[j].MinPoints
	}) {
		return errors.New("sub_hull_tiers must be sorted by min_points")
	}
	return nil
}

// Partition count for a 3D input of n points
func (c Config) SubHullCount3D(n int) int {
	count := 1
	for _, tier := range c.SubHullTiers {
		if n >= tier.MinPoints {
			count = tier.Count
		}
	}
	return count
}

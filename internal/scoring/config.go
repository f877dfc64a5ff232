// internal/scoring/config.go
package scoring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"swalign/core/align"
)

// File is the YAML scoring override:
//
//	match: 2
//	mismatch: -1
//	gap: -1
//
// Omitted keys keep their defaults.
type File struct {
	Match    *int `yaml:"match"`
	Mismatch *int `yaml:"mismatch"`
	Gap      *int `yaml:"gap"`
}

// Load reads a scoring file and applies it over DefaultScoring.
func Load(path string) (align.Scoring, error) {
	sc := align.DefaultScoring
	raw, err := os.ReadFile(path)
	if err != nil {
		return sc, err
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return sc, fmt.Errorf("scoring %s: %w", path, err)
	}
	if f.Match != nil {
		sc.Match = *f.Match
	}
	if f.Mismatch != nil {
		sc.Mismatch = *f.Mismatch
	}
	if f.Gap != nil {
		sc.Gap = *f.Gap
	}
	if sc.Match <= 0 {
		return sc, fmt.Errorf("scoring %s: match must be > 0", path)
	}
	if sc.Mismatch >= 0 || sc.Gap >= 0 {
		return sc, fmt.Errorf("scoring %s: mismatch and gap must be < 0", path)
	}
	return sc, nil
}

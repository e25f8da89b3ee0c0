// Package yaml loads seolens configuration from YAML files.
// Missing files and missing fields fall back to built-in defaults, so a
// config file only needs to name the settings it overrides.
package yaml

import (
	"errors"
	"io/fs"
	"os"

	"github.com/seolens/seolens"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads the config file at path and merges it over the defaults.
// A missing file is not an error; it returns the defaults unchanged.
func LoadConfig(path string) (seolens.Config, error) {
	cfg := seolens.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	return merge(cfg, data)
}

// ParseConfig merges YAML bytes over the defaults.
func ParseConfig(data []byte) (seolens.Config, error) {
	return merge(seolens.DefaultConfig(), data)
}

func merge(cfg seolens.Config, data []byte) (seolens.Config, error) {
	var overlay seolens.Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return cfg, seolens.Errorf(seolens.EINVALID, "invalid config: %v", err)
	}

	if overlay.ThinWordLimit > 0 {
		cfg.ThinWordLimit = overlay.ThinWordLimit
	}
	if overlay.DuplicateThreshold > 0 {
		cfg.DuplicateThreshold = overlay.DuplicateThreshold
	}
	if overlay.RelatedTopN > 0 {
		cfg.RelatedTopN = overlay.RelatedTopN
	}
	if overlay.Concurrency > 0 {
		cfg.Concurrency = overlay.Concurrency
	}
	if overlay.RequestsPerSecond > 0 {
		cfg.RequestsPerSecond = overlay.RequestsPerSecond
	}
	if len(overlay.Selectors) > 0 {
		cfg.Selectors = overlay.Selectors
	}

	q := &cfg.Quality
	oq := overlay.Quality
	if oq.HighMinWords > 0 {
		q.HighMinWords = oq.HighMinWords
	}
	if oq.HighMinSentences > 0 {
		q.HighMinSentences = oq.HighMinSentences
	}
	if oq.HighMinReadingEase > 0 {
		q.HighMinReadingEase = oq.HighMinReadingEase
	}
	if oq.LowMaxWords > 0 {
		q.LowMaxWords = oq.LowMaxWords
	}
	if oq.LowMaxReadingEase > 0 {
		q.LowMaxReadingEase = oq.LowMaxReadingEase
	}

	return cfg, nil
}

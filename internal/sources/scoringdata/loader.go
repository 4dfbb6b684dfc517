// Package scoringdata loads the optional YAML file overriding the
// built-in market-knowledge tables (keywords, TLD rarity, training
// samples). The tables are stand-in sample data, so deployments can
// swap them without a rebuild.
package scoringdata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"domainsight/internal/domain"
)

// Loader handles loading and parsing of the scoring data file.
type Loader struct {
	filePath string
}

// NewLoader creates a loader for the given path. An empty path means
// "use the compiled-in defaults".
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load returns the scoring tables: compiled-in defaults, with any
// section present in the file replacing its default wholesale.
func (l *Loader) Load() (*domain.ScoringData, error) {
	data := domain.DefaultScoringData()
	if l.filePath == "" {
		return data, nil
	}

	raw, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scoring data file: %w", err)
	}

	var override domain.ScoringData
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return nil, fmt.Errorf("failed to parse scoring data yaml: %w", err)
	}

	if len(override.Keywords) > 0 {
		data.Keywords = override.Keywords
	}
	if len(override.TLDRarity) > 0 {
		data.TLDRarity = override.TLDRarity
	}
	if len(override.Samples) > 0 {
		data.Samples = override.Samples
	}

	if err := validate(data); err != nil {
		return nil, err
	}
	return data, nil
}

// validate enforces the table invariants: rarity in [0,1] and
// training rows with the full 5-feature arity (the array type already
// guarantees arity, so only labels and rarity need checking).
func validate(data *domain.ScoringData) error {
	for tld, rarity := range data.TLDRarity {
		if rarity < 0 || rarity > 1 {
			return fmt.Errorf("tld %q rarity %v out of [0,1]", tld, rarity)
		}
	}
	for i, sample := range data.Samples {
		if sample.Score < 0 || sample.Score > 100 {
			return fmt.Errorf("training sample %d score %v out of [0,100]", i, sample.Score)
		}
	}
	return nil
}

// Package catalog loads the static reward catalog: redeemable rewards, scratch cards and
// "would you like to add" recommendations.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/corray333/backend-labs/cafe/internal/service/models/reward"
	"github.com/corray333/backend-labs/cafe/internal/service/models/scratchcard"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

type Catalog struct {
	Rewards         []reward.Reward     `yaml:"rewards"`
	ScratchCards    []scratchcard.Card  `yaml:"scratch_cards"`
	Recommendations map[string][]string `yaml:"recommendations"`
}

// Parse decodes a YAML catalog.
func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return Catalog{}, err
	}

	return c, nil
}

// Load reads the catalog at path, or the built-in catalog when path is empty.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	return Parse(data)
}

// Reward finds a reward by id.
func (c Catalog) Reward(id int) (reward.Reward, bool) {
	for _, r := range c.Rewards {
		if r.ID == id {
			return r, true
		}
	}

	return reward.Reward{}, false
}

// ScratchCard finds a scratch card by id.
func (c Catalog) ScratchCard(id string) (scratchcard.Card, bool) {
	for _, card := range c.ScratchCards {
		if card.ID == id {
			return card, true
		}
	}

	return scratchcard.Card{}, false
}

func (c Catalog) validate() error {
	seen := make(map[string]struct{}, len(c.ScratchCards))
	for _, card := range c.ScratchCards {
		if card.ID == "" {
			return fmt.Errorf("scratch card %q has no id", card.Description)
		}
		if _, ok := seen[card.ID]; ok {
			return fmt.Errorf("duplicate scratch card id %q", card.ID)
		}
		seen[card.ID] = struct{}{}
	}

	for _, r := range c.Rewards {
		if r.PointsCost < 0 {
			return fmt.Errorf("reward %d has a negative cost", r.ID)
		}
	}

	return nil
}

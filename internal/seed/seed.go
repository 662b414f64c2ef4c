// Package seed loads heroes, powers and their associations from a YAML document.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/dom/superheroes-api/internal/domain"
	"github.com/dom/superheroes-api/internal/repository"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDocument []byte

type Document struct {
	Heroes     []HeroEntry      `yaml:"heroes"`
	Powers     []PowerEntry     `yaml:"powers"`
	HeroPowers []HeroPowerEntry `yaml:"hero_powers"`
}

type HeroEntry struct {
	Name      string `yaml:"name"`
	SuperName string `yaml:"super_name"`
}

type PowerEntry struct {
	Description string `yaml:"description"`
}

// HeroPowerEntry refers to heroes and powers by their 1-based position in the document.
type HeroPowerEntry struct {
	Hero     int    `yaml:"hero"`
	Power    int    `yaml:"power"`
	Strength string `yaml:"strength"`
}

// Result counts the rows written.
type Result struct {
	Heroes     int
	Powers     int
	HeroPowers int
}

// Default returns the embedded seed document.
func Default() (*Document, error) {
	return Parse(defaultDocument)
}

// Load reads a seed document from path, or the embedded one when path is empty.
func Load(path string) (*Document, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed document: %w", err)
	}
	return &doc, nil
}

// Run writes the document in one transaction. With reset, existing rows are
// removed first. Any invalid entry aborts the whole seed.
func Run(ctx context.Context, repos *repository.Repositories, doc *Document, reset bool) (*Result, error) {
	result := &Result{}

	err := repos.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
		if reset {
			if err := tx.HeroPower.DeleteAll(ctx); err != nil {
				return fmt.Errorf("failed to clear hero powers: %w", err)
			}
			if err := tx.Hero.DeleteAll(ctx); err != nil {
				return fmt.Errorf("failed to clear heroes: %w", err)
			}
			if err := tx.Power.DeleteAll(ctx); err != nil {
				return fmt.Errorf("failed to clear powers: %w", err)
			}
		}

		heroes := make([]*domain.Hero, len(doc.Heroes))
		for i, entry := range doc.Heroes {
			hero := domain.NewHero(entry.Name, entry.SuperName)
			if err := tx.Hero.Create(ctx, hero); err != nil {
				return fmt.Errorf("hero %d: %w", i+1, err)
			}
			heroes[i] = hero
		}

		powers := make([]*domain.Power, len(doc.Powers))
		for i, entry := range doc.Powers {
			power, err := domain.NewPower(entry.Description)
			if err != nil {
				return fmt.Errorf("power %d: %w", i+1, err)
			}
			if err := tx.Power.Create(ctx, power); err != nil {
				return fmt.Errorf("power %d: %w", i+1, err)
			}
			powers[i] = power
		}

		for i, entry := range doc.HeroPowers {
			if entry.Hero < 1 || entry.Hero > len(heroes) || entry.Power < 1 || entry.Power > len(powers) {
				return fmt.Errorf("hero power %d: %w", i+1, domain.ErrHeroOrPowerNotFound)
			}
			heroPower, err := domain.NewHeroPower(heroes[entry.Hero-1].ID, powers[entry.Power-1].ID, entry.Strength)
			if err != nil {
				return fmt.Errorf("hero power %d: %w", i+1, err)
			}
			if err := tx.HeroPower.Create(ctx, heroPower); err != nil {
				return fmt.Errorf("hero power %d: %w", i+1, err)
			}
		}

		result.Heroes = len(heroes)
		result.Powers = len(powers)
		result.HeroPowers = len(doc.HeroPowers)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

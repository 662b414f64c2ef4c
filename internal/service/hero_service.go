package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dom/superheroes-api/internal/domain"
	"github.com/dom/superheroes-api/internal/repository"
	"gorm.io/gorm"
)

type HeroService struct {
	repos *repository.Repositories
}

func NewHeroService(repos *repository.Repositories) *HeroService {
	return &HeroService{repos: repos}
}

// ListHeroes returns hero summaries ordered by id
func (s *HeroService) ListHeroes(ctx context.Context) ([]*domain.Hero, error) {
	return s.repos.Hero.List(ctx)
}

// GetHero returns the hero with its hero powers and their powers
func (s *HeroService) GetHero(ctx context.Context, id uint) (*domain.Hero, error) {
	hero, err := s.repos.Hero.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHeroNotFound
		}
		return nil, err
	}
	return hero, nil
}

// UpdateHero applies name and super_name independently when present and
// always commits when the hero exists
func (s *HeroService) UpdateHero(ctx context.Context, id uint, patch domain.HeroPatch) (*domain.Hero, error) {
	var updated *domain.Hero
	err := s.repos.Tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		hero, err := repos.Hero.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrHeroNotFound
			}
			return err
		}

		// null leaves the stored value as is
		if patch.Name.Set && !patch.Name.Null {
			hero.Name = patch.Name.Value
		}
		if patch.SuperName.Set && !patch.SuperName.Null {
			hero.SuperName = patch.SuperName.Value
		}

		if err := repos.Hero.Update(ctx, hero); err != nil {
			return fmt.Errorf("failed to update hero: %w", err)
		}
		updated = hero
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

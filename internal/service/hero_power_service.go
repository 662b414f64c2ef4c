package service

import (
	"context"
	"fmt"

	"github.com/dom/superheroes-api/internal/domain"
	"github.com/dom/superheroes-api/internal/repository"
)

type HeroPowerService struct {
	repos *repository.Repositories
}

func NewHeroPowerService(repos *repository.Repositories) *HeroPowerService {
	return &HeroPowerService{repos: repos}
}

// CreateHeroPower checks, in order: strength, then hero and power existence.
// The strength check runs before the store is touched.
func (s *HeroPowerService) CreateHeroPower(ctx context.Context, input domain.HeroPowerInput) (*domain.HeroPower, error) {
	heroPower, err := domain.NewHeroPower(input.HeroID, input.PowerID, input.Strength)
	if err != nil {
		return nil, err
	}

	var created *domain.HeroPower
	err = s.repos.Tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		if err := domain.ValidateHeroPowerReferences(ctx, input.HeroID, input.PowerID, repos.References()); err != nil {
			return err
		}

		if err := repos.HeroPower.Create(ctx, heroPower); err != nil {
			return fmt.Errorf("failed to create hero power: %w", err)
		}

		detail, err := repos.HeroPower.GetDetail(ctx, heroPower.ID)
		if err != nil {
			return fmt.Errorf("failed to load hero power: %w", err)
		}
		created = detail
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

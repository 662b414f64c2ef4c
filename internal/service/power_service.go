package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dom/superheroes-api/internal/domain"
	"github.com/dom/superheroes-api/internal/repository"
	"gorm.io/gorm"
)

type PowerService struct {
	repos *repository.Repositories
}

func NewPowerService(repos *repository.Repositories) *PowerService {
	return &PowerService{repos: repos}
}

func (s *PowerService) ListPowers(ctx context.Context) ([]*domain.Power, error) {
	return s.repos.Power.List(ctx)
}

func (s *PowerService) GetPower(ctx context.Context, id uint) (*domain.Power, error) {
	power, err := s.repos.Power.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPowerNotFound
		}
		return nil, err
	}
	return power, nil
}

// UpdatePower looks the power up before inspecting the patch, so a missing id
// always wins over an invalid description. Nothing is written on validation failure.
func (s *PowerService) UpdatePower(ctx context.Context, id uint, patch domain.PowerPatch) (*domain.Power, error) {
	var updated *domain.Power
	err := s.repos.Tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		power, err := repos.Power.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPowerNotFound
			}
			return err
		}

		if patch.Description.Set {
			if patch.Description.Null {
				return &domain.ValidationError{Field: "description", Message: "must not be null"}
			}
			desc, err := domain.ValidatePowerDescription(patch.Description.Value)
			if err != nil {
				return err
			}
			power.Description = desc
		}

		if err := repos.Power.Update(ctx, power); err != nil {
			return fmt.Errorf("failed to update power: %w", err)
		}
		updated = power
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

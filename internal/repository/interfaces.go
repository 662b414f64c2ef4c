package repository

import (
	"context"

	"github.com/dom/superheroes-api/internal/domain"
)

type HeroRepository interface {
	Create(ctx context.Context, hero *domain.Hero) error
	List(ctx context.Context) ([]*domain.Hero, error)
	GetByID(ctx context.Context, id uint) (*domain.Hero, error)
	GetDetail(ctx context.Context, id uint) (*domain.Hero, error)
	Update(ctx context.Context, hero *domain.Hero) error
	Exists(ctx context.Context, id uint) (bool, error)
	DeleteAll(ctx context.Context) error
}

type PowerRepository interface {
	Create(ctx context.Context, power *domain.Power) error
	List(ctx context.Context) ([]*domain.Power, error)
	GetByID(ctx context.Context, id uint) (*domain.Power, error)
	Update(ctx context.Context, power *domain.Power) error
	Exists(ctx context.Context, id uint) (bool, error)
	DeleteAll(ctx context.Context) error
}

type HeroPowerRepository interface {
	Create(ctx context.Context, heroPower *domain.HeroPower) error
	GetDetail(ctx context.Context, id uint) (*domain.HeroPower, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}

// Transactor runs fn against repositories bound to a single transaction.
// Returning an error from fn rolls everything back.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(repos *Repositories) error) error
}

type Repositories struct {
	Hero      HeroRepository
	Power     PowerRepository
	HeroPower HeroPowerRepository
	Tx        Transactor
}

// References adapts the hero and power repositories to domain.ReferenceLookup.
func (r *Repositories) References() domain.ReferenceLookup {
	return referenceLookup{heroes: r.Hero, powers: r.Power}
}

type referenceLookup struct {
	heroes HeroRepository
	powers PowerRepository
}

func (l referenceLookup) HeroExists(ctx context.Context, id uint) (bool, error) {
	return l.heroes.Exists(ctx, id)
}

func (l referenceLookup) PowerExists(ctx context.Context, id uint) (bool, error) {
	return l.powers.Exists(ctx, id)
}

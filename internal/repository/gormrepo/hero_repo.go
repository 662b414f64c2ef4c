package gormrepo

import (
	"context"

	"github.com/dom/superheroes-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type heroRepository struct {
	db *gorm.DB
}

func NewHeroRepository(db *gorm.DB) *heroRepository {
	return &heroRepository{db: db}
}

func (r *heroRepository) Create(ctx context.Context, hero *domain.Hero) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(hero).Error
}

func (r *heroRepository) List(ctx context.Context) ([]*domain.Hero, error) {
	heroes := []*domain.Hero{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&heroes).Error
	if err != nil {
		return nil, err
	}
	return heroes, nil
}

func (r *heroRepository) GetByID(ctx context.Context, id uint) (*domain.Hero, error) {
	var hero domain.Hero
	err := r.db.WithContext(ctx).First(&hero, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &hero, nil
}

func (r *heroRepository) GetDetail(ctx context.Context, id uint) (*domain.Hero, error) {
	var hero domain.Hero
	err := r.db.WithContext(ctx).
		Preload("HeroPowers", func(db *gorm.DB) *gorm.DB {
			return db.Order("hero_powers.id ASC")
		}).
		Preload("HeroPowers.Power").
		First(&hero, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	if hero.HeroPowers == nil {
		hero.HeroPowers = []domain.HeroPower{}
	}
	return &hero, nil
}

func (r *heroRepository) Update(ctx context.Context, hero *domain.Hero) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(hero).Error
}

func (r *heroRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Hero{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *heroRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&domain.Hero{}).Error
}

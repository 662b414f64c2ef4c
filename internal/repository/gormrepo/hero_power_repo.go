package gormrepo

import (
	"context"

	"github.com/dom/superheroes-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type heroPowerRepository struct {
	db *gorm.DB
}

func NewHeroPowerRepository(db *gorm.DB) *heroPowerRepository {
	return &heroPowerRepository{db: db}
}

func (r *heroPowerRepository) Create(ctx context.Context, heroPower *domain.HeroPower) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(heroPower).Error
}

func (r *heroPowerRepository) GetDetail(ctx context.Context, id uint) (*domain.HeroPower, error) {
	var heroPower domain.HeroPower
	err := r.db.WithContext(ctx).
		Preload("Hero").
		Preload("Power").
		First(&heroPower, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &heroPower, nil
}

func (r *heroPowerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.HeroPower{}).Count(&count).Error
	return count, err
}

func (r *heroPowerRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&domain.HeroPower{}).Error
}

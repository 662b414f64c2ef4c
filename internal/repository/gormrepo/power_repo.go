package gormrepo

import (
	"context"

	"github.com/dom/superheroes-api/internal/domain"
	"gorm.io/gorm"
)

type powerRepository struct {
	db *gorm.DB
}

func NewPowerRepository(db *gorm.DB) *powerRepository {
	return &powerRepository{db: db}
}

func (r *powerRepository) Create(ctx context.Context, power *domain.Power) error {
	return r.db.WithContext(ctx).Create(power).Error
}

func (r *powerRepository) List(ctx context.Context) ([]*domain.Power, error) {
	powers := []*domain.Power{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&powers).Error
	if err != nil {
		return nil, err
	}
	return powers, nil
}

func (r *powerRepository) GetByID(ctx context.Context, id uint) (*domain.Power, error) {
	var power domain.Power
	err := r.db.WithContext(ctx).First(&power, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &power, nil
}

func (r *powerRepository) Update(ctx context.Context, power *domain.Power) error {
	return r.db.WithContext(ctx).Save(power).Error
}

func (r *powerRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Power{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *powerRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&domain.Power{}).Error
}

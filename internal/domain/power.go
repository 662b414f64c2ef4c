package domain

import (
	"time"

	"gorm.io/gorm"
)

// MinDescriptionLength is the shortest description a Power may hold.
const MinDescriptionLength = 20

type Power struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Description string    `json:"description" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// TableName returns the table name for GORM
func (Power) TableName() string {
	return "powers"
}

// NewPower builds a Power after validating its description.
func NewPower(description string) (*Power, error) {
	desc, err := ValidatePowerDescription(description)
	if err != nil {
		return nil, err
	}
	return &Power{Description: desc}, nil
}

// BeforeSave keeps invalid descriptions out of the store regardless of the write path.
func (p *Power) BeforeSave(tx *gorm.DB) error {
	_, err := ValidatePowerDescription(p.Description)
	return err
}

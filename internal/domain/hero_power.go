package domain

import (
	"time"

	"gorm.io/gorm"
)

// Strength is how strongly a hero wields a power
type Strength string

const (
	StrengthStrong  Strength = "Strong"
	StrengthWeak    Strength = "Weak"
	StrengthAverage Strength = "Average"
)

// AllStrengths contains every accepted strength
var AllStrengths = []Strength{StrengthStrong, StrengthWeak, StrengthAverage}

// IsValid checks if a strength is one of the enumerated values
func (s Strength) IsValid() bool {
	switch s {
	case StrengthStrong, StrengthWeak, StrengthAverage:
		return true
	}
	return false
}

func (s Strength) String() string {
	return string(s)
}

// HeroPower links one hero and one power with a strength.
type HeroPower struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	HeroID    uint      `json:"hero_id" gorm:"not null;index"`
	PowerID   uint      `json:"power_id" gorm:"not null;index"`
	Strength  Strength  `json:"strength" gorm:"type:varchar(10);not null"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Hero  *Hero  `json:"hero,omitempty" gorm:"foreignKey:HeroID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Power *Power `json:"power,omitempty" gorm:"foreignKey:PowerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (HeroPower) TableName() string {
	return "hero_powers"
}

// NewHeroPower builds an association after validating its strength.
// Reference existence is checked against the store separately.
func NewHeroPower(heroID, powerID uint, strength string) (*HeroPower, error) {
	s, err := ValidateStrength(strength)
	if err != nil {
		return nil, err
	}
	return &HeroPower{HeroID: heroID, PowerID: powerID, Strength: s}, nil
}

// BeforeSave rejects rows whose strength is outside the enumeration.
func (hp *HeroPower) BeforeSave(tx *gorm.DB) error {
	_, err := ValidateStrength(string(hp.Strength))
	return err
}

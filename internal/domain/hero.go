package domain

import "time"

type Hero struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	SuperName string    `json:"super_name" gorm:"not null"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	HeroPowers []HeroPower `json:"hero_powers,omitempty" gorm:"foreignKey:HeroID"`
}

// TableName returns the table name for GORM
func (Hero) TableName() string {
	return "heroes"
}

// NewHero builds a Hero. Heroes carry no field rules beyond presence.
func NewHero(name, superName string) *Hero {
	return &Hero{Name: name, SuperName: superName}
}

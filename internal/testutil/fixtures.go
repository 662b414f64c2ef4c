package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/dom/superheroes-api/internal/domain"
	"gorm.io/gorm"
)

// HeroBuilder creates test heroes with a builder pattern
type HeroBuilder struct {
	name      string
	superName string
}

// NewHeroBuilder creates a new HeroBuilder with default values
func NewHeroBuilder() *HeroBuilder {
	return &HeroBuilder{
		name:      "Kamala Khan",
		superName: "Ms. Marvel",
	}
}

// WithName sets the hero's name
func (b *HeroBuilder) WithName(name string) *HeroBuilder {
	b.name = name
	return b
}

// WithSuperName sets the hero's super name
func (b *HeroBuilder) WithSuperName(superName string) *HeroBuilder {
	b.superName = superName
	return b
}

// Build creates the hero in the database
func (b *HeroBuilder) Build(t *testing.T, db *gorm.DB) *domain.Hero {
	t.Helper()

	hero := domain.NewHero(b.name, b.superName)
	if err := db.Create(hero).Error; err != nil {
		t.Fatalf("failed to create hero: %v", err)
	}
	return hero
}

// PowerBuilder creates test powers
type PowerBuilder struct {
	description string
}

// NewPowerBuilder creates a new PowerBuilder with a valid description
func NewPowerBuilder() *PowerBuilder {
	return &PowerBuilder{
		description: "gives the wielder super-human strengths",
	}
}

// WithDescription sets the description; it must still pass validation
func (b *PowerBuilder) WithDescription(description string) *PowerBuilder {
	b.description = description
	return b
}

// Build creates the power in the database
func (b *PowerBuilder) Build(t *testing.T, db *gorm.DB) *domain.Power {
	t.Helper()

	power, err := domain.NewPower(b.description)
	if err != nil {
		t.Fatalf("invalid power fixture: %v", err)
	}
	if err := db.Create(power).Error; err != nil {
		t.Fatalf("failed to create power: %v", err)
	}
	return power
}

// HeroPowerBuilder creates associations between existing heroes and powers
type HeroPowerBuilder struct {
	hero     *domain.Hero
	power    *domain.Power
	strength domain.Strength
}

// NewHeroPowerBuilder links hero and power with Average strength by default
func NewHeroPowerBuilder(hero *domain.Hero, power *domain.Power) *HeroPowerBuilder {
	return &HeroPowerBuilder{
		hero:     hero,
		power:    power,
		strength: domain.StrengthAverage,
	}
}

// WithStrength sets the strength
func (b *HeroPowerBuilder) WithStrength(strength domain.Strength) *HeroPowerBuilder {
	b.strength = strength
	return b
}

// Build creates the association in the database
func (b *HeroPowerBuilder) Build(t *testing.T, db *gorm.DB) *domain.HeroPower {
	t.Helper()

	heroPower, err := domain.NewHeroPower(b.hero.ID, b.power.ID, string(b.strength))
	if err != nil {
		t.Fatalf("invalid hero power fixture: %v", err)
	}
	if err := db.Create(heroPower).Error; err != nil {
		t.Fatalf("failed to create hero power: %v", err)
	}
	return heroPower
}

// SeedHeroes creates N test heroes in the database
func SeedHeroes(t *testing.T, db *gorm.DB, count int) []*domain.Hero {
	t.Helper()

	heroes := make([]*domain.Hero, count)
	for i := 0; i < count; i++ {
		heroes[i] = NewHeroBuilder().
			WithName(fmt.Sprintf("Test Hero %d", i)).
			WithSuperName(fmt.Sprintf("Captain Test %d", i)).
			Build(t, db)
	}
	return heroes
}

// SeedPowers creates N test powers in the database
func SeedPowers(t *testing.T, db *gorm.DB, count int) []*domain.Power {
	t.Helper()

	powers := make([]*domain.Power, count)
	for i := 0; i < count; i++ {
		powers[i] = NewPowerBuilder().
			WithDescription(fmt.Sprintf("test power number %d with a long enough description", i)).
			Build(t, db)
	}
	return powers
}

// NewJSONRequest creates an HTTP request with a JSON body.
// A string body is sent verbatim so tests can post malformed JSON.
func NewJSONRequest(t *testing.T, method, url string, body interface{}) *http.Request {
	t.Helper()

	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

// DoJSON sends a JSON request and returns the response
func DoJSON(t *testing.T, method, url string, body interface{}) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(NewJSONRequest(t, method, url, body))
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, url, err)
	}
	t.Cleanup(func() {
		resp.Body.Close()
	})
	return resp
}

package domain

import (
	"context"
	"unicode/utf8"
)

// ValidatePowerDescription accepts descriptions of at least MinDescriptionLength characters
// and returns the value unchanged.
func ValidatePowerDescription(value string) (string, error) {
	if utf8.RuneCountInString(value) < MinDescriptionLength {
		return "", newValidationError("description", "must be at least %d characters long", MinDescriptionLength)
	}
	return value, nil
}

// ValidateStrength accepts exactly Strong, Weak or Average.
func ValidateStrength(value string) (Strength, error) {
	s := Strength(value)
	if !s.IsValid() {
		return "", newValidationError("strength", "must be one of %v", AllStrengths)
	}
	return s, nil
}

// ReferenceLookup answers whether referenced rows exist.
type ReferenceLookup interface {
	HeroExists(ctx context.Context, id uint) (bool, error)
	PowerExists(ctx context.Context, id uint) (bool, error)
}

// ValidateHeroPowerReferences fails with ErrHeroOrPowerNotFound when either id is absent.
func ValidateHeroPowerReferences(ctx context.Context, heroID, powerID uint, lookup ReferenceLookup) error {
	ok, err := lookup.HeroExists(ctx, heroID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrHeroOrPowerNotFound
	}

	ok, err = lookup.PowerExists(ctx, powerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrHeroOrPowerNotFound
	}
	return nil
}

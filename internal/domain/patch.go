package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Optional tracks whether a JSON field was present, and whether it was null.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// UnmarshalJSON is only invoked for keys present in the document.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// PowerPatch is a partial update of a Power
type PowerPatch struct {
	Description Optional[string] `json:"description"`
}

// HeroPatch is a partial update of a Hero
type HeroPatch struct {
	Name      Optional[string] `json:"name"`
	SuperName Optional[string] `json:"super_name"`
}

// HeroPowerInput associates a hero with a power
type HeroPowerInput struct {
	Strength string
	HeroID   uint
	PowerID  uint
}

// HeroPowerRequest is the POST /hero_powers body. Fields stay raw until
// Resolve so any strength value can be judged before the ids are read.
type HeroPowerRequest struct {
	Strength json.RawMessage `json:"strength"`
	HeroID   json.RawMessage `json:"hero_id"`
	PowerID  json.RawMessage `json:"power_id"`
}

// Resolve checks strength first: anything other than one of the allowed
// strings is a ValidationError. Ids that are absent, negative or not
// integral cannot name a row and yield ErrHeroOrPowerNotFound.
func (r HeroPowerRequest) Resolve() (HeroPowerInput, error) {
	var strength string
	if err := json.Unmarshal(r.Strength, &strength); err != nil {
		return HeroPowerInput{}, newValidationError("strength", "must be one of %v", AllStrengths)
	}
	if _, err := ValidateStrength(strength); err != nil {
		return HeroPowerInput{}, err
	}

	heroID, ok := parseID(r.HeroID)
	if !ok {
		return HeroPowerInput{}, ErrHeroOrPowerNotFound
	}
	powerID, ok := parseID(r.PowerID)
	if !ok {
		return HeroPowerInput{}, ErrHeroOrPowerNotFound
	}

	return HeroPowerInput{Strength: strength, HeroID: heroID, PowerID: powerID}, nil
}

// parseID accepts a JSON number or a string of digits.
func parseID(raw json.RawMessage) (uint, bool) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return 0, false
	}

	var text string
	switch v := v.(type) {
	case json.Number:
		text = v.String()
	case string:
		text = v
	default:
		return 0, false
	}

	if id, err := strconv.ParseUint(text, 10, 0); err == nil {
		return uint(id), true
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f < 0 || f != math.Trunc(f) || f > math.MaxUint32 {
		return 0, false
	}
	return uint(f), true
}

package handlers

import "github.com/dom/superheroes-api/internal/domain"

type HeroResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	SuperName string `json:"super_name"`
}

type HeroDetailResponse struct {
	ID         uint                `json:"id"`
	Name       string              `json:"name"`
	SuperName  string              `json:"super_name"`
	HeroPowers []HeroPowerResponse `json:"hero_powers"`
}

type PowerResponse struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
}

// HeroPowerResponse nests hero and power when they were loaded.
type HeroPowerResponse struct {
	ID       uint           `json:"id"`
	HeroID   uint           `json:"hero_id"`
	PowerID  uint           `json:"power_id"`
	Strength string         `json:"strength"`
	Hero     *HeroResponse  `json:"hero,omitempty"`
	Power    *PowerResponse `json:"power,omitempty"`
}

func newHeroResponse(h *domain.Hero) HeroResponse {
	return HeroResponse{
		ID:        h.ID,
		Name:      h.Name,
		SuperName: h.SuperName,
	}
}

func newHeroDetailResponse(h *domain.Hero) HeroDetailResponse {
	resp := HeroDetailResponse{
		ID:         h.ID,
		Name:       h.Name,
		SuperName:  h.SuperName,
		HeroPowers: make([]HeroPowerResponse, len(h.HeroPowers)),
	}
	for i := range h.HeroPowers {
		resp.HeroPowers[i] = newHeroPowerResponse(&h.HeroPowers[i])
	}
	return resp
}

func newPowerResponse(p *domain.Power) PowerResponse {
	return PowerResponse{
		ID:          p.ID,
		Description: p.Description,
	}
}

func newHeroPowerResponse(hp *domain.HeroPower) HeroPowerResponse {
	resp := HeroPowerResponse{
		ID:       hp.ID,
		HeroID:   hp.HeroID,
		PowerID:  hp.PowerID,
		Strength: hp.Strength.String(),
	}
	if hp.Hero != nil {
		hero := newHeroResponse(hp.Hero)
		resp.Hero = &hero
	}
	if hp.Power != nil {
		power := newPowerResponse(hp.Power)
		resp.Power = &power
	}
	return resp
}

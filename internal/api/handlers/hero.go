package handlers

import (
	"errors"
	"net/http"

	"github.com/dom/superheroes-api/internal/domain"
	"github.com/dom/superheroes-api/internal/metrics"
	"github.com/dom/superheroes-api/internal/service"
)

type HeroHandler struct {
	heroService *service.HeroService
	metrics     *metrics.Collector
}

func NewHeroHandler(heroService *service.HeroService, m *metrics.Collector) *HeroHandler {
	return &HeroHandler{heroService: heroService, metrics: m}
}

func (h *HeroHandler) List(w http.ResponseWriter, r *http.Request) {
	heroes, err := h.heroService.ListHeroes(r.Context())
	if err != nil {
		logError(r, "hero.List", err).Msg("failed to list heroes")
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	resp := make([]HeroResponse, len(heroes))
	for i, hero := range heroes {
		resp[i] = newHeroResponse(hero)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *HeroHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgHeroNotFound)
		return
	}

	hero, err := h.heroService.GetHero(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrHeroNotFound) {
			writeError(w, http.StatusNotFound, msgHeroNotFound)
			return
		}
		logError(r, "hero.Get", err).Uint("hero_id", id).Msg("failed to get hero")
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, newHeroDetailResponse(hero))
}

// Update applies a partial update of name and super_name
func (h *HeroHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		NotFound(w, r)
		return
	}

	var patch domain.HeroPatch
	if err := decodeJSON(r, &patch); err != nil {
		// A missing hero wins over a malformed body
		if _, lookupErr := h.heroService.GetHero(r.Context(), id); errors.Is(lookupErr, domain.ErrNotFound) {
			NotFound(w, r)
			return
		}
		logWarn(r, "hero.Update", err).Uint("hero_id", id).Msg("malformed request body")
		writeError(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	hero, err := h.heroService.UpdateHero(r.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			NotFound(w, r)
		case domain.IsValidationError(err):
			h.metrics.RecordValidationFailure(validationField(err))
			logWarn(r, "hero.Update", err).Uint("hero_id", id).Msg("rejected hero update")
			writeValidationErrors(w)
		default:
			logError(r, "hero.Update", err).Uint("hero_id", id).Msg("failed to update hero")
			writeError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	writeJSON(w, http.StatusOK, newHeroResponse(hero))
}

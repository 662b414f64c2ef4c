package handlers

import (
	"errors"
	"net/http"

	"github.com/dom/superheroes-api/internal/domain"
	"github.com/dom/superheroes-api/internal/metrics"
	"github.com/dom/superheroes-api/internal/service"
)

type HeroPowerHandler struct {
	heroPowerService *service.HeroPowerService
	metrics          *metrics.Collector
}

func NewHeroPowerHandler(heroPowerService *service.HeroPowerService, m *metrics.Collector) *HeroPowerHandler {
	return &HeroPowerHandler{heroPowerService: heroPowerService, metrics: m}
}

// Create checks strength, then the hero and power references, before writing
func (h *HeroPowerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.HeroPowerRequest
	if err := decodeJSON(r, &req); err != nil {
		logWarn(r, "heroPower.Create", err).Msg("malformed request body")
		writeError(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	input, err := req.Resolve()
	var heroPower *domain.HeroPower
	if err == nil {
		heroPower, err = h.heroPowerService.CreateHeroPower(r.Context(), input)
	}
	if err != nil {
		switch {
		case domain.IsValidationError(err):
			h.metrics.RecordValidationFailure(validationField(err))
			logWarn(r, "heroPower.Create", err).RawJSON("strength", rawOrNull(req.Strength)).Msg("rejected hero power")
			writeValidationErrors(w)
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, msgHeroOrPowerMissing)
		default:
			logError(r, "heroPower.Create", err).
				Uint("hero_id", input.HeroID).
				Uint("power_id", input.PowerID).
				Msg("failed to create hero power")
			writeError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	h.metrics.RecordHeroPowerCreated()
	writeJSON(w, http.StatusOK, newHeroPowerResponse(heroPower))
}

func rawOrNull(raw []byte) []byte {
	if len(raw) == 0 {
		return []byte("null")
	}
	return raw
}

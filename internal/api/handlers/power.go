package handlers

import (
	"errors"
	"net/http"

	"github.com/dom/superheroes-api/internal/domain"
	"github.com/dom/superheroes-api/internal/metrics"
	"github.com/dom/superheroes-api/internal/service"
)

type PowerHandler struct {
	powerService *service.PowerService
	metrics      *metrics.Collector
}

func NewPowerHandler(powerService *service.PowerService, m *metrics.Collector) *PowerHandler {
	return &PowerHandler{powerService: powerService, metrics: m}
}

func (h *PowerHandler) List(w http.ResponseWriter, r *http.Request) {
	powers, err := h.powerService.ListPowers(r.Context())
	if err != nil {
		logError(r, "power.List", err).Msg("failed to list powers")
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	resp := make([]PowerResponse, len(powers))
	for i, p := range powers {
		resp[i] = newPowerResponse(p)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *PowerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		NotFound(w, r)
		return
	}

	power, err := h.powerService.GetPower(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			NotFound(w, r)
			return
		}
		logError(r, "power.Get", err).Uint("power_id", id).Msg("failed to get power")
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, newPowerResponse(power))
}

// Update changes the description; short descriptions are rejected without a write
func (h *PowerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		NotFound(w, r)
		return
	}

	var patch domain.PowerPatch
	if err := decodeJSON(r, &patch); err != nil {
		// A missing power wins over a malformed body
		if _, lookupErr := h.powerService.GetPower(r.Context(), id); errors.Is(lookupErr, domain.ErrNotFound) {
			NotFound(w, r)
			return
		}
		logWarn(r, "power.Update", err).Uint("power_id", id).Msg("malformed request body")
		writeError(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	power, err := h.powerService.UpdatePower(r.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			NotFound(w, r)
		case domain.IsValidationError(err):
			h.metrics.RecordValidationFailure(validationField(err))
			logWarn(r, "power.Update", err).Uint("power_id", id).Msg("rejected power update")
			writeValidationErrors(w)
		default:
			logError(r, "power.Update", err).Uint("power_id", id).Msg("failed to update power")
			writeError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	writeJSON(w, http.StatusOK, newPowerResponse(power))
}

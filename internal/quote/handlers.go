package quote

import (
	"encoding/json"
	"net/http"

	validator "github.com/go-playground/validator/v10"

	"github.com/carrierdesk/backend-carrier/internal/common"
	"github.com/carrierdesk/backend-carrier/internal/perks"
)

// Handler wires quote computation to HTTP.
type Handler struct {
	Svc      *Service
	Validate *validator.Validate
}

type computeRequest struct {
	Lines         []LineSelection `json:"lines" validate:"max=12,dive"`
	StreamingCost float64         `json:"streamingCost" validate:"gte=0"`
}

type perkCheckRequest struct {
	AllSelected []string `json:"allSelected"`
	CurrentLine []string `json:"currentLine"`
	Candidate   string   `json:"candidate" validate:"required"`
}

// Compute handles POST /api/v1/quotes. The response data is null when no
// line carries a plan selection.
func (h *Handler) Compute(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "quote service not configured", nil)
		return
	}
	var payload computeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	if err := h.validate(payload); err != nil {
		common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", "invalid quote input", validationDetails(err))
		return
	}
	res, err := h.Svc.Compute(r.Context(), payload.Lines, payload.StreamingCost)
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unable to compute quote", nil)
		return
	}
	if res == nil {
		common.JSON(w, http.StatusOK, map[string]any{"data": nil})
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": res})
}

// CheckPerk handles POST /api/v1/quotes/perk-check, exposing the cross-line
// exclusivity rule so the UI can disable taken perks.
func (h *Handler) CheckPerk(w http.ResponseWriter, r *http.Request) {
	var payload perkCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	if err := h.validate(payload); err != nil {
		common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", "candidate perk is required", validationDetails(err))
		return
	}
	valid := perks.IsSelectionValid(payload.AllSelected, payload.CurrentLine, payload.Candidate)
	common.JSON(w, http.StatusOK, map[string]any{"data": map[string]any{
		"perk":  payload.Candidate,
		"valid": valid,
	}})
}

func (h *Handler) validate(v any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(v)
}

func validationDetails(err error) any {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field())
	}
	return map[string]any{"fields": fields}
}

package analysis

import (
	"encoding/json"
	"errors"
	"net/http"

	validator "github.com/go-playground/validator/v10"

	"github.com/carrierdesk/backend-carrier/internal/common"
	"github.com/carrierdesk/backend-carrier/internal/pricing"
)

// Handler exposes the savings analysis endpoint.
type Handler struct {
	Svc      *Service
	Validate *validator.Validate
}

type compareRequest struct {
	MonthlyTotal  pricing.Dollars `json:"monthlyTotal" validate:"gte=0"`
	LineCount     int             `json:"lineCount" validate:"gte=1,lte=12"`
	StreamingCost pricing.Dollars `json:"streamingCost" validate:"gte=0"`
}

// Compare handles POST /api/v1/analysis/savings.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", "invalid bill summary", nil)
			return
		}
	}

	cmp, err := h.Svc.Compare(r.Context(), Bill{
		MonthlyTotal:  req.MonthlyTotal,
		LineCount:     req.LineCount,
		StreamingCost: req.StreamingCost,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": cmp})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		code := appErr.Code
		if code == "" {
			code = "INTERNAL"
		}
		common.JSONError(w, status, code, appErr.Message, appErr.Details)
		return
	}
	common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
}

package commission

import (
	"encoding/json"
	"errors"
	"net/http"

	validator "github.com/go-playground/validator/v10"

	"github.com/carrierdesk/backend-carrier/internal/common"
	"github.com/carrierdesk/backend-carrier/internal/obs"
	"github.com/carrierdesk/backend-carrier/internal/pricing"
)

// Handler exposes the commission catalog and estimate endpoints.
type Handler struct {
	Querier  Querier
	Validate *validator.Validate
}

type estimateRequest struct {
	Devices  []DeviceSelection `json:"devices" validate:"dive"`
	Services []string          `json:"services"`
}

type estimateResponse struct {
	Total pricing.Dollars `json:"total"`
}

// Devices handles GET /api/v1/commissions/devices.
func (h *Handler) Devices(w http.ResponseWriter, r *http.Request) {
	devices, err := h.Querier.Devices(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if devices == nil {
		devices = []DeviceContribution{}
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": devices})
}

// Services handles GET /api/v1/commissions/services.
func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	services, err := h.Querier.Services(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if services == nil {
		services = []ServiceContribution{}
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": services})
}

// Estimate handles POST /api/v1/commissions/estimate.
func (h *Handler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", "invalid estimate request", nil)
			return
		}
	}

	devices, err := h.Querier.Devices(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	services, err := h.Querier.Services(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	total := Estimate(req.Devices, req.Services, devices, services)
	obs.ObserveCommissionEstimate()
	common.JSON(w, http.StatusOK, map[string]any{"data": estimateResponse{Total: total}})
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

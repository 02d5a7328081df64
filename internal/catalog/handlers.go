package catalog

import (
	"errors"
	"net/http"

	"github.com/carrierdesk/backend-carrier/internal/common"
	"github.com/carrierdesk/backend-carrier/internal/perks"
)

// Handler exposes public catalog endpoints.
type Handler struct {
	Repo Repository
}

// Plans handles GET /api/v1/plans.
func (h *Handler) Plans(w http.ResponseWriter, r *http.Request) {
	if h.Repo == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog repository not configured", nil)
		return
	}
	plans, err := h.Repo.Plans(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if plans == nil {
		plans = []Plan{}
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": plans})
}

// Promotions handles GET /api/v1/promotions.
func (h *Handler) Promotions(w http.ResponseWriter, r *http.Request) {
	if h.Repo == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog repository not configured", nil)
		return
	}
	promos, err := h.Repo.Promotions(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if promos == nil {
		promos = []Promotion{}
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": promos})
}

// Perks handles GET /api/v1/perks. The perk catalog is fixed, so this never
// touches a collaborator.
func (h *Handler) Perks(w http.ResponseWriter, _ *http.Request) {
	common.JSON(w, http.StatusOK, map[string]any{"data": perks.Catalog})
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

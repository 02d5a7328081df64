package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carrierdesk/backend-carrier/internal/catalog"
)

type staticRepo struct {
	plans      []catalog.Plan
	promotions []catalog.Promotion
	err        error
}

func (s staticRepo) Plans(context.Context) ([]catalog.Plan, error) {
	return s.plans, s.err
}

func (s staticRepo) Promotions(context.Context) ([]catalog.Promotion, error) {
	return s.promotions, s.err
}

func TestPlansHandler(t *testing.T) {
	handler := catalog.Handler{Repo: staticRepo{plans: []catalog.Plan{
		{ID: "welcome", Name: "Unlimited Welcome", Type: catalog.PlanTypeConsumer},
	}}}

	rr := httptest.NewRecorder()
	handler.Plans(rr, httptest.NewRequest(http.MethodGet, "/api/v1/plans", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data []catalog.Plan `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	require.Equal(t, "Unlimited Welcome", resp.Data[0].Name)
}

func TestPlansHandlerEmptyList(t *testing.T) {
	handler := catalog.Handler{Repo: staticRepo{}}
	rr := httptest.NewRecorder()
	handler.Plans(rr, httptest.NewRequest(http.MethodGet, "/api/v1/plans", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"data":[]}`, rr.Body.String())
}

func TestPlansHandlerRepoFailure(t *testing.T) {
	handler := catalog.Handler{Repo: staticRepo{err: errors.New("db down")}}
	rr := httptest.NewRecorder()
	handler.Plans(rr, httptest.NewRequest(http.MethodGet, "/api/v1/plans", nil))
	require.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestPromotionsHandler(t *testing.T) {
	handler := catalog.Handler{Repo: staticRepo{promotions: []catalog.Promotion{
		{ID: "promo-1", Title: "Switcher credit"},
	}}}
	rr := httptest.NewRecorder()
	handler.Promotions(rr, httptest.NewRequest(http.MethodGet, "/api/v1/promotions", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data []catalog.Promotion `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
}

func TestPerksHandler(t *testing.T) {
	handler := catalog.Handler{}
	rr := httptest.NewRecorder()
	handler.Perks(rr, httptest.NewRequest(http.MethodGet, "/api/v1/perks", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data []struct {
			ID    string  `json:"id"`
			Price float64 `json:"price"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 9)
	for _, perk := range resp.Data {
		require.InDelta(t, 10.0, perk.Price, 0.001)
	}
}

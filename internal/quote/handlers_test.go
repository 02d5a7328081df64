package quote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/carrierdesk/backend-carrier/internal/catalog"
	"github.com/carrierdesk/backend-carrier/internal/quote"
)

type stubRepo struct {
	plans []catalog.Plan
	err   error
}

func (s *stubRepo) Plans(context.Context) ([]catalog.Plan, error) {
	return s.plans, s.err
}

func (s *stubRepo) Promotions(context.Context) ([]catalog.Promotion, error) {
	return nil, nil
}

func newHandler(repo catalog.Repository) *quote.Handler {
	return &quote.Handler{
		Svc:      &quote.Service{Repo: repo},
		Validate: validator.New(),
	}
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestComputeEndpoint(t *testing.T) {
	repo := &stubRepo{plans: []catalog.Plan{
		{ID: "unlimited-ultimate", Name: "Unlimited Ultimate"},
		{ID: "unlimited-welcome", Name: "Unlimited Welcome"},
	}}
	handler := newHandler(repo)

	rec := postJSON(t, handler.Compute, `{
		"lines": [
			{"planId": "unlimited-ultimate", "perks": ["disney"]},
			{"planId": "unlimited-welcome", "perks": []}
		],
		"streamingCost": 20
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data *quote.Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data)
	require.Len(t, resp.Data.LinePrices, 2)
	// Ultimate at 2 lines is 80, plus one perk.
	require.Equal(t, float64(90), resp.Data.LinePrices[0].Price)
	require.Equal(t, float64(55), resp.Data.LinePrices[1].Price)
	require.True(t, resp.Data.HasDiscount)
	require.Equal(t, resp.Data.Breakdown.Subtotal-resp.Data.Breakdown.Total, resp.Data.Breakdown.Discount)
}

func TestComputeEndpointNoSelection(t *testing.T) {
	handler := newHandler(&stubRepo{plans: []catalog.Plan{{ID: "p", Name: "Unlimited Plus"}}})

	rec := postJSON(t, handler.Compute, `{"lines": [{"planId": "", "perks": []}], "streamingCost": 5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "null", strings.TrimSpace(string(resp.Data)))
}

func TestComputeEndpointRejectsBadInput(t *testing.T) {
	handler := newHandler(&stubRepo{})

	rec := postJSON(t, handler.Compute, `{"lines": [], "streamingCost": -5}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = postJSON(t, handler.Compute, `not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	lines := make([]string, 13)
	for i := range lines {
		lines[i] = `{"planId": "p", "perks": []}`
	}
	rec = postJSON(t, handler.Compute, `{"lines": [`+strings.Join(lines, ",")+`], "streamingCost": 0}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestComputeEndpointRepositoryFailure(t *testing.T) {
	handler := newHandler(&stubRepo{err: context.DeadlineExceeded})

	rec := postJSON(t, handler.Compute, `{"lines": [{"planId": "p", "perks": []}], "streamingCost": 0}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPerkCheckEndpoint(t *testing.T) {
	handler := newHandler(&stubRepo{})

	rec := postJSON(t, handler.CheckPerk, `{"allSelected": ["disney"], "currentLine": [], "candidate": "disney"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data struct {
			Perk  string `json:"perk"`
			Valid bool   `json:"valid"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Data.Valid)

	rec = postJSON(t, handler.CheckPerk, `{"allSelected": ["netflix"], "currentLine": ["netflix"], "candidate": "netflix"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Data.Valid)

	rec = postJSON(t, handler.CheckPerk, `{"allSelected": [], "currentLine": [], "candidate": ""}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthcraft/advisor/internal/domain"
	"github.com/wealthcraft/advisor/internal/modules/allocation"
	"github.com/wealthcraft/advisor/internal/modules/proposal"
	"github.com/wealthcraft/advisor/internal/modules/recommendation"
	"github.com/wealthcraft/advisor/internal/modules/risk"
)

type staticCatalog struct{}

func (staticCatalog) Get(assetClass domain.AssetClass, vehicleType, riskLevel string) ([]domain.ProductCandidate, error) {
	return []domain.ProductCandidate{
		{Name: "Catalog " + vehicleType, Risk: riskLevel, ExpectedReturnPct: 11},
	}, nil
}

func setupRouter() *chi.Mux {
	log := zerolog.Nop()
	service := proposal.NewService(
		risk.NewScorer(),
		allocation.NewEngine(allocation.DefaultSubBucketPolicy(), log),
		recommendation.NewAssembler(nil, nil, staticCatalog{}, log),
		log,
	)
	r := chi.NewRouter()
	NewHandler(service, log).RegisterRoutes(r)
	return r
}

func TestHandleGenerate(t *testing.T) {
	router := setupRouter()

	body := `{
		"client_name": "Asha Mehta",
		"portfolio_size": 100000000,
		"manual_allocation": {"equity_pct": 60, "debt_pct": 40}
	}`
	req := httptest.NewRequest(http.MethodPost, "/proposals/", bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var p proposal.Proposal
	require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.Moderate, p.Risk.Category)
	assert.InDelta(t, 10, p.PortfolioCrore, 1e-9)
	assert.Contains(t, p.Narrative, "Asha Mehta")
}

func TestHandleGenerateMissingInput(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/proposals/", bytes.NewReader([]byte(`{"portfolio_size": 10000000}`)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Contains(t, resp["error"], "missing field")
}

func TestHandleGenerateDocument(t *testing.T) {
	router := setupRouter()

	body := `{
		"portfolio_size": 50000000,
		"manual_allocation": {"equity_pct": 80, "debt_pct": 20}
	}`
	req := httptest.NewRequest(http.MethodPost, "/proposals/document", bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "Investment Proposal for the client")
	assert.Contains(t, w.Body.String(), "Aggressive")
}

func TestHandleGenerateInvalidBody(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/proposals/", bytes.NewReader([]byte(`{`)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

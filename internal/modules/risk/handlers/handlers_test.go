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

	"github.com/wealthcraft/advisor/internal/modules/risk"
)

func setupRouter() *chi.Mux {
	handler := NewHandler(risk.NewScorer(), zerolog.Nop())
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandleScore(t *testing.T) {
	router := setupRouter()

	body := map[string]interface{}{
		"market_drop_reaction":    "buy_more",
		"max_acceptable_loss_pct": 30,
		"returns_preference":      "returns",
		"portfolio_style":         "aggressive_growth",
		"investment_horizon":      "long",
		"investment_knowledge":    "advanced",
		"age":                     30,
	}
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/risk/score", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var profile risk.Profile
	require.NoError(t, json.NewDecoder(w.Body).Decode(&profile))
	assert.GreaterOrEqual(t, profile.Score, risk.ScoreFloor)
	assert.LessOrEqual(t, profile.Score, risk.ScoreCap)
	assert.Equal(t, "UltraAggressive", string(profile.Category))
}

func TestHandleScoreMissingAge(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/risk/score", bytes.NewReader([]byte(`{"investment_horizon": "long"}`)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Contains(t, resp["error"], "missing field")
}

func TestHandleScoreInvalidBody(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/risk/score", bytes.NewReader([]byte(`not json`)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleManual(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/risk/manual", bytes.NewReader([]byte(`{"equity_pct": 75, "debt_pct": 25}`)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var profile risk.Profile
	require.NoError(t, json.NewDecoder(w.Body).Decode(&profile))
	assert.Equal(t, "Aggressive", string(profile.Category))
	assert.Empty(t, profile.Inconsistencies)
}

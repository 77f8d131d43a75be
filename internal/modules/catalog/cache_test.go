package catalog

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthcraft/advisor/internal/domain"
)

func setupCache(t *testing.T, ttl time.Duration) *CandidateCache {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cache := NewCandidateCache(db, ttl, zerolog.Nop())
	require.NoError(t, cache.Init())
	return cache
}

func testCandidates() []domain.ProductCandidate {
	return []domain.ProductCandidate{
		{Name: "Quality Compounders PMS", ExpectedReturnPct: 14, Risk: "Moderate", MinimumInvestment: 50 * domain.Lakh},
		{Name: "Growth Momentum PMS", ExpectedReturnPct: 16, Risk: "High", MinimumInvestment: 50 * domain.Lakh},
	}
}

func TestCacheStoreAndGet(t *testing.T) {
	cache := setupCache(t, time.Hour)

	require.NoError(t, cache.Store(domain.VehicleEquityPMS, testCandidates()))

	got, err := cache.GetIfFresh(domain.VehicleEquityPMS)
	require.NoError(t, err)
	assert.Equal(t, testCandidates(), got)
}

func TestCacheMissReturnsNil(t *testing.T) {
	cache := setupCache(t, time.Hour)

	got, err := cache.GetIfFresh(domain.VehicleDebtAIF)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheStoreOverwrites(t *testing.T) {
	cache := setupCache(t, time.Hour)

	require.NoError(t, cache.Store(domain.VehicleEquityMF, testCandidates()))
	replacement := []domain.ProductCandidate{{Name: "Nifty 50 Index Fund", ExpectedReturnPct: 11}}
	require.NoError(t, cache.Store(domain.VehicleEquityMF, replacement))

	got, err := cache.GetIfFresh(domain.VehicleEquityMF)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)
}

func TestCacheExpiry(t *testing.T) {
	cache := setupCache(t, time.Millisecond)

	require.NoError(t, cache.Store(domain.VehicleEquityPMS, testCandidates()))
	time.Sleep(1100 * time.Millisecond)

	got, err := cache.GetIfFresh(domain.VehicleEquityPMS)
	require.NoError(t, err)
	assert.Nil(t, got, "expired entries must read as a miss")

	deleted, err := cache.DeleteExpired()
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

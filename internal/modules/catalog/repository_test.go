package catalog

import (
	"database/sql"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/wealthcraft/advisor/internal/domain"
)

func setupRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewRepository(db, zerolog.Nop())
	require.NoError(t, repo.Init())
	return repo
}

func TestInitSeedsDefaultCatalog(t *testing.T) {
	repo := setupRepo(t)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, len(defaultCatalog), count)

	// Re-running Init must not duplicate the seed.
	require.NoError(t, repo.Init())
	count, err = repo.Count()
	require.NoError(t, err)
	assert.Equal(t, len(defaultCatalog), count)
}

func TestGetOrdersByExpectedReturn(t *testing.T) {
	repo := setupRepo(t)

	products, err := repo.Get(domain.AssetEquity, domain.VehicleEquityMF, "Low")
	require.NoError(t, err)
	require.NotEmpty(t, products)

	for i := 1; i < len(products); i++ {
		assert.GreaterOrEqual(t, products[i-1].ExpectedReturnPct, products[i].ExpectedReturnPct)
	}
}

func TestGetUnknownKeyReturnsEmpty(t *testing.T) {
	repo := setupRepo(t)

	products, err := repo.Get(domain.AssetEquity, "Crypto Fund", "Low")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestUpsertUpdatesExisting(t *testing.T) {
	repo := setupRepo(t)

	entry := Entry{
		AssetClass:  domain.AssetGoldSilver,
		VehicleType: domain.VehicleGoldSilverETF,
		RiskLevel:   "Moderate",
		Product: domain.ProductCandidate{
			Name:              "Gold ETF",
			Description:       "Updated description",
			ExpectedReturnPct: 9.5,
			Risk:              "Moderate",
			MinimumInvestment: 1000,
		},
	}
	require.NoError(t, repo.Upsert([]Entry{entry}))

	products, err := repo.Get(domain.AssetGoldSilver, domain.VehicleGoldSilverETF, "Moderate")
	require.NoError(t, err)

	var found bool
	for _, p := range products {
		if p.Name == "Gold ETF" {
			found = true
			assert.Equal(t, "Updated description", p.Description)
			assert.Equal(t, 9.5, p.ExpectedReturnPct)
		}
	}
	assert.True(t, found)

	// Upsert must not grow the table when the key already exists.
	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, len(defaultCatalog), count)
}

func TestSeedCoversAllVehiclesAndRiskLevels(t *testing.T) {
	repo := setupRepo(t)

	// Every vehicle must resolve products for the risk levels the assembler
	// can ask for, so catalog fallback never returns an empty mutual-fund set.
	for _, riskLevel := range []string{"Low", "Moderate", "High", "Very High"} {
		products, err := repo.Get(domain.AssetEquity, domain.VehicleEquityMF, riskLevel)
		require.NoError(t, err)
		assert.NotEmpty(t, products, "equity mutual funds at %s", riskLevel)

		products, err = repo.Get(domain.AssetDebt, domain.VehicleDebtMF, riskLevel)
		require.NoError(t, err)
		assert.NotEmpty(t, products, "debt mutual funds at %s", riskLevel)
	}
}

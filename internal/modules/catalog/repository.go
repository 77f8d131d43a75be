// Package catalog provides the static product catalog and the fetched
// candidate cache. The catalog is the fallback source of product
// recommendations when the external listing API is empty or unreachable.
package catalog

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wealthcraft/advisor/internal/database"
	"github.com/wealthcraft/advisor/internal/domain"
)

// Entry is a catalog row: a product keyed by (asset class, vehicle type,
// risk level).
type Entry struct {
	AssetClass  domain.AssetClass
	VehicleType string
	RiskLevel   string
	Product     domain.ProductCandidate
}

// Repository handles catalog database operations.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new catalog repository.
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "catalog").Logger(),
	}
}

// Init creates the catalog table and seeds it with the compiled-in defaults
// when empty.
func (r *Repository) Init() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS catalog_products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			asset_class TEXT NOT NULL,
			vehicle_type TEXT NOT NULL,
			risk_level TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			expected_return REAL NOT NULL DEFAULT 0,
			risk TEXT NOT NULL DEFAULT '',
			lock_in TEXT NOT NULL DEFAULT '',
			min_investment REAL NOT NULL DEFAULT 0,
			aum_crore REAL NOT NULL DEFAULT 0,
			UNIQUE(asset_class, vehicle_type, risk_level, name)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create catalog table: %w", err)
	}

	count, err := r.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := r.Upsert(defaultCatalog); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	r.log.Info().Int("entries", len(defaultCatalog)).Msg("Seeded product catalog")
	return nil
}

// Count returns the number of catalog entries.
func (r *Repository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM catalog_products").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count catalog products: %w", err)
	}
	return count, nil
}

// Get returns catalog products for an (asset class, vehicle type, risk level)
// key. An empty result is not an error.
func (r *Repository) Get(assetClass domain.AssetClass, vehicleType, riskLevel string) ([]domain.ProductCandidate, error) {
	rows, err := r.db.Query(`
		SELECT name, description, category, expected_return, risk, lock_in, min_investment, aum_crore
		FROM catalog_products
		WHERE asset_class = ? AND vehicle_type = ? AND risk_level = ?
		ORDER BY expected_return DESC, name
	`, string(assetClass), vehicleType, riskLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer rows.Close()

	var products []domain.ProductCandidate
	for rows.Next() {
		var p domain.ProductCandidate
		if err := rows.Scan(
			&p.Name,
			&p.Description,
			&p.Category,
			&p.ExpectedReturnPct,
			&p.Risk,
			&p.LockInPeriod,
			&p.MinimumInvestment,
			&p.AUMCrore,
		); err != nil {
			return nil, fmt.Errorf("failed to scan catalog product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog products: %w", err)
	}

	return products, nil
}

// Upsert inserts or updates catalog entries atomically.
func (r *Repository) Upsert(entries []Entry) error {
	return database.WithTransaction(r.db, func(tx *sql.Tx) error {
		for _, e := range entries {
			_, err := tx.Exec(`
				INSERT INTO catalog_products
					(asset_class, vehicle_type, risk_level, name, description, category,
					 expected_return, risk, lock_in, min_investment, aum_crore)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT(asset_class, vehicle_type, risk_level, name) DO UPDATE SET
					description = excluded.description,
					category = excluded.category,
					expected_return = excluded.expected_return,
					risk = excluded.risk,
					lock_in = excluded.lock_in,
					min_investment = excluded.min_investment,
					aum_crore = excluded.aum_crore
			`,
				string(e.AssetClass), e.VehicleType, e.RiskLevel,
				e.Product.Name, e.Product.Description, e.Product.Category,
				e.Product.ExpectedReturnPct, e.Product.Risk, e.Product.LockInPeriod,
				e.Product.MinimumInvestment, e.Product.AUMCrore,
			)
			if err != nil {
				return fmt.Errorf("failed to upsert catalog product %s: %w", e.Product.Name, err)
			}
		}
		return nil
	})
}

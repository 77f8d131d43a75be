package catalog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/wealthcraft/advisor/internal/domain"
)

// DefaultCandidateTTL is how long fetched candidate lists stay fresh.
const DefaultCandidateTTL = 24 * time.Hour

// CandidateCache stores fetched product candidate lists as msgpack blobs with
// an expiration timestamp, so repeated proposal requests within the TTL do
// not refetch from the external source.
type CandidateCache struct {
	db  *sql.DB
	ttl time.Duration
	log zerolog.Logger
}

// NewCandidateCache creates a new candidate cache. A zero ttl uses the default.
func NewCandidateCache(db *sql.DB, ttl time.Duration, log zerolog.Logger) *CandidateCache {
	if ttl <= 0 {
		ttl = DefaultCandidateTTL
	}
	return &CandidateCache{
		db:  db,
		ttl: ttl,
		log: log.With().Str("repo", "candidate_cache").Logger(),
	}
}

// Init creates the cache table.
func (c *CandidateCache) Init() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS candidate_cache (
			vehicle_type TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			expires_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create candidate cache table: %w", err)
	}
	return nil
}

// Store saves a candidate list with expiration = now + ttl.
func (c *CandidateCache) Store(vehicleType string, candidates []domain.ProductCandidate) error {
	data, err := msgpack.Marshal(candidates)
	if err != nil {
		return fmt.Errorf("failed to encode candidates: %w", err)
	}

	expiresAt := time.Now().Add(c.ttl).Unix()
	_, err = c.db.Exec(`
		INSERT INTO candidate_cache (vehicle_type, data, expires_at)
		VALUES (?, ?, ?)
		ON CONFLICT(vehicle_type) DO UPDATE SET
			data = excluded.data,
			expires_at = excluded.expires_at
	`, vehicleType, data, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to store candidates for %s: %w", vehicleType, err)
	}

	c.log.Debug().
		Str("vehicle_type", vehicleType).
		Int("count", len(candidates)).
		Msg("Cached product candidates")

	return nil
}

// GetIfFresh returns cached candidates only if they have not expired.
// A cache miss returns (nil, nil).
func (c *CandidateCache) GetIfFresh(vehicleType string) ([]domain.ProductCandidate, error) {
	var data []byte
	err := c.db.QueryRow(`
		SELECT data FROM candidate_cache
		WHERE vehicle_type = ? AND expires_at > ?
	`, vehicleType, time.Now().Unix()).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate cache for %s: %w", vehicleType, err)
	}

	var candidates []domain.ProductCandidate
	if err := msgpack.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("failed to decode cached candidates for %s: %w", vehicleType, err)
	}

	return candidates, nil
}

// DeleteExpired removes expired cache entries and returns the count.
func (c *CandidateCache) DeleteExpired() (int64, error) {
	result, err := c.db.Exec("DELETE FROM candidate_cache WHERE expires_at <= ?", time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired candidates: %w", err)
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}

package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/wealthcraft/advisor/internal/domain"
)

// ProductSource fetches candidate products for a vehicle type.
type ProductSource interface {
	FetchCandidates(ctx context.Context, vehicleType string, lookbackMonths int) ([]domain.ProductCandidate, error)
}

// refreshVehicles are the vehicle types warmed by the refresh job. Small
// portfolios only ever see mutual funds, but warming everything keeps request
// latency flat for large portfolios too.
var refreshVehicles = []string{
	domain.VehicleEquityMF,
	domain.VehicleEquityPMS,
	domain.VehicleEquityAIF,
	domain.VehicleGoldSilverETF,
	domain.VehicleDebtMF,
	domain.VehicleDirectDebt,
	domain.VehicleDebtAIF,
}

// RefreshJob warms the candidate cache off the request path. It is scheduled
// via cron and tolerates per-vehicle failures: a vehicle that cannot be
// refreshed simply keeps serving its previous (possibly stale) entry or the
// static catalog.
type RefreshJob struct {
	source         ProductSource
	cache          *CandidateCache
	lookbackMonths int
	timeout        time.Duration
	log            zerolog.Logger
}

// NewRefreshJob creates a new catalog refresh job.
func NewRefreshJob(source ProductSource, cache *CandidateCache, lookbackMonths int, log zerolog.Logger) *RefreshJob {
	return &RefreshJob{
		source:         source,
		cache:          cache,
		lookbackMonths: lookbackMonths,
		timeout:        2 * time.Minute,
		log:            log.With().Str("job", "catalog_refresh").Logger(),
	}
}

// Name returns the job name for scheduling and logging.
func (j *RefreshJob) Name() string {
	return "catalog_refresh"
}

// Run refreshes the candidate cache for every vehicle type. Individual
// vehicle failures are tolerated; the job only errors when no vehicle could
// be refreshed at all.
func (j *RefreshJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	var refreshed, failed int
	for _, vehicle := range refreshVehicles {
		candidates, err := j.source.FetchCandidates(ctx, vehicle, j.lookbackMonths)
		if err != nil {
			j.log.Warn().Err(err).Str("vehicle_type", vehicle).Msg("Refresh fetch failed")
			failed++
			continue
		}
		if len(candidates) == 0 {
			continue
		}
		if err := j.cache.Store(vehicle, candidates); err != nil {
			j.log.Error().Err(err).Str("vehicle_type", vehicle).Msg("Failed to cache candidates")
			failed++
			continue
		}
		refreshed++
	}

	if expired, err := j.cache.DeleteExpired(); err != nil {
		j.log.Warn().Err(err).Msg("Failed to clean expired cache entries")
	} else if expired > 0 {
		j.log.Info().Int64("deleted", expired).Msg("Cleaned up expired cache entries")
	}

	j.log.Info().Int("refreshed", refreshed).Int("failed", failed).Msg("Catalog refresh completed")

	if refreshed == 0 && failed > 0 {
		return fmt.Errorf("catalog refresh: all %d vehicle fetches failed", failed)
	}
	return nil
}

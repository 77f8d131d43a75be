package reliability

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// defaultRetentionDays bounds how long off-site backups are kept.
const defaultRetentionDays = 30

// BackupJob runs the backup service on a cron schedule.
type BackupJob struct {
	service       *BackupService
	retentionDays int
	timeout       time.Duration
	log           zerolog.Logger
}

// NewBackupJob creates a new backup job.
func NewBackupJob(service *BackupService, log zerolog.Logger) *BackupJob {
	return &BackupJob{
		service:       service,
		retentionDays: defaultRetentionDays,
		timeout:       10 * time.Minute,
		log:           log.With().Str("job", "catalog_backup").Logger(),
	}
}

// Name returns the job name for scheduling and logging.
func (j *BackupJob) Name() string {
	return "catalog_backup"
}

// Run creates and uploads a backup, then rotates old archives.
func (j *BackupJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if err := j.service.CreateAndUpload(ctx); err != nil {
		return err
	}

	if err := j.service.RotateOldBackups(ctx, j.retentionDays); err != nil {
		// Rotation failure leaves extra archives behind, not data loss
		j.log.Warn().Err(err).Msg("Backup rotation failed")
	}
	return nil
}

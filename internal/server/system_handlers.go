package server

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/wealthcraft/advisor/internal/database"
	"github.com/wealthcraft/advisor/internal/scheduler"
)

// SystemHandlers exposes process and database health information.
type SystemHandlers struct {
	log       zerolog.Logger
	dataDir   string
	databases []*database.DB
	sched     *scheduler.Scheduler
	startedAt time.Time
}

// NewSystemHandlers creates system monitoring handlers.
func NewSystemHandlers(log zerolog.Logger, dataDir string, catalogDB, cacheDB *database.DB, sched *scheduler.Scheduler) *SystemHandlers {
	return &SystemHandlers{
		log:       log.With().Str("handler", "system").Logger(),
		dataDir:   dataDir,
		databases: []*database.DB{catalogDB, cacheDB},
		sched:     sched,
		startedAt: time.Now(),
	}
}

// HandleSystemStatus reports CPU, memory, uptime and storage usage.
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	cpuPct, memPct := h.systemStats()

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
		"cpu_percent":    cpuPct,
		"memory_percent": memPct,
		"data_dir_mb":    h.dirSizeMB(h.dataDir),
	})
}

// HandleJobsStatus reports last-run state of all scheduled jobs.
func (h *SystemHandlers) HandleJobsStatus(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"jobs": h.sched.Statuses(),
	})
}

// HandleDatabaseStats reports per-database size and integrity.
func (h *SystemHandlers) HandleDatabaseStats(w http.ResponseWriter, r *http.Request) {
	stats := make([]map[string]interface{}, 0, len(h.databases))
	for _, db := range h.databases {
		entry := map[string]interface{}{
			"name":    db.Name(),
			"healthy": true,
		}
		if info, err := os.Stat(db.Path()); err == nil {
			entry["size_bytes"] = info.Size()
		}
		if err := db.HealthCheck(r.Context()); err != nil {
			entry["healthy"] = false
			entry["error"] = err.Error()
		}
		stats = append(stats, entry)
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"databases": stats,
	})
}

// systemStats samples CPU over a short window so the endpoint stays fast.
func (h *SystemHandlers) systemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}
	return cpuAvg, memStat.UsedPercent
}

func (h *SystemHandlers) dirSizeMB(dirPath string) float64 {
	var totalSize int64
	_ = filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			totalSize += info.Size()
		}
		return nil
	})
	return float64(totalSize) / 1024 / 1024
}

func (h *SystemHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

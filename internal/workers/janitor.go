package workers

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vheb/biomap/internal/logger"
)

// Janitor prunes stale rendered map artifacts from the maps directory. Maps
// are cheap to re-render on the next search, so removing old files bounds
// disk usage without losing data.
type Janitor struct {
	dir      string
	maxAge   time.Duration
	interval time.Duration
	logger   *logger.Logger
}

// NewJanitor constructs a [Janitor] scanning dir every interval and removing
// PNG artifacts older than maxAge.
func NewJanitor(dir string, maxAge, interval time.Duration, logger *logger.Logger) *Janitor {
	return &Janitor{
		dir:      dir,
		maxAge:   maxAge,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the janitor loop in a background goroutine.
func (j *Janitor) Run() {
	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for range ticker.C {
			j.Sweep()
		}
	}()
}

// Sweep removes every PNG artifact in the directory whose modification time
// is older than maxAge. A missing directory is not an error; it simply means
// no map has been rendered yet.
func (j *Janitor) Sweep() {
	entries, err := os.ReadDir(j.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			j.logger.Warn().Err(err).Str("dir", j.dir).Msg("janitor could not read maps directory")
		}
		return
	}

	cutoff := time.Now().Add(-j.maxAge)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".png") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			path := filepath.Join(j.dir, entry.Name())
			if err := os.Remove(path); err != nil {
				j.logger.Warn().Err(err).Str("path", path).Msg("janitor could not remove artifact")
				continue
			}
			j.logger.Debug().Str("path", path).Msg("stale map artifact removed")
		}
	}
}

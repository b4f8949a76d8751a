package workers

import (
	"github.com/vheb/biomap/internal/config"
	"github.com/vheb/biomap/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the application's background workers from the given
// configuration. Workers whose configuration disables them are not included.
func NewWorkers(cfg config.Workers, mapsDir string, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.JanitorInterval > 0 {
		w.workers = append(w.workers, NewJanitor(mapsDir, cfg.ArtifactMaxAge, cfg.JanitorInterval, logger))
	}

	return w
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

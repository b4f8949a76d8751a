package workers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vheb/biomap/internal/logger"
)

func TestJanitor_Sweep(t *testing.T) {
	dir := t.TempDir()

	stale := filepath.Join(dir, "Panthera_onca.png")
	fresh := filepath.Join(dir, "Brachyteles_arachnoides.png")
	other := filepath.Join(dir, "notes.txt")

	for _, path := range []string{stale, fresh, other} {
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}

	// Age the stale artifact and the unrelated file past the cutoff.
	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))
	require.NoError(t, os.Chtimes(other, old, old))

	j := NewJanitor(dir, 24*time.Hour, time.Hour, logger.Nop())
	j.Sweep()

	assert.NoFileExists(t, stale)
	assert.FileExists(t, fresh)
	assert.FileExists(t, other, "non-PNG files are never touched")
}

func TestJanitor_SweepMissingDir(t *testing.T) {
	j := NewJanitor(filepath.Join(t.TempDir(), "does-not-exist"), time.Hour, time.Hour, logger.Nop())

	// A maps directory that has not been created yet is not an error.
	j.Sweep()
}

package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.Governor.IncrementAudit(true)
	m.Governor.IncrementLaunch("launched")
	m.Synchronizer.IncrementDivergences()

	path := filepath.Join(t.TempDir(), "launchgate.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `launchgate_governor_audits_total{verdict="yes"} 1`)
	assert.Contains(t, out, `launchgate_governor_launch_attempts_total{result="launched"} 1`)
	assert.Contains(t, out, "launchgate_sync_divergences_total 1")
	assert.Contains(t, out, "go_goroutines")
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}

func TestWriteTextfile_BadPath(t *testing.T) {
	m := New()
	err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "out.prom"))
	require.Error(t, err)
}

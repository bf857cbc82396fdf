package ecosystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchgate/internal/domain"
	"launchgate/internal/synchronizer"
	"launchgate/pkg/platform/sentinel"
)

func TestLoadTransactions(t *testing.T) {
	t.Run("groups follow document order", func(t *testing.T) {
		eco, err := LoadTransactions(filepath.Join("testdata", "mixed.yaml"))
		require.NoError(t, err)

		groups := eco.Groups()
		require.Len(t, groups, 3)
		assert.Equal(t, []domain.Transaction{
			domain.NewTransaction("mining", 314159, true),
			domain.NewTransaction("exchange", 314159, true),
		}, groups[0])
		assert.Equal(t, []domain.Transaction{domain.NewTransaction("app", 1000, true)}, groups[1])
		assert.False(t, groups[2][0].Coin.IsPure(), "omitted pure flag means impure")

		assert.Equal(t, "wallet", eco.Name(0))
		assert.Equal(t, "dex", eco.Name(1))
		assert.Equal(t, "component-2", eco.Name(2))
		assert.Equal(t, "component-9", eco.Name(9))
	})

	t.Run("empty document is an empty ecosystem", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		eco, err := LoadTransactions(path)
		require.NoError(t, err)
		assert.Empty(t, eco.Groups())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTransactions(filepath.Join("testdata", "nope.yaml"))
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("components:\n  - name: a\n    txs: []\n"), 0o600))

		_, err := LoadTransactions(path)
		assert.ErrorIs(t, err, sentinel.ErrInvalidInput)
	})
}

func TestLoadSnapshot(t *testing.T) {
	t.Run("registers components", func(t *testing.T) {
		snap, err := LoadSnapshot(filepath.Join("testdata", "snapshot.yaml"))
		require.NoError(t, err)

		s := synchronizer.New(nil)
		snap.Register(s)
		assert.Equal(t, []string{"exchangeNode", "wallet"}, s.Components())

		report := s.Sync(context.Background())
		require.True(t, report.OK())
		require.Len(t, report.Divergences(), 1)
		out := report.Divergences()[0]
		assert.Equal(t, "exchangeNode", out.Name)
		assert.Equal(t, int64(1000), out.Value)
		assert.True(t, out.Reconciled)

		assert.Equal(t, int64(314159), snap.Components[1].Value, "reconcile applies the canonical value")
		assert.Empty(t, s.Sync(context.Background()).Divergences())
	})

	t.Run("duplicate names are rejected", func(t *testing.T) {
		_, err := LoadSnapshot(filepath.Join("testdata", "snapshot_duplicate.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, sentinel.ErrInvalidInput)
		assert.Contains(t, err.Error(), `duplicate component "wallet"`)
	})

	t.Run("registered components can still be replaced", func(t *testing.T) {
		snap, err := LoadSnapshot(filepath.Join("testdata", "snapshot.yaml"))
		require.NoError(t, err)

		s := synchronizer.New(nil)
		snap.Register(s)
		s.RegisterComponent("exchangeNode", synchronizer.StaticValue(314159))

		report := s.Sync(context.Background())
		assert.Empty(t, report.Divergences())
		assert.Equal(t, []string{"exchangeNode", "wallet"}, s.Components())
		assert.Equal(t, int64(1000), snap.Components[1].Value, "replaced provider is no longer reconciled")
	})

	t.Run("blank names are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blank.yaml")
		require.NoError(t, os.WriteFile(path, []byte("components:\n  - value: 1\n"), 0o600))

		_, err := LoadSnapshot(path)
		assert.ErrorIs(t, err, sentinel.ErrInvalidInput)
	})
}

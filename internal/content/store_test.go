package content_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nfrund/asidash/internal/content"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Static(t *testing.T) {
	def := content.Default()
	s := content.NewStore(def)

	assert.Same(t, def, s.Snapshot())
	assert.ErrorIs(t, s.Reload(), content.ErrContentNotConfigured)
}

func TestStore_ReloadSwapsSnapshot(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "home.json", []byte(sampleJSON), 0o644))

	s, err := content.OpenStore(fs, "home.json")
	require.NoError(t, err)
	assert.Equal(t, "Ada", s.Snapshot().User.FirstName)

	var results []error
	s.OnReload(func(err error) { results = append(results, err) })

	updated := strings.Replace(sampleJSON, `"Ada"`, `"Grace"`, 1)
	require.NoError(t, afero.WriteFile(fs, "home.json", []byte(updated), 0o644))
	require.NoError(t, s.Reload())
	assert.Equal(t, "Grace", s.Snapshot().User.FirstName)

	require.Len(t, results, 1)
	assert.NoError(t, results[0])
}

func TestStore_ReloadKeepsPreviousOnInvalidFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "home.json", []byte(sampleJSON), 0o644))

	s, err := content.OpenStore(fs, "home.json")
	require.NoError(t, err)
	before := s.Snapshot()

	require.NoError(t, afero.WriteFile(fs, "home.json", []byte(`{"site": {}}`), 0o644))
	err = s.Reload()

	assert.ErrorIs(t, err, content.ErrInvalidContent)
	assert.Same(t, before, s.Snapshot())
}

func TestOpenStore_InvalidFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "home.json", []byte(`not json`), 0o644))

	_, err := content.OpenStore(fs, "home.json")
	assert.ErrorIs(t, err, content.ErrInvalidContent)
}

func TestStore_WatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "home.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	s, err := content.OpenStore(afero.NewOsFs(), path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.StartWatcher(ctx, true))

	updated := strings.Replace(sampleJSON, `"Ada"`, `"Linus"`, 1)
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	require.Eventually(t, func() bool {
		return s.Snapshot().User.FirstName == "Linus"
	}, 5*time.Second, 20*time.Millisecond)
}

func TestStore_WatcherDisabled(t *testing.T) {
	s := content.NewStore(content.Default())

	assert.NoError(t, s.StartWatcher(context.Background(), false))
	assert.NoError(t, s.StartWatcher(context.Background(), true))
}

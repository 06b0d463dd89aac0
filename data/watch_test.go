package data

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.toml"), []byte(commandsTOML), 0o644))

	s, err := Open(afero.NewOsFs(), "", dir)
	require.NoError(t, err)
	require.Len(t, s.Current().Categories, 1)

	ctx, cancel := context.WithCancel(context.Background())
	reloaded := make(chan Bundle, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, s, zaptest.NewLogger(t), func(b Bundle) { reloaded <- b })
	}()

	// give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(musicYAML), 0o644))

	select {
	case b := <-reloaded:
		assert.Len(t, b.Categories, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after writing a data file")
	}
	assert.Len(t, s.Current().Categories, 2)

	cancel()
	require.NoError(t, <-done)
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.toml"), []byte(commandsTOML), 0o644))

	s, err := Open(afero.NewOsFs(), "", dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	reloaded := make(chan Bundle, 1)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, s, zap.NewNop(), func(b Bundle) { reloaded <- b })
	}()
	defer func() {
		cancel()
		<-done
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("draft"), 0o644))

	select {
	case <-reloaded:
		t.Fatal("reloaded on a non data file")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatchNeedsOSBackedStore(t *testing.T) {
	defer goleak.VerifyNone(t)

	fsys := memFS(t, map[string]string{"/data/a.toml": commandsTOML})
	s, err := Open(fsys, "", "/data")
	require.NoError(t, err)

	err = Watch(context.Background(), s, zap.NewNop(), nil)
	require.ErrorIs(t, err, ErrNotWatchable)

	err = Watch(context.Background(), Static(s.Current()), zap.NewNop(), nil)
	require.ErrorIs(t, err, ErrNotWatchable)
}

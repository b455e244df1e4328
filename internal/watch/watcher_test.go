package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/deidaraiorek/ptstem/internal/stemmer"
	"github.com/deidaraiorek/ptstem/internal/watch"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type countingInvalidator struct {
	n atomic.Int64
}

func (c *countingInvalidator) Invalidate() {
	c.n.Add(1)
}

func startWatcher(t *testing.T, target watch.Invalidator, paths ...string) {
	t.Helper()
	w, err := watch.New(target, paths...)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, w.Run(ctx))
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func TestWriteToWatchedFileInvalidates(t *testing.T) {
	dir := t.TempDir()
	stop := filepath.Join(dir, "stop.txt")
	require.NoError(t, os.WriteFile(stop, []byte("de\n"), 0o644))

	inv := &countingInvalidator{}
	startWatcher(t, inv, stop)

	require.NoError(t, os.WriteFile(stop, []byte("de\ncom\n"), 0o644))

	assert.Eventually(t, func() bool { return inv.n.Load() > 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestOtherFilesAreIgnored(t *testing.T) {
	dir := t.TempDir()
	stop := filepath.Join(dir, "stop.txt")
	require.NoError(t, os.WriteFile(stop, []byte("de\n"), 0o644))

	inv := &countingInvalidator{}
	startWatcher(t, inv, stop)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	assert.Never(t, func() bool { return inv.n.Load() > 0 }, 200*time.Millisecond, 10*time.Millisecond)
}

func TestStemmerPicksUpEditedList(t *testing.T) {
	dir := t.TempDir()
	entities := filepath.Join(dir, "entidades.txt")
	require.NoError(t, os.WriteFile(entities, []byte("Porto\n"), 0o644))

	s := stemmer.New()
	s.SetNamedEntities(entities)

	got, err := s.Stem("casas")
	require.NoError(t, err)
	assert.Equal(t, "cas", got)

	startWatcher(t, s, entities)
	require.NoError(t, os.WriteFile(entities, []byte("Porto\ncasas\n"), 0o644))

	assert.Eventually(t, func() bool {
		got, err := s.Stem("casas")
		return err == nil && got == "casas"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestNewSkipsEmptyPaths(t *testing.T) {
	w, err := watch.New(&countingInvalidator{}, "", "")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, w.Run(ctx))
}

package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLevelFile(t *testing.T) {
	assert.True(t, IsLevelFile("levels/01.yaml"))
	assert.True(t, IsLevelFile("levels/02.YML"))
	assert.True(t, IsLevelFile("levels/03.tmx"))
	assert.False(t, IsLevelFile("levels/notes.txt"))
	assert.False(t, IsLevelFile("levels/01.yaml~"))
}

func TestLevelWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewLevelWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01.yaml"), []byte("layout: [\"p\"]\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, "01.yaml", filepath.Base(name))
	case <-time.After(5 * time.Second):
		t.Fatal("no event for level file")
	}
}

func TestLevelWatcherReportsBurstOnceAfterLastWrite(t *testing.T) {
	dir := t.TempDir()
	w, err := NewLevelWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	path := filepath.Join(dir, "02.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout:\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("layout: [\"p\"]\n"), 0o644))
	lastWrite := time.Now()

	select {
	case name := <-w.Events:
		assert.Equal(t, "02.yaml", filepath.Base(name))
		assert.GreaterOrEqual(t, time.Since(lastWrite), settleDelay)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for level file")
	}

	select {
	case name := <-w.Events:
		t.Fatalf("second event for %s", name)
	case <-time.After(3 * settleDelay):
	}
}

func TestLevelWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewLevelWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
	assert.False(t, w.Changed())
}

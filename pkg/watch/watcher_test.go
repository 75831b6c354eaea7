package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryoflow/cryoflow/pkg/config"
	"github.com/cryoflow/cryoflow/pkg/models"
)

// fastConfig keeps the timing-sensitive tests quick without changing the
// debounce/stability ordering the watcher relies on.
func fastConfig() *config.WatcherConfig {
	return &config.WatcherConfig{
		WatchDebounce:      150 * time.Millisecond,
		ExistingDebounce:   100 * time.Millisecond,
		WatchStableFor:     50 * time.Millisecond,
		WatchStablePoll:    10 * time.Millisecond,
		ExistingStableFor:  20 * time.Millisecond,
		ExistingStablePoll: 10 * time.Millisecond,
		RescanInterval:     50 * time.Millisecond,
	}
}

func waitForEvent(t *testing.T, ch <-chan Event, timeout time.Duration) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatal("timed out waiting for watcher event")
		return Event{}
	}
}

func TestMatchesPattern(t *testing.T) {
	assert.True(t, matchesPattern("movie_0001.tiff", "*.tiff"))
	assert.True(t, matchesPattern("MOVIE_0001.TIFF", "*.tiff"))
	assert.True(t, matchesPattern("a.mrc", ".mrc"))
	assert.True(t, matchesPattern("a.eer", "eer"))
	assert.False(t, matchesPattern("movie_0001.tif", "*.tiff"))
	assert.False(t, matchesPattern("notes.txt", "*.tiff"))
}

func TestExistingModeEmptyDirectoryEmitsNoFilesOnce(t *testing.T) {
	svc := NewService(fastConfig())
	dir := t.TempDir()

	err := svc.Start(context.Background(), StartParams{
		SessionID: "sess-1",
		Directory: dir,
		Pattern:   "*.tiff",
		InputMode: models.InputModeExisting,
	})
	require.NoError(t, err)

	ev := waitForEvent(t, svc.Events(), 2*time.Second)
	assert.Equal(t, NoFiles, ev.Type)
	assert.Equal(t, "sess-1", ev.SessionID)

	// Exactly one emission, then the goroutine exits.
	select {
	case extra := <-svc.Events():
		t.Fatalf("unexpected second event: %+v", extra)
	case <-time.After(300 * time.Millisecond):
	}
	assert.False(t, svc.Active("sess-1"))
}

func TestExistingModeEmitsSnapshotAndStops(t *testing.T) {
	svc := NewService(fastConfig())
	dir := t.TempDir()
	for _, name := range []string{"m1.tiff", "m2.tiff", ".hidden.tiff", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("data"), 0o644))
	}
	sub := filepath.Join(dir, "grid1")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "m3.tiff"), []byte("data"), 0o644))

	err := svc.Start(context.Background(), StartParams{
		SessionID: "sess-2",
		Directory: dir,
		Pattern:   "*.tiff",
		InputMode: models.InputModeExisting,
	})
	require.NoError(t, err)

	ev := waitForEvent(t, svc.Events(), 5*time.Second)
	require.Equal(t, FilesAdded, ev.Type)
	assert.Len(t, ev.Files, 3)
	assert.Equal(t, 3, ev.Count)
	assert.Equal(t, 3, svc.FileCount("sess-2"))

	// One-shot: no live goroutine remains, but the known set survives for
	// FileCount queries.
	require.Eventually(t, func() bool { return !svc.Active("sess-2") },
		2*time.Second, 20*time.Millisecond)
	assert.Equal(t, 3, svc.FileCount("sess-2"))
}

func TestWatchModeDetectsNewStableFiles(t *testing.T) {
	svc := NewService(fastConfig())
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err := svc.Start(ctx, StartParams{
		SessionID: "sess-3",
		Directory: dir,
		Pattern:   "*.mrc",
		InputMode: models.InputModeWatch,
	})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "movie_a.mrc"), []byte("frame data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "movie_b.MRC"), []byte("frame data"), 0o644))

	ev := waitForEvent(t, svc.Events(), 5*time.Second)
	require.Equal(t, FilesAdded, ev.Type)
	assert.Len(t, ev.Files, 2)
	assert.Equal(t, 2, ev.Count)

	// A later arrival produces a second batch with a cumulative count.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "movie_c.mrc"), []byte("frame data"), 0o644))
	ev = waitForEvent(t, svc.Events(), 5*time.Second)
	require.Equal(t, FilesAdded, ev.Type)
	assert.Len(t, ev.Files, 1)
	assert.Equal(t, 3, ev.Count)

	svc.Stop("sess-3")
	assert.False(t, svc.Active("sess-3"))
	assert.Equal(t, 0, svc.FileCount("sess-3"))
}

func TestWatchModeIgnoresGrowingFileUntilStable(t *testing.T) {
	svc := NewService(fastConfig())
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, svc.Start(ctx, StartParams{
		SessionID: "sess-4",
		Directory: dir,
		Pattern:   "*.tiff",
		InputMode: models.InputModeWatch,
	}))

	// Keep appending past the stability window, then let the file settle.
	path := filepath.Join(dir, "partial.tiff")
	f, err := os.Create(path)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		_, err = f.WriteString("chunk of frame data\n")
		require.NoError(t, err)
		time.Sleep(20 * time.Millisecond)
	}
	require.NoError(t, f.Close())

	ev := waitForEvent(t, svc.Events(), 5*time.Second)
	require.Equal(t, FilesAdded, ev.Type)
	require.Len(t, ev.Files, 1)
	assert.Equal(t, path, ev.Files[0])

	svc.Stop("sess-4")
}

func TestRestartKeepsKnownSet(t *testing.T) {
	svc := NewService(fastConfig())
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.tiff"), []byte("data"), 0o644))

	p := StartParams{
		SessionID: "sess-6",
		Directory: dir,
		Pattern:   "*.tiff",
		InputMode: models.InputModeExisting,
	}
	require.NoError(t, svc.Start(context.Background(), p))

	ev := waitForEvent(t, svc.Events(), 5*time.Second)
	require.Equal(t, FilesAdded, ev.Type)
	require.Len(t, ev.Files, 1)
	require.Eventually(t, func() bool { return !svc.Active("sess-6") },
		2*time.Second, 20*time.Millisecond)

	// Restarting over the finished goroutine must not re-announce a.tiff;
	// only the file added between the runs is new.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.tiff"), []byte("data"), 0o644))
	require.NoError(t, svc.Start(context.Background(), p))

	ev = waitForEvent(t, svc.Events(), 5*time.Second)
	require.Equal(t, FilesAdded, ev.Type)
	require.Len(t, ev.Files, 1)
	assert.Equal(t, filepath.Join(dir, "b.tiff"), ev.Files[0])
	assert.Equal(t, 2, ev.Count)
}

func TestStartRejectsMissingDirectoryAndDuplicateSession(t *testing.T) {
	svc := NewService(fastConfig())
	dir := t.TempDir()

	err := svc.Start(context.Background(), StartParams{
		SessionID: "sess-5",
		Directory: filepath.Join(dir, "missing"),
		Pattern:   "*.tiff",
		InputMode: models.InputModeWatch,
	})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p := StartParams{
		SessionID: "sess-5",
		Directory: dir,
		Pattern:   "*.tiff",
		InputMode: models.InputModeWatch,
	}
	require.NoError(t, svc.Start(ctx, p))
	assert.Error(t, svc.Start(ctx, p))
	svc.Stop("sess-5")
}

package cli

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchFile_CallsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termine.csv")
	require.NoError(t, os.WriteFile(path, []byte("title\nA\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, 20*time.Millisecond, func() error {
			calls.Add(1)
			return nil
		})
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("title\nA\nB\n"), 0644))

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watchFile did not stop after cancel")
	}
}

func TestWatchFile_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "termine.csv")
	require.NoError(t, os.WriteFile(path, []byte("title\n"), 0644))

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	var calls atomic.Int32
	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = os.WriteFile(filepath.Join(dir, "other.csv"), []byte("x"), 0644)
	}()

	err := watchFile(ctx, path, 10*time.Millisecond, func() error {
		calls.Add(1)
		return nil
	})

	require.NoError(t, err)
	assert.Zero(t, calls.Load())
}

func TestStampOf_MissingFile(t *testing.T) {
	assert.Equal(t, fileStamp{}, stampOf(filepath.Join(t.TempDir(), "missing")))
}

package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) Resolver {
	t.Helper()
	r, err := New(t.TempDir())
	require.NoError(t, err)
	return r
}

func TestNew_MakesRootAbsolute(t *testing.T) {
	r, err := New("relative/project")
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(r.Root()))
	assert.Equal(t, filepath.Join(wd, "relative", "project"), r.Root())
}

func TestNew_EmptyRootIsWorkingDirectory(t *testing.T) {
	r, err := New("")
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, r.Root())
}

func TestDataPath_NoSegments(t *testing.T) {
	r := newTestResolver(t)

	assert.Equal(t, filepath.Join(r.Root(), "data"), r.DataPath())
	assert.Equal(t, r.DataDir(), r.DataPath())
}

func TestDataPath_Segments(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name     string
		segments []string
		want     string
	}{
		{"single file", []string{"train.csv"}, filepath.Join(r.Root(), "data", "train.csv")},
		{"nested", []string{"raw", "zinc", "a.smi"}, filepath.Join(r.Root(), "data", "raw", "zinc", "a.smi")},
		{"empty segment", []string{"", "x"}, filepath.Join(r.Root(), "data", "x")},
		{"dot dot collapses", []string{"..", "etc"}, filepath.Join(r.Root(), "etc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.DataPath(tt.segments...))
		})
	}
}

func TestDataPath_Deterministic(t *testing.T) {
	r := newTestResolver(t)

	first := r.DataPath("a", "b")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, r.DataPath("a", "b"))
	}
}

func TestDataPath_Associative(t *testing.T) {
	r := newTestResolver(t)

	assert.Equal(t,
		r.DataPath("a", "b", "c"),
		filepath.Join(r.DataPath("a"), "b", "c"),
	)
}

func TestDataPath_DoesNotTouchFilesystem(t *testing.T) {
	r := newTestResolver(t)

	_ = r.DataPath("nothing", "here")

	_, err := os.Stat(r.DataDir())
	assert.True(t, os.IsNotExist(err))
}

func TestDatabasePath(t *testing.T) {
	r := newTestResolver(t)
	assert.Equal(t, filepath.Join(r.Root(), "data", "molkit.db"), r.DatabasePath())
}

func TestEnsureDataDir(t *testing.T) {
	r := newTestResolver(t)

	require.NoError(t, r.EnsureDataDir())
	info, err := os.Stat(r.DataDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Second call is harmless
	assert.NoError(t, r.EnsureDataDir())
}

func TestDetectRoot(t *testing.T) {
	original := executable
	defer func() { executable = original }()

	dir := t.TempDir()
	binDir := filepath.Join(dir, "bin")
	require.NoError(t, os.MkdirAll(binDir, 0755))
	exe := filepath.Join(binDir, "molkit")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0755))
	executable = func() (string, error) { return exe, nil }

	root, err := DetectRoot()
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, want, root)
}

func TestDetectRoot_ExecutableError(t *testing.T) {
	original := executable
	defer func() { executable = original }()
	executable = func() (string, error) { return "", errors.New("no proc") }

	_, err := DetectRoot()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locating executable")
}

package fsutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestWriteAtomic_CreatesFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "led-gen.hpp")

	err := WriteAtomic(path, 0o644, func(w io.Writer) error {
		_, err := io.WriteString(w, "content\n")
		return err
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "content\n", string(data))
	require.Equal(t, []string{"led-gen.hpp"}, dirEntries(t, dir))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteAtomic_FailureLeavesNoNewFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "led-gen.hpp")
	boom := errors.New("boom")

	err := WriteAtomic(path, 0o644, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Empty(t, dirEntries(t, dir), "no artifact or temporary file may remain")
}

func TestWriteAtomic_FailureKeepsExistingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "led-gen.hpp")
	require.NoError(t, os.WriteFile(path, []byte("previous\n"), 0o644))

	err := WriteAtomic(path, 0o644, func(w io.Writer) error {
		_, _ = io.WriteString(w, "trunc")
		return errors.New("boom")
	})
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "previous\n", string(data))
	require.Equal(t, []string{"led-gen.hpp"}, dirEntries(t, dir))
}

func TestWriteAtomic_ReplacesExistingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "led-gen.hpp")
	require.NoError(t, os.WriteFile(path, []byte("previous\n"), 0o644))

	require.NoError(t, WriteAtomic(path, 0o644, func(w io.Writer) error {
		_, err := io.WriteString(w, "next\n")
		return err
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "next\n", string(data))
}

func TestWriteAtomic_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "led-gen.hpp")
	err := WriteAtomic(path, 0o644, func(io.Writer) error { return nil })
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

package mmap_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/netlistio/ingest/pkg/mmap"
	"github.com/stretchr/testify/require"
)

func TestOpenReadsFileContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netlist.sp")
	require.NoError(t, os.WriteFile(path, []byte("*title\nR1 a b 1k\n"), 0644))

	f, err := mmap.Open(path)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, "*title\nR1 a b 1k\n", string(f.Data))
}

func TestOpenEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.sp")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	f, err := mmap.Open(path)
	require.NoError(t, err)
	defer f.Close()

	require.Empty(t, f.Data)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := mmap.Open(filepath.Join(t.TempDir(), "missing.sp"))
	require.Error(t, err)
}

func TestSliceSentinelEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netlist.sp")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0644))

	f, err := mmap.Open(path)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []byte("456789"), f.Slice(4, -1))
	require.Equal(t, []byte("456"), f.Slice(4, 7))
}

func TestReadAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netlist.sp")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0644))

	f, err := mmap.Open(path)
	require.NoError(t, err)
	defer f.Close()

	buf := make([]byte, 5)
	n, err := f.ReadAt(buf, 6)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "world", string(buf))
}

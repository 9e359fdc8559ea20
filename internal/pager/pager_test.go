package pager

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_NonFileWriterPassesThrough(t *testing.T) {
	var buf bytes.Buffer

	w, err := Open("less", &buf)
	require.NoError(t, err)

	_, err = w.Write([]byte("reading"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, "reading", buf.String())
}

func TestOpen_RegularFilePassesThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	// A regular file is never a terminal, so the pager must not run
	w, err := Open("definitely-not-a-real-pager-binary", f)
	require.NoError(t, err)

	_, err = w.Write([]byte("reading"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "reading", string(data))
}

package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// mustOpen opens the named file and closes it when the test ends.
func mustOpen(t *testing.T, path string) *os.File {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

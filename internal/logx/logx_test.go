package logx_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"geodash/internal/logx"
)

func TestNewDisabled(t *testing.T) {
	log, err := logx.New("")
	require.NoError(t, err)
	require.NotNil(t, log)
	log.Info("dropped")
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geodash.log")
	log, err := logx.New(path)
	require.NoError(t, err)

	log.Info("hello")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "hello")
}

package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitLogger_WritesFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := InitLogger(dir, "farm-visit", false)
	require.NoError(t, err)

	logger.Info("Slot created")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "farm-visit.log"))
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"Slot created"`)
	require.Contains(t, string(data), `"app":"farm-visit"`)
}

func TestInitLogger_ConsoleOnly(t *testing.T) {
	logger, err := InitLogger("", "farm-visit", true)
	require.NoError(t, err)
	require.NotNil(t, logger)
}

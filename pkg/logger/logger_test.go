package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_File(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(LogOption{Format: FormatJSON, LogDir: dir, Level: "warn"}))

	Infof("[test] filtered %d", 1)
	Warnf("[test] kept %s", "warn")
	Errorf("[test] kept %s", "error")
	_ = Sync()

	content, err := os.ReadFile(filepath.Join(dir, defaultFileName))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "filtered")
	assert.Contains(t, string(content), `"msg":"[test] kept warn"`)
	assert.Contains(t, string(content), `"msg":"[test] kept error"`)
	assert.Contains(t, string(content), `"level":"warn"`)
}

func TestInit_Invalid(t *testing.T) {
	assert.Error(t, Init(LogOption{Level: "loud"}))
	assert.Error(t, Init(LogOption{Format: "xml"}))
}

func TestInit_Defaults(t *testing.T) {
	require.NoError(t, Init(LogOption{}))
	assert.NotNil(t, base)
	assert.NotNil(t, sugar)
	Debugf("[test] debug is below default level")
}

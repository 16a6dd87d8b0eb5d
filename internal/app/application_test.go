package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestApplication_Lifecycle(t *testing.T) {
	path := writeConfig(t, "app_name: TestAPI\nlogs:\n  enabled: false\n")

	a := New(path)
	require.NoError(t, a.Initialize())

	assert.True(t, a.IsRunning())
	assert.Equal(t, path, a.GetConfigPath())
	assert.Equal(t, "TestAPI", a.GetConfig().AppName)

	a.Shutdown()
	assert.False(t, a.IsRunning())
}

func TestApplication_InitializeErrors(t *testing.T) {
	err := New(filepath.Join(t.TempDir(), "missing.yaml")).Initialize()
	assert.ErrorContains(t, err, "failed to load configuration")

	path := writeConfig(t, "logs:\n  enabled: false\ncors:\n  allowed_methods: [FETCH]\n")
	a := New(path)
	err = a.Initialize()
	assert.ErrorContains(t, err, "invalid configuration")
	assert.False(t, a.IsRunning())
}

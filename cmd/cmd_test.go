package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		pidFile = ""
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestCheckCommand(t *testing.T) {
	path := writeConfig(t, "logs:\n  enabled: false\n")

	out, err := run(t, "check", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "host.docker.internal")
	assert.Contains(t, out, "http://localhost:3000")
	assert.Contains(t, out, "Configuration OK")

	bad := writeConfig(t, "cors:\n  allowed_methods: [FETCH]\n")
	_, err = run(t, "check", "--config", bad)
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestRoutesCommand(t *testing.T) {
	path := writeConfig(t, "logs:\n  enabled: false\n")

	out, err := run(t, "routes", "--config", path)
	require.NoError(t, err)
	for _, want := range []string{"/admin/", "schema-swagger-ui", "schema-redoc", "api-docs", "/api/v1/auth/login/"} {
		assert.Contains(t, out, want)
	}
}

func TestResolvePIDFile(t *testing.T) {
	path := writeConfig(t, "server:\n  pid_file: /tmp/from-config.pid\n")
	configPath = path
	t.Cleanup(func() { configPath = "conf/config.yaml" })

	assert.Equal(t, "/tmp/from-config.pid", resolvePIDFile())

	pidFile = "/tmp/from-flag.pid"
	t.Cleanup(func() { pidFile = "" })
	assert.Equal(t, "/tmp/from-flag.pid", resolvePIDFile())
}

func TestInitConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.yaml")
	t.Cleanup(func() { force = false })

	out, err := run(t, "init-config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote default configuration")
	assert.FileExists(t, path)

	_, err = run(t, "init-config", "--config", path)
	assert.ErrorContains(t, err, "already exists")

	out, err = run(t, "init-config", "--config", path, "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Backed up existing configuration")

	out, err = run(t, "check", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration OK")
}

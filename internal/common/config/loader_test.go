// internal/common/config/loader_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
app:
  name: "points-api"
  version: "2.3.0"
  environment: "test"

server:
  port: 9090
  read_timeout: 5000
  write_timeout: 5000
  shutdown_timeout: 15000
  allowed_origins:
    - "https://app.example.com"

rules:
  path: "testdata/rules.json"

logging:
  level: "debug"
  format: "console"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "points-api", cfg.App.Name)
	assert.Equal(t, "2.3.0", cfg.App.Version)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, ":9090", cfg.Server.Addr())
	assert.Equal(t, 5000, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "testdata/rules.json", cfg.Rules.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadFromFileAppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
app:
  name: "points-api"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10000, cfg.Server.ReadTimeout)
	assert.Equal(t, 10000, cfg.Server.WriteTimeout)
	assert.Equal(t, 30000, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "configs/rules.json", cfg.Rules.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stdout", cfg.Logging.Output)
}

func TestLoadFromFileDefaultAppName(t *testing.T) {
	cfg, err := LoadFromFile(writeConfigFile(t, `server: {port: 8081}`))
	require.NoError(t, err)
	assert.Equal(t, "auswo-calculator", cfg.App.Name)
}

func TestLoadFromFileInvalidPort(t *testing.T) {
	cfg, err := LoadFromFile(writeConfigFile(t, `
server:
  port: 99999
`))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestLoadFromFileExpandsEnvVars(t *testing.T) {
	t.Setenv("RULES_DIR", "/etc/points")

	cfg, err := LoadFromFile(writeConfigFile(t, `
rules:
  path: "${RULES_DIR}/rules.json"
`))
	require.NoError(t, err)
	assert.Equal(t, "/etc/points/rules.json", cfg.Rules.Path)
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 10*time.Second, GetDuration(10000))
	assert.Equal(t, 500*time.Millisecond, GetDuration(500))
	assert.Equal(t, time.Duration(0), GetDuration(0))
}

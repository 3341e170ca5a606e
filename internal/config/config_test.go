package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/pkg/populate"
)

func clearConnectionEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD", "DB_SSLMODE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	content := `connection:
  host: db.internal
  port: 5433
  username: etl
  database: marketplace
  sslmode: require
timeout: 5m
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Connection.Host)
	assert.Equal(t, 5433, cfg.Connection.Port)
	assert.Equal(t, "etl", cfg.Connection.Username)
	assert.Equal(t, "marketplace", cfg.Connection.Database)
	assert.Equal(t, "require", cfg.Connection.SSLMode)
	assert.Equal(t, "5m", cfg.Timeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("connection: [broken"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ConfigFileName)
}

func TestResolveConnection_FlagsWinOverEnvAndYAML(t *testing.T) {
	clearConnectionEnv(t)
	t.Setenv("DB_HOST", "env-host")
	t.Setenv("DB_PORT", "5434")

	projectCfg := &ProjectConfig{Connection: ConnectionConfig{
		Host: "yaml-host", Port: 5435, Username: "yaml-user", Database: "yaml-db",
	}}
	flags := Flags{Host: "flag-host", Port: 5436, Username: "flag-user", Database: "flag-db"}

	conn, err := ResolveConnection(flags, projectCfg)
	require.NoError(t, err)
	assert.Equal(t, "flag-host", conn.Host)
	assert.Equal(t, 5436, conn.Port)
	assert.Equal(t, "flag-user", conn.Username)
	assert.Equal(t, "flag-db", conn.Database)
}

func TestResolveConnection_EnvWinsOverYAML(t *testing.T) {
	clearConnectionEnv(t)
	t.Setenv("DB_HOST", "env-host")
	t.Setenv("DB_USER", "env-user")
	t.Setenv("DB_PASSWORD", "secret")

	projectCfg := &ProjectConfig{Connection: ConnectionConfig{
		Host: "yaml-host", Username: "yaml-user", Database: "yaml-db",
	}}

	conn, err := ResolveConnection(Flags{}, projectCfg)
	require.NoError(t, err)
	assert.Equal(t, "env-host", conn.Host)
	assert.Equal(t, "env-user", conn.Username)
	assert.Equal(t, "yaml-db", conn.Database)
	assert.Equal(t, "secret", conn.Password)
}

func TestResolveConnection_DefaultPort(t *testing.T) {
	clearConnectionEnv(t)

	conn, err := ResolveConnection(Flags{}, nil)
	require.NoError(t, err)
	assert.Equal(t, populate.DefaultPort, conn.Port)
}

func TestResolveConnection_InvalidEnvPort(t *testing.T) {
	clearConnectionEnv(t)
	t.Setenv("DB_PORT", "not-a-port")

	_, err := ResolveConnection(Flags{}, nil)
	assert.ErrorIs(t, err, populate.ErrInvalidConfig)
}

func TestResolveConnection_NilProjectConfig(t *testing.T) {
	clearConnectionEnv(t)
	t.Setenv("DB_HOST", "localhost")

	conn, err := ResolveConnection(Flags{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "localhost", conn.Host)
}

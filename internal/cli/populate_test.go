package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/pkg/populate"
)

func resetPopulateFlags(t *testing.T) {
	t.Helper()
	saved := populateFlags
	populateFlags = populateFlagValues{timeout: populate.DefaultTimeout}
	t.Cleanup(func() { populateFlags = saved })
}

func clearConnectionEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD", "DB_SSLMODE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestBuildPopulateConfig_FlagsAndDefaults(t *testing.T) {
	resetPopulateFlags(t)
	clearConnectionEnv(t)

	populateFlags.host = "localhost"
	populateFlags.database = "marketplace"
	populateFlags.username = "etl"
	populateFlags.test = true
	populateFlags.replace = true

	cfg, err := buildPopulateConfig("export.csv", false)
	require.NoError(t, err)

	assert.Equal(t, "export.csv", cfg.CSVPath)
	assert.True(t, cfg.UseTestTables)
	assert.True(t, cfg.ReplaceExisting)
	assert.Equal(t, "localhost", cfg.Connection.Host)
	assert.Equal(t, populate.DefaultPort, cfg.Connection.Port)
	assert.Equal(t, populate.DefaultTimeout, cfg.Timeout)
}

func TestBuildPopulateConfig_EnvFileSupplement(t *testing.T) {
	resetPopulateFlags(t)
	clearConnectionEnv(t)

	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("DB_HOST=env-host\nDB_PASSWORD=secret\n"), 0o644))
	populateFlags.envFile = envFile
	t.Cleanup(func() {
		require.NoError(t, os.Unsetenv("DB_HOST"))
		require.NoError(t, os.Unsetenv("DB_PASSWORD"))
	})

	cfg, err := buildPopulateConfig("export.csv", false)
	require.NoError(t, err)
	assert.Equal(t, "env-host", cfg.Connection.Host)
	assert.Equal(t, "secret", cfg.Connection.Password)
}

func TestBuildPopulateConfig_MissingEnvFile(t *testing.T) {
	resetPopulateFlags(t)
	clearConnectionEnv(t)

	populateFlags.envFile = filepath.Join(t.TempDir(), "nope.env")

	_, err := buildPopulateConfig("export.csv", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, populate.ErrInvalidConfig)
}

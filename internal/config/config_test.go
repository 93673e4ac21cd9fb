package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitReadsFileDefaultsAndEnv(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := []byte("server:\n  http:\n    port: \"9000\"\nstate:\n  driver: redis\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), cfg, 0o600))
	t.Setenv("POSTGRES_PASSWORD", "secret")

	require.NoError(t, Init(dir))

	assert.Equal(t, "9000", viper.GetString("server.http.port"))
	assert.Equal(t, "redis", viper.GetString("state.driver"))
	assert.Equal(t, 10, viper.GetInt("cafeapi.timeout_seconds"))
	assert.Equal(t, "secret", viper.GetString("postgres.password"))
}

func TestInitWithoutConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Init(t.TempDir()))
	assert.Equal(t, "memory", viper.GetString("state.driver"))
}

func TestInitRejectsBrokenConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [\n"), 0o600))

	assert.Error(t, Init(dir))
}

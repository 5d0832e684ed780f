package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every key Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "DB_PATH", "API_TOKEN", "BODY_LIMIT", "READ_TIMEOUT", "WRITE_TIMEOUT", "CONFIG_FILE"} {
		t.Setenv(k, "")
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_TOKEN", "secret")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "eggfarm.db", cfg.DBPath)
	assert.Equal(t, "secret", cfg.APIToken)
	assert.Equal(t, "1M", cfg.BodyLimit)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.WriteTimeout)
}

func TestLoad_MissingToken(t *testing.T) {
	clearEnv(t)

	_, err := Load(missingEnvFile(t))
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables already present, so unset them instead of blanking.
	os.Unsetenv("API_TOKEN")
	os.Unsetenv("PORT")
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("API_TOKEN=from-file\nPORT=9000\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("API_TOKEN")
		os.Unsetenv("PORT")
	})

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.APIToken)
	assert.Equal(t, "9000", cfg.Port)
}

func TestLoad_YAMLFillsUnsetValues(t *testing.T) {
	clearEnv(t)
	yamlFile := filepath.Join(t.TempDir(), "coop.yaml")
	body := "port: \"7000\"\ndb_path: /tmp/coop.db\napi_token: yaml-token\nread_timeout: 3s\n"
	require.NoError(t, os.WriteFile(yamlFile, []byte(body), 0o600))
	t.Setenv("CONFIG_FILE", yamlFile)
	t.Setenv("PORT", "7100")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, "7100", cfg.Port, "environment wins over file")
	assert.Equal(t, "/tmp/coop.db", cfg.DBPath)
	assert.Equal(t, "yaml-token", cfg.APIToken)
	assert.Equal(t, 3*time.Second, cfg.ReadTimeout)
}

func TestLoad_BadDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_TOKEN", "secret")
	t.Setenv("WRITE_TIMEOUT", "soon")

	_, err := Load(missingEnvFile(t))
	assert.Error(t, err)
}

func TestLoad_BodyLimit(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_TOKEN", "secret")

	t.Setenv("BODY_LIMIT", "10XB")
	_, err := Load(missingEnvFile(t))
	assert.ErrorContains(t, err, "BODY_LIMIT")

	t.Setenv("BODY_LIMIT", "256K")
	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, "256K", cfg.BodyLimit)
}

func TestAppConfig_StringRedactsToken(t *testing.T) {
	cfg := AppConfig{Port: "8080", APIToken: "hunter2"}
	assert.NotContains(t, cfg.String(), "hunter2")
}

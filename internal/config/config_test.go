package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ADDR", "STORAGE_DRIVER", "MUTATION_DELAY", "TOKEN_TTL", "STATE_KEY", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "persist:library", cfg.Storage.Key)
	assert.Equal(t, 2*time.Second, cfg.MutationDelay)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("MUTATION_DELAY", "0s")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, http://localhost:3000")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverRedis, cfg.Storage.Driver)
	assert.Zero(t, cfg.MutationDelay)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("duration", func(t *testing.T) {
		t.Setenv("MUTATION_DELAY", "soon")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "floppy")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestRequireSecret(t *testing.T) {
	assert.ErrorIs(t, Config{}.RequireSecret(), ErrMissingSecret)
	assert.NoError(t, Config{JWTSecret: "s"}.RequireSecret())
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".env"), []byte("DB_DSN=from_file\n"), 0644))

	t.Setenv("DB_DSN", "from_env")

	cwd, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	LoadEnvFiles()

	assert.Equal(t, "from_env", os.Getenv("DB_DSN"))
}

func TestRedactDSN(t *testing.T) {
	assert.Equal(t, "postgres://***@localhost:5432/library", RedactDSN("postgres://user:pw@localhost:5432/library"))
	assert.Equal(t, "library.db", RedactDSN("library.db"))
}

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortsense/internal/config"
	"sortsense/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "bedrock", cfg.Vision.Provider)
	assert.Equal(t, "textract", cfg.Vision.OCRProvider)
	assert.Equal(t, "snowflake", cfg.Warehouse.Driver)
	assert.Equal(t, "writer", cfg.Summary.Provider)
	assert.Equal(t, int64(20), cfg.S3.MaxFileSizeMB)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SORTSENSE_SERVER_PORT", ":9090")
	t.Setenv("SORTSENSE_VISION_MODEL_ID", "custom.vision-model-v2")
	t.Setenv("SORTSENSE_CORS_ALLOWED_ORIGINS", "https://app.example.com, https://ops.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "custom.vision-model-v2", cfg.Vision.ModelID)
	assert.Equal(t, []string{"https://app.example.com", "https://ops.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "3000")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Server.Port)
}

func TestLoad_ExplicitPortWinsOverPlatformPort(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("SORTSENSE_SERVER_PORT", ":9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestMode_DefaultsToLocalWithoutCredentials(t *testing.T) {
	cfg := &config.Config{}
	assert.Equal(t, domain.ModeLocal, cfg.Mode())
}

func TestMode_SnowflakeCredentialsEnableCloud(t *testing.T) {
	cfg := &config.Config{
		Warehouse: config.WarehouseConfig{
			Driver:   "snowflake",
			Account:  "acme-ops",
			User:     "loader",
			Password: "secret",
		},
	}
	assert.Equal(t, domain.ModeCloud, cfg.Mode())
}

func TestMode_PostgresCredentialsEnableCloud(t *testing.T) {
	cfg := &config.Config{
		Warehouse: config.WarehouseConfig{
			Driver: "postgres",
			PGHost: "db.internal",
			PGUser: "sortsense",
		},
	}
	assert.Equal(t, domain.ModeCloud, cfg.Mode())
}

func TestMode_OverrideBeatsCredentials(t *testing.T) {
	cfg := &config.Config{
		ModeOverride: "local",
		Warehouse: config.WarehouseConfig{
			Account:  "acme-ops",
			User:     "loader",
			Password: "secret",
		},
	}
	assert.Equal(t, domain.ModeLocal, cfg.Mode())

	cfg = &config.Config{ModeOverride: "cloud"}
	assert.Equal(t, domain.ModeCloud, cfg.Mode())
}

func TestPostgresDSN(t *testing.T) {
	w := config.WarehouseConfig{
		PGHost:    "db.internal",
		PGPort:    5432,
		PGUser:    "sortsense",
		PGPass:    "pw",
		PGName:    "sortsense",
		PGSSLMode: "require",
	}
	assert.Equal(t, "postgres://sortsense:pw@db.internal:5432/sortsense?sslmode=require", w.PostgresDSN())
}

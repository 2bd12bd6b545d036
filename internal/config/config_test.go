package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "Portugal", cfg.GeocodePais)
	assert.Equal(t, 10, cfg.GeocodeTimeoutSeconds)
	assert.Equal(t, "estufa.db", cfg.SQLitePath)
	assert.Equal(t, "produtores", cfg.FirestoreCollection)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "6001")
	t.Setenv("FIRESTORE_PROJECT_ID", "projeto-mapa")
	t.Setenv("STORAGE_BUCKET", "fotos-produtores")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 6001, cfg.Port)
	// Keys without defaults have to arrive too, otherwise the document
	// backend can never be selected from the environment alone
	assert.Equal(t, "projeto-mapa", cfg.FirestoreProjectID)
	assert.Equal(t, "fotos-produtores", cfg.StorageBucket)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

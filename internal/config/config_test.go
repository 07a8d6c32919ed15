package config

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/umalmyha/customer-accounts/internal/view"
)

func TestBuildDefaults(t *testing.T) {
	cfg, err := Build()
	require.NoError(t, err, "defaults must be valid")

	require.Equal(t, 3000, cfg.HTTPCfg.Port)
	require.Equal(t, 3010, cfg.GrpcCfg.Port)
	require.Equal(t, StoragePostgres, cfg.StorageCfg.Driver)
	require.Equal(t, 10*time.Minute, cfg.RedisCfg.TimeToLive)
	require.False(t, cfg.AuthEnabled(), "auth must be disabled without public key")
	require.False(t, cfg.CacheEnabled(), "cache must be disabled without redis address")
	require.Equal(t, "EdDSA", cfg.JwtCfg.SigningMethod.Alg())
}

func TestBuildStorage(t *testing.T) {
	t.Log("unsupported driver")
	{
		t.Setenv("STORAGE_DRIVER", "sqlite")
		_, err := Build()
		require.Error(t, err)
	}

	t.Log("memory driver without fixture")
	{
		t.Setenv("STORAGE_DRIVER", StorageMemory)
		_, err := Build()
		require.Error(t, err, "fixture file is required for memory storage")
	}

	t.Log("memory driver with fixture and redis")
	{
		t.Setenv("STORAGE_DRIVER", StorageMemory)
		t.Setenv("STORAGE_FIXTURE_FILE", "customers.json")
		t.Setenv("REDIS_ADDR", "localhost:6379")
		cfg, err := Build()
		require.NoError(t, err)
		require.Equal(t, "customers.json", cfg.StorageCfg.FixtureFile)
		require.True(t, cfg.CacheEnabled())
	}
}

func TestBuildJwtPublicKey(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(pub)
	require.NoError(t, err)

	keyFile := filepath.Join(t.TempDir(), "jwt.pub.pem")
	require.NoError(t, os.WriteFile(keyFile, pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), 0o600))

	t.Log("valid public key enables auth")
	{
		t.Setenv("AUTH_JWT_PUBLIC_KEY_FILE", keyFile)
		cfg, err := Build()
		require.NoError(t, err)
		require.True(t, cfg.AuthEnabled())
		require.Equal(t, pub, cfg.JwtCfg.PublicKey)
	}

	t.Log("missing key file")
	{
		t.Setenv("AUTH_JWT_PUBLIC_KEY_FILE", filepath.Join(t.TempDir(), "missing.pem"))
		_, err := Build()
		require.Error(t, err)
	}
}

func TestStore(t *testing.T) {
	t.Setenv("VIEW_COMMERCE_CUSTOMERS_SECTION_NAME", "sections.customers")
	cfg, err := Build()
	require.NoError(t, err)

	store := NewStore(cfg)
	require.Equal(t, "sections.customers", store.Get(view.CustomerSectionNameConfigKey))
	require.Empty(t, store.Get("unknown"))
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath
}

func TestLoadDefaultsToMemoryBackend(t *testing.T) {
	cfg, err := Load(writeConfig(t, `logLevel: "debug"`))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Backend != BackendMemory {
		t.Fatalf("backend = %q, want %q", cfg.Backend, BackendMemory)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("logLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SHOPDATA_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6380")
	t.Setenv("SHOPDATA_KEY_PREFIX", "demo")
	t.Setenv("SHOPDATA_NAVIGATION", "true")
	t.Setenv("SHOPDATA_LEGACY_RESEED", "1")
	t.Setenv("SHOPDATA_MEMORY_QUOTA_BYTES", "5242880")

	cfg, err := Load(writeConfig(t, `
backend: "file"
dataFile: "data/store.json"
redisAddr: "localhost:6379"
`))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Backend != BackendRedis {
		t.Fatalf("backend = %q, want redis", cfg.Backend)
	}
	if cfg.RedisAddr != "localhost:6380" {
		t.Fatalf("redisAddr = %q, want localhost:6380", cfg.RedisAddr)
	}
	if cfg.KeyPrefix != "demo" {
		t.Fatalf("keyPrefix = %q, want demo", cfg.KeyPrefix)
	}
	if !cfg.Navigation || !cfg.LegacyReseed {
		t.Fatalf("navigation=%v legacyReseed=%v, want both true", cfg.Navigation, cfg.LegacyReseed)
	}
	if cfg.MemoryQuotaBytes != 5242880 {
		t.Fatalf("memoryQuotaBytes = %d, want 5242880", cfg.MemoryQuotaBytes)
	}
	if cfg.DataFile != "data/store.json" {
		t.Fatalf("dataFile = %q", cfg.DataFile)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestValidateConfigRequiresBackendSettings(t *testing.T) {
	cases := []FileConfig{
		{Backend: BackendFile},
		{Backend: BackendRedis},
		{Backend: BackendPostgres},
		{Backend: BackendMongo},
		{Backend: BackendMinio, MinioEndpoint: "localhost:9000"},
		{Backend: "sqlite"},
		{Backend: BackendMemory, MemoryQuotaBytes: -1},
	}
	for _, cfg := range cases {
		if err := validateConfig(cfg); err == nil {
			t.Fatalf("validateConfig(%+v) expected error", cfg)
		}
	}
	if err := validateConfig(FileConfig{Backend: BackendNone}); err != nil {
		t.Fatalf("none backend should validate: %v", err)
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigPath is the default config file location.
const ConfigPath = "config.yaml"

// Backend names accepted in the backend field.
const (
	BackendNone     = "none"
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
	BackendMinio    = "minio"
)

// FileConfig represents configuration loaded from YAML.
type FileConfig struct {
	LogLevel         string `yaml:"logLevel"`
	Backend          string `yaml:"backend"`
	DataFile         string `yaml:"dataFile"`
	MemoryQuotaBytes int    `yaml:"memoryQuotaBytes"`
	KeyPrefix        string `yaml:"keyPrefix"`
	RedisAddr        string `yaml:"redisAddr"`
	RedisPassword    string `yaml:"redisPassword"`
	DatabaseURL      string `yaml:"databaseURL"`
	MongoURI         string `yaml:"mongoURI"`
	MongoDatabase    string `yaml:"mongoDatabase"`
	MongoCollection  string `yaml:"mongoCollection"`
	MinioEndpoint    string `yaml:"minioEndpoint"`
	MinioAccessKey   string `yaml:"minioAccessKey"`
	MinioSecretKey   string `yaml:"minioSecretKey"`
	MinioBucket      string `yaml:"minioBucket"`
	MinioUseSSL      bool   `yaml:"minioUseSSL"`
	Navigation       bool   `yaml:"navigation"`
	LegacyReseed     bool   `yaml:"legacyReseed"`
}

// Load reads config from path (defaults to config.yaml). Variables from an
// optional .env file are loaded first and never override the process
// environment.
func Load(path string) (FileConfig, error) {
	cfg := FileConfig{}
	if path == "" {
		path = ConfigPath
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if v := os.Getenv("SHOPDATA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.TrimSpace(v)
	}
	if v := os.Getenv("SHOPDATA_BACKEND"); v != "" {
		cfg.Backend = strings.TrimSpace(v)
	}
	if v := os.Getenv("SHOPDATA_DATA_FILE"); v != "" {
		cfg.DataFile = strings.TrimSpace(v)
	}
	if v := os.Getenv("SHOPDATA_MEMORY_QUOTA_BYTES"); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.MemoryQuotaBytes = n
		}
	}
	if v := os.Getenv("SHOPDATA_KEY_PREFIX"); v != "" {
		cfg.KeyPrefix = strings.TrimSpace(v)
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.RedisPassword = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		cfg.MongoURI = v
	}
	if v := os.Getenv("MINIO_ENDPOINT"); v != "" {
		cfg.MinioEndpoint = v
	}
	if v := os.Getenv("MINIO_ACCESS_KEY"); v != "" {
		cfg.MinioAccessKey = v
	}
	if v := os.Getenv("MINIO_SECRET_KEY"); v != "" {
		cfg.MinioSecretKey = v
	}
	if v := os.Getenv("MINIO_BUCKET"); v != "" {
		cfg.MinioBucket = v
	}
	if v := os.Getenv("MINIO_USE_SSL"); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			cfg.MinioUseSSL = b
		}
	}
	if v := os.Getenv("SHOPDATA_NAVIGATION"); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			cfg.Navigation = b
		}
	}
	if v := os.Getenv("SHOPDATA_LEGACY_RESEED"); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			cfg.LegacyReseed = b
		}
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendMemory
	}
	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validateConfig(cfg FileConfig) error {
	if cfg.MemoryQuotaBytes < 0 {
		return errors.New("config: memoryQuotaBytes must be >= 0")
	}
	switch cfg.Backend {
	case BackendNone, BackendMemory:
		return nil
	case BackendFile:
		if strings.TrimSpace(cfg.DataFile) == "" {
			return errors.New("config: dataFile is required for the file backend (set in config.yaml or SHOPDATA_DATA_FILE)")
		}
	case BackendRedis:
		if strings.TrimSpace(cfg.RedisAddr) == "" {
			return errors.New("config: redisAddr is required for the redis backend (set in config.yaml or REDIS_ADDR)")
		}
	case BackendPostgres:
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return errors.New("config: databaseURL is required for the postgres backend (set in config.yaml or DATABASE_URL)")
		}
	case BackendMongo:
		if strings.TrimSpace(cfg.MongoURI) == "" {
			return errors.New("config: mongoURI is required for the mongo backend (set in config.yaml or MONGO_URI)")
		}
	case BackendMinio:
		if strings.TrimSpace(cfg.MinioEndpoint) == "" || strings.TrimSpace(cfg.MinioBucket) == "" {
			return errors.New("config: minioEndpoint and minioBucket are required for the minio backend")
		}
	default:
		return fmt.Errorf("config: unknown backend %q", cfg.Backend)
	}
	return nil
}

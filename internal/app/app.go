package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"shopdata/internal/config"
	"shopdata/pkg/domain"
	"shopdata/pkg/env"
	"shopdata/pkg/session"
	"shopdata/pkg/storage"
	"shopdata/pkg/store"
)

// Config holds runtime configuration for the application core.
type Config struct {
	File config.FileConfig
	// Backend overrides the backend described by File when set.
	Backend   storage.Backend
	Navigator session.Navigator
	Logger    *slog.Logger
	Clock     func() time.Time
}

// App owns the single entity store and session holder of the process.
type App struct {
	Store    *store.DataStore
	Sessions *session.Holder
	backend  storage.Backend
	logger   *slog.Logger
}

// New opens the configured backend, restores or seeds the store and
// restores the session.
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	backend := cfg.Backend
	if backend == nil {
		var err error
		backend, err = OpenBackend(cfg.File)
		if err != nil {
			return nil, err
		}
	}

	nav := cfg.Navigator
	if nav == nil {
		nav = session.NavigatorFunc(func(path string) {
			logger.Info("navigate", "path", path)
		})
	}

	environment := env.Probe{Backend: backend, Navigation: cfg.File.Navigation}
	if backend != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		avail := env.ProbeAll(ctx, map[string]storage.Backend{cfg.File.Backend: backend})
		cancel()
		if !avail[cfg.File.Backend] {
			logger.Warn("storage backend unreachable, running in memory without persistence", "backend", cfg.File.Backend)
		}
	}

	storeOpts := []store.Option{store.WithLogger(logger), store.WithClock(cfg.Clock)}
	if cfg.File.LegacyReseed {
		storeOpts = append(storeOpts, store.WithLegacyReseed())
	}
	dataStore := store.New(backend, environment, storeOpts...)
	dataStore.Init()

	holder := session.New(backend, environment, nav, session.WithLogger(logger))
	holder.Restore()

	return &App{
		Store:    dataStore,
		Sessions: holder,
		backend:  backend,
		logger:   logger,
	}, nil
}

// OpenBackend builds the backend named in cfg. The none backend yields nil,
// which keeps everything in memory.
func OpenBackend(cfg config.FileConfig) (storage.Backend, error) {
	switch cfg.Backend {
	case config.BackendNone:
		return nil, nil
	case "", config.BackendMemory:
		return storage.NewMemoryBackend(cfg.MemoryQuotaBytes), nil
	case config.BackendFile:
		b, err := storage.NewFileBackend(cfg.DataFile)
		if err != nil {
			return nil, fmt.Errorf("init file backend: %w", err)
		}
		return b, nil
	case config.BackendRedis:
		b, err := storage.NewRedisBackend(cfg.RedisAddr, cfg.RedisPassword, cfg.KeyPrefix)
		if err != nil {
			return nil, fmt.Errorf("init redis backend: %w", err)
		}
		return b, nil
	case config.BackendPostgres:
		b, err := storage.NewGormBackend(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("init postgres backend: %w", err)
		}
		return b, nil
	case config.BackendMongo:
		b, err := storage.NewMongoBackend(cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection)
		if err != nil {
			return nil, fmt.Errorf("init mongo backend: %w", err)
		}
		return b, nil
	case config.BackendMinio:
		b, err := storage.NewMinioBackend(storage.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			Prefix:    cfg.KeyPrefix,
			UseSSL:    cfg.MinioUseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("init minio backend: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// SignIn checks the credentials against the store and, on success, makes the
// user the current session.
func (a *App) SignIn(email, password string) (domain.AuthUser, bool) {
	u, ok := a.Store.Authenticate(email, password)
	if !ok {
		a.logger.Info("sign in rejected")
		return domain.AuthUser{}, false
	}
	authUser := domain.AuthUserFrom(u)
	a.Sessions.Login(authUser)
	return authUser, true
}

// SignOut ends the current session.
func (a *App) SignOut() {
	a.Sessions.Logout()
}

// Close releases backend clients that hold connections.
func (a *App) Close() error {
	if c, ok := a.backend.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

package cli

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/beezer-app/beezer/internal/config"
	"github.com/beezer-app/beezer/internal/deezer"
	"github.com/beezer-app/beezer/internal/errmsg"
	"github.com/beezer-app/beezer/internal/loader"
	"github.com/beezer-app/beezer/internal/logger"
	"github.com/beezer-app/beezer/internal/store"
)

// runtime holds what every command needs.
type runtime struct {
	cfg    *config.Config
	log    *zap.Logger
	msgs   errmsg.Catalog
	store  store.Store // nil when it could not be opened
	loader *loader.Loader
}

// setup builds the logger, store, client and loader. console mirrors logs
// there; nil keeps them in the log file only.
func setup(ctx context.Context, cfg *config.Config, console io.Writer) (*runtime, error) {
	logFile, err := cfg.LogFile()
	if err != nil {
		logFile = ""
	}
	log, err := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		File:       logFile,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
		Console:    console,
	})
	if err != nil {
		return nil, err
	}

	msgs := errmsg.NewCatalog(cfg.Language)

	// A missing store degrades to always fetching.
	s, err := openStore(ctx, cfg)
	if err != nil {
		log.Warn("cache unavailable", zap.String("backend", cfg.Store.Backend), zap.Error(err))
		s = nil
	}

	client := deezer.New(cfg.APIBaseURL, deezer.WithTimeout(cfg.HTTPTimeout()))
	ld := loader.New(s, client, loader.Config{
		ArtistName: cfg.ArtistName,
		TrackLimit: cfg.TrackLimit,
		Messages:   msgs,
		Logger:     log,
	})

	return &runtime{cfg: cfg, log: log, msgs: msgs, store: s, loader: ld}, nil
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if cfg.UseRedis() {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return store.OpenRedis(ctx, store.RedisOptions{
			Addr:      cfg.Store.Redis.Addr,
			Password:  cfg.Store.Redis.Password,
			DB:        cfg.Store.Redis.DB,
			KeyPrefix: cfg.Store.Redis.KeyPrefix,
		})
	}
	return store.Open(cfg.Store.Path)
}

func (r *runtime) Close() {
	if r.store != nil {
		if err := r.store.Close(); err != nil {
			r.log.Warn("close cache", zap.Error(err))
		}
	}
	_ = r.log.Sync()
}

// Package env opens everything a runner needs: configuration, the logger,
// the medium, the identity provider, the per-identity store and the screens
// bound to it.
package env

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/academia/pkg/app"
	"tableflip.dev/academia/pkg/config"
	"tableflip.dev/academia/pkg/identity"
	"tableflip.dev/academia/pkg/learn"
	"tableflip.dev/academia/pkg/logging"
	"tableflip.dev/academia/pkg/screens"
	"tableflip.dev/academia/pkg/store"
)

// ResolveTimeout bounds the startup identity resolution.
const ResolveTimeout = 5 * time.Second

type Options struct {
	// Verbose enables debug logging.
	Verbose bool
	// LogToFile sends log output to the configured log file. The TUI and
	// the stdio MCP transport set it because they own stdout.
	LogToFile bool
	// Config overrides config.Load, mostly for tests.
	Config *config.Config
	// Medium overrides the medium built from Config, mostly for tests.
	Medium store.Medium
	// Querier overrides the GenAI querier.
	Querier learn.Querier
	Clock   screens.Clock
}

// Env is an opened academia environment.
type Env struct {
	Config   *config.Config
	Logger   *zap.Logger
	Medium   store.Medium
	Identity *identity.Mock
	Store    *app.Store
	Screens  *screens.Screens
}

// Open resolves the current identity and loads its data. A provider that
// does not answer within ResolveTimeout leaves the session as guest.
func Open(ctx context.Context, opts Options) (*Env, error) {
	cfg := opts.Config
	if cfg == nil {
		var err error
		if cfg, err = config.Load(); err != nil {
			return nil, err
		}
	}

	lo := logging.Options{Level: cfg.LogLevel, Verbose: opts.Verbose, Development: !opts.LogToFile}
	if opts.LogToFile {
		lo.File = cfg.LogPath()
	}
	logger, err := logging.New(lo)
	if err != nil {
		return nil, err
	}

	m := opts.Medium
	if m == nil {
		if m, err = store.Load(cfg); err != nil {
			_ = logger.Sync()
			return nil, err
		}
	}

	e := &Env{
		Config:   cfg,
		Logger:   logger,
		Medium:   m,
		Identity: identity.NewMock(m, logger.Named("identity")),
		Store:    app.New(m, logger.Named("store")),
	}

	id, err := identity.Resolve(ctx, e.Identity, ResolveTimeout)
	switch {
	case errors.Is(err, identity.ErrResolveTimeout):
		logger.Warn("identity resolution timed out, continuing as guest")
	case err != nil:
		logger.Warn("identity resolution failed, continuing as guest", zap.Error(err))
	}
	e.Store.SetIdentity(id)

	q := opts.Querier
	if q == nil {
		q = &learn.GenAI{APIKey: cfg.APIKey, Model: cfg.Model, Logger: logger.Named("learn")}
	}
	e.Screens = screens.New(e.Store, q, opts.Clock)
	return e, nil
}

// Close flushes the logger.
func (e *Env) Close() error {
	if e == nil || e.Logger == nil {
		return nil
	}
	// Sync on stderr returns EINVAL on some platforms; nothing to act on.
	_ = e.Logger.Sync()
	return nil
}


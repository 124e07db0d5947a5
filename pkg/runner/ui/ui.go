package ui

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"tableflip.dev/academia/pkg/runner/env"
	teaui "tableflip.dev/academia/pkg/tui/app"
)

// UI opens the full-screen dashboard over an opened environment.
type UI struct {
	Env *env.Env
}

func (d *UI) Do(ctx context.Context) error {
	if d.Env == nil {
		return errors.New("ui: no environment")
	}
	d.Env.Logger.Info("starting tui", zap.String("key", d.Env.Store.Key()))
	return teaui.Run(ctx, teaui.Options{
		Store:    d.Env.Store,
		Screens:  d.Env.Screens,
		Identity: d.Env.Identity,
		Logger:   d.Env.Logger.Named("tui"),
	})
}

// Package app implements the application layer for brot.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/brot/internal/core/domain"
	"go.trai.ch/brot/internal/core/ports"
	"go.trai.ch/brot/internal/engine/colorize"
	"go.trai.ch/brot/internal/engine/populator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	cacheStore   ports.CacheStore
	encoder      ports.ImageEncoder
	progress     ports.Progress
	watcher      ports.Watcher
	logger       ports.Logger
	stdout       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	store ports.CacheStore,
	encoder ports.ImageEncoder,
	progress ports.Progress,
	watcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		cacheStore:   store,
		encoder:      encoder,
		progress:     progress,
		watcher:      watcher,
		logger:       log,
		stdout:       os.Stdout,
	}
}

// WithOutput sets the writer reports are printed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// RenderOptions configures Render and Watch.
type RenderOptions struct {
	ConfigPath string
	// CachePath defaults to domain.DefaultCachePath.
	CachePath string
	// OutputPath defaults to domain.DefaultImagePath.
	OutputPath string
	// Workers below one select runtime.NumCPU().
	Workers int
	// Force ignores a persisted cache and recomputes every layer.
	Force bool
}

func (o RenderOptions) cachePath() string {
	if o.CachePath != "" {
		return o.CachePath
	}
	return domain.DefaultCachePath(o.ConfigPath)
}

func (o RenderOptions) outputPath() string {
	if o.OutputPath != "" {
		return o.OutputPath
	}
	return domain.DefaultImagePath(o.ConfigPath)
}

// Render loads the configuration, populates the cache unless a compatible one
// is persisted, and writes the colorized image.
// A failure to persist the cache is returned after the image has been written.
func (a *App) Render(ctx context.Context, opts RenderOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	cachePath := opts.cachePath()
	var cache *domain.Cache
	if !opts.Force {
		cache = a.cacheStore.Load(cachePath, cfg)
	}

	var dumpErr error
	if cache != nil && cache.Valid {
		a.logger.Info("using cache " + cachePath)
	} else {
		// Partial counts from an interrupted run are not resumable.
		cache = domain.NewCache(cfg)
		p := populator.New(
			populator.WithWorkers(opts.Workers),
			populator.WithSkipInterior(cfg.Population.SkipInterior),
			populator.WithProgress(a.progress),
		)
		if err := p.Populate(ctx, cache); err != nil {
			return zerr.Wrap(err, "population failed")
		}
		if err := a.cacheStore.Dump(cachePath, cache); err != nil {
			dumpErr = zerr.Wrap(err, "failed to persist cache")
		}
	}

	img, err := colorize.Image(ctx, cfg, cache)
	if err != nil {
		return zerr.Wrap(err, "colorization failed")
	}

	outputPath := opts.outputPath()
	if err := a.encoder.Encode(outputPath, img); err != nil {
		return zerr.Wrap(err, "failed to write image")
	}
	a.logger.Info(fmt.Sprintf("wrote %s (%dx%d)", outputPath, cfg.Dimensions.X, cfg.Dimensions.Y))

	return dumpErr
}

// Watch renders once and renders again whenever the configuration file changes.
// Force applies to the first render only. Render errors are logged and the loop
// continues until ctx is canceled.
func (a *App) Watch(ctx context.Context, opts RenderOptions) error {
	configPath := filepath.Clean(opts.ConfigPath)

	if err := a.watcher.Start(ctx, filepath.Dir(configPath)); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	a.renderLogged(ctx, opts)
	opts.Force = false
	a.logger.Info("watching " + configPath)

	for event := range a.watcher.Events() {
		if filepath.Clean(event.Path) != configPath || event.Operation == ports.OpRemove {
			continue
		}
		a.renderLogged(ctx, opts)
	}
	return nil
}

func (a *App) renderLogged(ctx context.Context, opts RenderOptions) {
	if err := a.Render(ctx, opts); err != nil && ctx.Err() == nil {
		a.logger.Error(err)
	}
}

// MaskOptions configures Mask.
type MaskOptions struct {
	ConfigPath string
	// OutputPath defaults to domain.DefaultMaskPath.
	OutputPath string
}

// Mask writes an image that paints the cardioid and period-2 bulb black.
func (a *App) Mask(_ context.Context, opts MaskOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = domain.DefaultMaskPath(opts.ConfigPath)
	}

	if err := a.encoder.Encode(outputPath, colorize.Mask(cfg.Area, cfg.Dimensions)); err != nil {
		return zerr.Wrap(err, "failed to write image")
	}
	a.logger.Info("wrote " + outputPath)
	return nil
}

// InspectOptions configures Inspect.
type InspectOptions struct {
	ConfigPath string
	// CachePath defaults to domain.DefaultCachePath.
	CachePath string
}

// Inspect prints the state of the cache for a configuration without populating it.
func (a *App) Inspect(_ context.Context, opts InspectOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	cachePath := RenderOptions{ConfigPath: opts.ConfigPath, CachePath: opts.CachePath}.cachePath()
	cache := a.cacheStore.Load(cachePath, cfg)

	return NewReport(opts.ConfigPath, cachePath, cfg, cache).Render(a.stdout)
}

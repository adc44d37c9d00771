// Package bootstrap wires settings, logging, and lifecycle-managed
// components into a runnable application shell. It loads configuration,
// builds the logger from it, registers the cloud component, and drives the
// component registry through startup, signal-aware run, and shutdown.
package bootstrap

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/kbukum/cloudkit/cloud"
	"github.com/kbukum/cloudkit/component"
	"github.com/kbukum/cloudkit/config"
	"github.com/kbukum/cloudkit/logger"
	"github.com/kbukum/cloudkit/version"
)

// defaultGracefulTimeout bounds shutdown after a stop signal.
const defaultGracefulTimeout = 15 * time.Second

// App is an application shell around the component registry. The cloud
// component is always registered first; additional components start after it
// in registration order.
type App struct {
	Name       string
	Settings   config.Settings
	Logger     *logger.Logger
	Components *component.Registry

	cloudComp       *cloud.Component
	gracefulTimeout time.Duration
}

type options struct {
	settings        config.Settings
	log             *logger.Logger
	loaderOpts      []config.LoaderOption
	gracefulTimeout time.Duration
}

// Option customizes App construction.
type Option func(*options)

// WithSettings supplies a pre-built settings source, skipping config.Load.
func WithSettings(s config.Settings) Option {
	return func(o *options) { o.settings = s }
}

// WithLogger supplies a pre-built logger, skipping logger construction from
// settings.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithLoaderOptions forwards options to config.Load.
func WithLoaderOptions(opts ...config.LoaderOption) Option {
	return func(o *options) { o.loaderOpts = append(o.loaderOpts, opts...) }
}

// WithGracefulTimeout overrides the shutdown deadline used by Run.
func WithGracefulTimeout(d time.Duration) Option {
	return func(o *options) { o.gracefulTimeout = d }
}

// New creates an application shell named name. Settings come from
// config.Load unless supplied; the logger is built from the settings'
// logging section unless supplied.
func New(name string, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	settings := o.settings
	if settings == nil {
		loaded, err := config.Load(name, o.loaderOpts...)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: load settings: %w", err)
		}
		settings = loaded
	}

	log := o.log
	if log == nil {
		log = newLogger(settings, name)
	}

	gracefulTimeout := o.gracefulTimeout
	if gracefulTimeout <= 0 {
		gracefulTimeout = defaultGracefulTimeout
	}

	app := &App{
		Name:            name,
		Settings:        settings,
		Logger:          log,
		Components:      component.NewRegistry(log),
		cloudComp:       cloud.NewComponent(settings, log),
		gracefulTimeout: gracefulTimeout,
	}
	if err := app.Components.Register(app.cloudComp); err != nil {
		return nil, fmt.Errorf("bootstrap: register cloud component: %w", err)
	}
	return app, nil
}

// newLogger builds the application logger from the logging section of
// settings.
func newLogger(s config.Settings, name string) *logger.Logger {
	cfg := &logger.Config{
		Level:  config.GetString(s, "logging.level", "info"),
		Format: config.GetString(s, "logging.format", logger.FormatConsole),
		Output: config.GetString(s, "logging.output", "stdout"),
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return logger.NewDefault(name)
	}
	cfg.Timestamp = true
	return logger.New(cfg, name)
}

// Register adds a component after the cloud component.
func (a *App) Register(c component.Component) error {
	return a.Components.Register(c)
}

// Cloud returns the application's cloud component.
func (a *App) Cloud() *cloud.Component { return a.cloudComp }

// CloudService returns the constructed cloud service, or nil before Start.
func (a *App) CloudService() cloud.Service { return a.cloudComp.Service() }

// Start starts all registered components in order.
func (a *App) Start(ctx context.Context) error {
	a.Logger.Info("starting application", map[string]interface{}{
		"app":     a.Name,
		"version": version.Get().Short(),
	})
	return a.Components.StartAll(ctx)
}

// Stop stops all started components in reverse order, bounded by the
// graceful timeout.
func (a *App) Stop(ctx context.Context) error {
	stopCtx, cancel := context.WithTimeout(ctx, a.gracefulTimeout)
	defer cancel()

	a.Logger.Info("stopping application", map[string]interface{}{"app": a.Name})
	return a.Components.StopAll(stopCtx)
}

// Health reports health for every registered component.
func (a *App) Health(ctx context.Context) []component.Health {
	return a.Components.HealthAll(ctx)
}

// Run starts the application, blocks until ctx is canceled or a termination
// signal arrives, then stops it.
func (a *App) Run(ctx context.Context) error {
	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.Start(signalCtx); err != nil {
		// Best effort: components started before the failure still stop.
		_ = a.Stop(context.Background())
		return err
	}

	<-signalCtx.Done()
	stop()

	return a.Stop(context.Background())
}

// Package app provides the application context and dependency management
// for the paneldump CLI. It centralizes configuration, logging, and the
// dumper instance used by the commands.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/woook/paneldump"
	"github.com/woook/paneldump/pkg/errors"
)

// App represents the paneldump application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Dumper instance (lazy-initialized, singleton)
	mu     sync.RWMutex
	dumper *paneldump.Dumper
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Dumper returns the dumper instance, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Dumper() (*paneldump.Dumper, error) {
	a.mu.RLock()
	if a.dumper != nil {
		d := a.dumper
		a.mu.RUnlock()
		return d, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.dumper != nil {
		return a.dumper, nil
	}

	d, err := paneldump.New(a.buildDumperOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "dumper", "", err)
	}

	a.dumper = d
	return d, nil
}

// DumperWithOptions returns a new dumper with the app's configuration
// plus custom options. Used by commands whose flags narrow the fetch.
func (a *App) DumperWithOptions(opts ...paneldump.Option) (*paneldump.Dumper, error) {
	all := append(a.buildDumperOptions(), opts...)
	d, err := paneldump.New(all...)
	if err != nil {
		return nil, errors.WrapResource("create", "dumper", "with custom options", err)
	}
	return d, nil
}

// buildDumperOptions constructs dumper options from the app configuration.
func (a *App) buildDumperOptions() []paneldump.Option {
	var opts []paneldump.Option
	if a.config.BaseURL != "" {
		opts = append(opts, paneldump.WithBaseURL(a.config.BaseURL))
	}
	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithDumper sets a custom dumper instance (useful for testing).
func WithDumper(d *paneldump.Dumper) Option {
	return func(a *App) error {
		a.dumper = d
		return nil
	}
}

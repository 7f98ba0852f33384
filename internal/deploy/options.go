package deploy

import (
	"log/slog"

	"github.com/spf13/afero"

	"github.com/thoreinstein/teamforge/internal/backup"
	"github.com/thoreinstein/teamforge/internal/platform"
)

// HomeDirFunc resolves the user's home directory.
type HomeDirFunc func() (string, error)

// Option configures a Deployer.
type Option func(*Deployer)

// WithFs sets the filesystem every provider writes through.
func WithFs(fs afero.Fs) Option {
	return func(d *Deployer) {
		d.fs = fs
	}
}

// WithHomeDir sets the home directory lookup.
func WithHomeDir(fn HomeDirFunc) Option {
	return func(d *Deployer) {
		d.homeDir = fn
	}
}

// WithLogger sets the logger for the orchestrator and the built-in providers.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Deployer) {
		d.logger = logger
	}
}

// WithBackupManager sets the manager used when Options.Backup is set.
func WithBackupManager(m *backup.Manager) Option {
	return func(d *Deployer) {
		d.backups = m
	}
}

// WithProviders replaces the built-in providers.
func WithProviders(providers ...platform.Provider) Option {
	return func(d *Deployer) {
		d.providers = providers
	}
}

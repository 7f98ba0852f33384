package deploy

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/thoreinstein/teamforge/internal/backup"
	"github.com/thoreinstein/teamforge/internal/errors"
	"github.com/thoreinstein/teamforge/internal/logging"
	"github.com/thoreinstein/teamforge/internal/paths"
	"github.com/thoreinstein/teamforge/internal/platform"
	"github.com/thoreinstein/teamforge/internal/platform/claude"
	"github.com/thoreinstein/teamforge/internal/platform/cline"
	"github.com/thoreinstein/teamforge/internal/platform/gemini"
	"github.com/thoreinstein/teamforge/internal/team"
	"github.com/thoreinstein/teamforge/internal/validator"
)

// ErrUnknownTarget is returned for a target id with no registered provider.
var ErrUnknownTarget = errors.New("unknown target")

// Deployer resolves target ids to providers and deploys Teams to them.
type Deployer struct {
	fs        afero.Fs
	homeDir   HomeDirFunc
	logger    *slog.Logger
	backups   *backup.Manager
	providers []platform.Provider
	registry  *platform.Registry
}

// New returns a Deployer. Without WithProviders it registers the claude,
// gemini and cline providers on the configured filesystem.
func New(opts ...Option) (*Deployer, error) {
	d := &Deployer{
		fs:      afero.NewOsFs(),
		homeDir: paths.ResolveHome,
		logger:  logging.NewDiscard(),
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.providers == nil {
		d.providers = []platform.Provider{
			claude.New(d.fs, claude.WithLogger(d.logger)),
			gemini.New(d.fs, gemini.WithLogger(d.logger)),
			cline.New(d.fs, cline.WithLogger(d.logger)),
		}
	}
	if d.backups == nil {
		d.backups = backup.NewManager(backup.WithFs(d.fs))
	}

	d.registry = platform.NewRegistry()
	for _, p := range d.providers {
		if err := d.registry.Register(p); err != nil {
			return nil, errors.Wrap(err, "registering providers")
		}
	}
	return d, nil
}

// Registry exposes the registered providers.
func (d *Deployer) Registry() *platform.Registry {
	return d.registry
}

// Backups returns the backup manager.
func (d *Deployer) Backups() *backup.Manager {
	return d.backups
}

// AvailableTargets returns the registered target ids in registration order.
func (d *Deployer) AvailableTargets() []string {
	return d.registry.IDs()
}

// Validate checks t against the capabilities of targets.
func (d *Deployer) Validate(t *team.Team, targets []string, opts ...validator.Option) *validator.Result {
	return validator.Validate(t, targets, d.registry.Capabilities, opts...)
}

// Paths returns every location target would use for projectPath. It
// performs no I/O beyond resolving the home directory.
func (d *Deployer) Paths(target, projectPath string) (platform.PathSet, error) {
	p := d.registry.Get(target)
	if p == nil {
		return platform.PathSet{}, errors.Wrapf(ErrUnknownTarget, "%q", target)
	}
	home, err := d.homeDir()
	if err != nil {
		return platform.PathSet{}, errors.Wrap(err, "resolving home directory")
	}
	return p.OutputPaths(filepath.Clean(projectPath), home), nil
}

// Deploy writes t to one target. An unknown target returns ErrUnknownTarget
// before any I/O; every other failure is reported in the Result.
func (d *Deployer) Deploy(t *team.Team, target, projectPath string, opts platform.Options) (*platform.Result, error) {
	p := d.registry.Get(target)
	if p == nil {
		return nil, errors.Wrapf(ErrUnknownTarget, "%q", target)
	}

	logger := d.logger.With("target", target)
	res := platform.NewResult(target)

	home, err := d.homeDir()
	if err != nil {
		res.Fail(errors.Wrapf(err, "%s: resolving home directory", target))
		return res, nil
	}
	projectPath = filepath.Clean(projectPath)

	var backupID string
	if opts.Backup {
		manifest, err := d.snapshot(p, projectPath, home)
		if err != nil {
			res.Fail(errors.Wrapf(err, "%s: backing up", target))
			return res, nil
		}
		backupID = manifest.ID
		logger.Info("backed up existing files", "backup", backupID, "files", len(manifest.Files))
	}

	logger.Info("deploying team", "team", t.ID, "project", projectPath)
	res = platform.Deploy(p, t, projectPath, home, opts)
	res.BackupID = backupID

	if res.Success {
		logger.Info("deployed", "files", len(res.Files()), "warnings", len(res.Warnings))
	} else {
		logger.Warn("deploy failed", "error", res.Error)
	}
	return res, nil
}

// snapshot backs up every location p may touch and prunes old backups.
func (d *Deployer) snapshot(p platform.Provider, projectPath, home string) (*backup.Manifest, error) {
	entries := p.OutputPaths(projectPath, home).Entries()
	sources := make([]string, 0, len(entries))
	for _, e := range entries {
		sources = append(sources, e.Path)
	}

	manifest, err := d.backups.Backup(p.ID(), sources)
	if err != nil {
		return nil, err
	}

	if removed, err := d.backups.Prune(p.ID(), d.backups.RetentionCount()); err != nil {
		d.logger.Warn("pruning backups failed", "target", p.ID(), "error", err)
	} else if len(removed) > 0 {
		d.logger.Debug("pruned backups", "target", p.ID(), "removed", removed)
	}
	return manifest, nil
}

// DeployToMultiple validates t against targets and deploys to each in
// order. Duplicate ids are deployed once. An unknown target, error or panic
// fails only that target's Result.
func (d *Deployer) DeployToMultiple(t *team.Team, targets []string, projectPath string, opts platform.Options) *MultiResult {
	mr := &MultiResult{
		Results:    make(map[string]*platform.Result, len(targets)),
		Validation: d.Validate(t, targets, validator.WithSeededMemory(opts.DeployMemoryBank)),
		Success:    true,
	}

	for _, target := range targets {
		if _, done := mr.Results[target]; done {
			continue
		}
		mr.add(target, d.deployIsolated(t, target, projectPath, opts))
	}
	return mr
}

func (d *Deployer) deployIsolated(t *team.Team, target, projectPath string, opts platform.Options) (res *platform.Result) {
	defer func() {
		if r := recover(); r != nil {
			res = platform.NewResult(target)
			res.Fail(errors.Newf("%s: panic during deploy: %v", target, r))
		}
	}()

	res, err := d.Deploy(t, target, projectPath, opts)
	if err != nil {
		res = platform.NewResult(target)
		res.Fail(err)
	}
	return res
}

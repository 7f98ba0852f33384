package cline

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/thoreinstein/teamforge/internal/errors"
	"github.com/thoreinstein/teamforge/internal/paths"
	"github.com/thoreinstein/teamforge/internal/platform"
	"github.com/thoreinstein/teamforge/internal/team"
)

// ID is the target identifier.
const ID = paths.TargetCline

// File and directory names inside the project.
const (
	RulesPath        = ".clinerules"
	DefaultRulesFile = "constitution.md"
	MemoryBankDir    = "memory-bank"
	EditorDir        = ".vscode"
	MCPFile          = "cline_mcp_settings.json"
)

// ReasonNoSettingsFile is the settings skip reason.
const ReasonNoSettingsFile = "no centralized settings file"

// Rules path conflicts. Folder mode cannot create .clinerules over a file,
// and single-file mode cannot write it over a folder.
var (
	ErrRulesPathIsFile = errors.New("rules path is a file; use clear existing to replace it")
	ErrRulesPathIsDir  = errors.New("rules path is a folder; use clear existing to replace it")
)

var capabilities = platform.Capabilities{
	Agents:       false,
	Constitution: true,
	Skills:       false,
	Hooks:        false,
	MCPServers:   true,
	Memory:       true,
}

// Provider deploys Teams for the Cline VS Code extension.
type Provider struct {
	files platform.Files
}

var _ platform.Provider = (*Provider)(nil)

// Option configures a Provider.
type Option func(*Provider)

// WithLogger sets the logger used for per-file debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) {
		p.files = platform.NewFiles(p.files.Fs, logger)
	}
}

// New returns a Provider writing through fs.
func New(fs afero.Fs, opts ...Option) *Provider {
	p := &Provider{files: platform.NewFiles(fs, nil)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID implements platform.Provider.
func (p *Provider) ID() string { return ID }

// DisplayName implements platform.Provider.
func (p *Provider) DisplayName() string { return "Cline" }

// Capabilities implements platform.Provider.
func (p *Provider) Capabilities() platform.Capabilities { return capabilities }

// OutputPaths implements platform.Provider. Constitution is the single-file
// form; RulesDir is the folder form. Both share the same path.
func (p *Provider) OutputPaths(projectRoot, homeDir string) platform.PathSet {
	rules := filepath.Join(projectRoot, RulesPath)
	return platform.PathSet{
		ProjectRoot:  projectRoot,
		HomeDir:      homeDir,
		Root:         rules,
		Constitution: rules,
		RulesDir:     rules,
		MCPConfig:    filepath.Join(projectRoot, EditorDir, MCPFile),
		MemoryDir:    filepath.Join(projectRoot, MemoryBankDir),
	}
}

// PrepareDirectories implements platform.Provider. ClearExisting removes the
// rules path whether it is a file or a folder. Otherwise the path must
// already have the shape the rules mode needs: a folder, or nothing, in
// folder mode and a file, or nothing, in single-file mode.
func (p *Provider) PrepareDirectories(ps platform.PathSet, opts platform.Options) error {
	if opts.ClearExisting {
		if err := p.files.RemoveAll(ps.Root); err != nil {
			return err
		}
	}
	if !opts.UseRulesFolder {
		if p.files.IsDir(ps.Constitution) {
			return errors.Wrapf(ErrRulesPathIsDir, "%s", ps.Constitution)
		}
		return nil
	}
	if p.files.IsFile(ps.RulesDir) {
		return errors.Wrapf(ErrRulesPathIsFile, "%s", ps.RulesDir)
	}
	return p.files.MkdirAll(ps.RulesDir)
}

// DeployConstitution writes the rules file, or {rulesFileName} inside the
// rules folder with UseRulesFolder.
func (p *Provider) DeployConstitution(ps platform.PathSet, text string, opts platform.Options) (platform.Outcome, error) {
	path := ps.Constitution
	if opts.UseRulesFolder {
		name := opts.RulesFileName
		if name == "" {
			name = DefaultRulesFile
		}
		if !team.ValidID(name) {
			return platform.Outcome{}, errors.Newf("invalid rules file name %q", name)
		}
		path = filepath.Join(ps.RulesDir, name)
	}

	if err := p.files.WriteText(path, text); err != nil {
		return platform.Outcome{}, err
	}
	return platform.Succeeded(1, path), nil
}

// DeployAgents is never reached; Cline has no agent files.
func (p *Provider) DeployAgents(platform.PathSet, []team.Agent, platform.Options) (platform.Outcome, error) {
	return platform.Skipped(platform.ReasonNotSupported), nil
}

// DeploySkills is never reached; Cline has no skill files.
func (p *Provider) DeploySkills(platform.PathSet, []team.Skill, platform.Options) (platform.Outcome, error) {
	return platform.Skipped(platform.ReasonNotSupported), nil
}

// DeployHooks is never reached; Cline has no hooks.
func (p *Provider) DeployHooks(platform.PathSet, []team.Hook, platform.Options) (platform.Outcome, error) {
	return platform.Skipped(platform.ReasonNotSupported), nil
}

// DeploySettings always skips.
func (p *Provider) DeploySettings(platform.PathSet, platform.SettingsBundle, platform.Options) (platform.Outcome, error) {
	return platform.Skipped(ReasonNoSettingsFile), nil
}

package claude

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/thoreinstein/teamforge/internal/paths"
	"github.com/thoreinstein/teamforge/internal/platform"
	"github.com/thoreinstein/teamforge/internal/team"
)

// ID is the target identifier.
const ID = paths.TargetClaude

// File and directory names inside the project.
const (
	ConstitutionFile      = "CLAUDE.md"
	LocalConstitutionFile = "CLAUDE.local.md"
	SettingsFile          = "settings.json"
	LocalSettingsFile     = "settings.local.json"
	MCPFile               = ".mcp.json"
	AgentsDir             = "agents"
	SkillsDir             = "skills"
	SkillManifest         = "SKILL.md"
)

// SettingsVersion is the value written to the settings "version" key.
const SettingsVersion = 1

var capabilities = platform.Capabilities{
	Agents:       true,
	Constitution: true,
	Skills:       true,
	Hooks:        true,
	MCPServers:   true,
	Memory:       false,
}

// Provider deploys Teams into Claude Code's project layout.
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
func (p *Provider) DisplayName() string { return "Claude Code" }

// Capabilities implements platform.Provider.
func (p *Provider) Capabilities() platform.Capabilities { return capabilities }

// OutputPaths implements platform.Provider.
func (p *Provider) OutputPaths(projectRoot, homeDir string) platform.PathSet {
	root := paths.ProjectConfigDir(ID, projectRoot)
	return platform.PathSet{
		ProjectRoot:       projectRoot,
		HomeDir:           homeDir,
		Root:              root,
		Constitution:      filepath.Join(projectRoot, ConstitutionFile),
		LocalConstitution: filepath.Join(projectRoot, LocalConstitutionFile),
		AgentsDir:         filepath.Join(root, AgentsDir),
		SkillsDir:         filepath.Join(root, SkillsDir),
		Settings:          filepath.Join(root, SettingsFile),
		LocalSettings:     filepath.Join(root, LocalSettingsFile),
		MCPConfig:         filepath.Join(projectRoot, MCPFile),
	}
}

// PrepareDirectories implements platform.Provider. ClearExisting wipes the
// whole .claude directory first.
func (p *Provider) PrepareDirectories(ps platform.PathSet, opts platform.Options) error {
	if opts.ClearExisting {
		if err := p.files.RemoveAll(ps.Root); err != nil {
			return err
		}
	}
	for _, dir := range []string{ps.Root, ps.AgentsDir, ps.SkillsDir} {
		if err := p.files.MkdirAll(dir); err != nil {
			return err
		}
	}
	return nil
}

// DeployConstitution writes CLAUDE.md, or CLAUDE.local.md with UseLocal.
func (p *Provider) DeployConstitution(ps platform.PathSet, text string, opts platform.Options) (platform.Outcome, error) {
	path := ps.Constitution
	if opts.UseLocal {
		path = ps.LocalConstitution
	}
	if err := p.files.WriteText(path, text); err != nil {
		return platform.Outcome{}, err
	}
	return platform.Succeeded(1, path), nil
}

// DeployMemory is never reached; Claude Code has no memory bank.
func (p *Provider) DeployMemory(platform.PathSet, team.MemoryBank, platform.Options) (platform.Outcome, error) {
	return platform.Skipped(platform.ReasonNotSupported), nil
}

package gemini

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/thoreinstein/teamforge/internal/paths"
	"github.com/thoreinstein/teamforge/internal/platform"
	"github.com/thoreinstein/teamforge/internal/team"
)

// ID is the target identifier.
const ID = paths.TargetGemini

// File and directory names.
const (
	ConstitutionFile = "GEMINI.md"
	SettingsFile     = "settings.json"
	MemoryBankDir    = "memory-bank"
)

var capabilities = platform.Capabilities{
	Agents:       false,
	Constitution: true,
	Skills:       false,
	Hooks:        false,
	MCPServers:   true,
	Memory:       true,
}

// Provider deploys Teams for Gemini CLI. MCP servers and tool policy go to
// the user's global settings document, shared by every project.
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
func (p *Provider) DisplayName() string { return "Gemini CLI" }

// Capabilities implements platform.Provider.
func (p *Provider) Capabilities() platform.Capabilities { return capabilities }

// OutputPaths implements platform.Provider.
func (p *Provider) OutputPaths(projectRoot, homeDir string) platform.PathSet {
	root := paths.ProjectConfigDir(ID, projectRoot)
	global := paths.GlobalConfigDir(ID, homeDir)
	settings := filepath.Join(global, SettingsFile)
	return platform.PathSet{
		ProjectRoot:        projectRoot,
		HomeDir:            homeDir,
		Root:               root,
		Constitution:       filepath.Join(projectRoot, ConstitutionFile),
		GlobalConstitution: filepath.Join(global, ConstitutionFile),
		Settings:           settings,
		MCPConfig:          settings,
		MemoryDir:          filepath.Join(root, MemoryBankDir),
	}
}

// PrepareDirectories implements platform.Provider. ClearExisting removes the
// project .gemini directory; the home directory is never cleared.
func (p *Provider) PrepareDirectories(ps platform.PathSet, opts platform.Options) error {
	if opts.ClearExisting {
		if err := p.files.RemoveAll(ps.Root); err != nil {
			return err
		}
	}
	return p.files.MkdirAll(ps.Root)
}

// DeployConstitution writes GEMINI.md, and with DeployGlobal also the
// home-scoped copy.
func (p *Provider) DeployConstitution(ps platform.PathSet, text string, opts platform.Options) (platform.Outcome, error) {
	data := []byte(platform.EnsureNewline(text))

	if err := p.files.Write(ps.Constitution, data); err != nil {
		return platform.Outcome{}, err
	}
	files := []string{ps.Constitution}

	if opts.DeployGlobal {
		if err := p.files.MkdirAll(filepath.Dir(ps.GlobalConstitution)); err != nil {
			return platform.Outcome{}, err
		}
		if err := p.files.Write(ps.GlobalConstitution, data); err != nil {
			return platform.Outcome{}, err
		}
		files = append(files, ps.GlobalConstitution)
	}

	return platform.Succeeded(1, files...), nil
}

// DeployAgents is never reached; Gemini CLI has no agent files.
func (p *Provider) DeployAgents(platform.PathSet, []team.Agent, platform.Options) (platform.Outcome, error) {
	return platform.Skipped(platform.ReasonNotSupported), nil
}

// DeploySkills is never reached; Gemini CLI has no skill files.
func (p *Provider) DeploySkills(platform.PathSet, []team.Skill, platform.Options) (platform.Outcome, error) {
	return platform.Skipped(platform.ReasonNotSupported), nil
}

package platform

import (
	"github.com/thoreinstein/teamforge/internal/team"
)

// Provider serializes a Team into one target's on-disk layout.
//
// Providers implement only the supported path of each DeployX method;
// Deploy wraps every provider in Guard so unsupported features never reach
// the implementation.
type Provider interface {
	// ID is the stable target identifier (claude, gemini, cline).
	ID() string

	// DisplayName is the human-readable product name used in warnings.
	DisplayName() string

	Capabilities() Capabilities

	// OutputPaths computes every location the provider may touch.
	// It must not perform I/O.
	OutputPaths(projectRoot, homeDir string) PathSet

	// PrepareDirectories creates the directories later steps write into.
	// With ClearExisting it first removes the provider root. Calling it on
	// an existing tree is a no-op.
	PrepareDirectories(p PathSet, opts Options) error

	DeployConstitution(p PathSet, text string, opts Options) (Outcome, error)
	DeployAgents(p PathSet, agents []team.Agent, opts Options) (Outcome, error)
	DeploySkills(p PathSet, skills []team.Skill, opts Options) (Outcome, error)

	// DeployHooks may be a pass-through when hooks are folded into settings.
	DeployHooks(p PathSet, hooks []team.Hook, opts Options) (Outcome, error)

	DeployMCPServers(p PathSet, servers []team.MCPServer, opts Options) (Outcome, error)
	DeploySettings(p PathSet, bundle SettingsBundle, opts Options) (Outcome, error)
	DeployMemory(p PathSet, bank team.MemoryBank, opts Options) (Outcome, error)
}

// Options are the caller's deploy switches.
type Options struct {
	// ClearExisting removes the provider root before writing. Destructive.
	ClearExisting bool `json:"clearExisting,omitempty"`

	// UseLocal writes the local-override variant of the constitution and
	// settings files where the target has one.
	UseLocal bool `json:"useLocal,omitempty"`

	// DeployGlobal also writes the home-scoped constitution.
	DeployGlobal bool `json:"deployGlobal,omitempty"`

	// UseRulesFolder deploys rules as a directory instead of a single file.
	UseRulesFolder bool `json:"useRulesFolder,omitempty"`

	// RulesFileName names the document inside the rules folder.
	RulesFileName string `json:"rulesFileName,omitempty"`

	// DeployMemoryBank seeds a memory bank from Team metadata when the Team
	// carries none.
	DeployMemoryBank bool `json:"deployMemoryBank,omitempty"`

	// Backup snapshots every file the deploy may overwrite first.
	Backup bool `json:"backup,omitempty"`
}

// SettingsBundle is what a settings document is built from.
type SettingsBundle struct {
	Hooks    []team.Hook
	Security team.GlobalSecurity
}

// PathSet lists the locations a provider uses. Fields a target has no use
// for stay empty.
type PathSet struct {
	ProjectRoot string
	HomeDir     string

	// Root is the project-scoped directory ClearExisting removes.
	Root string

	Constitution       string
	LocalConstitution  string
	GlobalConstitution string
	RulesDir           string

	AgentsDir string
	SkillsDir string

	Settings      string
	LocalSettings string
	MCPConfig     string

	MemoryDir string
}

// PathEntry is one labeled location.
type PathEntry struct {
	Label string
	Path  string
}

// Entries returns the non-empty locations in a stable order.
func (p PathSet) Entries() []PathEntry {
	all := []PathEntry{
		{"root", p.Root},
		{"constitution", p.Constitution},
		{"local constitution", p.LocalConstitution},
		{"global constitution", p.GlobalConstitution},
		{"rules folder", p.RulesDir},
		{"agents", p.AgentsDir},
		{"skills", p.SkillsDir},
		{"settings", p.Settings},
		{"local settings", p.LocalSettings},
		{"mcp config", p.MCPConfig},
		{"memory bank", p.MemoryDir},
	}
	out := make([]PathEntry, 0, len(all))
	for _, e := range all {
		if e.Path != "" {
			out = append(out, e)
		}
	}
	return out
}

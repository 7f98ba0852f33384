package platform

import (
	"github.com/thoreinstein/teamforge/internal/team"
)

// guarded short-circuits unsupported features before they reach the
// wrapped provider.
type guarded struct {
	Provider
	caps Capabilities
}

// Guard wraps p so every DeployX for a feature p's Capabilities mark
// unsupported returns a "Not supported" skip without calling p.
func Guard(p Provider) Provider {
	if g, ok := p.(*guarded); ok {
		return g
	}
	return &guarded{Provider: p, caps: p.Capabilities()}
}

func (g *guarded) DeployConstitution(p PathSet, text string, opts Options) (Outcome, error) {
	if !g.caps.Constitution {
		return Skipped(ReasonNotSupported), nil
	}
	return g.Provider.DeployConstitution(p, text, opts)
}

func (g *guarded) DeployAgents(p PathSet, agents []team.Agent, opts Options) (Outcome, error) {
	if !g.caps.Agents {
		return Skipped(ReasonNotSupported), nil
	}
	return g.Provider.DeployAgents(p, agents, opts)
}

func (g *guarded) DeploySkills(p PathSet, skills []team.Skill, opts Options) (Outcome, error) {
	if !g.caps.Skills {
		return Skipped(ReasonNotSupported), nil
	}
	return g.Provider.DeploySkills(p, skills, opts)
}

func (g *guarded) DeployHooks(p PathSet, hooks []team.Hook, opts Options) (Outcome, error) {
	if !g.caps.Hooks {
		return Skipped(ReasonNotSupported), nil
	}
	return g.Provider.DeployHooks(p, hooks, opts)
}

func (g *guarded) DeployMCPServers(p PathSet, servers []team.MCPServer, opts Options) (Outcome, error) {
	if !g.caps.MCPServers {
		return Skipped(ReasonNotSupported), nil
	}
	return g.Provider.DeployMCPServers(p, servers, opts)
}

func (g *guarded) DeployMemory(p PathSet, bank team.MemoryBank, opts Options) (Outcome, error) {
	if !g.caps.Memory {
		return Skipped(ReasonNotSupported), nil
	}
	return g.Provider.DeployMemory(p, bank, opts)
}

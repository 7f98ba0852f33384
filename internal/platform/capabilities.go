package platform

// Feature names a Team section a provider may or may not represent.
type Feature string

// Features, in deploy order.
const (
	FeatureConstitution Feature = "constitution"
	FeatureAgents       Feature = "agents"
	FeatureSkills       Feature = "skills"
	FeatureHooks        Feature = "hooks"
	FeatureMCPServers   Feature = "mcpServers"
	FeatureSettings     Feature = "settings"
	FeatureMemory       Feature = "memory"
)

// DeployOrder returns every feature in the order Deploy attempts them.
func DeployOrder() []Feature {
	return []Feature{
		FeatureConstitution,
		FeatureAgents,
		FeatureSkills,
		FeatureHooks,
		FeatureMCPServers,
		FeatureSettings,
		FeatureMemory,
	}
}

// CapabilityFeatures returns the six features a Capabilities value describes.
// Settings is not among them: every provider decides for itself whether it
// has a settings document.
func CapabilityFeatures() []Feature {
	return []Feature{
		FeatureAgents,
		FeatureConstitution,
		FeatureSkills,
		FeatureHooks,
		FeatureMCPServers,
		FeatureMemory,
	}
}

// Noun is the unit used in "N <noun> skipped" warnings.
func (f Feature) Noun() string {
	switch f {
	case FeatureAgents:
		return "agent(s)"
	case FeatureSkills:
		return "skill(s)"
	case FeatureHooks:
		return "hook(s)"
	case FeatureMCPServers:
		return "MCP server(s)"
	case FeatureMemory:
		return "memory bank"
	default:
		return string(f)
	}
}

// Capabilities is the static feature-support map of one target.
type Capabilities struct {
	Agents       bool `json:"agents"`
	Constitution bool `json:"constitution"`
	Skills       bool `json:"skills"`
	Hooks        bool `json:"hooks"`
	MCPServers   bool `json:"mcpServers"`
	Memory       bool `json:"memory"`
}

// Supports reports whether the feature can be represented. Settings is
// always reported as supported; providers without a settings document skip
// it themselves.
func (c Capabilities) Supports(f Feature) bool {
	switch f {
	case FeatureAgents:
		return c.Agents
	case FeatureConstitution:
		return c.Constitution
	case FeatureSkills:
		return c.Skills
	case FeatureHooks:
		return c.Hooks
	case FeatureMCPServers:
		return c.MCPServers
	case FeatureMemory:
		return c.Memory
	case FeatureSettings:
		return true
	default:
		return false
	}
}

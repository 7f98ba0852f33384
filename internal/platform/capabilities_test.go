package platform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thoreinstein/teamforge/internal/platform"
)

func TestCapabilities_Supports(t *testing.T) {
	caps := platform.Capabilities{Constitution: true, MCPServers: true, Memory: true}

	want := map[platform.Feature]bool{
		platform.FeatureAgents:       false,
		platform.FeatureConstitution: true,
		platform.FeatureSkills:       false,
		platform.FeatureHooks:        false,
		platform.FeatureMCPServers:   true,
		platform.FeatureMemory:       true,
		platform.FeatureSettings:     true,
		platform.Feature("bogus"):    false,
	}
	for f, supported := range want {
		assert.Equal(t, supported, caps.Supports(f), f)
	}
}

func TestDeployOrder(t *testing.T) {
	assert.Equal(t, []platform.Feature{
		platform.FeatureConstitution,
		platform.FeatureAgents,
		platform.FeatureSkills,
		platform.FeatureHooks,
		platform.FeatureMCPServers,
		platform.FeatureSettings,
		platform.FeatureMemory,
	}, platform.DeployOrder())
	assert.Len(t, platform.CapabilityFeatures(), 6)
}

func TestPathSet_Entries(t *testing.T) {
	ps := platform.PathSet{Root: "/p/.x", Constitution: "/p/X.md", MCPConfig: "/p/mcp.json"}
	entries := ps.Entries()
	assert.Equal(t, []platform.PathEntry{
		{Label: "root", Path: "/p/.x"},
		{Label: "constitution", Path: "/p/X.md"},
		{Label: "mcp config", Path: "/p/mcp.json"},
	}, entries)
}

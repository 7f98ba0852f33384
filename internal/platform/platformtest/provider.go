package platformtest

import (
	"github.com/stretchr/testify/mock"

	"github.com/thoreinstein/teamforge/internal/platform"
	"github.com/thoreinstein/teamforge/internal/team"
)

// MockProvider is a testify mock of platform.Provider. ID, DisplayName,
// Capabilities and OutputPaths answer from fields so tests only set
// expectations for the deploy steps they care about.
type MockProvider struct {
	mock.Mock

	Target string
	Caps   platform.Capabilities
	Paths  platform.PathSet
}

var _ platform.Provider = (*MockProvider)(nil)

// NewMockProvider returns a mock for target with caps. Expectations are
// asserted when the test ends.
func NewMockProvider(t interface {
	mock.TestingT
	Cleanup(func())
}, target string, caps platform.Capabilities) *MockProvider {
	m := &MockProvider{Target: target, Caps: caps}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// AllCapabilities returns a descriptor with every feature supported.
func AllCapabilities() platform.Capabilities {
	return platform.Capabilities{
		Agents:       true,
		Constitution: true,
		Skills:       true,
		Hooks:        true,
		MCPServers:   true,
		Memory:       true,
	}
}

func (m *MockProvider) ID() string                          { return m.Target }
func (m *MockProvider) DisplayName() string                 { return "Mock " + m.Target }
func (m *MockProvider) Capabilities() platform.Capabilities { return m.Caps }

func (m *MockProvider) OutputPaths(projectRoot, homeDir string) platform.PathSet {
	p := m.Paths
	p.ProjectRoot = projectRoot
	p.HomeDir = homeDir
	return p
}

func (m *MockProvider) PrepareDirectories(p platform.PathSet, opts platform.Options) error {
	args := m.Called(p, opts)
	return args.Error(0)
}

func (m *MockProvider) DeployConstitution(p platform.PathSet, text string, opts platform.Options) (platform.Outcome, error) {
	args := m.Called(p, text, opts)
	return args.Get(0).(platform.Outcome), args.Error(1)
}

func (m *MockProvider) DeployAgents(p platform.PathSet, agents []team.Agent, opts platform.Options) (platform.Outcome, error) {
	args := m.Called(p, agents, opts)
	return args.Get(0).(platform.Outcome), args.Error(1)
}

func (m *MockProvider) DeploySkills(p platform.PathSet, skills []team.Skill, opts platform.Options) (platform.Outcome, error) {
	args := m.Called(p, skills, opts)
	return args.Get(0).(platform.Outcome), args.Error(1)
}

func (m *MockProvider) DeployHooks(p platform.PathSet, hooks []team.Hook, opts platform.Options) (platform.Outcome, error) {
	args := m.Called(p, hooks, opts)
	return args.Get(0).(platform.Outcome), args.Error(1)
}

func (m *MockProvider) DeployMCPServers(p platform.PathSet, servers []team.MCPServer, opts platform.Options) (platform.Outcome, error) {
	args := m.Called(p, servers, opts)
	return args.Get(0).(platform.Outcome), args.Error(1)
}

func (m *MockProvider) DeploySettings(p platform.PathSet, bundle platform.SettingsBundle, opts platform.Options) (platform.Outcome, error) {
	args := m.Called(p, bundle, opts)
	return args.Get(0).(platform.Outcome), args.Error(1)
}

func (m *MockProvider) DeployMemory(p platform.PathSet, bank team.MemoryBank, opts platform.Options) (platform.Outcome, error) {
	args := m.Called(p, bank, opts)
	return args.Get(0).(platform.Outcome), args.Error(1)
}

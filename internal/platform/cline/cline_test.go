package cline_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/teamforge/internal/platform"
	"github.com/thoreinstein/teamforge/internal/platform/cline"
	"github.com/thoreinstein/teamforge/internal/platform/platformtest"
	"github.com/thoreinstein/teamforge/internal/team"
)

const (
	projectRoot = "/work/proj"
	homeDir     = "/home/dev"
	mcpPath     = "/work/proj/.vscode/cline_mcp_settings.json"
)

func TestOutputPaths(t *testing.T) {
	ps := cline.New(afero.NewMemMapFs()).OutputPaths(projectRoot, homeDir)

	assert.Equal(t, "/work/proj/.clinerules", ps.Root)
	assert.Equal(t, "/work/proj/.clinerules", ps.Constitution)
	assert.Equal(t, "/work/proj/.clinerules", ps.RulesDir)
	assert.Equal(t, mcpPath, ps.MCPConfig)
	assert.Equal(t, "/work/proj/memory-bank", ps.MemoryDir)
	assert.Empty(t, ps.Settings)
}

func TestDeployConstitution(t *testing.T) {
	tests := []struct {
		name string
		opts platform.Options
		want string
	}{
		{"single file", platform.Options{}, "/work/proj/.clinerules"},
		{"folder default name", platform.Options{UseRulesFolder: true}, "/work/proj/.clinerules/constitution.md"},
		{"folder custom name", platform.Options{UseRulesFolder: true, RulesFileName: "team.md"}, "/work/proj/.clinerules/team.md"},
		{"file name ignored without folder", platform.Options{RulesFileName: "team.md"}, "/work/proj/.clinerules"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := platformtest.NewSpyFs(nil)
			res := platform.Deploy(cline.New(spy), &team.Team{ID: "t", Constitution: "Rules"}, projectRoot, homeDir, tt.opts)
			require.True(t, res.Success, res.Error)

			assert.Equal(t, []string{tt.want}, spy.Written())
			data, err := afero.ReadFile(spy, tt.want)
			require.NoError(t, err)
			assert.Equal(t, "Rules\n", string(data))
		})
	}
}

func TestPrepareDirectories_FileBlocksFolder(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/proj/.clinerules", []byte("old rules"), 0o644))
	tm := &team.Team{ID: "t", Constitution: "Rules"}

	res := platform.Deploy(cline.New(fs), tm, projectRoot, homeDir, platform.Options{UseRulesFolder: true})
	require.False(t, res.Success)
	require.ErrorIs(t, res.Err, cline.ErrRulesPathIsFile)
	assert.Contains(t, res.Error, "cline: preparing directories")

	res = platform.Deploy(cline.New(fs), tm, projectRoot, homeDir,
		platform.Options{UseRulesFolder: true, ClearExisting: true})
	require.True(t, res.Success, res.Error)

	isDir, err := afero.IsDir(fs, "/work/proj/.clinerules")
	require.NoError(t, err)
	assert.True(t, isDir)
}

func TestPrepareDirectories_FolderBlocksFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/proj/.clinerules/constitution.md", []byte("old rules"), 0o644))
	tm := &team.Team{ID: "t", Constitution: "Rules"}

	res := platform.Deploy(cline.New(fs), tm, projectRoot, homeDir, platform.Options{})
	require.False(t, res.Success)
	require.ErrorIs(t, res.Err, cline.ErrRulesPathIsDir)
	assert.Contains(t, res.Error, "cline: preparing directories")

	res = platform.Deploy(cline.New(fs), tm, projectRoot, homeDir, platform.Options{ClearExisting: true})
	require.True(t, res.Success, res.Error)

	data, err := afero.ReadFile(fs, "/work/proj/.clinerules")
	require.NoError(t, err)
	assert.Equal(t, "Rules\n", string(data))
}

// The in-memory filesystem renames over directories, so switching rules
// modes is checked against the real disk.
func TestDeploy_SwitchRulesModeOnDisk(t *testing.T) {
	root := t.TempDir()
	home := t.TempDir()
	fs := afero.NewOsFs()
	rules := filepath.Join(root, cline.RulesPath)
	tm := &team.Team{ID: "t", Constitution: "Rules"}

	t.Run("folder to file", func(t *testing.T) {
		res := platform.Deploy(cline.New(fs), tm, root, home, platform.Options{UseRulesFolder: true})
		require.True(t, res.Success, res.Error)

		res = platform.Deploy(cline.New(fs), tm, root, home, platform.Options{})
		require.False(t, res.Success)
		require.ErrorIs(t, res.Err, cline.ErrRulesPathIsDir)

		isDir, err := afero.IsDir(fs, rules)
		require.NoError(t, err)
		assert.True(t, isDir, "failed deploy must leave the folder alone")

		res = platform.Deploy(cline.New(fs), tm, root, home, platform.Options{ClearExisting: true})
		require.True(t, res.Success, res.Error)
		data, err := afero.ReadFile(fs, rules)
		require.NoError(t, err)
		assert.Equal(t, "Rules\n", string(data))
	})

	t.Run("file to folder", func(t *testing.T) {
		res := platform.Deploy(cline.New(fs), tm, root, home, platform.Options{UseRulesFolder: true})
		require.False(t, res.Success)
		require.ErrorIs(t, res.Err, cline.ErrRulesPathIsFile)

		res = platform.Deploy(cline.New(fs), tm, root, home, platform.Options{UseRulesFolder: true, ClearExisting: true})
		require.True(t, res.Success, res.Error)
		data, err := afero.ReadFile(fs, filepath.Join(rules, cline.DefaultRulesFile))
		require.NoError(t, err)
		assert.Equal(t, "Rules\n", string(data))
	})
}

func TestDeployMCPServers(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, mcpPath, []byte(`{"other": true}`), 0o644))
	tm := &team.Team{ID: "t", MCPServers: []team.MCPServer{
		{ID: "files", Command: "node", Args: []string{"server.js"}},
		{ID: "events", Type: team.TransportSSE, URL: "https://e.example.com/sse"},
		{ID: "stream", URL: "https://s.example.com/mcp", Headers: map[string]string{"A": "b"}},
	}}

	res := platform.Deploy(cline.New(fs), tm, projectRoot, homeDir, platform.Options{})
	require.True(t, res.Success, res.Error)

	data, err := afero.ReadFile(fs, mcpPath)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, true, doc["other"])
	servers := doc["mcpServers"].(map[string]any)
	assert.Equal(t, map[string]any{
		"command":     "node",
		"args":        []any{"server.js"},
		"env":         map[string]any{},
		"disabled":    false,
		"autoApprove": []any{},
	}, servers["files"])
	assert.Equal(t, map[string]any{"type": "sse", "url": "https://e.example.com/sse"}, servers["events"])
	assert.Equal(t, map[string]any{
		"type":    "streamableHttp",
		"url":     "https://s.example.com/mcp",
		"headers": map[string]any{"A": "b"},
	}, servers["stream"])
}

func TestDeploy_SkipsAndWarnings(t *testing.T) {
	spy := platformtest.NewSpyFs(nil)
	tm := &team.Team{
		ID:     "t",
		Agents: []team.Agent{{ID: "a"}},
		Skills: []team.Skill{{ID: "s"}, {ID: "s2"}},
		Hooks:  []team.Hook{{Event: team.EventStop, Command: "x"}},
		Security: team.GlobalSecurity{
			Configured:  true,
			Permissions: team.Permissions{Allow: []string{"read"}},
		},
	}

	res := platform.Deploy(cline.New(spy), tm, projectRoot, homeDir, platform.Options{})
	require.True(t, res.Success)

	assert.Zero(t, spy.TotalWrites())
	assert.Equal(t, []string{
		"1 agent(s) skipped: not supported by Cline",
		"2 skill(s) skipped: not supported by Cline",
		"1 hook(s) skipped: not supported by Cline",
		"security policy not applied for Cline: no centralized settings file",
	}, res.Warnings)
}

func TestDeployMemory(t *testing.T) {
	spy := platformtest.NewSpyFs(nil)
	tm := &team.Team{ID: "t", Name: "Web", Description: "Storefront"}

	res := platform.Deploy(cline.New(spy), tm, projectRoot, homeDir, platform.Options{DeployMemoryBank: true})
	require.True(t, res.Success, res.Error)

	assert.Equal(t, []string{
		"/work/proj/memory-bank/activeContext.md",
		"/work/proj/memory-bank/projectbrief.md",
		"/work/proj/memory-bank/techContext.md",
	}, spy.Written())

	brief, err := afero.ReadFile(spy, "/work/proj/memory-bank/projectbrief.md")
	require.NoError(t, err)
	assert.Contains(t, string(brief), "## Web")
	assert.Contains(t, string(brief), "Storefront")
}

func TestDeploy_ClearExistingRemovesRulesFolder(t *testing.T) {
	fs := afero.NewMemMapFs()
	stale := "/work/proj/.clinerules/old.md"
	require.NoError(t, afero.WriteFile(fs, stale, []byte("old"), 0o644))

	res := platform.Deploy(cline.New(fs), &team.Team{ID: "t", Constitution: "new"}, projectRoot, homeDir,
		platform.Options{ClearExisting: true, UseRulesFolder: true})
	require.True(t, res.Success, res.Error)

	exists, _ := afero.Exists(fs, stale)
	assert.False(t, exists)
	exists, _ = afero.Exists(fs, "/work/proj/.clinerules/constitution.md")
	assert.True(t, exists)
}

func TestDeploy_Idempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := cline.New(fs)
	tm := &team.Team{
		ID:           "t",
		Name:         "Web",
		Constitution: "Rules",
		MCPServers: []team.MCPServer{
			{ID: "files", Command: "node", Args: []string{"server.js"}, Env: map[string]string{"B": "2", "A": "1"}},
			{ID: "events", Type: team.TransportSSE, URL: "https://e.example.com/sse"},
		},
	}
	opts := platform.Options{UseRulesFolder: true, RulesFileName: "team.md", DeployMemoryBank: true}

	res := platform.Deploy(p, tm, projectRoot, homeDir, opts)
	require.True(t, res.Success, res.Error)
	first := snapshot(t, fs, res.Files())
	assert.Contains(t, first, "/work/proj/.clinerules/team.md")
	assert.Contains(t, first, mcpPath)
	assert.Contains(t, first, "/work/proj/memory-bank/projectbrief.md")

	res = platform.Deploy(p, tm, projectRoot, homeDir, opts)
	require.True(t, res.Success, res.Error)

	assert.Equal(t, first, snapshot(t, fs, res.Files()))
}

func TestDeploy_EmptySectionsWriteOnlyRules(t *testing.T) {
	spy := platformtest.NewSpyFs(nil)
	tm := &team.Team{
		ID:           "t",
		Constitution: "Rules",
		Agents:       []team.Agent{},
		MCPServers:   []team.MCPServer{},
		Memory:       &team.MemoryBank{Brief: "  ", Tech: "\n"},
	}

	res := platform.Deploy(cline.New(spy), tm, projectRoot, homeDir, platform.Options{})
	require.True(t, res.Success, res.Error)

	assert.Equal(t, []string{"/work/proj/.clinerules"}, spy.Written())
	assert.Empty(t, res.Warnings)
	assert.NotContains(t, res.Details, platform.FeatureMCPServers)
	assert.NotContains(t, res.Details, platform.FeatureMemory)
}

func snapshot(t *testing.T, fs afero.Fs, files []string) map[string]string {
	t.Helper()
	out := make(map[string]string, len(files))
	for _, f := range files {
		data, err := afero.ReadFile(fs, f)
		require.NoError(t, err)
		out[f] = string(data)
	}
	return out
}

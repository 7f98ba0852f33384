package cline

import (
	"path/filepath"

	"github.com/thoreinstein/teamforge/internal/platform"
	"github.com/thoreinstein/teamforge/internal/team"
)

// Remote transport names in cline_mcp_settings.json.
const (
	TypeSSE            = "sse"
	TypeStreamableHTTP = "streamableHttp"
)

// RemoteServer is an SSE or streamable HTTP entry of the "mcpServers" map.
type RemoteServer struct {
	Type    string            `json:"type"`
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// LocalServer is a stdio entry. It always carries every key Cline's editor
// writes itself.
type LocalServer struct {
	Command     string            `json:"command"`
	Args        []string          `json:"args"`
	Env         map[string]string `json:"env"`
	Disabled    bool              `json:"disabled"`
	AutoApprove []string          `json:"autoApprove"`
}

// DeployMCPServers replaces the "mcpServers" key of the editor-scoped
// settings file.
func (p *Provider) DeployMCPServers(ps platform.PathSet, servers []team.MCPServer, _ platform.Options) (platform.Outcome, error) {
	if err := p.files.MkdirAll(filepath.Dir(ps.MCPConfig)); err != nil {
		return platform.Outcome{}, err
	}

	translated := TranslateMCPServers(servers)
	err := p.files.MergeJSON(ps.MCPConfig, func(doc map[string]any) {
		doc["mcpServers"] = translated
	})
	if err != nil {
		return platform.Outcome{}, err
	}
	return platform.Succeeded(len(servers), ps.MCPConfig), nil
}

// TranslateMCPServers builds the id-keyed server map. Local servers are
// written enabled with nothing auto-approved.
func TranslateMCPServers(servers []team.MCPServer) map[string]any {
	out := make(map[string]any, len(servers))
	for _, s := range servers {
		if s.IsRemote() {
			typ := TypeStreamableHTTP
			if s.Transport() == team.TransportSSE {
				typ = TypeSSE
			}
			out[s.ID] = RemoteServer{Type: typ, URL: s.URL, Headers: s.Headers, Env: s.Env}
			continue
		}
		out[s.ID] = LocalServer{
			Command:     s.Command,
			Args:        nonNil(s.Args),
			Env:         nonNilMap(s.Env),
			Disabled:    false,
			AutoApprove: []string{},
		}
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

package claude

import (
	"github.com/thoreinstein/teamforge/internal/platform"
	"github.com/thoreinstein/teamforge/internal/team"
)

// MCPServer is one entry of .mcp.json's "mcpServers" map.
type MCPServer struct {
	Type    string            `json:"type"`
	Command string            `json:"command,omitempty"`
	Args    []string          `json:"args,omitempty"`
	URL     string            `json:"url,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// DeployMCPServers replaces the "mcpServers" key of {project}/.mcp.json.
// Other top-level keys already in the file are kept.
func (p *Provider) DeployMCPServers(ps platform.PathSet, servers []team.MCPServer, _ platform.Options) (platform.Outcome, error) {
	translated := TranslateMCPServers(servers)

	err := p.files.MergeJSON(ps.MCPConfig, func(doc map[string]any) {
		doc["mcpServers"] = translated
	})
	if err != nil {
		return platform.Outcome{}, err
	}
	return platform.Succeeded(len(servers), ps.MCPConfig), nil
}

// TranslateMCPServers builds the id-keyed server map.
func TranslateMCPServers(servers []team.MCPServer) map[string]MCPServer {
	out := make(map[string]MCPServer, len(servers))
	for _, s := range servers {
		entry := MCPServer{Type: string(s.Transport())}
		if s.IsRemote() {
			entry.URL = s.URL
			entry.Headers = s.Headers
		} else {
			entry.Command = s.Command
			entry.Args = s.Args
		}
		if len(s.Env) > 0 {
			entry.Env = s.Env
		}
		out[s.ID] = entry
	}
	return out
}

package gemini

import (
	"path/filepath"

	"github.com/thoreinstein/teamforge/internal/platform"
	"github.com/thoreinstein/teamforge/internal/team"
)

// MCPServer is one entry of settings.json's "mcpServers" map. Streamable
// HTTP servers use httpUrl; SSE servers use url.
type MCPServer struct {
	Command string            `json:"command,omitempty"`
	Args    []string          `json:"args,omitempty"`
	URL     string            `json:"url,omitempty"`
	HTTPURL string            `json:"httpUrl,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// DeployMCPServers replaces the "mcpServers" key of the global settings
// document. Every other key in the file is kept.
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

// TranslateMCPServers builds the id-keyed server map.
func TranslateMCPServers(servers []team.MCPServer) map[string]MCPServer {
	out := make(map[string]MCPServer, len(servers))
	for _, s := range servers {
		var entry MCPServer
		switch s.Transport() {
		case team.TransportHTTP:
			entry.HTTPURL = s.URL
			entry.Headers = s.Headers
		case team.TransportSSE:
			entry.URL = s.URL
			entry.Headers = s.Headers
		default:
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

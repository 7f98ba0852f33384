package team

import (
	"strings"
)

// Team is a platform-neutral bundle of agents, skills, hooks, MCP servers,
// security policy and constitution text. A deploy treats it as read-only.
type Team struct {
	ID           string         `yaml:"id" json:"id"`
	Name         string         `yaml:"name" json:"name"`
	Description  string         `yaml:"description,omitempty" json:"description,omitempty"`
	Constitution string         `yaml:"constitution,omitempty" json:"constitution,omitempty"`
	Agents       []Agent        `yaml:"agents,omitempty" json:"agents,omitempty"`
	Skills       []Skill        `yaml:"skills,omitempty" json:"skills,omitempty"`
	Hooks        []Hook         `yaml:"hooks,omitempty" json:"hooks,omitempty"`
	MCPServers   []MCPServer    `yaml:"mcpServers,omitempty" json:"mcpServers,omitempty"`
	Security     GlobalSecurity `yaml:"security,omitempty" json:"security,omitzero"`
	Memory       *MemoryBank    `yaml:"memory,omitempty" json:"memory,omitempty"`
}

// HasConstitution reports whether the constitution carries any text.
func (t *Team) HasConstitution() bool {
	return strings.TrimSpace(t.Constitution) != ""
}

// HasMemory reports whether the Team carries a non-empty memory bank.
func (t *Team) HasMemory() bool {
	return t.Memory != nil && !t.Memory.IsEmpty()
}

// NeedsSettings reports whether a settings document has anything to hold.
func (t *Team) NeedsSettings() bool {
	return len(t.Hooks) > 0 || t.Security.Configured
}

// Agent is a single AI persona.
type Agent struct {
	ID                 string   `yaml:"id" json:"id"`
	Name               string   `yaml:"name" json:"name"`
	Description        string   `yaml:"description,omitempty" json:"description,omitempty"`
	Tags               []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Tools              ToolSet  `yaml:"tools,omitempty" json:"tools,omitzero"`
	Model              string   `yaml:"model,omitempty" json:"model,omitempty"`
	Template           string   `yaml:"template,omitempty" json:"template,omitempty"`
	CustomInstructions string   `yaml:"customInstructions,omitempty" json:"customInstructions,omitempty"`

	// File points at a markdown document, relative to the Team file, whose
	// header fills unset fields and whose body becomes the template.
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

// DisplayName returns Name, falling back to ID.
func (a Agent) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.ID
}

// Skill is a reusable instruction package.
type Skill struct {
	ID           string `yaml:"id" json:"id"`
	Name         string `yaml:"name,omitempty" json:"name,omitempty"`
	Description  string `yaml:"description,omitempty" json:"description,omitempty"`
	Content      string `yaml:"content,omitempty" json:"content,omitempty"`
	Instructions string `yaml:"instructions,omitempty" json:"instructions,omitempty"`
}

// Body returns Content when set, otherwise Instructions.
func (s Skill) Body() string {
	if s.Content != "" {
		return s.Content
	}
	return s.Instructions
}

// HookEvent is the lifecycle point a hook runs at.
type HookEvent string

// Hook events.
const (
	EventPreToolUse       HookEvent = "PreToolUse"
	EventPostToolUse      HookEvent = "PostToolUse"
	EventUserPromptSubmit HookEvent = "UserPromptSubmit"
	EventNotification     HookEvent = "Notification"
	EventStop             HookEvent = "Stop"
	EventSubagentStop     HookEvent = "SubagentStop"
	EventPreCompact       HookEvent = "PreCompact"
	EventSessionStart     HookEvent = "SessionStart"
	EventSessionEnd       HookEvent = "SessionEnd"
)

var hookEvents = []HookEvent{
	EventPreToolUse,
	EventPostToolUse,
	EventUserPromptSubmit,
	EventNotification,
	EventStop,
	EventSubagentStop,
	EventPreCompact,
	EventSessionStart,
	EventSessionEnd,
}

// HookEvents returns every recognized event in lifecycle order.
func HookEvents() []HookEvent {
	out := make([]HookEvent, len(hookEvents))
	copy(out, hookEvents)
	return out
}

// Valid reports whether e is a recognized event.
func (e HookEvent) Valid() bool {
	for _, known := range hookEvents {
		if e == known {
			return true
		}
	}
	return false
}

// Hook is a shell command bound to a lifecycle event.
type Hook struct {
	Event       HookEvent `yaml:"event" json:"event"`
	Matcher     string    `yaml:"matcher,omitempty" json:"matcher,omitempty"`
	Command     string    `yaml:"command" json:"command"`
	Name        string    `yaml:"name,omitempty" json:"name,omitempty"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
}

// Transport is how an assistant reaches an MCP server.
type Transport string

// MCP transports.
const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
	TransportSSE   Transport = "sse"
)

// MCPServer describes one Model Context Protocol server.
type MCPServer struct {
	ID      string            `yaml:"id" json:"id"`
	Type    Transport         `yaml:"type,omitempty" json:"type,omitempty"`
	Command string            `yaml:"command,omitempty" json:"command,omitempty"`
	Args    []string          `yaml:"args,omitempty" json:"args,omitempty"`
	URL     string            `yaml:"url,omitempty" json:"url,omitempty"`
	Headers map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`
	Env     map[string]string `yaml:"env,omitempty" json:"env,omitempty"`
}

// Transport returns the declared type, inferring stdio from a command and
// http from a URL when the type is unset.
func (s MCPServer) Transport() Transport {
	switch {
	case s.Type != "":
		return s.Type
	case s.Command != "":
		return TransportStdio
	case s.URL != "":
		return TransportHTTP
	default:
		return TransportStdio
	}
}

// IsRemote reports whether the server is reached over the network.
func (s MCPServer) IsRemote() bool {
	t := s.Transport()
	return t == TransportHTTP || t == TransportSSE
}

// Permissions are tool permission rules in the assistant's pattern syntax.
type Permissions struct {
	Allow []string `yaml:"allow,omitempty" json:"allow,omitempty"`
	Deny  []string `yaml:"deny,omitempty" json:"deny,omitempty"`
	Ask   []string `yaml:"ask,omitempty" json:"ask,omitempty"`
}

// GlobalSecurity is the team-wide permission and environment policy.
// Nothing is emitted unless Configured is true.
type GlobalSecurity struct {
	Permissions Permissions       `yaml:"permissions,omitempty" json:"permissions,omitzero"`
	Env         map[string]string `yaml:"env,omitempty" json:"env,omitempty"`
	Configured  bool              `yaml:"configured,omitempty" json:"configured,omitempty"`
}

// MemoryBank is persistent project context split into three documents.
type MemoryBank struct {
	Brief  string `yaml:"brief,omitempty" json:"brief,omitempty"`
	Tech   string `yaml:"tech,omitempty" json:"tech,omitempty"`
	Active string `yaml:"active,omitempty" json:"active,omitempty"`
}

// IsEmpty reports whether every document is blank.
func (m MemoryBank) IsEmpty() bool {
	return strings.TrimSpace(m.Brief) == "" &&
		strings.TrimSpace(m.Tech) == "" &&
		strings.TrimSpace(m.Active) == ""
}

package team

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/thoreinstein/teamforge/internal/errors"
)

// ErrInvalidTeam indicates structural problems in a Team definition.
var ErrInvalidTeam = errors.New("invalid team")

// idPattern restricts ids to names that are safe as a single path element.
var idPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidID reports whether id can be used as a file or directory name.
func ValidID(id string) bool {
	return idPattern.MatchString(id) && !strings.Contains(id, "..")
}

// ValidationError lists every problem found in a Team.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid team: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid team: %d problems: %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

// Is lets errors.Is match ErrInvalidTeam.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidTeam
}

// Validate checks ids, hook events and MCP server shapes. It returns a
// *ValidationError or nil.
func Validate(t *Team) error {
	if t == nil {
		return &ValidationError{Problems: []string{"team is nil"}}
	}

	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	seen := map[string]bool{}
	for i, a := range t.Agents {
		switch {
		case a.ID == "":
			add("agents[%d]: id is required", i)
		case !ValidID(a.ID):
			add("agent %q: id must be letters, digits, '.', '_' or '-'", a.ID)
		case seen[a.ID]:
			add("agent %q: duplicate id", a.ID)
		}
		seen[a.ID] = true
	}

	seen = map[string]bool{}
	for i, s := range t.Skills {
		switch {
		case s.ID == "":
			add("skills[%d]: id is required", i)
		case !ValidID(s.ID):
			add("skill %q: id must be letters, digits, '.', '_' or '-'", s.ID)
		case seen[s.ID]:
			add("skill %q: duplicate id", s.ID)
		}
		seen[s.ID] = true
	}

	for i, h := range t.Hooks {
		if !h.Event.Valid() {
			add("hooks[%d]: unknown event %q", i, h.Event)
		}
		if strings.TrimSpace(h.Command) == "" {
			add("hooks[%d]: command is required", i)
		}
	}

	seen = map[string]bool{}
	for i, s := range t.MCPServers {
		if s.ID == "" {
			add("mcpServers[%d]: id is required", i)
		} else if seen[s.ID] {
			add("mcp server %q: duplicate id", s.ID)
		}
		seen[s.ID] = true

		switch s.Transport() {
		case TransportStdio:
			if s.Command == "" {
				add("mcp server %q: stdio transport requires command", s.ID)
			}
		case TransportHTTP, TransportSSE:
			if s.URL == "" {
				add("mcp server %q: %s transport requires url", s.ID, s.Transport())
			}
		default:
			add("mcp server %q: unknown type %q", s.ID, s.Type)
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

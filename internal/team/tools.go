package team

import (
	"encoding/json"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/teamforge/internal/errors"
)

// Wildcard grants an agent every tool.
const Wildcard = "*"

// ToolSet is the tools an agent may use. Team files may spell it as the
// wildcard "*", a list, or a comma or space separated string.
type ToolSet struct {
	All   bool
	Names []string
}

// AllTools returns the wildcard set.
func AllTools() ToolSet {
	return ToolSet{All: true}
}

// Tools returns a set of named tools, normalized.
func Tools(names ...string) ToolSet {
	return normalizeTools(names)
}

// ParseTools parses the string form.
func ParseTools(s string) ToolSet {
	return normalizeTools(strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	}))
}

func normalizeTools(names []string) ToolSet {
	var out []string
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		if n == Wildcard {
			return ToolSet{All: true}
		}
		seen[n] = true
		out = append(out, n)
	}
	return ToolSet{Names: out}
}

// IsEmpty reports whether no tool is granted explicitly.
func (ts ToolSet) IsEmpty() bool {
	return !ts.All && len(ts.Names) == 0
}

// String renders "*" for the wildcard and a comma-joined list otherwise.
func (ts ToolSet) String() string {
	if ts.All {
		return Wildcard
	}
	return strings.Join(ts.Names, ", ")
}

// IsZero lets yaml omitempty drop empty sets.
func (ts ToolSet) IsZero() bool {
	return ts.IsEmpty()
}

// MarshalYAML implements yaml.Marshaler.
func (ts ToolSet) MarshalYAML() (any, error) {
	if ts.All {
		return Wildcard, nil
	}
	return ts.Names, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (ts *ToolSet) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return errors.Wrap(err, "decoding tools")
		}
		*ts = ParseTools(s)
	case yaml.SequenceNode:
		var names []string
		if err := value.Decode(&names); err != nil {
			return errors.Wrap(err, "decoding tools")
		}
		*ts = normalizeTools(names)
	default:
		return errors.Newf("tools: expected string or list, line %d", value.Line)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (ts ToolSet) MarshalJSON() ([]byte, error) {
	if ts.All {
		return json.Marshal(Wildcard)
	}
	if ts.Names == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(ts.Names)
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *ToolSet) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*ts = ParseTools(s)
		return nil
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return errors.Wrap(err, "tools: expected string or list")
	}
	*ts = normalizeTools(names)
	return nil
}

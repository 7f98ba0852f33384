package validator

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/teamforge/internal/platform"
	"github.com/thoreinstein/teamforge/internal/team"
)

// Severity represents the impact of a validation issue.
type Severity int

const (
	// SeverityError indicates a blocking validation failure.
	SeverityError Severity = iota
	// SeverityWarning indicates a non-blocking issue.
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Issue is one finding about deploying a Team to a target.
type Issue struct {
	Severity Severity         `json:"severity"`
	Target   string           `json:"target"`
	Feature  platform.Feature `json:"feature"`
	Message  string           `json:"message"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	if i.Target != "" {
		sb.WriteString(i.Target)
		sb.WriteString(": ")
	}
	sb.WriteString(i.Message)
	return sb.String()
}

// Result aggregates validation issues. Valid is false only when Errors is
// non-empty; warnings never invalidate a Team.
type Result struct {
	Valid    bool    `json:"valid"`
	Warnings []Issue `json:"warnings"`
	Errors   []Issue `json:"errors"`
}

// HasErrors reports whether any error was recorded.
func (r *Result) HasErrors() bool {
	return r != nil && len(r.Errors) > 0
}

// HasWarnings reports whether any warning was recorded.
func (r *Result) HasWarnings() bool {
	return r != nil && len(r.Warnings) > 0
}

// AddWarning records a warning for target and feature.
func (r *Result) AddWarning(target string, feature platform.Feature, message string) {
	r.Warnings = append(r.Warnings, Issue{
		Severity: SeverityWarning,
		Target:   target,
		Feature:  feature,
		Message:  message,
	})
}

// AddError records an error and marks the result invalid.
func (r *Result) AddError(target string, feature platform.Feature, message string) {
	r.Errors = append(r.Errors, Issue{
		Severity: SeverityError,
		Target:   target,
		Feature:  feature,
		Message:  message,
	})
	r.Valid = false
}

// Lookup resolves a target id to its capabilities. Registry.Capabilities
// satisfies it.
type Lookup func(target string) (platform.Capabilities, bool)

// Option adjusts what Validate expects a deploy to write.
type Option func(*options)

type options struct {
	seedMemory bool
}

// WithSeededMemory treats a Team without memory documents as having a
// memory bank, as deploy does when it seeds one from the Team metadata.
func WithSeededMemory(seed bool) Option {
	return func(o *options) {
		o.seedMemory = seed
	}
}

// Validate reports, for each known target, every non-empty Team section the
// target cannot represent. Unknown targets are ignored and duplicates are
// checked once. It never fails.
func Validate(t *team.Team, targets []string, lookup Lookup, opts ...Option) *Result {
	res := &Result{Valid: true, Warnings: []Issue{}, Errors: []Issue{}}
	if t == nil || lookup == nil {
		return res
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	counts := sectionCounts(t, o)
	seen := make(map[string]bool, len(targets))
	for _, target := range targets {
		if seen[target] {
			continue
		}
		seen[target] = true

		caps, ok := lookup(target)
		if !ok {
			continue
		}
		for _, f := range platform.CapabilityFeatures() {
			n := counts[f]
			if n == 0 || caps.Supports(f) {
				continue
			}
			res.AddWarning(target, f, message(f, n, target))
		}
	}
	return res
}

func sectionCounts(t *team.Team, o options) map[platform.Feature]int {
	counts := map[platform.Feature]int{
		platform.FeatureAgents:     len(t.Agents),
		platform.FeatureSkills:     len(t.Skills),
		platform.FeatureHooks:      len(t.Hooks),
		platform.FeatureMCPServers: len(t.MCPServers),
	}
	if t.HasConstitution() {
		counts[platform.FeatureConstitution] = 1
	}
	if _, ok := t.MemoryFor(o.seedMemory); ok {
		counts[platform.FeatureMemory] = 1
	}
	return counts
}

func message(f platform.Feature, n int, target string) string {
	if f == platform.FeatureConstitution || f == platform.FeatureMemory {
		return fmt.Sprintf("%s not supported by %s and will be skipped", f.Noun(), target)
	}
	return fmt.Sprintf("%d %s not supported by %s and will be skipped", n, f.Noun(), target)
}

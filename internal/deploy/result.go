package deploy

import (
	"github.com/thoreinstein/teamforge/internal/platform"
	"github.com/thoreinstein/teamforge/internal/validator"
)

// MultiResult aggregates a deploy to several targets.
type MultiResult struct {
	// Results holds one entry per distinct target id.
	Results map[string]*platform.Result `json:"results"`

	// Order lists the target ids in the order they were deployed.
	Order []string `json:"order"`

	Validation *validator.Result `json:"validation"`

	// Errors holds the error message of every failed target, in order.
	Errors []string `json:"errors,omitempty"`

	// Success is true only when every target succeeded.
	Success bool `json:"success"`
}

func (m *MultiResult) add(target string, res *platform.Result) {
	m.Results[target] = res
	m.Order = append(m.Order, target)
	if !res.Success {
		m.Success = false
		m.Errors = append(m.Errors, res.Error)
	}
}

// Ordered returns the results in deploy order.
func (m *MultiResult) Ordered() []*platform.Result {
	out := make([]*platform.Result, 0, len(m.Order))
	for _, id := range m.Order {
		out = append(out, m.Results[id])
	}
	return out
}

// Failed returns the ids of targets that did not succeed.
func (m *MultiResult) Failed() []string {
	var out []string
	for _, id := range m.Order {
		if !m.Results[id].Success {
			out = append(out, id)
		}
	}
	return out
}

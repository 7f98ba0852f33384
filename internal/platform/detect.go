package platform

import (
	"github.com/spf13/afero"

	"github.com/thoreinstein/teamforge/internal/paths"
)

// DetectStatus says whether a target already has files in a project.
type DetectStatus string

const (
	// StatusPresent indicates the target's project root exists.
	StatusPresent DetectStatus = "present"

	// StatusGlobalOnly indicates only the home-scoped directory exists.
	StatusGlobalOnly DetectStatus = "global-only"

	// StatusAbsent indicates neither location exists.
	StatusAbsent DetectStatus = "absent"
)

// Detection describes what a provider's layout looks like on disk today.
type Detection struct {
	Target string
	Paths  PathSet
	Status DetectStatus
}

// Detect stats p's project root and home-scoped locations.
// It only reads; nothing is created.
func Detect(fs afero.Fs, p Provider, projectRoot, homeDir string) Detection {
	ps := p.OutputPaths(projectRoot, homeDir)

	status := StatusAbsent
	switch {
	case exists(fs, ps.Root):
		status = StatusPresent
	case exists(fs, paths.GlobalConfigDir(p.ID(), homeDir)):
		status = StatusGlobalOnly
	}

	return Detection{
		Target: p.ID(),
		Paths:  ps,
		Status: status,
	}
}

// DetectAll runs Detect for every registered provider in registration order.
func (r *Registry) DetectAll(fs afero.Fs, projectRoot, homeDir string) []Detection {
	providers := r.All()
	out := make([]Detection, 0, len(providers))
	for _, p := range providers {
		out = append(out, Detect(fs, p, projectRoot, homeDir))
	}
	return out
}

func exists(fs afero.Fs, path string) bool {
	if path == "" {
		return false
	}
	ok, err := afero.Exists(fs, path)
	return err == nil && ok
}

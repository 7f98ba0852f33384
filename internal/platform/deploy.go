package platform

import (
	"fmt"

	"github.com/thoreinstein/teamforge/internal/errors"
	"github.com/thoreinstein/teamforge/internal/team"
)

// step is one Team section bound to the provider call that writes it.
type step struct {
	feature Feature
	present bool
	count   int
	run     func() (Outcome, error)
}

// Deploy writes t into p's layout. It prepares directories and then runs
// one step per non-empty Team section in DeployOrder. The first error or
// panic stops the remaining steps and fails the result; files already
// written are left in place.
func Deploy(p Provider, t *team.Team, projectRoot, homeDir string, opts Options) (res *Result) {
	res = NewResult(p.ID())
	g := Guard(p)

	defer func() {
		if r := recover(); r != nil {
			res.Fail(errors.Newf("%s: panic during deploy: %v", p.ID(), r))
		}
	}()

	paths := g.OutputPaths(projectRoot, homeDir)
	if err := g.PrepareDirectories(paths, opts); err != nil {
		res.Fail(errors.Wrapf(err, "%s: preparing directories", p.ID()))
		return res
	}

	memory, hasMemory := t.MemoryFor(opts.DeployMemoryBank)
	bundle := SettingsBundle{Hooks: t.Hooks, Security: t.Security}

	steps := []step{
		{FeatureConstitution, t.HasConstitution(), 1, func() (Outcome, error) {
			return g.DeployConstitution(paths, t.Constitution, opts)
		}},
		{FeatureAgents, len(t.Agents) > 0, len(t.Agents), func() (Outcome, error) {
			return g.DeployAgents(paths, t.Agents, opts)
		}},
		{FeatureSkills, len(t.Skills) > 0, len(t.Skills), func() (Outcome, error) {
			return g.DeploySkills(paths, t.Skills, opts)
		}},
		{FeatureHooks, len(t.Hooks) > 0, len(t.Hooks), func() (Outcome, error) {
			return g.DeployHooks(paths, t.Hooks, opts)
		}},
		{FeatureMCPServers, len(t.MCPServers) > 0, len(t.MCPServers), func() (Outcome, error) {
			return g.DeployMCPServers(paths, t.MCPServers, opts)
		}},
		{FeatureSettings, t.NeedsSettings(), 1, func() (Outcome, error) {
			return g.DeploySettings(paths, bundle, opts)
		}},
		{FeatureMemory, hasMemory, 1, func() (Outcome, error) {
			return g.DeployMemory(paths, memory, opts)
		}},
	}

	for _, s := range steps {
		if !s.present {
			continue
		}

		out, err := s.run()
		if err != nil {
			res.Details[s.feature] = Outcome{Status: StatusFailed, Reason: err.Error()}
			res.Fail(errors.Wrapf(err, "%s: deploying %s", p.ID(), s.feature))
			return res
		}

		res.Details[s.feature] = out
		res.Warnings = append(res.Warnings, out.Warnings...)

		if !out.Skipped() {
			continue
		}
		switch {
		case out.Reason == ReasonNotSupported:
			res.Warnings = append(res.Warnings, skipWarning(s.feature, s.count, p.DisplayName()))
		case s.feature == FeatureSettings && t.Security.Configured:
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("security policy not applied for %s: %s", p.DisplayName(), out.Reason))
		}
	}

	return res
}

func skipWarning(f Feature, count int, display string) string {
	if f == FeatureConstitution || f == FeatureMemory {
		return fmt.Sprintf("%s skipped: not supported by %s", f.Noun(), display)
	}
	return fmt.Sprintf("%d %s skipped: not supported by %s", count, f.Noun(), display)
}

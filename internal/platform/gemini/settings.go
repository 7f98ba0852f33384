package gemini

import (
	"fmt"
	"path/filepath"

	"github.com/thoreinstein/teamforge/internal/platform"
	"github.com/thoreinstein/teamforge/internal/team"
)

// ReasonNoSecurityPolicy is the skip reason when the Team has no policy.
const ReasonNoSecurityPolicy = "security policy not configured"

// DeployHooks is never reached; Gemini CLI has no hook support.
func (p *Provider) DeployHooks(platform.PathSet, []team.Hook, platform.Options) (platform.Outcome, error) {
	return platform.Skipped(platform.ReasonNotSupported), nil
}

// DeploySettings maps the security policy onto coreTools (allow) and
// excludeTools (deny) in the global settings document. Ask rules have no
// equivalent and are reported as a warning.
func (p *Provider) DeploySettings(ps platform.PathSet, bundle platform.SettingsBundle, _ platform.Options) (platform.Outcome, error) {
	sec := bundle.Security
	if !sec.Configured {
		return platform.Skipped(ReasonNoSecurityPolicy), nil
	}

	if err := p.files.MkdirAll(filepath.Dir(ps.Settings)); err != nil {
		return platform.Outcome{}, err
	}

	err := p.files.MergeJSON(ps.Settings, func(doc map[string]any) {
		setOrDelete(doc, "coreTools", sec.Permissions.Allow)
		setOrDelete(doc, "excludeTools", sec.Permissions.Deny)
	})
	if err != nil {
		return platform.Outcome{}, err
	}

	out := platform.Succeeded(1, ps.Settings)
	if n := len(sec.Permissions.Ask); n > 0 {
		out.Warnings = append(out.Warnings,
			fmt.Sprintf("%d ask rule(s) dropped: Gemini CLI has no ask permission", n))
	}
	return out, nil
}

// An empty coreTools list would disable every tool, so the key is removed.
func setOrDelete(doc map[string]any, key string, vals []string) {
	if len(vals) == 0 {
		delete(doc, key)
		return
	}
	doc[key] = vals
}

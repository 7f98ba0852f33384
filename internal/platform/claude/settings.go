package claude

import (
	"github.com/thoreinstein/teamforge/internal/platform"
	"github.com/thoreinstein/teamforge/internal/team"
)

// ReasonMergedIntoSettings is reported by DeployHooks; the hooks are
// written by DeploySettings.
const ReasonMergedIntoSettings = "merged into settings"

// HookEntry is one element of settings.hooks[event].
type HookEntry struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	Description string `json:"description"`
	Matcher     string `json:"matcher,omitempty"`
}

// Permissions is the settings "permissions" object.
type Permissions struct {
	Allow []string `json:"allow"`
	Deny  []string `json:"deny"`
	Ask   []string `json:"ask"`
}

// DeployHooks performs no I/O; hooks travel with the settings document.
func (p *Provider) DeployHooks(_ platform.PathSet, hooks []team.Hook, _ platform.Options) (platform.Outcome, error) {
	return platform.Outcome{
		Status: platform.StatusSuccess,
		Reason: ReasonMergedIntoSettings,
		Count:  len(hooks),
	}, nil
}

// DeploySettings merges version, hooks and, when the security policy is
// configured, permissions and env into settings.json. Other keys survive.
func (p *Provider) DeploySettings(ps platform.PathSet, bundle platform.SettingsBundle, opts platform.Options) (platform.Outcome, error) {
	path := ps.Settings
	if opts.UseLocal {
		path = ps.LocalSettings
	}

	err := p.files.MergeJSON(path, func(doc map[string]any) {
		doc["version"] = SettingsVersion

		if groups := GroupHooks(bundle.Hooks); len(groups) > 0 {
			doc["hooks"] = groups
		} else {
			delete(doc, "hooks")
		}

		sec := bundle.Security
		if !sec.Configured {
			return
		}
		doc["permissions"] = Permissions{
			Allow: nonNil(sec.Permissions.Allow),
			Deny:  nonNil(sec.Permissions.Deny),
			Ask:   nonNil(sec.Permissions.Ask),
		}
		if len(sec.Env) > 0 {
			doc["env"] = sec.Env
		} else {
			delete(doc, "env")
		}
	})
	if err != nil {
		return platform.Outcome{}, err
	}

	return platform.Succeeded(1, path), nil
}

// GroupHooks groups hooks by event, keeping Team order within each event.
func GroupHooks(hooks []team.Hook) map[string][]HookEntry {
	if len(hooks) == 0 {
		return nil
	}
	groups := make(map[string][]HookEntry)
	for _, h := range hooks {
		groups[string(h.Event)] = append(groups[string(h.Event)], HookEntry{
			Name:        h.Name,
			Command:     h.Command,
			Description: h.Description,
			Matcher:     h.Matcher,
		})
	}
	return groups
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/teamforge/internal/backup"
	"github.com/thoreinstein/teamforge/internal/config"
	"github.com/thoreinstein/teamforge/internal/deploy"
	"github.com/thoreinstein/teamforge/internal/errors"
	"github.com/thoreinstein/teamforge/internal/logging"
	"github.com/thoreinstein/teamforge/internal/team"
)

// currentConfig returns the loaded config, or defaults when none loaded.
func currentConfig() *config.Config {
	if cfg != nil {
		return cfg
	}
	return &config.Config{
		Version: config.CurrentVersion,
		Backup:  config.BackupConfig{Retention: config.DefaultBackupRetention},
	}
}

func newBackupManager() *backup.Manager {
	c := currentConfig()
	return backup.NewManager(
		backup.WithFs(fsys),
		backup.WithBackupDir(c.Backup.Dir),
		backup.WithRetentionCount(c.Backup.Retention),
	)
}

func newDeployer(cmd *cobra.Command) (*deploy.Deployer, error) {
	d, err := deploy.New(
		deploy.WithFs(fsys),
		deploy.WithHomeDir(homeDir),
		deploy.WithLogger(logging.FromContext(cmd.Context())),
		deploy.WithBackupManager(newBackupManager()),
	)
	if err != nil {
		return nil, errors.NewSystemError(err, "")
	}
	return d, nil
}

// loadTeam reads and validates a Team file.
func loadTeam(path string) (*team.Team, error) {
	t, err := team.Load(fsys, path)
	if err != nil {
		if errors.Is(err, team.ErrInvalidTeam) || errors.Is(err, team.ErrUnknownFormat) {
			return nil, errors.NewUserError(err, "Fix the team file and run: teamforge validate "+path)
		}
		return nil, errors.NewUserError(err, "Check that the team file exists and is readable")
	}
	return t, nil
}

// resolveTargets picks the targets for a command: an interactive pick,
// the --target flag, the configured defaults, then every target.
func resolveTargets(d *deploy.Deployer, flagTargets []string, interactive bool) ([]string, error) {
	available := d.AvailableTargets()

	if interactive {
		return pickTargets(d)
	}
	if len(flagTargets) > 0 {
		return splitTargets(flagTargets), nil
	}
	if defaults := currentConfig().DefaultTargets; len(defaults) > 0 {
		return slices.Clone(defaults), nil
	}
	return available, nil
}

// splitTargets accepts both repeated flags and comma-separated lists.
func splitTargets(in []string) []string {
	var out []string
	for _, v := range in {
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

func pickTargets(d *deploy.Deployer) ([]string, error) {
	providers := d.Registry().All()

	idxs, err := fuzzyfinder.FindMulti(
		providers,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", providers[i].ID(), providers[i].DisplayName())
		},
		fuzzyfinder.WithHeader("Select targets (Tab to mark, Enter to confirm)"),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return capabilitySummary(providers[i].Capabilities())
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, errors.NewUserError(err, "No targets selected")
		}
		return nil, errors.Wrap(err, "selecting targets")
	}

	out := make([]string, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, providers[i].ID())
	}
	return out, nil
}

// absProject resolves the project directory.
func absProject(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, "resolving project directory %s", dir)
	}
	return abs, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "encoding JSON output")
}

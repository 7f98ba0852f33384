package commands

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/teamforge/internal/deploy"
	"github.com/thoreinstein/teamforge/internal/errors"
	"github.com/thoreinstein/teamforge/internal/platform"
	"github.com/thoreinstein/teamforge/internal/redact"
	"github.com/thoreinstein/teamforge/internal/team"
)

var (
	deployTargets       []string
	deployProject       string
	deployClearExisting bool
	deployLocal         bool
	deployGlobal        bool
	deployRulesFolder   bool
	deployRulesFile     string
	deployMemoryBank    bool
	deployBackup        bool
	deployDryRun        bool
	deployInteractive   bool
	deployJSON          bool
)

func init() {
	f := deployCmd.Flags()
	f.StringSliceVarP(&deployTargets, "target", "t", nil, "target(s): claude, gemini, cline (default: config or all)")
	f.StringVar(&deployProject, "project", ".", "project directory to deploy into")
	f.BoolVar(&deployClearExisting, "clear-existing", false, "remove each target's project directory first")
	f.BoolVar(&deployLocal, "local", false, "write local-override constitution and settings files")
	f.BoolVar(&deployGlobal, "global", false, "also write the home-scoped constitution")
	f.BoolVar(&deployRulesFolder, "rules-folder", false, "deploy rules as a folder instead of a single file")
	f.StringVar(&deployRulesFile, "rules-file", "", "document name inside the rules folder")
	f.BoolVar(&deployMemoryBank, "memory-bank", false, "seed a memory bank from team metadata when the team has none")
	f.BoolVar(&deployBackup, "backup", false, "snapshot existing files before writing")
	f.BoolVar(&deployDryRun, "dry-run", false, "print the paths each target would use and exit")
	f.BoolVarP(&deployInteractive, "interactive", "i", false, "pick targets interactively")
	f.BoolVar(&deployJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(deployCmd)
}

var deployCmd = &cobra.Command{
	Use:   "deploy <team-file>",
	Short: "Deploy a team to one or more targets",
	Long: `Deploy a Team file (YAML, JSON or TOML) into the native layout of each
target. Targets are deployed one after another; a failure in one target does
not stop the others. Sections a target cannot represent are skipped with a
warning.

Flags override the deploy defaults in the config file.`,
	Example: `  # Deploy to Claude Code in the current directory
  teamforge deploy team.yaml -t claude

  # Deploy to Gemini CLI and Cline, rules as a folder
  teamforge deploy team.yaml -t gemini,cline --rules-folder

  # Show what would be written
  teamforge deploy team.yaml --dry-run

  See Also:
    teamforge validate       - Check a team against targets
    teamforge backup restore - Undo a deploy made with --backup`,
	Args: cobra.ExactArgs(1),
	RunE: runDeploy,
}

// deployOptions merges config defaults with the flags the user set.
func deployOptions(cmd *cobra.Command) platform.Options {
	def := currentConfig().Deploy
	opts := platform.Options{
		ClearExisting:    def.ClearExisting,
		UseLocal:         def.UseLocal,
		DeployGlobal:     def.DeployGlobal,
		UseRulesFolder:   def.UseRulesFolder,
		RulesFileName:    def.RulesFileName,
		DeployMemoryBank: def.DeployMemoryBank,
		Backup:           def.Backup,
	}

	flags := cmd.Flags()
	if flags.Changed("clear-existing") {
		opts.ClearExisting = deployClearExisting
	}
	if flags.Changed("local") {
		opts.UseLocal = deployLocal
	}
	if flags.Changed("global") {
		opts.DeployGlobal = deployGlobal
	}
	if flags.Changed("rules-folder") {
		opts.UseRulesFolder = deployRulesFolder
	}
	if flags.Changed("rules-file") {
		opts.RulesFileName = deployRulesFile
	}
	if flags.Changed("memory-bank") {
		opts.DeployMemoryBank = deployMemoryBank
	}
	if flags.Changed("backup") {
		opts.Backup = deployBackup
	}
	return opts
}

func runDeploy(cmd *cobra.Command, args []string) error {
	t, err := loadTeam(args[0])
	if err != nil {
		return err
	}

	d, err := newDeployer(cmd)
	if err != nil {
		return err
	}

	targets, err := resolveTargets(d, deployTargets, deployInteractive)
	if err != nil {
		return err
	}

	project, err := absProject(deployProject)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if deployDryRun {
		return printPlan(w, d, t, targets, project)
	}

	mr := d.DeployToMultiple(t, targets, project, deployOptions(cmd))

	if deployJSON {
		if err := writeJSON(w, mr); err != nil {
			return err
		}
	} else if !quiet {
		printDeploy(w, d, mr)
	}

	if mr.Success {
		return nil
	}
	return deployError(mr)
}

func deployError(mr *deploy.MultiResult) error {
	failed := mr.Failed()
	err := errors.Wrapf(errors.ErrDeployFailed, "%d of %d target(s)", len(failed), len(mr.Order))

	for _, id := range failed {
		if res := mr.Results[id]; res.BackupID != "" {
			return errors.NewSystemError(err,
				fmt.Sprintf("Undo partial changes with: teamforge backup restore %s %s", id, res.BackupID))
		}
	}
	return errors.NewSystemError(err, "Files written before the failure were kept; rerun with --backup to snapshot first")
}

func printDeploy(w io.Writer, d *deploy.Deployer, mr *deploy.MultiResult) {
	for _, res := range mr.Ordered() {
		name := res.Target
		if p := d.Registry().Get(res.Target); p != nil {
			name = p.DisplayName()
		}

		if res.Success {
			fmt.Fprintf(w, "%s %s: %d file(s) written\n", color.GreenString("✓"), name, len(res.Files()))
		} else {
			fmt.Fprintf(w, "%s %s: %s\n", color.RedString("✗"), name, res.Error)
		}
		for _, warn := range res.Warnings {
			fmt.Fprintf(w, "  %s %s\n", color.YellowString("!"), warn)
		}
		if res.BackupID != "" {
			fmt.Fprintf(w, "  %s\n", color.HiBlackString("backup: %s", res.BackupID))
		}
	}
}

// printPlan lists the locations each target would use without touching disk.
func printPlan(w io.Writer, d *deploy.Deployer, t *team.Team, targets []string, project string) error {
	fmt.Fprintf(w, "Team %s → %s\n", t.ID, project)
	for _, target := range targets {
		ps, err := d.Paths(target, project)
		if err != nil {
			fmt.Fprintf(w, "\n%s %s: %v\n", color.RedString("✗"), target, err)
			continue
		}
		fmt.Fprintf(w, "\n%s\n", color.New(color.Bold).Sprint(target))
		for _, e := range ps.Entries() {
			fmt.Fprintf(w, "  %-20s %s\n", e.Label, e.Path)
		}
	}

	if len(t.MCPServers) > 0 {
		fmt.Fprintln(w, "\nMCP servers:")
		for _, s := range t.MCPServers {
			if s.IsRemote() {
				fmt.Fprintf(w, "  %s (%s) %s\n", s.ID, s.Transport(), redact.URL(s.URL))
			} else {
				fmt.Fprintf(w, "  %s (%s) %s\n", s.ID, s.Transport(), s.Command)
			}
			env := redact.Map(s.Env)
			for _, k := range slices.Sorted(maps.Keys(env)) {
				fmt.Fprintf(w, "    %s=%s\n", k, env[k])
			}
		}
	}
	return nil
}

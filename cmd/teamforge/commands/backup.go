package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/teamforge/internal/backup"
	"github.com/thoreinstein/teamforge/internal/errors"
)

var (
	backupListJSON bool
	backupKeep     int
)

func init() {
	backupListCmd.Flags().BoolVar(&backupListJSON, "json", false, "Output in JSON format")
	backupPruneCmd.Flags().IntVar(&backupKeep, "keep", 0, "number of backups to keep (default: configured retention)")

	backupCmd.AddCommand(backupListCmd, backupRestoreCmd, backupPruneCmd)
	rootCmd.AddCommand(backupCmd)
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage pre-deploy backups",
	Long: `List, restore and prune the snapshots taken by deploy --backup.

A snapshot records every file a deploy to one target could overwrite, plus
the files and directories that did not exist yet, so restoring it puts the
target back exactly as it was.`,
}

var backupListCmd = &cobra.Command{
	Use:   "list <target>",
	Short: "List backups for a target",
	Example: `  teamforge backup list claude
  teamforge backup list gemini --json`,
	Args: cobra.ExactArgs(1),
	RunE: runBackupList,
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <target> [backup-id]",
	Short: "Restore a target from a backup",
	Long: `Restore every file recorded in a backup and remove the files and
directories the deploy created. Without a backup id the most recent backup
is used.`,
	Example: `  # Undo the last deploy to Claude Code
  teamforge backup restore claude

  # Restore a specific backup
  teamforge backup restore claude 20260123T100712

  See Also:
    teamforge backup list - List available backups`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runBackupRestore,
}

var backupPruneCmd = &cobra.Command{
	Use:     "prune <target>",
	Short:   "Delete old backups for a target",
	Example: `  teamforge backup prune cline --keep 2`,
	Args:    cobra.ExactArgs(1),
	RunE:    runBackupPrune,
}

type backupInfoOutput struct {
	ID               string    `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	FileCount        int       `json:"file_count"`
	TeamforgeVersion string    `json:"teamforge_version"`
}

func runBackupList(cmd *cobra.Command, args []string) error {
	target := args[0]
	manifests, err := newBackupManager().List(target)
	if err != nil && !errors.Is(err, backup.ErrNoBackupsFound) {
		return errors.Wrapf(err, "listing backups for %s", target)
	}

	w := cmd.OutOrStdout()
	if backupListJSON {
		out := make([]backupInfoOutput, len(manifests))
		for i, m := range manifests {
			out[i] = backupInfoOutput{
				ID:               m.ID,
				CreatedAt:        m.CreatedAt,
				FileCount:        len(m.Files),
				TeamforgeVersion: m.TeamforgeVersion,
			}
		}
		return writeJSON(w, out)
	}

	return printBackups(w, target, manifests)
}

func printBackups(w io.Writer, target string, manifests []backup.Manifest) error {
	if len(manifests) == 0 {
		fmt.Fprintf(w, "No backups available for %s\n", target)
		fmt.Fprintln(w, "Create one by deploying with --backup.")
		return nil
	}

	bold := color.New(color.Bold).SprintFunc()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", bold("ID"), bold("CREATED"), bold("FILES"), bold("VERSION"))
	for _, m := range manifests {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
			color.GreenString(m.ID),
			m.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			len(m.Files),
			m.TeamforgeVersion)
	}
	return tw.Flush()
}

func runBackupRestore(cmd *cobra.Command, args []string) error {
	target := args[0]
	mgr := newBackupManager()

	var id string
	if len(args) > 1 {
		id = args[1]
	} else {
		latest, err := mgr.Latest(target)
		if err != nil {
			if errors.Is(err, backup.ErrNoBackupsFound) {
				return errors.NewUserError(err, "Deploy with --backup to create one")
			}
			return errors.Wrap(err, "finding latest backup")
		}
		id = latest.ID
	}

	if err := mgr.Restore(target, id); err != nil {
		if errors.Is(err, backup.ErrNoBackupsFound) {
			return errors.NewUserError(err, "List backups with: teamforge backup list "+target)
		}
		return errors.NewSystemError(err, "")
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s Restored %s from backup %s\n", color.GreenString("✓"), target, id)
	}
	return nil
}

func runBackupPrune(cmd *cobra.Command, args []string) error {
	target := args[0]
	mgr := newBackupManager()

	keep := mgr.RetentionCount()
	if cmd.Flags().Changed("keep") {
		if backupKeep < 1 {
			return errors.NewUserError(errors.Newf("invalid --keep %d", backupKeep), "Keep at least one backup")
		}
		keep = backupKeep
	}

	removed, err := mgr.Prune(target, keep)
	if err != nil {
		return errors.Wrapf(err, "pruning backups for %s", target)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d backup(s) for %s\n", len(removed), target)
	}
	return nil
}

package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/teamforge/internal/errors"
	"github.com/thoreinstein/teamforge/internal/platform"
)

var (
	targetsJSON    bool
	targetsProject string
)

func init() {
	targetsCmd.Flags().BoolVar(&targetsJSON, "json", false, "Output in JSON format")
	targetsCmd.Flags().StringVar(&targetsProject, "project", ".", "project directory to inspect")
	rootCmd.AddCommand(targetsCmd)
}

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List deploy targets and what they support",
	Long: `List every deploy target with its capability table and whether the
current project already has files for it.`,
	Example: `  # Show the capability table
  teamforge targets

  # For another project
  teamforge targets --project ../web --json`,
	Args: cobra.NoArgs,
	RunE: runTargets,
}

// targetOutput is one row of the JSON output.
type targetOutput struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Capabilities platform.Capabilities `json:"capabilities"`
	Status       platform.DetectStatus `json:"status"`
}

func runTargets(cmd *cobra.Command, _ []string) error {
	d, err := newDeployer(cmd)
	if err != nil {
		return err
	}
	project, err := absProject(targetsProject)
	if err != nil {
		return err
	}
	home, err := homeDir()
	if err != nil {
		return errors.NewSystemError(err, "Set $HOME and retry")
	}

	reg := d.Registry()
	detections := reg.DetectAll(fsys, project, home)

	rows := make([]targetOutput, 0, len(detections))
	for _, det := range detections {
		p := reg.Get(det.Target)
		rows = append(rows, targetOutput{
			ID:           p.ID(),
			Name:         p.DisplayName(),
			Capabilities: p.Capabilities(),
			Status:       det.Status,
		})
	}

	if targetsJSON {
		return writeJSON(cmd.OutOrStdout(), rows)
	}
	return printTargets(cmd.OutOrStdout(), rows)
}

func printTargets(w io.Writer, rows []targetOutput) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TARGET\tNAME\tAGENTS\tCONSTITUTION\tSKILLS\tHOOKS\tMCP\tMEMORY\tSTATUS")
	for _, r := range rows {
		c := r.Capabilities
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Name,
			mark(c.Agents), mark(c.Constitution), mark(c.Skills),
			mark(c.Hooks), mark(c.MCPServers), mark(c.Memory),
			r.Status)
	}
	return errors.Wrap(tw.Flush(), "writing table")
}

func mark(ok bool) string {
	if ok {
		return "yes"
	}
	return "-"
}

// capabilitySummary is the preview shown in the interactive target picker.
func capabilitySummary(c platform.Capabilities) string {
	var sb strings.Builder
	sb.WriteString("Supports:\n")
	for _, f := range platform.CapabilityFeatures() {
		if c.Supports(f) {
			fmt.Fprintf(&sb, "  %s %s\n", color.GreenString("✓"), f)
		} else {
			fmt.Fprintf(&sb, "  %s %s\n", color.HiBlackString("✗"), f)
		}
	}
	return sb.String()
}

package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/teamforge/cmd"
	"github.com/thoreinstein/teamforge/internal/platform/claude"
	"github.com/thoreinstein/teamforge/internal/platform/cline"
	"github.com/thoreinstein/teamforge/internal/platform/gemini"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, build date and supported targets of teamforge.`,
	Run: func(c *cobra.Command, _ []string) {
		w := c.OutOrStdout()
		fmt.Fprintf(w, "teamforge version %s\n", cmd.Version)
		fmt.Fprintf(w, "  commit:  %s\n", cmd.Commit)
		fmt.Fprintf(w, "  built:   %s\n", cmd.Date)
		fmt.Fprintf(w, "  go:      %s\n", runtime.Version())
		fmt.Fprintf(w, "  targets: %s\n", strings.Join([]string{claude.ID, gemini.ID, cline.ID}, ", "))
	},
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/teamforge/internal/errors"
	"github.com/thoreinstein/teamforge/internal/validator"
)

var (
	validateTargets    []string
	validateJSON       bool
	validateMemoryBank bool
)

func init() {
	validateCmd.Flags().StringSliceVarP(&validateTargets, "target", "t", nil, "target(s) to check against (default: config or all)")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output in JSON format")
	validateCmd.Flags().BoolVar(&validateMemoryBank, "memory-bank", false, "count the memory bank deploy would seed when the team has none")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <team-file>",
	Short: "Check which parts of a team each target supports",
	Long: `Load a Team file, check its structure, and report every section a
target cannot represent. Nothing is written.

Unsupported sections are warnings: deploy skips them and carries on.`,
	Example: `  # Check against every target
  teamforge validate team.yaml

  # Check against Gemini CLI only, as JSON
  teamforge validate team.yaml -t gemini --json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	t, err := loadTeam(args[0])
	if err != nil {
		return err
	}

	d, err := newDeployer(cmd)
	if err != nil {
		return err
	}

	targets, err := resolveTargets(d, validateTargets, false)
	if err != nil {
		return err
	}

	seed := currentConfig().Deploy.DeployMemoryBank
	if cmd.Flags().Changed("memory-bank") {
		seed = validateMemoryBank
	}
	result := d.Validate(t, targets, validator.WithSeededMemory(seed))

	format := validator.FormatText
	if validateJSON {
		format = validator.FormatJSON
	}
	if err := validator.NewReporter(cmd.OutOrStdout(), format).Report(result); err != nil {
		return errors.Wrap(err, "writing report")
	}

	if result.HasErrors() {
		return errors.NewUserError(errors.New("validation failed"), "")
	}
	return nil
}

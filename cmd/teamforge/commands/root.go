// Package commands implements the CLI commands for teamforge.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/teamforge/cmd"
	"github.com/thoreinstein/teamforge/internal/backup"
	"github.com/thoreinstein/teamforge/internal/config"
	"github.com/thoreinstein/teamforge/internal/errors"
	"github.com/thoreinstein/teamforge/internal/logging"
	"github.com/thoreinstein/teamforge/internal/paths"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configPath holds the value of the --config flag.
var configPath string

// cfg is the loaded configuration; defaults apply when no file exists.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

// fsys and homeDir are what every command reads and writes through.
// Tests swap them for an in-memory filesystem and a fixed home.
var (
	fsys    afero.Fs = afero.NewOsFs()
	homeDir          = paths.ResolveHome
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default: ./config.yaml or $XDG_CONFIG_HOME/teamforge/config.yaml)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("teamforge version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load(configPath)
	backup.Version = cmd.Version
}

var rootCmd = &cobra.Command{
	Use:   "teamforge",
	Short: "Deploy AI agent teams to coding assistants",
	Long: `teamforge deploys a Team (agents, skills, hooks, MCP servers, security
policy, constitution and memory bank) into the native configuration layout
of AI coding assistants: Claude Code, Gemini CLI and Cline.

Sections a target cannot represent are skipped with a warning; everything
else is translated into that target's files.`,
	Example: `  # Deploy a team to Claude Code
  teamforge deploy team.yaml -t claude

  # Deploy to every target and back up first
  teamforge deploy team.yaml --backup

  # See what each target supports
  teamforge targets

  See Also: teamforge validate, teamforge backup`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		if configLoadErr != nil {
			return errors.NewConfigError(configLoadErr)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("conflicting flags"), "cannot use --quiet and --verbose together")
	}

	color.NoColor = !logging.SupportsColor(cmd.OutOrStdout())

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			if val, ok := os.LookupEnv("TEAMFORGE_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{Level: level}

	primaryHandler := logging.New(logging.Config{
		Level:  level,
		Format: logging.Format(logFormat),
		Output: cmd.ErrOrStderr(),
	}).Handler()

	handler := primaryHandler
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		handler = logging.NewMultiHandler(primaryHandler, slog.NewJSONHandler(f, opts))
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	if used := config.ConfigFileUsed(); used != "" {
		logger.Debug("config loaded", "path", used)
	}

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

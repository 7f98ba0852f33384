package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/teamforge/internal/errors"
	"github.com/thoreinstein/teamforge/internal/paths"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. TEAMFORGE_DEFAULT_TARGETS.
const EnvPrefix = "TEAMFORGE"

// ConfigDirEnv overrides the directory searched for config.yaml.
const ConfigDirEnv = EnvPrefix + "_CONFIG_DIR"

// CurrentVersion is the only config schema version understood.
const CurrentVersion = 1

// DefaultBackupRetention is how many snapshots per target are kept when
// backup.retention is unset.
const DefaultBackupRetention = 5

// Config represents the top-level configuration structure.
type Config struct {
	Version        int            `mapstructure:"version" yaml:"version"`
	DefaultTargets []string       `mapstructure:"default_targets" yaml:"default_targets"`
	Deploy         DeployDefaults `mapstructure:"deploy" yaml:"deploy"`
	Backup         BackupConfig   `mapstructure:"backup" yaml:"backup"`
}

// DeployDefaults seeds deploy options. Command-line flags take precedence.
type DeployDefaults struct {
	ClearExisting    bool   `mapstructure:"clear_existing" yaml:"clear_existing"`
	UseLocal         bool   `mapstructure:"use_local" yaml:"use_local"`
	DeployGlobal     bool   `mapstructure:"deploy_global" yaml:"deploy_global"`
	UseRulesFolder   bool   `mapstructure:"use_rules_folder" yaml:"use_rules_folder"`
	RulesFileName    string `mapstructure:"rules_file_name" yaml:"rules_file_name"`
	DeployMemoryBank bool   `mapstructure:"deploy_memory_bank" yaml:"deploy_memory_bank"`
	Backup           bool   `mapstructure:"backup" yaml:"backup"`
}

// BackupConfig controls where pre-deploy snapshots live and how many are kept.
type BackupConfig struct {
	Dir       string `mapstructure:"dir" yaml:"dir"`
	Retention int    `mapstructure:"retention" yaml:"retention"`
}

// Init resets Viper and installs defaults, search paths and env binding.
// Call this once at application startup before accessing config values.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		viper.AddConfigPath(dir)
	} else {
		viper.AddConfigPath(paths.AppConfigDir())
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("version", CurrentVersion)
	viper.SetDefault("default_targets", paths.Targets())
	viper.SetDefault("deploy.clear_existing", false)
	viper.SetDefault("deploy.use_local", false)
	viper.SetDefault("deploy.deploy_global", false)
	viper.SetDefault("deploy.use_rules_folder", false)
	viper.SetDefault("deploy.rules_file_name", "")
	viper.SetDefault("deploy.deploy_memory_bank", false)
	viper.SetDefault("deploy.backup", false)
	viper.SetDefault("backup.dir", paths.BackupDir())
	viper.SetDefault("backup.retention", DefaultBackupRetention)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when nothing is found. The result is validated.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// implicit load, defaults apply
		case errors.As(err, &notFound), errors.Is(err, os.ErrNotExist):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}

// ConfigFileUsed reports the file Viper loaded, or "" when defaults apply.
func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}

// Package config loads teamforge's own settings with Viper.
//
// The file is config.yaml, searched in the current directory and then in
// $XDG_CONFIG_HOME/teamforge (or $TEAMFORGE_CONFIG_DIR when set). Every key
// can be overridden through a TEAMFORGE_ prefixed environment variable.
//
//	version: 1
//	default_targets: [claude, cline]
//	deploy:
//	  use_rules_folder: true
//	  rules_file_name: team.md
//	  backup: true
//	backup:
//	  retention: 10
//
// [Load] validates the result; [Validate] can be called directly.
package config

// Package config provides configuration management for the defcheck CLI.
//
// # Configuration File
//
// The configuration file is config.yaml, searched for in the current
// directory and then in $XDG_CONFIG_HOME/defcheck:
//
//	version: 1
//	format: text
//	extensions: [.yaml, .yml, .toml, .md]
//	disabled_rules:
//	  - not-empty
//	name_pattern: "^[A-Za-z][A-Za-z0-9_]*$"
//	max_doc_length: 2000
//
// Every key can also be set from the environment with the DEFCHECK_ prefix,
// for example DEFCHECK_FORMAT=json.
//
// # Loading Configuration
//
// Call [Init] once, then [Load]. Load validates the result:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
package config

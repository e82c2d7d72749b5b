// Package config declares the CLI surface parsed by kong. Values come from
// flags, environment variables, or a config file; flags win.
package config

import "github.com/rlayout/sdkgen/internal/cmd"

type LogConfig struct {
	Level string `help:"Log level: trace, debug, info, warn, error" enum:"trace,debug,info,warn,error" default:"info" env:"SDKGEN_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" env:"SDKGEN_LOG_FILE"`
}

type CLI struct {
	Config string    `help:"Path to a configuration file (json, yaml, or toml)" env:"SDKGEN_CONFIG"`
	Log    LogConfig `embed:"" prefix:"log."`

	Generate  cmd.Generate      `cmd:"" help:"Generate SDK crates from a registry snapshot"`
	Inspect   cmd.Inspect       `cmd:"" help:"Summarize a registry snapshot"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}

package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Binder is a section of the configuration. Bind declares the flags
// of the section and Configure reads the section values once all the
// sources have been parsed
type Binder interface {
	Bind(v *viper.Viper, cmd *cobra.Command) error
	Configure(v *viper.Viper) error
}

const configFileKey = "config"

// ConfigFile is the Binder for an optional configuration file. Any
// format supported by viper can be used, and the format is taken
// from the file extension
type ConfigFile struct {
	Path string
}

// Bind implementation of Binder for ConfigFile
func (f *ConfigFile) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(configFileKey, "",
		"path to a configuration file (json, yaml or toml)")
	return nil
}

// Configure implementation of Binder for ConfigFile
func (f *ConfigFile) Configure(v *viper.Viper) error {
	f.Path = v.GetString(configFileKey)
	if f.Path == "" {
		return nil
	}

	v.SetConfigFile(f.Path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read configuration file %s", f.Path)
	}

	return nil
}

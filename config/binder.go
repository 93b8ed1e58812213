package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Binder defines a set of parameters. Bind registers the flags
// of the parameters and Configure reads their values once all
// the sources have been parsed
type Binder interface {
	Bind(v *viper.Viper, cmd *cobra.Command) error
	Configure(v *viper.Viper) error
}

const configFileKey = "config"

// ConfigFile is the Binder for the optional configuration file
// of a command
type ConfigFile struct {
	Path string
}

// Bind implementation of Binder for ConfigFile
func (f *ConfigFile) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(configFileKey, "", "path to the configuration file")
	return nil
}

// Configure implementation of Binder for ConfigFile
func (f *ConfigFile) Configure(v *viper.Viper) error {
	f.Path = v.GetString(configFileKey)
	if len(f.Path) == 0 {
		return nil
	}

	v.SetConfigFile(f.Path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read configuration file %s", f.Path)
	}

	return nil
}

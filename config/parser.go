package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the configuration of an application, made of
// the sections returned by Binders
type Config interface {
	// Use is the one line description of the application
	Use() string

	// EnvPrefix is the prefix of all the environment variables
	// read by the application
	EnvPrefix() string

	// Binders are the sections of the configuration
	Binders() []Binder
}

// Parser reads the configuration of an application from the command
// line flags, the environment and an optional configuration file
type Parser struct {
	Config Config

	file *ConfigFile

	cmd *cobra.Command
	v   *viper.Viper
}

// Parse parses args and fills all the sections of the configuration.
// Flags take precedence over environment variables, which take
// precedence over the configuration file
func (p *Parser) Parse(args []string) error {
	if p.cmd.PersistentFlags().Parsed() {
		return ErrAlreadyParsed
	}

	if err := p.cmd.PersistentFlags().Parse(args); err != nil {
		return ErrParseFlags{err}
	}

	// keep file first so that any parameters read from the file are used
	// as defaults for the other flags
	var binders []Binder
	binders = append(binders, p.file)
	binders = append(binders, p.Config.Binders()...)

	for _, c := range binders {
		if err := c.Configure(p.v); err != nil {
			return err
		}
	}

	return nil
}

// Args returns the positional arguments left after parsing
func (p *Parser) Args() []string {
	return p.cmd.PersistentFlags().Args()
}

// Usage prints the usage of the command
func (p *Parser) Usage() error {
	return p.cmd.Usage()
}

// Generate creates a Parser for the configuration of app. It declares
// the flags of every section of config
func Generate(app string, config Config) (*Parser, error) {
	v := viper.New()
	// all environment variables start with prefix `prefix` and are set
	// by replacing `.` and `-` to _.
	v.SetEnvPrefix(config.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{Use: app, Short: config.Use()}

	file := ConfigFile{}
	var binders []Binder
	binders = append(binders, &file)
	binders = append(binders, config.Binders()...)

	for _, c := range binders {
		if err := c.Bind(v, cmd); err != nil {
			return nil, errors.Wrap(err, "failed to bind flags")
		}
	}

	if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
		return nil, errors.Wrap(err, "failed to bind flags")
	}

	return &Parser{file: &file, Config: config, cmd: cmd, v: v}, nil
}

package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ihilario9/Binary-Search-Tree/config"
	errs "github.com/ihilario9/Binary-Search-Tree/errors"
	"github.com/ihilario9/Binary-Search-Tree/logs"
)

const (
	// ErrCodeInvalidList is the code of the error returned when a list
	// of values cannot be parsed
	ErrCodeInvalidList = 1001

	// ErrCodeInvalidRange is the code of the error returned when a
	// range is not of the form min:max
	ErrCodeInvalidRange = 1002

	// ErrCodeInvalidFormat is the code of the error returned for an
	// unknown output format
	ErrCodeInvalidFormat = 1003

	// ErrCodeInvalidLevel is the code of the error returned for an
	// unknown log level
	ErrCodeInvalidLevel = 1004

	// ErrCodeNoElements is the code of the error returned when there
	// are no elements to insert
	ErrCodeNoElements = 1005

	// ErrCodeScenarioFailed is the code of the error returned when
	// one of the scenarios fails to run
	ErrCodeScenarioFailed = 1006
)

const (
	FormatText = "text"
	FormatDot  = "dot"
)

// stringList reads a list of values under key. Lists given as a single
// string are split with shell quoting rules, so values with spaces
// can be passed from the command line
func stringList(v *viper.Viper, key string) ([]string, error) {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetStringSlice(key), nil
	}

	values, err := shlex.Split(raw)
	if err != nil {
		return nil, errs.Wrap(ErrCodeInvalidList, err, fmt.Sprintf("invalid list for %s", key))
	}

	return values, nil
}

// Range is a closed range of elements [Min, Max]
type Range struct {
	Min string
	Max string
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s]", r.Min, r.Max)
}

func parseRange(s string) (Range, error) {
	min, max, ok := strings.Cut(s, ":")
	if !ok {
		return Range{}, errs.New(ErrCodeInvalidRange,
			fmt.Sprintf("range %q must have the form min:max", s))
	}

	return Range{Min: min, Max: max}, nil
}

// TreeConfig holds the elements used to build the trees
type TreeConfig struct {
	// Elements are inserted in order into every fresh tree
	Elements []string

	// Removals are the elements removed, one per scenario
	Removals []string

	// Ranges are counted on the summary tree
	Ranges []Range
}

// Bind implementation of config.Binder for TreeConfig
func (c *TreeConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("tree.elements", "d b a c f e g",
		"elements inserted in order into every tree")
	cmd.PersistentFlags().String("tree.removals", "a b c d e f g",
		"elements to remove, one scenario each")
	cmd.PersistentFlags().String("tree.ranges", "a:g c:f",
		"ranges min:max counted on the summary tree")
	return nil
}

// Configure implementation of config.Binder for TreeConfig
func (c *TreeConfig) Configure(v *viper.Viper) error {
	var err error

	if c.Elements, err = stringList(v, "tree.elements"); err != nil {
		return err
	}

	if len(c.Elements) == 0 {
		return errs.New(ErrCodeNoElements, "at least one element is required")
	}

	if c.Removals, err = stringList(v, "tree.removals"); err != nil {
		return err
	}

	ranges, err := stringList(v, "tree.ranges")
	if err != nil {
		return err
	}

	c.Ranges = c.Ranges[:0]
	for _, s := range ranges {
		r, err := parseRange(s)
		if err != nil {
			return err
		}

		c.Ranges = append(c.Ranges, r)
	}

	return nil
}

// OutputConfig sets how the reports are written
type OutputConfig struct {
	// Format is either text or dot
	Format string

	// Summary enables the summary of a tree with all the elements
	Summary bool
}

// Bind implementation of config.Binder for OutputConfig
func (c *OutputConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("output.format", FormatText, "output format, text or dot")
	cmd.PersistentFlags().Bool("output.summary", true, "print the summary of a tree with all the elements")
	return nil
}

// Configure implementation of config.Binder for OutputConfig
func (c *OutputConfig) Configure(v *viper.Viper) error {
	c.Format = strings.ToLower(v.GetString("output.format"))
	c.Summary = v.GetBool("output.summary")

	switch c.Format {
	case FormatText, FormatDot:
		return nil
	default:
		return errs.New(ErrCodeInvalidFormat, fmt.Sprintf("unknown output format %q", c.Format))
	}
}

// RunnerConfig sets how the scenarios are run
type RunnerConfig struct {
	// Concurrency is the number of scenarios run at the same time
	Concurrency int
}

// Bind implementation of config.Binder for RunnerConfig
func (c *RunnerConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().Int("runner.concurrency", 4, "number of scenarios run at the same time")
	return nil
}

// Configure implementation of config.Binder for RunnerConfig
func (c *RunnerConfig) Configure(v *viper.Viper) error {
	c.Concurrency = v.GetInt("runner.concurrency")
	return nil
}

// LogConfig sets up the logger
type LogConfig struct {
	Level logrus.Level
	JSON  bool
}

// Bind implementation of config.Binder for LogConfig
func (c *LogConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("log.level", "warn", "minimum level of the log entries")
	cmd.PersistentFlags().Bool("log.json", false, "write log entries as json")
	return nil
}

// Configure implementation of config.Binder for LogConfig
func (c *LogConfig) Configure(v *viper.Viper) error {
	level, err := logrus.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return errs.Wrap(ErrCodeInvalidLevel, err, "invalid log level")
	}

	c.Level = level
	c.JSON = v.GetBool("log.json")
	return nil
}

// NewLogger creates a logger that writes to w
func (c *LogConfig) NewLogger(w io.Writer) logs.Logger {
	var formatter logrus.Formatter = &logrus.TextFormatter{DisableColors: true}
	if c.JSON {
		formatter = &logrus.JSONFormatter{}
	}

	return logs.NewLogrus(logs.LogrusLoggerProperties{
		Level:     c.Level,
		Output:    w,
		Formatter: formatter,
	})
}

// Config is the configuration of the demonstration driver
type Config struct {
	Tree   TreeConfig
	Output OutputConfig
	Runner RunnerConfig
	Log    LogConfig
}

// Use implementation of config.Config for Config
func (c *Config) Use() string {
	return "builds fresh binary search trees, walks them and removes elements"
}

// EnvPrefix implementation of config.Config for Config
func (c *Config) EnvPrefix() string {
	return "BSTDEMO"
}

// Binders implementation of config.Config for Config
func (c *Config) Binders() []config.Binder {
	return []config.Binder{&c.Tree, &c.Output, &c.Runner, &c.Log}
}

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/metalagman/prsummary"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "PRSUMMARY"

type rootOptions struct {
	configFile string
	runner     string
	model      string
	tty        bool
	timeout    time.Duration
	debug      bool
}

type settings struct {
	Runner  string        `mapstructure:"runner"`
	Model   string        `mapstructure:"model"`
	TTY     bool          `mapstructure:"tty"`
	Timeout time.Duration `mapstructure:"timeout"`
	Debug   bool          `mapstructure:"debug"`
}

// loadSettings merges flags, PRSUMMARY_* env vars, the optional config file
// and defaults, in that order of precedence.
func loadSettings(cmd *cobra.Command) (settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("runner", prsummary.DefaultRunner)
	v.SetDefault("model", prsummary.DefaultModel)
	v.SetDefault("tty", false)
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("debug", false)

	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return settings{}, err
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return settings{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	for _, name := range []string{"runner", "model", "tty", "timeout", "debug"} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return settings{}, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return settings{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return s, nil
}

func (s settings) modelConfig() (prsummary.ModelConfig, error) {
	runner, err := prsummary.ParseRunner(s.Runner)
	if err != nil {
		return prsummary.ModelConfig{}, err
	}

	tty := s.TTY

	return prsummary.ModelConfig{
		Runner: runner,
		Model:  s.Model,
		UseTTY: &tty,
	}, nil
}

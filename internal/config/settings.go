package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "WORLDFORGE"

// Settings are the CLI-wide knobs: logging and the report format.
type Settings struct {
	Log    LogSettings `mapstructure:"log"`
	Output string      `mapstructure:"output"`
}

type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps settings keys to the root command's flag names.
var flagKeys = map[string]string{
	"log.level":  "log-level",
	"log.format": "log-format",
	"output":     "output",
}

// LoadSettings layers defaults, an optional settings file, WORLDFORGE_* env
// vars and explicitly set flags, lowest to highest.
func LoadSettings(path string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("output", "table")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading settings %s: %w", path, err)
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	return &s, nil
}

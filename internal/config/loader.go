package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config file names searched in the working directory.
const (
	ConfigFileName    = "sheetpeek.yaml"
	ConfigFileNameAlt = "sheetpeek.yml"
)

// sectionFlags are flag names that belong to a per-command section,
// e.g. --count on the window command sets window.count.
var sectionFlags = map[string]bool{
	"offset": true,
	"count":  true,
}

// findConfigFile finds the config file to use.
// Priority: explicit path > sheetpeek.yaml > sheetpeek.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load loads configuration from defaults, config file, environment
// variables and flags. Precedence (highest to lowest): flags > env vars >
// config file > defaults. section names the command whose --offset and
// --count flags are being loaded ("preview", "window"); it may be empty.
func Load(cfgFile, section string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file; an explicit path must exist
	source := findConfigFile(cfgFile)
	if source != "" {
		if err := k.Load(file.Provider(source), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", source, err)
		}
	}

	// 3. Environment: SHEETPEEK_WINDOW__COUNT -> window.count
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags that were explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if sectionFlags[key] {
				if section == "" {
					return "", nil
				}
				key = section + "." + key
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values no command can use.
func (c *Config) Validate() error {
	if c.HeaderRow < 1 {
		return fmt.Errorf("invalid header_row %d: must be 1 or greater", c.HeaderRow)
	}
	if c.Window.Offset < 0 {
		return fmt.Errorf("invalid window.offset %d: must not be negative", c.Window.Offset)
	}
	return nil
}

// Package config loads run configuration from defaults, an optional YAML
// file, a local .env file and NAMECHECK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = "namecheck.yaml"

// Config holds all run configuration.
type Config struct {
	Data   DataConfig   `mapstructure:"data"`
	ISO    ISOConfig    `mapstructure:"iso"`
	Log    LogConfig    `mapstructure:"log"`
	Report ReportConfig `mapstructure:"report"`
}

// DataConfig locates the audited data files.
type DataConfig struct {
	// Names are files or directories of name records, merged in order.
	Names       []string `mapstructure:"names"`
	Aliases     string   `mapstructure:"aliases"`
	Mappings    string   `mapstructure:"mappings"`
	LegalGuides string   `mapstructure:"legal_guides"`
}

// ISOConfig controls the ISO 3166-1 cache.
type ISOConfig struct {
	CachePath string `mapstructure:"cache_path"`
	URL       string `mapstructure:"url"`
	// Timeout bounds the one-time fetch; zero waits as long as the transport does.
	Timeout time.Duration `mapstructure:"timeout"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ReportConfig controls report output and failure policy.
type ReportConfig struct {
	Format         string `mapstructure:"format"`
	FailOnWarnings bool   `mapstructure:"fail_on_warnings"`
	// Output, when set, also saves the JSON report there (gzip for ".gz").
	Output string `mapstructure:"output"`
}

// Load reads configuration from path, or from DefaultFile when path is empty.
// A missing DefaultFile is fine; a missing explicit path or an unparsable
// file is an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("data.names", []string{"data/names"})
	v.SetDefault("data.aliases", "data/name-aliases.yaml")
	v.SetDefault("data.mappings", "data/western-mappings.yaml")
	v.SetDefault("data.legal_guides", "data/legal-guides.yaml")
	v.SetDefault("iso.cache_path", "data/cache/iso-3166.json")
	v.SetDefault("iso.url", "")
	v.SetDefault("iso.timeout", "0s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("report.format", "text")
	v.SetDefault("report.fail_on_warnings", false)
	v.SetDefault("report.output", "")

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix("NAMECHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Report.Format {
	case "text", "json":
	default:
		return fmt.Errorf("report.format: unsupported value %q (want text or json)", c.Report.Format)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format: unsupported value %q (want console or json)", c.Log.Format)
	}
	if c.ISO.Timeout < 0 {
		return fmt.Errorf("iso.timeout: must not be negative")
	}
	return nil
}

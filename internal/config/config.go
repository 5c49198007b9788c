package config

import (
	"io/fs"

	"github.com/spf13/viper"

	"github.com/thoreinstein/defcheck/internal/errors"
	"github.com/thoreinstein/defcheck/internal/paths"
)

// Defaults.
const (
	DefaultVersion      = 1
	DefaultFormat       = "text"
	DefaultNamePattern  = `^[A-Za-z_][A-Za-z0-9_]*$`
	DefaultMaxDocLength = 2000
)

// DefaultExtensions are the file extensions treated as definition files.
var DefaultExtensions = []string{".yaml", ".yml", ".toml", ".md"}

// Config represents the top-level configuration structure.
type Config struct {
	Version       int      `mapstructure:"version" yaml:"version"`
	Format        string   `mapstructure:"format" yaml:"format"`
	Extensions    []string `mapstructure:"extensions" yaml:"extensions"`
	DisabledRules []string `mapstructure:"disabled_rules" yaml:"disabled_rules"`
	NamePattern   string   `mapstructure:"name_pattern" yaml:"name_pattern"`
	MaxDocLength  int      `mapstructure:"max_doc_length" yaml:"max_doc_length"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:      DefaultVersion,
		Format:       DefaultFormat,
		Extensions:   append([]string(nil), DefaultExtensions...),
		NamePattern:  DefaultNamePattern,
		MaxDocLength: DefaultMaxDocLength,
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix("DEFCHECK")
	viper.AutomaticEnv()

	def := Default()
	viper.SetDefault("version", def.Version)
	viper.SetDefault("format", def.Format)
	viper.SetDefault("extensions", def.Extensions)
	viper.SetDefault("disabled_rules", []string{})
	viper.SetDefault("name_pattern", def.NamePattern)
	viper.SetDefault("max_doc_length", def.MaxDocLength)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file exists. The loaded configuration is validated.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// implicit load: defaults apply
		case errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Mark(errors.Wrap(errs[0], "validating config"), errors.ErrInvalidConfig)
	}

	return &cfg, nil
}

// Used returns the path of the config file that was read, or "" if none.
func Used() string {
	return viper.ConfigFileUsed()
}

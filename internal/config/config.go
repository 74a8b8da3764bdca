package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/quantmind-br/toolprobe/internal/paths"
	"github.com/quantmind-br/toolprobe/internal/security"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Discovery DiscoveryConfig `mapstructure:"discovery"`
	Probe     ProbeConfig     `mapstructure:"probe"`
	Paths     PathsConfig     `mapstructure:"paths"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// DiscoveryConfig controls where and how candidates are found
type DiscoveryConfig struct {
	// SearchPath overrides $PATH when non-empty
	SearchPath    string   `mapstructure:"search_path"`
	Names         []string `mapstructure:"names"`
	ExtraPatterns []string `mapstructure:"extra_patterns"`

	// SearchPathSet marks SearchPath as given explicitly, so an empty value
	// scans nothing instead of $PATH
	SearchPathSet bool `mapstructure:"-"`
}

// ProbeConfig controls how candidates are executed
type ProbeConfig struct {
	Timeout     time.Duration `mapstructure:"timeout"`
	Parallelism int           `mapstructure:"parallelism"`
	CacheSize   int           `mapstructure:"cache_size"`
}

// PathsConfig contains path-related configuration
type PathsConfig struct {
	LogFile string `mapstructure:"log_file"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Color string `mapstructure:"color"`
}

// Load loads configuration from the default locations and environment
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile loads configuration from an explicit file, or from the default
// locations when path is empty
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	resolver := paths.NewResolver()

	if path != "" {
		v.SetConfigFile(expandPath(path))
	} else {
		// Set config name and paths
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(resolver.GetConfigDir())
		v.AddConfigPath(".")
	}

	// Set defaults
	setDefaults(v, resolver)

	// Environment variable overrides
	v.SetEnvPrefix("TOOLPROBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file not found - use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Expand paths
	cfg.Paths.LogFile = expandPath(cfg.Paths.LogFile)
	cfg.Discovery.SearchPath = ExpandSearchPath(cfg.Discovery.SearchPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the built-in configuration without reading files or the
// environment
func Default() *Config {
	v := viper.New()
	setDefaults(v, paths.NewResolver())

	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper, resolver *paths.Resolver) {
	v.SetDefault("discovery.search_path", "")
	v.SetDefault("discovery.names", []string{"python", "python3"})
	v.SetDefault("discovery.extra_patterns", []string{})

	v.SetDefault("probe.timeout", 10*time.Second)
	v.SetDefault("probe.parallelism", 1)
	v.SetDefault("probe.cache_size", 64)

	v.SetDefault("paths.log_file", resolver.GetLogFile())

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.color", "auto")
}

// Validate checks values that would otherwise fail deep inside discovery
func (c *Config) Validate() error {
	if len(c.Discovery.Names) == 0 {
		return fmt.Errorf("discovery.names must list at least one executable name")
	}
	for _, name := range c.Discovery.Names {
		if err := security.ValidateExecutableName(name); err != nil {
			return fmt.Errorf("discovery.names: %w", err)
		}
	}
	for _, pattern := range c.Discovery.ExtraPatterns {
		if _, err := security.ValidatePattern(pattern); err != nil {
			return fmt.Errorf("discovery.extra_patterns: %w", err)
		}
	}
	if err := security.ValidateSearchPath(c.Discovery.SearchPath); err != nil {
		return fmt.Errorf("discovery.search_path: %w", err)
	}
	if c.Probe.Timeout <= 0 {
		return fmt.Errorf("probe.timeout must be positive, got %s", c.Probe.Timeout)
	}
	if c.Probe.Parallelism < 1 {
		return fmt.Errorf("probe.parallelism must be at least 1, got %d", c.Probe.Parallelism)
	}
	if c.Probe.CacheSize < 0 {
		return fmt.Errorf("probe.cache_size cannot be negative, got %d", c.Probe.CacheSize)
	}
	return nil
}

// SearchPath returns the configured search path, falling back to $PATH
// when it is empty and was not set explicitly
func (c *Config) SearchPath() string {
	if c.Discovery.SearchPath != "" || c.Discovery.SearchPathSet {
		return c.Discovery.SearchPath
	}
	return os.Getenv("PATH")
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if path == "" {
		return path
	}

	// Expand ~
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	// Expand environment variables
	path = os.ExpandEnv(path)

	return path
}

// ExpandSearchPath expands ~ and environment variables in every entry of a
// list-separated search path
func ExpandSearchPath(searchPath string) string {
	if searchPath == "" {
		return searchPath
	}
	entries := filepath.SplitList(searchPath)
	for i, entry := range entries {
		entries[i] = expandPath(entry)
	}
	return strings.Join(entries, string(filepath.ListSeparator))
}

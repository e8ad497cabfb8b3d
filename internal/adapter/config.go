package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mmcdole/gallery/internal/domain"
	"github.com/spf13/viper"
)

// ExportFormat identifies the file format used when exporting the selection
type ExportFormat string

const (
	ExportFormatYAML    ExportFormat = "yaml"
	ExportFormatParquet ExportFormat = "parquet"
)

// DefaultCatalogURL is the public Art Institute of Chicago API
const DefaultCatalogURL = "https://api.artic.edu/api/v1"

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	UI      UIConfig      `mapstructure:"ui"`
	Export  ExportConfig  `mapstructure:"export"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// CatalogConfig holds catalog API configuration
type CatalogConfig struct {
	URL       string        `mapstructure:"url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// ExportConfig holds selection export configuration
type ExportConfig struct {
	Dir    string       `mapstructure:"dir"`
	Format ExportFormat `mapstructure:"format"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// MetricsConfig holds the optional Prometheus listener
type MetricsConfig struct {
	Listen string `mapstructure:"listen"` // e.g. "127.0.0.1:9090"; empty disables
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			URL:       DefaultCatalogURL,
			Timeout:   30 * time.Second,
			UserAgent: "gallery/dev",
		},
		UI: UIConfig{
			PageSize: 12,
		},
		Export: ExportConfig{
			Dir:    ".",
			Format: ExportFormatYAML,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "gallery", "gallery.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "gallery", "gallery.log")
	}
}

// DefaultConfigPath returns the default config directory for the current OS
func DefaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "gallery")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "gallery")
	}
}

// setDefaults registers every key so environment overrides reach Unmarshal
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("catalog.url", cfg.Catalog.URL)
	v.SetDefault("catalog.timeout", cfg.Catalog.Timeout)
	v.SetDefault("catalog.user_agent", cfg.Catalog.UserAgent)
	v.SetDefault("ui.page_size", cfg.UI.PageSize)
	v.SetDefault("export.dir", cfg.Export.Dir)
	v.SetDefault("export.format", string(cfg.Export.Format))
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("metrics.listen", cfg.Metrics.Listen)
}

// LoadConfig loads configuration from file and environment.
// An empty configFile searches the default config directory and the working directory.
// A .env file in the working directory is loaded into the environment first.
func LoadConfig(configFile string) (*Config, error) {
	// Missing .env is fine
	_ = godotenv.Load()

	cfg := DefaultConfig()

	v := viper.New()
	setDefaults(v, cfg)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides: GALLERY_UI_PAGE_SIZE etc.
	v.SetEnvPrefix("GALLERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail at request time
func (c *Config) Validate() error {
	if c.Catalog.URL == "" {
		return fmt.Errorf("catalog.url is required")
	}
	if c.UI.PageSize < 1 || c.UI.PageSize > domain.MaxPageSize {
		return fmt.Errorf("ui.page_size must be between 1 and %d: %w", domain.MaxPageSize, domain.ErrInvalidPageSize)
	}
	switch c.Export.Format {
	case ExportFormatYAML, ExportFormatParquet:
	default:
		return fmt.Errorf("unknown export.format: %q", c.Export.Format)
	}
	return nil
}

// SaveConfig writes the configuration to dir/config.yaml
func SaveConfig(cfg *Config, dir string) (string, error) {
	if dir == "" {
		dir = DefaultConfigPath()
	}

	// Ensure config directory exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("catalog.url", cfg.Catalog.URL)
	v.Set("catalog.timeout", cfg.Catalog.Timeout.String())
	v.Set("catalog.user_agent", cfg.Catalog.UserAgent)

	v.Set("ui.page_size", cfg.UI.PageSize)

	v.Set("export.dir", cfg.Export.Dir)
	v.Set("export.format", string(cfg.Export.Format))

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	v.Set("metrics.listen", cfg.Metrics.Listen)

	configFile := filepath.Join(dir, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configFile, nil
}

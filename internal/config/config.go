package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Report formats accepted by the report generator
const (
	FormatConsole  = "console"
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "md"
	FormatHTML     = "html"
)

// ReportFormats lists every accepted report format, aliases included
var ReportFormats = []string{FormatConsole, FormatText, "txt", FormatJSON, FormatYAML, "yml", FormatMarkdown, "markdown", FormatHTML}

// Config represents the application configuration
type Config struct {
	// Report settings
	ReportFormat string `mapstructure:"report_format"` // console, text, json, yaml, md, html
	OutputFile   string `mapstructure:"output_file"`   // output file path
	ShowProgress bool   `mapstructure:"show_progress"` // print progress while walking

	// Console table settings
	MaxPathWidth int    `mapstructure:"max_path_width"` // truncate long paths in the console table (0 = never)
	TimeFormat   string `mapstructure:"time_format"`    // layout for creation times

	// Interactive table settings
	TUI TUIConfig `mapstructure:"tui"`
}

// TUIConfig holds interactive table settings
type TUIConfig struct {
	ConfirmDelete bool `mapstructure:"confirm_delete"` // ask before removing a file
	PageSize      int  `mapstructure:"page_size"`      // rows shown when the window size is unknown
}

// LoadConfig loads configuration from defaults, an optional config file
// and environment variables (FILEHOUND_ prefix), in increasing priority
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("report_format", FormatConsole)
	v.SetDefault("output_file", "")
	v.SetDefault("show_progress", false)
	v.SetDefault("max_path_width", 80)
	v.SetDefault("time_format", "2006-01-02 15:04:05")
	v.SetDefault("tui.confirm_delete", false)
	v.SetDefault("tui.page_size", 15)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	// Read environment variables
	v.SetEnvPrefix("FILEHOUND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.ReportFormat = NormalizeFormat(cfg.ReportFormat)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks configuration values
func (c *Config) Validate() error {
	if !IsValidFormat(c.ReportFormat) {
		return fmt.Errorf("report_format must be one of: %s (got: %s)", strings.Join(ReportFormats, ", "), c.ReportFormat)
	}
	if c.MaxPathWidth < 0 {
		return fmt.Errorf("max_path_width must not be negative (got: %d)", c.MaxPathWidth)
	}
	if c.TUI.PageSize <= 0 {
		return fmt.Errorf("tui.page_size must be positive (got: %d)", c.TUI.PageSize)
	}
	return nil
}

// IsValidFormat checks if a report format is known
func IsValidFormat(format string) bool {
	for _, f := range ReportFormats {
		if f == format {
			return true
		}
	}
	return false
}

// NormalizeFormat maps format aliases to their canonical name
func NormalizeFormat(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "":
		return FormatConsole
	case "txt":
		return FormatText
	case "yml":
		return FormatYAML
	case "markdown":
		return FormatMarkdown
	default:
		return strings.ToLower(strings.TrimSpace(format))
	}
}

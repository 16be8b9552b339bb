package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/IvanShishkin/filehound/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	// Test default config loading (without config file)
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	// Check defaults
	if cfg.ReportFormat != FormatConsole {
		t.Errorf("Default report_format = %v, want %v", cfg.ReportFormat, FormatConsole)
	}

	if cfg.OutputFile != "" {
		t.Errorf("Default output_file = %v, want empty", cfg.OutputFile)
	}

	if cfg.ShowProgress != false {
		t.Errorf("Default show_progress = %v, want %v", cfg.ShowProgress, false)
	}

	if cfg.MaxPathWidth != 80 {
		t.Errorf("Default max_path_width = %v, want %v", cfg.MaxPathWidth, 80)
	}

	if cfg.TimeFormat != "2006-01-02 15:04:05" {
		t.Errorf("Default time_format = %v, want %v", cfg.TimeFormat, "2006-01-02 15:04:05")
	}

	if cfg.TUI.ConfirmDelete != false {
		t.Errorf("Default tui.confirm_delete = %v, want %v", cfg.TUI.ConfirmDelete, false)
	}

	if cfg.TUI.PageSize != 15 {
		t.Errorf("Default tui.page_size = %v, want %v", cfg.TUI.PageSize, 15)
	}
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("FILEHOUND_REPORT_FORMAT", "markdown")
	t.Setenv("FILEHOUND_TUI_CONFIRM_DELETE", "true")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, FormatMarkdown, cfg.ReportFormat)
	assert.True(t, cfg.TUI.ConfirmDelete)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filehound.yaml")
	content := `report_format: json
output_file: out.json
max_path_width: 40
tui:
  page_size: 30
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, cfg.ReportFormat)
	assert.Equal(t, "out.json", cfg.OutputFile)
	assert.Equal(t, 40, cfg.MaxPathWidth)
	assert.Equal(t, 30, cfg.TUI.PageSize)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidFormat(t *testing.T) {
	t.Setenv("FILEHOUND_REPORT_FORMAT", "xml")

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report_format must be one of")
}

func TestNormalizeFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", FormatConsole},
		{"console", FormatConsole},
		{"txt", FormatText},
		{"TEXT", FormatText},
		{"yml", FormatYAML},
		{"markdown", FormatMarkdown},
		{"md", FormatMarkdown},
		{" json ", FormatJSON},
		{"html", FormatHTML},
		{"xml", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeFormat(tt.input); got != tt.expected {
				t.Errorf("NormalizeFormat(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValidFormat(t *testing.T) {
	tests := []struct {
		format   string
		expected bool
	}{
		{"console", true},
		{"text", true},
		{"txt", true},
		{"json", true},
		{"yaml", true},
		{"md", true},
		{"html", true},
		{"xml", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if got := IsValidFormat(tt.format); got != tt.expected {
				t.Errorf("IsValidFormat(%q) = %v, want %v", tt.format, got, tt.expected)
			}
		})
	}
}

func TestQueryFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.yaml")
	q := models.Query{
		Root:      "/srv/data",
		Name:      "report",
		Extension: ".csv",
		MinSize:   models.Bytes(0),
		MaxSize:   models.Bytes(1 << 20),
	}

	require.NoError(t, SaveQueryFile(path, q))

	loaded, err := LoadQueryFile(path)
	require.NoError(t, err)
	assert.Equal(t, q, *loaded)
}

func TestLoadQueryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.yaml")
	content := `root: ./docs
content: hello
min_size: 1024
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	q, err := LoadQueryFile(path)
	require.NoError(t, err)

	assert.Equal(t, "./docs", q.Root)
	assert.Equal(t, "hello", q.Content)
	require.NotNil(t, q.MinSize)
	assert.Equal(t, int64(1024), *q.MinSize)
	assert.Nil(t, q.MaxSize)
	assert.Empty(t, q.Name)
}

func TestLoadQueryFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_size: [1, 2"), 0644))

	_, err := LoadQueryFile(path)
	assert.Error(t, err)

	_, err = LoadQueryFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

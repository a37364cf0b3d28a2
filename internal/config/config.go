package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/tsawler/docbridge/htmldoc"
	"github.com/tsawler/docbridge/markdown"
)

//go:embed sample_config.toml
var sampleConfig string

// ErrExists is returned by CreateSample when the target file is present.
var ErrExists = errors.New("config file already exists")

// Convert contains settings for markup conversion.
type Convert struct {
	StartIndex      int     `toml:"start_index"`
	BaseFontSizePt  float64 `toml:"base_font_size_pt"`
	CodeFontFamily  string  `toml:"code_font_family"`
	LinkColor       string  `toml:"link_color"`
	HighlightColor  string  `toml:"highlight_color"`
	Images          bool    `toml:"images"`
	SkipBoilerplate bool    `toml:"skip_boilerplate"`
	SoftWraps       bool    `toml:"soft_wraps"`
	OmitRawHTML     bool    `toml:"omit_raw_html"`
}

// Docs contains settings for the Google Docs API.
type Docs struct {
	CredentialsFile string `toml:"credentials_file"`
	Endpoint        string `toml:"endpoint"`
	BatchSize       int    `toml:"batch_size"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for docbridge.
type Config struct {
	Convert Convert `toml:"convert"`
	Docs    Docs    `toml:"docs"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path of the per-user config file.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. It returns the
// config, the path that was resolved and whether a file existed there.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

// HTMLOptions returns the converter options described by the [convert]
// section.
func (c *Config) HTMLOptions() htmldoc.Options {
	return htmldoc.Options{
		StartIndex:      c.Convert.StartIndex,
		BaseFontSizePt:  c.Convert.BaseFontSizePt,
		CodeFontFamily:  c.Convert.CodeFontFamily,
		LinkColor:       c.Convert.LinkColor,
		HighlightColor:  c.Convert.HighlightColor,
		SkipImages:      !c.Convert.Images,
		SkipBoilerplate: c.Convert.SkipBoilerplate,
	}
}

// MarkdownOptions returns the Markdown rendering options.
func (c *Config) MarkdownOptions() markdown.Options {
	return markdown.Options{
		SoftWraps:   c.Convert.SoftWraps,
		OmitRawHTML: c.Convert.OmitRawHTML,
	}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to path, creating parent
// directories as needed. An existing file is left alone unless overwrite is
// set.
func CreateSample(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w at %s", ErrExists, path)
		}
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Encode renders the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

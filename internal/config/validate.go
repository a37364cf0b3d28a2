package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tsawler/docbridge/css"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateConvert(); err != nil {
		return err
	}
	if err := c.validateDocs(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateConvert() error {
	if c.Convert.StartIndex < 0 {
		return errors.New("convert.start_index must not be negative")
	}
	if c.Convert.BaseFontSizePt <= 0 {
		return errors.New("convert.base_font_size_pt must be positive")
	}
	if _, err := css.Color(c.Convert.LinkColor); err != nil {
		return fmt.Errorf("convert.link_color: %w", err)
	}
	if _, err := css.Color(c.Convert.HighlightColor); err != nil {
		return fmt.Errorf("convert.highlight_color: %w", err)
	}
	return nil
}

func (c *Config) validateDocs() error {
	if c.Docs.BatchSize <= 0 {
		return errors.New("docs.batch_size must be positive")
	}
	if c.Docs.Endpoint != "" && !strings.HasPrefix(c.Docs.Endpoint, "http://") && !strings.HasPrefix(c.Docs.Endpoint, "https://") {
		return fmt.Errorf("docs.endpoint must be an http(s) URL, got %q", c.Docs.Endpoint)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	}
	return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
}

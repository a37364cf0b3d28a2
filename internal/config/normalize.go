package config

import (
	"os"
	"strings"

	"github.com/tsawler/docbridge/css"
)

func (c *Config) normalize() error {
	c.normalizeConvert()
	if err := c.normalizeDocs(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeConvert() {
	c.Convert.CodeFontFamily = strings.TrimSpace(c.Convert.CodeFontFamily)
	if c.Convert.CodeFontFamily == "" {
		c.Convert.CodeFontFamily = defaultCodeFontFamily
	}
	c.Convert.LinkColor = normalizeColor(c.Convert.LinkColor, defaultLinkColor)
	c.Convert.HighlightColor = normalizeColor(c.Convert.HighlightColor, defaultHighlightColor)
	if c.Convert.BaseFontSizePt == 0 {
		c.Convert.BaseFontSizePt = defaultBaseFontSizePt
	}
}

// normalizeColor stores colors as "#rrggbb". Values css cannot read are
// kept as written so Validate can report them.
func normalizeColor(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	if hex, err := css.Color(value); err == nil {
		return hex
	}
	return value
}

func (c *Config) normalizeDocs() error {
	c.Docs.CredentialsFile = strings.TrimSpace(c.Docs.CredentialsFile)
	if c.Docs.CredentialsFile == "" {
		for _, key := range []string{"DOCBRIDGE_CREDENTIALS", "GOOGLE_APPLICATION_CREDENTIALS"} {
			if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
				c.Docs.CredentialsFile = strings.TrimSpace(value)
				break
			}
		}
	}
	if c.Docs.CredentialsFile != "" {
		expanded, err := expandPath(c.Docs.CredentialsFile)
		if err != nil {
			return err
		}
		c.Docs.CredentialsFile = expanded
	}
	c.Docs.Endpoint = strings.TrimSpace(c.Docs.Endpoint)
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console", "text":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

package config

import "github.com/tsawler/docbridge/gdocs"

const (
	defaultStartIndex     = 1
	defaultBaseFontSizePt = 11
	defaultCodeFontFamily = "Courier New"
	defaultLinkColor      = "#0563c1"
	defaultHighlightColor = "#ffff00"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultConfigPath     = "~/.config/docbridge/config.toml"
	projectConfigName     = "docbridge.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Convert: Convert{
			StartIndex:     defaultStartIndex,
			BaseFontSizePt: defaultBaseFontSizePt,
			CodeFontFamily: defaultCodeFontFamily,
			LinkColor:      defaultLinkColor,
			HighlightColor: defaultHighlightColor,
			Images:         true,
		},
		Docs: Docs{
			BatchSize: gdocs.DefaultBatchSize,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

// Package config provides configuration management for the sheetpeek CLI.
package config

// Default values applied before any file, env var or flag.
const (
	DefaultFile         = "PEDIDOS-PIZARRA/Cliente-5475.xlsx"
	DefaultEngine       = "excelize"
	DefaultFormat       = "text"
	DefaultHeaderRow    = 1
	DefaultPreviewCount = 20
	DefaultWindowOffset = 5
	DefaultWindowCount  = 10
)

// EnvPrefix is the prefix of environment variables read into the config.
// A double underscore separates nested keys: SHEETPEEK_WINDOW__OFFSET.
const EnvPrefix = "SHEETPEEK_"

// Config holds all CLI configuration options.
type Config struct {
	File      string        `koanf:"file"`
	Sheet     string        `koanf:"sheet"`
	Engine    string        `koanf:"engine"`
	Format    string        `koanf:"format"`
	Pretty    bool          `koanf:"pretty"`
	Verbose   bool          `koanf:"verbose"`
	HeaderRow int           `koanf:"header_row"`
	Preview   PreviewConfig `koanf:"preview"`
	Window    WindowConfig  `koanf:"window"`

	// Source is the config file that was loaded, if any.
	Source string `koanf:"-"`
}

// PreviewConfig holds settings for the preview command.
type PreviewConfig struct {
	Count int `koanf:"count"`
}

// WindowConfig holds settings for the window command.
type WindowConfig struct {
	Offset int `koanf:"offset"`
	Count  int `koanf:"count"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"file":          DefaultFile,
		"sheet":         "",
		"engine":        DefaultEngine,
		"format":        DefaultFormat,
		"pretty":        false,
		"verbose":       false,
		"header_row":    DefaultHeaderRow,
		"preview.count": DefaultPreviewCount,
		"window.offset": DefaultWindowOffset,
		"window.count":  DefaultWindowCount,
	}
}

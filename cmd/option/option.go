package option

import (
	"os"

	"pdf_splitter/config"
)

// Global holds the flags shared by every command.
type Global struct {
	ConfigPath string
	LogLevel   string
}

// Load reads the configuration named by --config, falling back to the
// PDFSPLIT_CONFIG environment variable.
func (g *Global) Load() (config.Config, error) {
	path := g.ConfigPath
	if path == "" {
		path = os.Getenv("PDFSPLIT_CONFIG")
	}
	return config.Load(path)
}

// Level picks the log level: --log-level, then the configuration, then fallback.
func (g *Global) Level(cfg config.Config, fallback string) string {
	if g.LogLevel != "" {
		return g.LogLevel
	}
	if cfg.Log.Level != "" {
		return cfg.Log.Level
	}
	return fallback
}

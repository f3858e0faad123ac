package config

import (
	_ "embed"
	"os"
	"strconv"
	"strings"
	"time"
)

//go:embed styles.yaml
var stylesYAML []byte

type Config struct {
	Detector DetectorConfig
	Catalog  CatalogConfig
	Web      WebConfig
	Log      LogConfig
}

type DetectorConfig struct {
	URL     string        // base URL of the face-mesh detection service
	Timeout time.Duration // per-request timeout (default 30s; first call loads the model)
}

type CatalogConfig struct {
	Path string // optional path to a suitability catalog file; empty uses the embedded default
}

type WebConfig struct {
	AllowedOrigins []string // extra CORS origins besides localhost
}

type LogConfig struct {
	Level string // zerolog level name (default "info")
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envString reads an environment variable with a default.
func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

// envList reads a comma-separated environment variable into a slice,
// dropping empty entries.
func envList(key string) []string {
	var out []string
	for _, s := range strings.Split(os.Getenv(key), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func Load() *Config {
	return &Config{
		Detector: DetectorConfig{
			URL:     envString("FACEMESH_URL", "http://localhost:8500"),
			Timeout: time.Duration(envInt("FACEMESH_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Catalog: CatalogConfig{
			Path: os.Getenv("CATALOG_PATH"),
		},
		Web: WebConfig{
			AllowedOrigins: envList("WEB_ALLOWED_ORIGINS"),
		},
		Log: LogConfig{
			Level: envString("LOG_LEVEL", "info"),
		},
	}
}

// DefaultCatalog returns the embedded suitability catalog document.
func DefaultCatalog() []byte {
	return stylesYAML
}

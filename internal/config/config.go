package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr string

	UploadDir string
	OutputDir string

	// Run log of generated papers. Disabled means no database is opened.
	EnableRunLog bool
	DBDriver     string
	DBDSN        string

	CORSOrigins []string

	MaxUploadMB int
}

func FromEnv() Config {
	return Config{
		HTTPAddr:     envOr("HTTP_ADDR", ":8080"),
		UploadDir:    envOr("UPLOAD_DIR", "uploads"),
		OutputDir:    envOr("OUTPUT_DIR", "outputs"),
		EnableRunLog: envBool("ENABLE_RUN_LOG", true),
		DBDriver:     envOr("DB_DRIVER", "sqlite"),
		DBDSN:        envOr("DB_DSN", ""),
		CORSOrigins:  csvOr("CORS_ORIGINS", "http://localhost:3000"),
		MaxUploadMB:  envInt("MAX_UPLOAD_MB", 32),
	}
}

// MaxUploadBytes is MaxUploadMB in bytes.
func (c Config) MaxUploadBytes() int64 { return int64(c.MaxUploadMB) << 20 }

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}
func envInt(k string, def int) int {
	n, err := strconv.Atoi(os.Getenv(k))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

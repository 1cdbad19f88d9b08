package config

import "os"

// App captures process level configuration.
type App struct {
	ListenAddr string
	LogLevel   string
	LogFormat  string
}

// FromEnv builds an App config from environment variables so main stays lean.
func FromEnv() App {
	addr := os.Getenv("MORTAR_LISTEN")
	if addr == "" {
		addr = ":6060"
	}
	level := os.Getenv("MORTAR_LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	format := os.Getenv("MORTAR_LOG_FORMAT")
	if format == "" {
		format = "text"
	}
	return App{
		ListenAddr: addr,
		LogLevel:   level,
		LogFormat:  format,
	}
}

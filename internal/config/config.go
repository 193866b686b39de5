// Package config holds the settings of the schedsim HTTP service.
package config

// ServerConfig holds configuration for the simulation server.
type ServerConfig struct {
	Addr         string // Listen address (default ":8080")
	LogLevel     string // Log level: trace, debug, info, warn, error
	DBPath       string // SQLite run history; empty disables history, ":memory:" for testing
	MaxBodyBytes int64  // Upper bound on a request body
	HistoryLimit int    // Runs returned by GET /runs
	CORSOrigin   string // Access-Control-Allow-Origin value; empty disables CORS headers
}

// DefaultServerConfig returns sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:         ":8080",
		LogLevel:     "info",
		MaxBodyBytes: 1 << 20,
		HistoryLimit: 50,
		CORSOrigin:   "*",
	}
}

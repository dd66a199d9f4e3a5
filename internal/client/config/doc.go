// Package config loads runtime configuration for the superheroes CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, including a .env file in the working directory
//     (see parseEnv). Variables are prefixed SUPERHEROES_.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend server
//	-t int      request timeout (seconds)
//	-d string   path to the local database file
//	-v          enable debug diagnostics
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "http://localhost:3000",
//	  "request_timeout": "10s",
//	  "database_path": "superheroes.db",
//	  "debug": false
//	}
//
// Primary API
//
//   - type Config                     - holds endpoint, timeout, database path, debug flag
//   - func LoadConfig() *Config      - builds Config by applying defaults, env, JSON, then flags
//   - func (*Config) LoadDefaults()  - sets sensible defaults
package config

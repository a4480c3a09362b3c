// Package config loads runtime configuration for the Sport Together CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected with -c / -config or
//     $SPORTTOGETHER_CONFIG.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend
//	-d string   path of the local session cache (SQLite)
//	-o string   path of the rendered HTML page
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// Intervals use timex.Duration, so they may be strings like "3s" or integer
// nanoseconds. Omitted keys keep their previous value.
//
//	{
//	  "server_url": "http://127.0.0.1:8080",
//	  "cache_dsn": "sporttogether.db",
//	  "output_path": "sporttogether.html",
//	  "icon_base_url": "",
//	  "log_level": "warn",
//	  "request_timeout": "10s",
//	  "online_check_interval": "5s"
//	}
package config

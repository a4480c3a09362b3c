// Package metadata is the persistent key/value store behind the session
// cache: one SQLite row per key, string values, upsert on write. It plays the
// role browser localStorage played for the web front end.
package metadata

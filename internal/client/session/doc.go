// Package session is the local cache of the logged-in user's session. It
// stores the fields of a successful login as key/value pairs in the SQLite
// metadata table; list-valued fields are comma-joined.
package session

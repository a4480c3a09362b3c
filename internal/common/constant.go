// Package common contains constants and sentinel errors shared by the client
// and the server.
package common

// SessionTokenHeaderName is the HTTP header carrying the session token issued
// at login.
const SessionTokenHeaderName = "session_token"

// RequestIDHeaderName correlates client and server log lines.
const RequestIDHeaderName = "X-Request-ID"

// SupportedSports lists the game types the system accepts. Each one is also
// a boolean interest flag on a user account.
var SupportedSports = []string{"tennis", "frisbee", "soccer", "running", "basketball"}

// IsSupportedSport reports whether sport is one of SupportedSports.
func IsSupportedSport(sport string) bool {
	for _, s := range SupportedSports {
		if s == sport {
			return true
		}
	}
	return false
}

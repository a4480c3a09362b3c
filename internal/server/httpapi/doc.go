// Package httpapi exposes the Sport Together JSON API over HTTP.
//
// Every endpoint takes and returns the bodies defined in internal/api. The
// game-changing endpoints (/update_game/, /create_game/, /join_game/) need the
// session token issued at login in the session_token header. Business
// failures the browser should show to the user (a taken email address, a
// game already joined) are answered with 200 and a false success flag, the
// way the original front end expects; malformed requests get 4xx.
package httpapi

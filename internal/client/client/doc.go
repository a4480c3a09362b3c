// Package client contains the typed endpoint calls of the Sport Together
// backend and the bootstrap of the local session database.
//
// # Overview
//
//  1. Client is the endpoint contract: Login, Register, GamesForUser,
//     GamesByIDs, SearchGames, UpdateGame, CreateGame, JoinGame and Ping.
//  2. HTTPClient implements it over a transport.Transport, decoding the
//     JSON bodies into the api types.
//  3. InitDatabase and RunMigrations open the SQLite session cache and apply
//     the embedded goose migrations.
//
// # Error Handling
//
// Failures are mapped to sentinels callers match with errors.Is:
// ErrUnavailable (server unreachable), ErrUnauthorized (401/403) and
// ErrRejected (the server answered but refused, see RejectedError). The
// underlying transport error stays in the chain for errors.As.
package client

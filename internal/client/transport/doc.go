// Package transport sends one JSON request and decodes one JSON response.
//
// It is the single request helper every page controller goes through. A
// request succeeds only on HTTP 200; every other outcome is an error the
// caller can branch on:
//
//   - *StatusError  (errors.Is(err, ErrHTTPStatus)) for a non-200 reply,
//   - *NetworkError (errors.Is(err, ErrNetwork)) when the server could not be
//     reached or the context ended first.
//
// There is no retry. Cancellation and timeouts come from the caller's context
// and the configured per-request timeout.
package transport

// Package pages holds the page controllers of the client. Each action
// collects a form when it has one, calls the backend through client.Client
// and on success updates the session cache and the rendered Document.
// Failures are reported through the Alerter and returned to the caller; the
// document keeps its previous state.
package pages

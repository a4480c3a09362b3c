// Package api defines the JSON bodies exchanged between the Sport Together
// client and server. Field names match the form element names and the keys the
// browser front end has always used, so old and new clients interoperate.
package api

// Package api implements the HTTP surface of the task tracker: request
// decoding and validation, handlers for the auth, task, and user endpoints,
// and the mapping of internal errors to safe external responses.
package api

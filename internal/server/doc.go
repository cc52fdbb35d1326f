// Package server runs the HTTP transport of the intake API.
//
// It owns the server lifecycle: startup, OS signal handling, and graceful
// shutdown with a bounded drain window for in-flight submissions.
package server

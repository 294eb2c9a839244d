// Package server runs the HTTP transport of the blog API.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown of in-flight requests.
package server

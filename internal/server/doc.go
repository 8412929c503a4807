// Package server runs the HTTP surface and shuts it down gracefully on
// SIGINT, SIGTERM or SIGQUIT.
package server

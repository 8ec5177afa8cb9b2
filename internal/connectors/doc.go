// Package connectors provides implementations of the Fetcher interface.
// A connector knows how to retrieve the bytes of a source (HTTP endpoint,
// local file) without interpreting them.
package connectors

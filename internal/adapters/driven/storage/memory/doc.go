// Package memory provides in-memory implementations of driven port interfaces.
// They hold run-scoped state (exclusions) and back tests (configuration).
package memory

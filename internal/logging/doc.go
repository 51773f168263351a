// Package logging provides a unified logging interface for the engine's
// tooling. It abstracts the underlying logging implementation, allowing
// consistent logging across components while supporting multiple backends.
// The arithmetic kernels themselves never log.
package logging

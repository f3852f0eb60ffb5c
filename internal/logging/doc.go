// Package logging provides the structured logging used by the benchmark.
// Components log through the Logger interface; the zerolog backend is
// configured once at startup by Setup, which also installs the global
// logger that the calculators write their per-run debug events to.
package logging

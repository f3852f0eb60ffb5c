// Package format renders durations, byte counts, large numbers and job
// progress for the CLI and TUI.
package format

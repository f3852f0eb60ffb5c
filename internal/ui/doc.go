// Package ui holds the color themes shared by the CLI and the TUI. It has no
// dependency on the calculation packages so both presentation layers can
// import it.
package ui

// Package apperrors defines the application's structured error types and
// exit codes, separating configuration problems from calculation failures
// and carrying the underlying cause where there is one.
//
// All wrapping types implement Unwrap so errors.Is and errors.As see through
// them; ad-hoc context is added with fmt.Errorf and %w (see WrapError).
package apperrors

// Package orchestration plans benchmark jobs, runs them with bounded
// concurrency and compares their results. Presentation is reached only
// through the ProgressReporter and ResultPresenter interfaces.
package orchestration

// Package logging provides structured logging built on zap.
//
// Production output is JSON to stdout; development output is colored
// console text with stacktraces. Components derive named child loggers
// from a shared root so every line carries its origin.
package logging

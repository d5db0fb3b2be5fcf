// Package engine provides the universal figure save engine.
//
// The engine detects which plotting library a figure belongs to,
// normalizes the output filename, attaches export metadata, and
// dispatches to the matching adapter. When the adapter cannot produce
// the requested format because its rendering backend is unavailable, the
// failure is logged and a degraded HTML fallback document is written
// instead; engine saves are never fatal to the process.
//
// Features:
//   - Automatic backend detection with error on unsupported figures
//   - Filename processing (extension normalization, optional timestamp)
//   - Numbered multi-figure saves and named batch saves
//   - Optional rate limiting for batch export
//
// Example Usage:
//
//	e := engine.New(style.Default(), logger)
//	name, err := e.SaveImage(fig, "out/figure", engine.SaveOptions{Format: "html"})
package engine

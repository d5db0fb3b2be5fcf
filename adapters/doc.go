// Package adapters translates the universal style schema into
// per-library configuration for the supported plotting front-ends.
//
// Each adapter maps schema fields onto the target library's configuration
// surface (matplotlib rcParams, plotly layout, bokeh theme) and writes
// figure documents in the formats it can produce natively. Rasterization
// is not performed here: requesting a raster format returns
// ErrRendererUnavailable, which the save engine turns into a degraded
// markup fallback.
//
// Adapters:
//   - Matplotlib: rcParams map, conf/json output
//   - Plotly: layout document, json/html/html.gz output
//   - Bokeh: theme document, json/yaml/html output
package adapters

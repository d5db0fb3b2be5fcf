// Package gallery assembles the style system into one context object.
//
// A Gallery owns the style cache, the template registry, the lazy
// loader, and the metrics collector, wired together so cache traffic
// and template loads are observable without any package-level state.
// Callers construct as many independent galleries as they need.
package gallery

package style

import (
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/cespare/xxhash/v2"

	"github.com/krisrjensen/styles-gallery/cache"
)

// Cached wraps a schema with memoized accessors backed by a shared style
// cache. Each accessor checks the cache explicitly, computes on miss, and
// stores the result keyed by the accessor name and the current schema
// content hash. Mutating the schema changes the hash, so stale entries
// simply never match again and age out through the cache TTL.
type Cached struct {
	schema *Schema
	cache  *cache.Cache
	hash   string
}

// NewCached wraps schema with accessors memoized through c. A nil schema
// falls back to the default schema; a nil cache disables memoization.
func NewCached(schema *Schema, c *cache.Cache) *Cached {
	if schema == nil {
		schema = Default()
	}
	cs := &Cached{schema: schema, cache: c}
	cs.hash = cs.contentHash()
	return cs
}

// Schema returns the wrapped schema.
func (c *Cached) Schema() *Schema {
	return c.schema
}

// Hash returns the current schema content hash.
func (c *Cached) Hash() string {
	c.refresh()
	return c.hash
}

// FigureSize returns the figure size as (width, height) in inches.
func (c *Cached) FigureSize() (float64, float64) {
	v := c.memoized("figure_size", func() any {
		return [2]float64{c.schema.Figure.Size.Width, c.schema.Figure.Size.Height}
	})
	size := v.([2]float64)
	return size[0], size[1]
}

// DPI returns the figure DPI.
func (c *Cached) DPI() int {
	v := c.memoized("dpi", func() any {
		return c.schema.Figure.DPI
	})
	return v.(int)
}

// FontConfig returns the font configuration.
func (c *Cached) FontConfig() Fonts {
	v := c.memoized("font_config", func() any {
		return c.schema.Fonts
	})
	return v.(Fonts)
}

// ColorConfig returns the color configuration.
func (c *Cached) ColorConfig() Colors {
	v := c.memoized("color_config", func() any {
		return c.schema.Colors
	})
	return v.(Colors)
}

// LayoutConfig returns the layout configuration.
func (c *Cached) LayoutConfig() Layout {
	v := c.memoized("layout_config", func() any {
		return c.schema.Layout
	})
	return v.(Layout)
}

// memoized looks the accessor result up in the cache, computing and
// storing it on miss. Any keying or type problem falls through to a
// direct computation.
func (c *Cached) memoized(op string, compute func() any) any {
	if c.cache == nil {
		return compute()
	}
	c.refresh()
	key, err := cache.Key(op, c.hash)
	if err != nil {
		return compute()
	}
	if v, ok := c.cache.Get(key); ok {
		return v
	}
	v := compute()
	c.cache.Put(key, v)
	return v
}

// refresh recomputes the content hash so accessor keys track schema
// mutations.
func (c *Cached) refresh() {
	c.hash = c.contentHash()
}

func (c *Cached) contentHash() string {
	data, err := sonic.Marshal(c.schema)
	if err != nil {
		return ""
	}
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}

package nodelink

import (
	"context"
	"time"

	"github.com/urbancharge/urbancharge/pkg/cache"
)

// CacheTTL is how long rendered images stay cached.
const CacheTTL = 7 * 24 * time.Hour

// Renderer renders through a cache keyed by the DOT input and options.
type Renderer struct {
	cache cache.Cache
}

// NewRenderer returns a Renderer backed by c. A nil c disables caching.
func NewRenderer(c cache.Cache) *Renderer {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Renderer{cache: c}
}

// Render returns the cached image for dot and opts, rendering and storing it
// on a miss. Cache failures are ignored; only rendering errors are returned.
func (r *Renderer) Render(ctx context.Context, dot string, opts Options) ([]byte, error) {
	if opts.Format == FormatDOT {
		return []byte(dot), nil
	}

	key := cache.RenderKey(dot, cache.RenderKeyOpts{Format: string(opts.Format), Scale: opts.Scale})
	if data, hit, err := r.cache.Get(ctx, key); err == nil && hit {
		return data, nil
	}

	data, err := Render(ctx, dot, opts)
	if err != nil {
		return nil, err
	}
	_ = r.cache.Set(ctx, key, data, CacheTTL)
	return data, nil
}

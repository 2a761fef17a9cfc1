package loader

import (
	"crypto/sha256"
	"fmt"

	"fjacquet/work-metrics/internal/logging"
	"fjacquet/work-metrics/internal/models"

	lru "github.com/hashicorp/golang-lru/v2"
)

type cacheKey struct {
	sum  [sha256.Size]byte
	name string
}

// CachedLoader memoizes loaded sheets by (content hash, file name).
// Cached sheets are shared and must be treated as read-only.
type CachedLoader struct {
	next   SheetLoader
	cache  *lru.Cache[cacheKey, *models.Sheet]
	logger logging.Logger
}

// NewCachedLoader wraps next with an LRU memo holding up to size sheets.
func NewCachedLoader(next SheetLoader, size int, logger logging.Logger) (*CachedLoader, error) {
	cache, err := lru.New[cacheKey, *models.Sheet](size)
	if err != nil {
		return nil, fmt.Errorf("error creating load cache: %w", err)
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &CachedLoader{next: next, cache: cache, logger: logger}, nil
}

// Load returns the memoized sheet for identical content and name, loading it otherwise.
// Failed loads are not cached.
func (c *CachedLoader) Load(name string, data []byte) (*models.Sheet, error) {
	key := cacheKey{sum: sha256.Sum256(data), name: name}
	if sheet, ok := c.cache.Get(key); ok {
		c.logger.Debug("Load cache hit", logging.F(logging.FieldFile, name), logging.F(logging.FieldCacheHit, true))
		return sheet, nil
	}

	sheet, err := c.next.Load(name, data)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, sheet)
	return sheet, nil
}

// Len returns the number of memoized sheets.
func (c *CachedLoader) Len() int {
	return c.cache.Len()
}

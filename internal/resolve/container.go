package resolve

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"dataid/internal/dataid"
	"dataid/internal/logger"
	"dataid/internal/metrics"
)

var (
	// ErrNotFound is returned when no stored identifier is acceptable for a key.
	ErrNotFound = errors.New("no match")
	// ErrTooManyResults is returned when several identifiers are equally close to a key.
	ErrTooManyResults = errors.New("too many results")
)

type entry[T any] struct {
	id   *dataid.DataID
	item T
}

// Container maps identifiers to items. It is safe for concurrent use.
type Container[T any] struct {
	mu      sync.RWMutex
	entries []entry[T]
	index   map[uint64][]int

	log     zerolog.Logger
	metrics *metrics.Metrics
	limit   int
}

// Option configures a Container.
type Option func(*config)

type config struct {
	log     *zerolog.Logger
	metrics *metrics.Metrics
	limit   int
}

// WithLogger sets the logger for lookup events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = &l }
}

// WithMetrics sets where lookups are recorded.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *config) { c.metrics = m }
}

// WithConcurrency bounds the number of concurrent lookups of GetAll.
func WithConcurrency(n int) Option {
	return func(c *config) { c.limit = n }
}

// New returns an empty container.
func New[T any](opts ...Option) *Container[T] {
	cfg := config{limit: 8}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Container[T]{
		index:   map[uint64][]int{},
		metrics: cfg.metrics,
		limit:   cfg.limit,
	}

	if cfg.log != nil {
		c.log = *cfg.log
	} else {
		c.log = logger.Component("resolve")
	}

	if c.metrics == nil {
		c.metrics = metrics.New(nil)
	}

	return c
}

// Add stores item under id, replacing the item of an equal identifier.
func (c *Container[T]) Add(id *dataid.DataID, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i, ok := c.find(id); ok {
		c.entries[i].item = item
		return
	}

	h := id.Hash()
	c.index[h] = append(c.index[h], len(c.entries))
	c.entries = append(c.entries, entry[T]{id: id, item: item})

	c.metrics.SetStored(len(c.entries))
}

// Delete removes the item stored under an identifier equal to id.
func (c *Container[T]) Delete(id *dataid.DataID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.find(id)
	if !ok {
		return false
	}

	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	c.reindex()

	c.metrics.SetStored(len(c.entries))

	return true
}

// Len returns the number of stored items.
func (c *Container[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Keys returns the stored identifiers in insertion order.
func (c *Container[T]) Keys() []*dataid.DataID {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.keys()
}

func (c *Container[T]) keys() []*dataid.DataID {
	ids := make([]*dataid.DataID, len(c.entries))
	for i, e := range c.entries {
		ids[i] = e.id
	}

	return ids
}

func (c *Container[T]) find(id *dataid.DataID) (int, bool) {
	for _, i := range c.index[id.Hash()] {
		if c.entries[i].id.Equal(id) {
			return i, true
		}
	}

	return 0, false
}

func (c *Container[T]) reindex() {
	c.index = make(map[uint64][]int, len(c.entries))
	for i, e := range c.entries {
		h := e.id.Hash()
		c.index[h] = append(c.index[h], i)
	}
}

// Lookup returns the stored identifier key resolves to. key is anything
// dataid.FilteredQuery accepts; fields of filter that key leaves open
// narrow the search. An identifier stored as is resolves to itself.
func (c *Container[T]) Lookup(key any, filter *dataid.Query) (*dataid.DataID, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	id, _, err := c.lookup(key, filter)

	return id, err
}

// Get returns the item key resolves to.
func (c *Container[T]) Get(key any) (T, error) {
	return c.GetFiltered(key, nil)
}

// GetFiltered returns the item key resolves to under filter.
func (c *Container[T]) GetFiltered(key any, filter *dataid.Query) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, i, err := c.lookup(key, filter)
	if err != nil {
		var zero T
		return zero, err
	}

	return c.entries[i].item, nil
}

func (c *Container[T]) lookup(key any, filter *dataid.Query) (*dataid.DataID, int, error) {
	start := time.Now()

	if id, ok := key.(*dataid.DataID); ok && filter == nil {
		if i, found := c.find(id); found {
			c.metrics.RecordLookup(metrics.OutcomeFound, 1, time.Since(start))
			return c.entries[i].id, i, nil
		}
	}

	q, err := dataid.FilteredQuery(key, filter)
	if err != nil {
		c.metrics.RecordLookup(metrics.OutcomeError, 0, time.Since(start))
		return nil, 0, err
	}

	matched := q.Filter(c.keys())

	ranked, err := q.Rank(matched)
	if err != nil {
		c.metrics.RecordLookup(metrics.OutcomeError, len(matched), time.Since(start))
		return nil, 0, fmt.Errorf("rank %s: %w", q, err)
	}

	best, ok := ranked.Best()
	if !ok || math.IsInf(best.Distance, 1) {
		c.metrics.RecordLookup(metrics.OutcomeNotFound, len(matched), time.Since(start))
		c.log.Debug().Str("query", q.String()).Int("candidates", len(matched)).Msg("no match")

		return nil, 0, fmt.Errorf("%w for %s", ErrNotFound, q)
	}

	if ranked.IsAmbiguous() {
		c.metrics.RecordLookup(metrics.OutcomeAmbiguous, len(matched), time.Since(start))
		c.log.Debug().
			Str("query", q.String()).
			Stringer("first", ranked[0].ID).
			Stringer("second", ranked[1].ID).
			Float64("distance", best.Distance).
			Msg("ambiguous lookup")

		return nil, 0, fmt.Errorf("%w for %s: %s and %s", ErrTooManyResults, q, ranked[0].ID, ranked[1].ID)
	}

	c.metrics.RecordLookup(metrics.OutcomeFound, len(matched), time.Since(start))
	c.metrics.RecordBest(best.Distance)
	c.log.Debug().
		Str("query", q.String()).
		Int("candidates", len(matched)).
		Float64("distance", best.Distance).
		Stringer("id", best.ID).
		Msg("resolved")

	i, _ := c.find(best.ID)

	return best.ID, i, nil
}

// GetAll resolves keys concurrently. Results follow the order of keys. The
// first failure cancels the remaining lookups and is returned.
func (c *Container[T]) GetAll(ctx context.Context, keys []any) ([]T, error) {
	out := make([]T, len(keys))

	g, ctx := errgroup.WithContext(ctx)
	if c.limit > 0 {
		g.SetLimit(c.limit)
	}

	for i, key := range keys {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			item, err := c.Get(key)
			if err != nil {
				return fmt.Errorf("key %v: %w", key, err)
			}

			out[i] = item

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

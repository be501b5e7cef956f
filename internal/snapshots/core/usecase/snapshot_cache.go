package usecase

import (
	"slices"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"usage-insights-service/internal/snapshots/core/domain"
)

const (
	DefaultCapacity = 50
	DefaultTTL      = 10 * time.Minute
)

// SnapshotCache keeps heavy query results in memory under opaque ids so a UI
// can page through them without re-running the query.
//
// When full, Save drops the earliest inserted entry regardless of how
// recently it was read. Entries older than the TTL are removed when read.
type SnapshotCache struct {
	mu       sync.Mutex
	entries  map[string]*domain.Entry
	order    []string
	capacity int
	ttl      time.Duration

	clock   quartz.Clock
	metrics *Metrics
	logger  *zap.Logger
}

type Option func(*SnapshotCache)

func WithClock(c quartz.Clock) Option {
	return func(s *SnapshotCache) { s.clock = c }
}

func WithMetrics(m *Metrics) Option {
	return func(s *SnapshotCache) { s.metrics = m }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *SnapshotCache) { s.logger = l }
}

func NewSnapshotCache(capacity int, ttl time.Duration, opts ...Option) *SnapshotCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c := &SnapshotCache{
		entries:  make(map[string]*domain.Entry, capacity),
		capacity: capacity,
		ttl:      ttl,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.clock == nil {
		c.clock = quartz.NewReal()
	}
	if c.metrics == nil {
		c.metrics = NewMetrics(nil)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

// Save stores payload under a fresh id and returns it.
func (c *SnapshotCache) Save(payload, summary, config any) string {
	id := uuid.NewString()

	c.mu.Lock()
	defer c.mu.Unlock()

	for len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.removeLocked(oldest)
		c.metrics.evicted.Inc()
		c.logger.Debug("snapshot evicted", zap.String("snapshot_id", oldest))
	}

	c.entries[id] = &domain.Entry{
		ID:        id,
		CreatedAt: c.clock.Now(),
		Payload:   payload,
		Summary:   summary,
		Config:    config,
	}
	c.order = append(c.order, id)

	c.metrics.saved.Inc()
	c.metrics.entries.Set(float64(len(c.entries)))

	return id
}

// Get returns the entry for id. Unknown, expired and evicted ids all report
// false.
func (c *SnapshotCache) Get(id string) (*domain.Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[id]
	if !ok {
		c.metrics.lookups.WithLabelValues("miss").Inc()
		return nil, false
	}

	if c.clock.Now().Sub(e.CreatedAt) > c.ttl {
		c.removeLocked(id)
		c.metrics.expired.Inc()
		c.metrics.lookups.WithLabelValues("miss").Inc()
		c.logger.Debug("snapshot expired", zap.String("snapshot_id", id))
		return nil, false
	}

	c.metrics.lookups.WithLabelValues("hit").Inc()
	return e, true
}

// GetData returns the payload of id, sorted and sliced per p. A list payload
// with no paging requested comes back as stored; anything else is wrapped in
// a domain.Page.
func (c *SnapshotCache) GetData(id string, p domain.PageParams) (any, bool, error) {
	e, ok := c.Get(id)
	if !ok {
		return nil, false, nil
	}

	out, err := paginate(e.Payload, p)
	if err != nil {
		return nil, true, err
	}
	return out, true, nil
}

func (c *SnapshotCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *SnapshotCache) removeLocked(id string) {
	delete(c.entries, id)
	if i := slices.Index(c.order, id); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
	c.metrics.entries.Set(float64(len(c.entries)))
}

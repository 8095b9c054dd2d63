package params

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"

	"viability/internal/modules/projection"
)

type Store interface {
	Get(ctx context.Context, s projection.Scenario) (projection.SimulationParams, error)
	Set(ctx context.Context, s projection.Scenario, p projection.SimulationParams) error
	Reset(ctx context.Context) error
}

const keyPrefix = "viability:params:"

// RedisStore keeps one JSON document per scenario under a versioned key. Bumping the
// version abandons every older document.
type RedisStore struct {
	rdb     *redis.Client
	version int
}

func NewRedisStore(rdb *redis.Client, version int) *RedisStore {
	return &RedisStore{rdb: rdb, version: version}
}

func (s *RedisStore) versionPrefix() string {
	return fmt.Sprintf("%sv%d:", keyPrefix, s.version)
}

func (s *RedisStore) key(sc projection.Scenario) string {
	return s.versionPrefix() + string(sc)
}

func (s *RedisStore) Get(ctx context.Context, sc projection.Scenario) (projection.SimulationParams, error) {
	raw, err := s.rdb.Get(ctx, s.key(sc)).Bytes()
	if errors.Is(err, redis.Nil) {
		return projection.SimulationParams{}, ErrNotFound
	}
	if err != nil {
		return projection.SimulationParams{}, err
	}

	var p projection.SimulationParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return projection.SimulationParams{}, fmt.Errorf("decode cached params %s: %w", sc, err)
	}
	return p, nil
}

func (s *RedisStore) Set(ctx context.Context, sc projection.Scenario, p projection.SimulationParams) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key(sc), raw, 0).Err()
}

func (s *RedisStore) Reset(ctx context.Context) error {
	keys := make([]string, 0, len(projection.Scenarios()))
	for _, sc := range projection.Scenarios() {
		keys = append(keys, s.key(sc))
	}
	return s.rdb.Del(ctx, keys...).Err()
}

// Migrate deletes parameter documents written under any other version and returns how
// many keys were removed.
func (s *RedisStore) Migrate(ctx context.Context) (int64, error) {
	current := s.versionPrefix()
	var stale []string

	iter := s.rdb.Scan(ctx, 0, keyPrefix+"v*", 100).Iterator()
	for iter.Next(ctx) {
		if k := iter.Val(); !strings.HasPrefix(k, current) {
			stale = append(stale, k)
		}
	}
	if err := iter.Err(); err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}
	return s.rdb.Del(ctx, stale...).Result()
}

type MemoryStore struct {
	mu     sync.RWMutex
	params map[projection.Scenario]projection.SimulationParams
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{params: map[projection.Scenario]projection.SimulationParams{}}
}

func (m *MemoryStore) Get(_ context.Context, sc projection.Scenario) (projection.SimulationParams, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.params[sc]
	if !ok {
		return projection.SimulationParams{}, ErrNotFound
	}
	return clone(p), nil
}

func (m *MemoryStore) Set(_ context.Context, sc projection.Scenario, p projection.SimulationParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.params[sc] = clone(p)
	return nil
}

func (m *MemoryStore) Reset(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.params = map[projection.Scenario]projection.SimulationParams{}
	return nil
}

// clone copies the optional pointer field so callers never share it with the store.
func clone(p projection.SimulationParams) projection.SimulationParams {
	if p.CurrentUsersReal != nil {
		v := *p.CurrentUsersReal
		p.CurrentUsersReal = &v
	}
	return p
}

// File: booking/store.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"careport/models"
	"careport/utils"
)

// FlowStore persists in-progress booking flows between requests.
type FlowStore interface {
	Save(ctx context.Context, flow *models.BookingFlow) error
	Get(ctx context.Context, flowID string) (*models.BookingFlow, error)
	Delete(ctx context.Context, flowID string) error
}

// RedisFlowStore keeps flows in Redis with a TTL, so an abandoned flow
// expires on its own.
type RedisFlowStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisFlowStore(client *redis.Client, ttl time.Duration) *RedisFlowStore {
	if ttl <= 0 {
		ttl = utils.DefaultFlowTTL
	}
	return &RedisFlowStore{Client: client, TTL: ttl}
}

func (r *RedisFlowStore) Save(ctx context.Context, flow *models.BookingFlow) error {
	data, err := json.Marshal(flow)
	if err != nil {
		return fmt.Errorf("failed to marshal booking flow: %w", err)
	}
	if err := r.Client.Set(ctx, utils.FlowPrefix+flow.FlowID, data, r.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking flow: %w", err)
	}
	return nil
}

func (r *RedisFlowStore) Get(ctx context.Context, flowID string) (*models.BookingFlow, error) {
	data, err := r.Client.Get(ctx, utils.FlowPrefix+flowID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, NewNotFoundError("booking flow not found or expired")
		}
		return nil, fmt.Errorf("failed to load booking flow: %w", err)
	}
	var flow models.BookingFlow
	if err := json.Unmarshal([]byte(data), &flow); err != nil {
		return nil, fmt.Errorf("failed to parse booking flow: %w", err)
	}
	return &flow, nil
}

func (r *RedisFlowStore) Delete(ctx context.Context, flowID string) error {
	return r.Client.Del(ctx, utils.FlowPrefix+flowID).Err()
}

// MemoryFlowStore is an in-process flow store for tests and single-node
// development. Flows round-trip through JSON so reads never alias writes,
// matching the Redis store's semantics.
type MemoryFlowStore struct {
	mu    sync.RWMutex
	flows map[string][]byte
}

func NewMemoryFlowStore() *MemoryFlowStore {
	return &MemoryFlowStore{flows: make(map[string][]byte)}
}

func (m *MemoryFlowStore) Save(_ context.Context, flow *models.BookingFlow) error {
	data, err := json.Marshal(flow)
	if err != nil {
		return fmt.Errorf("failed to marshal booking flow: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flows[flow.FlowID] = data
	return nil
}

func (m *MemoryFlowStore) Get(_ context.Context, flowID string) (*models.BookingFlow, error) {
	m.mu.RLock()
	data, ok := m.flows[flowID]
	m.mu.RUnlock()
	if !ok {
		return nil, NewNotFoundError("booking flow not found or expired")
	}
	var flow models.BookingFlow
	if err := json.Unmarshal(data, &flow); err != nil {
		return nil, fmt.Errorf("failed to parse booking flow: %w", err)
	}
	return &flow, nil
}

func (m *MemoryFlowStore) Delete(_ context.Context, flowID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.flows, flowID)
	return nil
}

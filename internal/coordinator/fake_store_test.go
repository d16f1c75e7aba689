package coordinator

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-sync-keeper/models"
)

type item struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

func (i item) RecordID() string { return i.ID }

// memStore is an in-memory record store with the same ordering and merge
// rules as the SQLite repository.
type memStore struct {
	mu      sync.Mutex
	entity  string
	records map[string]models.SyncRecord[item]
	clock   time.Time

	fetchCalls int
	fetchErr   error
	mergeErr   error
}

func newMemStore() *memStore {
	return &memStore{
		entity:  "items",
		records: make(map[string]models.SyncRecord[item]),
		clock:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memStore) put(status models.SyncStatus, items ...item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range items {
		now := m.tick()
		m.records[it.ID] = models.SyncRecord[item]{ID: it.ID, Payload: it, SyncStatus: status, CreatedAt: now, UpdatedAt: now}
	}
}

func (m *memStore) seedPending(n int) {
	for i := 1; i <= n; i++ {
		m.put(models.SyncStatusPending, item{ID: fmt.Sprintf("%03d", i), Value: "local"})
	}
}

func (m *memStore) get(id string) models.SyncRecord[item] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records[id]
}

func (m *memStore) countStatus(status models.SyncStatus) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, r := range m.records {
		if r.SyncStatus == status {
			n++
		}
	}
	return n
}

func (m *memStore) snapshot() map[string]models.SyncRecord[item] {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]models.SyncRecord[item], len(m.records))
	for k, v := range m.records {
		out[k] = v
	}
	return out
}

func (m *memStore) Entity() string { return m.entity }

func (m *memStore) PendingSyncRecords(_ context.Context, limit, offset int) ([]models.SyncRecord[item], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchCalls++
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}

	var pending []models.SyncRecord[item]
	for _, r := range m.records {
		if r.SyncStatus == models.SyncStatusPending {
			pending = append(pending, r)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		if !pending[i].UpdatedAt.Equal(pending[j].UpdatedAt) {
			return pending[i].UpdatedAt.Before(pending[j].UpdatedAt)
		}
		return pending[i].ID < pending[j].ID
	})

	if offset >= len(pending) {
		return nil, nil
	}
	end := min(offset+limit, len(pending))
	return slices.Clone(pending[offset:end]), nil
}

func (m *memStore) SetSyncStatusForIDs(_ context.Context, ids []string, to models.SyncStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		if r, ok := m.records[id]; ok {
			r.SyncStatus = to
			m.records[id] = r
		}
	}
	return nil
}

func (m *memStore) SetSyncStatus(_ context.Context, from, to models.SyncStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, r := range m.records {
		if r.SyncStatus == from {
			r.SyncStatus = to
			m.records[id] = r
		}
	}
	return nil
}

func (m *memStore) MergeWithLocalData(_ context.Context, payloads []item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.mergeErr != nil {
		return m.mergeErr
	}
	for _, p := range payloads {
		local, ok := m.records[p.ID]
		if ok && local.SyncStatus == models.SyncStatusPending {
			continue
		}
		now := m.clock
		if !ok {
			local.CreatedAt = now
		}
		m.records[p.ID] = models.SyncRecord[item]{
			ID:         p.ID,
			Payload:    p,
			SyncStatus: models.SyncStatusDone,
			CreatedAt:  local.CreatedAt,
			UpdatedAt:  now,
		}
	}
	return nil
}

// memCursor records every write so tests can assert on the history.
type memCursor struct {
	mu      sync.Mutex
	tokens  map[string]string
	history []string
	getErr  error
}

func newMemCursor() *memCursor {
	return &memCursor{tokens: make(map[string]string)}
}

func (c *memCursor) GetCursor(_ context.Context, entity string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return "", c.getErr
	}
	return c.tokens[entity], nil
}

func (c *memCursor) SetCursor(_ context.Context, entity, token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens[entity] = token
	c.history = append(c.history, token)
	return nil
}

// pagedServer serves a fixed feed of payloads. The token is the offset of
// the next page.
type pagedServer struct {
	feed  []item
	calls []string
	// failAt makes the call with this index fail.
	failAt int
}

var errServerDown = errors.New("server down")

func (s *pagedServer) pull(limit int) PullFunc[item] {
	return func(_ context.Context, token string) (models.PullResponse[item], error) {
		s.calls = append(s.calls, token)
		if s.failAt > 0 && len(s.calls) == s.failAt {
			return models.PullResponse[item]{}, errServerDown
		}

		start := 0
		if token != "" {
			_, _ = fmt.Sscanf(token, "%d", &start)
		}
		end := min(start+limit, len(s.feed))
		page := slices.Clone(s.feed[start:end])

		next := token
		if end > start {
			next = fmt.Sprintf("%d", end)
		}
		return models.PullResponse[item]{Payloads: page, ProcessToken: next}, nil
	}
}

func feedOf(n int, value string) []item {
	out := make([]item, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, item{ID: fmt.Sprintf("r%03d", i), Value: value})
	}
	return out
}

package history

import (
	"container/list"
	"context"
	"sync"

	"github.com/saikothasan/neno/internal/models"
)

const DefaultMaxClients = 10000

type clientHistory struct {
	clientID string
	entries  []models.HistoryEntry // oldest first
}

// MemoryStore is a process-local Store. Entries are lost on restart.
// Once maxClients is reached the least recently used client is dropped.
type MemoryStore struct {
	mu         sync.Mutex
	capacity   int
	maxClients int
	clients    map[string]*list.Element
	recency    *list.List // front is most recently used
}

type MemoryOption func(*MemoryStore)

func WithMaxClients(n int) MemoryOption {
	return func(m *MemoryStore) {
		if n > 0 {
			m.maxClients = n
		}
	}
}

func NewMemoryStore(capacity int, opts ...MemoryOption) *MemoryStore {
	m := &MemoryStore{
		capacity:   normalizeCapacity(capacity),
		maxClients: DefaultMaxClients,
		clients:    make(map[string]*list.Element),
		recency:    list.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MemoryStore) Append(_ context.Context, clientID string, entry models.HistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.clients[clientID]
	if !ok {
		elem = m.recency.PushFront(&clientHistory{clientID: clientID})
		m.clients[clientID] = elem
		for m.recency.Len() > m.maxClients {
			m.evictOldest()
		}
	} else {
		m.recency.MoveToFront(elem)
	}

	h := elem.Value.(*clientHistory)
	kept := append(h.entries, entry)
	if over := len(kept) - m.capacity; over > 0 {
		kept = append([]models.HistoryEntry(nil), kept[over:]...)
	}
	h.entries = kept
	return nil
}

func (m *MemoryStore) List(_ context.Context, clientID string) ([]models.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.clients[clientID]
	if !ok {
		return []models.HistoryEntry{}, nil
	}
	m.recency.MoveToFront(elem)

	entries := elem.Value.(*clientHistory).entries
	out := make([]models.HistoryEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
	}
	return out, nil
}

func (m *MemoryStore) Clear(_ context.Context, clientID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, ok := m.clients[clientID]; ok {
		m.recency.Remove(elem)
		delete(m.clients, clientID)
	}
	return nil
}

// Len returns the number of clients currently tracked.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.clients)
}

func (m *MemoryStore) evictOldest() {
	elem := m.recency.Back()
	if elem == nil {
		return
	}
	m.recency.Remove(elem)
	delete(m.clients, elem.Value.(*clientHistory).clientID)
}

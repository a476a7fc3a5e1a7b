package store

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Memory is an in-process Backend. It is safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	entries map[string]Entry
	now     func() time.Time

	// failWith, when set, is returned from every operation.
	failWith error
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]Entry), now: time.Now}
}

// SetFailure makes every subsequent call fail with an
// *ErrPersistenceUnavailable wrapping err. Pass nil to recover.
func (m *Memory) SetFailure(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

func (m *Memory) Read(_ context.Context, key string) (*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, unavailable("read "+key, m.failWith)
	}

	e, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	e.Value = slices.Clone(e.Value)
	return &e, nil
}

func (m *Memory) Write(_ context.Context, key string, value []byte, ifVersion int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return 0, unavailable("write "+key, m.failWith)
	}

	cur := m.entries[key].Version
	if err := checkVersion(key, ifVersion, cur); err != nil {
		return 0, err
	}
	next := cur + 1
	m.entries[key] = Entry{Value: slices.Clone(value), Version: next, UpdatedAt: m.now()}
	return next, nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return unavailable("remove "+key, m.failWith)
	}
	delete(m.entries, key)
	return nil
}

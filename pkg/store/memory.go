package store

import (
	"context"
	"sync"
)

// Memory is an in-process KV for tests and throwaway sessions. It counts
// writes per key and can be told to fail them.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
	writes map[string]int
	failOn map[string]error
}

func NewMemory() *Memory {
	return &Memory{
		values: make(map[string]string),
		writes: make(map[string]int),
		failOn: make(map[string]error),
	}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failOn[key]; err != nil {
		return err
	}
	m.values[key] = value
	m.writes[key]++
	return nil
}

// Writes reports how many successful Set calls key has seen.
func (m *Memory) Writes(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes[key]
}

// FailWrites makes every Set of key return err until cleared with nil.
func (m *Memory) FailWrites(key string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.failOn, key)
		return
	}
	m.failOn[key] = err
}

func (m *Memory) BasePath() string { return "" }

// Watch never emits; nothing outside the process can change a Memory.
func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

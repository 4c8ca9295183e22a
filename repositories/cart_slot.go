package repositories

import (
	"context"
	"errors"
	"sync"
)

// ErrSlotEmpty is returned by Load when nothing is stored under the key.
var ErrSlotEmpty = errors.New("cart slot is empty")

type MemoryCartSlot struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryCartSlot() *MemoryCartSlot {
	return &MemoryCartSlot{data: make(map[string][]byte)}
}

func (s *MemoryCartSlot) Load(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, ErrSlotEmpty
	}
	return append([]byte(nil), v...), nil
}

func (s *MemoryCartSlot) Save(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), data...)
	return nil
}

func (s *MemoryCartSlot) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

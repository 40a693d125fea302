package docstore

import (
	"context"
	"sync"
)

// MemoryBlob é o backend em memória usado nos testes e como dublê de
// injeção. Opcionalmente simula falhas de persistência para exercitar os
// caminhos de degradação suave do Store.
type MemoryBlob struct {
	mu   sync.Mutex
	data []byte

	FailLoad error
	FailSave error
}

func NewMemoryBlob() *MemoryBlob {
	return &MemoryBlob{}
}

func (m *MemoryBlob) Load(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailLoad != nil {
		return nil, m.FailLoad
	}
	if m.data == nil {
		return nil, ErrNotFound
	}
	return append([]byte(nil), m.data...), nil
}

func (m *MemoryBlob) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailSave != nil {
		return m.FailSave
	}
	m.data = append([]byte(nil), data...)
	return nil
}

func (m *MemoryBlob) Delete(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = nil
	return nil
}

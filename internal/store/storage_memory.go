// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"sync"
)

// memoryResourceStorage keeps resources in a map guarded by a RWMutex.
// Values are copied on the way in and out so callers never share a backing
// array with the map.
type memoryResourceStorage struct {
	mu        sync.RWMutex
	resources map[string]json.RawMessage
}

// NewMemoryResourceStorage returns an empty in-memory [ResourceStorage].
func NewMemoryResourceStorage() ResourceStorage {
	return &memoryResourceStorage{
		resources: make(map[string]json.RawMessage),
	}
}

func (m *memoryResourceStorage) Get(_ context.Context, id string) (json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.resources[id]
	if !ok {
		return nil, ErrResourceNotFound
	}

	return cloneRaw(value), nil
}

func (m *memoryResourceStorage) Put(_ context.Context, id string, value json.RawMessage) error {
	stored := cloneRaw(value)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.resources[id] = stored
	return nil
}

func (m *memoryResourceStorage) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.resources[id]; !ok {
		return ErrResourceNotFound
	}

	delete(m.resources, id)
	return nil
}

func cloneRaw(value json.RawMessage) json.RawMessage {
	if value == nil {
		return nil
	}

	out := make(json.RawMessage, len(value))
	copy(out, value)
	return out
}

// Package memstore provides in-process implementations of the device
// stores. Used for tests and for dev runs without a Redis instance.
package memstore

import (
	"context"
	"sync"
)

type ProfileStore struct {
	mu      sync.RWMutex
	devices map[string]map[string]string

	// FailWrites forces Set to report storage unavailability; tests use it
	// to assert that navigation never follows a failed write.
	FailWrites error
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{devices: make(map[string]map[string]string)}
}

func (s *ProfileStore) Get(ctx context.Context, deviceID, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	kv, ok := s.devices[deviceID]
	if !ok {
		return "", false, nil
	}
	v, ok := kv[key]
	return v, ok, nil
}

func (s *ProfileStore) Set(ctx context.Context, deviceID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites != nil {
		return s.FailWrites
	}
	kv, ok := s.devices[deviceID]
	if !ok {
		kv = make(map[string]string)
		s.devices[deviceID] = kv
	}
	kv[key] = value
	return nil
}

func (s *ProfileStore) Delete(ctx context.Context, deviceID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if kv, ok := s.devices[deviceID]; ok {
		delete(kv, key)
	}
	return nil
}

func (s *ProfileStore) Clear(ctx context.Context, deviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.devices, deviceID)
	return nil
}

// Len reports how many keys a device currently holds.
func (s *ProfileStore) Len(deviceID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.devices[deviceID])
}

package storage

import (
	"fmt"
	"strings"
)

// Backend is a persistent, string-keyed store shared by every client.
type Backend interface {
	// GetItem returns the value stored under key. ok is false when the key is absent.
	GetItem(key string) (value string, ok bool, err error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(key, value string) error

	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(key string) error
}

// LocalStorage is the guard the repositories talk to. A nil *LocalStorage, or
// one created without a backend, has no storage behind it: reads find nothing
// and writes are dropped, so callers never need to special-case it.
type LocalStorage struct {
	backend Backend
}

// New wraps backend. A nil backend yields an unavailable LocalStorage.
func New(backend Backend) *LocalStorage {
	return &LocalStorage{backend: backend}
}

// Available reports whether a backend is attached.
func (s *LocalStorage) Available() bool {
	return s != nil && s.backend != nil
}

func (s *LocalStorage) GetItem(key string) (string, bool, error) {
	if !s.Available() {
		return "", false, nil
	}
	value, ok, err := s.backend.GetItem(key)
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, ok, nil
}

func (s *LocalStorage) SetItem(key, value string) error {
	if !s.Available() {
		return nil
	}
	if err := s.backend.SetItem(key, value); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *LocalStorage) RemoveItem(key string) error {
	if !s.Available() {
		return nil
	}
	if err := s.backend.RemoveItem(key); err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

// Clear removes every listed key, stopping at the first failure.
func (s *LocalStorage) Clear(keys ...string) error {
	for _, key := range keys {
		if err := s.RemoveItem(key); err != nil {
			return err
		}
	}
	return nil
}

type prefixedBackend struct {
	backend Backend
	prefix  string
}

// Prefixed scopes every key of backend under "<prefix>:".
func Prefixed(backend Backend, prefix string) Backend {
	return &prefixedBackend{backend: backend, prefix: strings.TrimSuffix(prefix, ":") + ":"}
}

func (p *prefixedBackend) GetItem(key string) (string, bool, error) {
	return p.backend.GetItem(p.prefix + key)
}

func (p *prefixedBackend) SetItem(key, value string) error {
	return p.backend.SetItem(p.prefix+key, value)
}

func (p *prefixedBackend) RemoveItem(key string) error {
	return p.backend.RemoveItem(p.prefix + key)
}

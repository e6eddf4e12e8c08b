package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingBackend struct {
	err error
}

func (f failingBackend) GetItem(string) (string, bool, error) { return "", false, f.err }
func (f failingBackend) SetItem(string, string) error         { return f.err }
func (f failingBackend) RemoveItem(string) error              { return f.err }

func TestLocalStorage_Unavailable(t *testing.T) {
	for name, s := range map[string]*LocalStorage{
		"nil receiver": nil,
		"nil backend":  New(nil),
	} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, s.Available())

			value, ok, err := s.GetItem("hackathons")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Empty(t, value)

			require.NoError(t, s.SetItem("hackathons", "[]"))
			require.NoError(t, s.RemoveItem("hackathons"))
			require.NoError(t, s.Clear("a", "b"))
		})
	}
}

func TestLocalStorage_RoundTrip(t *testing.T) {
	s := New(NewMemoryBackend())
	require.True(t, s.Available())

	require.NoError(t, s.SetItem("currentUser", `{"id":"u1"}`))

	value, ok, err := s.GetItem("currentUser")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"id":"u1"}`, value)

	require.NoError(t, s.RemoveItem("currentUser"))
	_, ok, err = s.GetItem("currentUser")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalStorage_WrapsBackendErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	s := New(failingBackend{err: boom})

	_, _, err := s.GetItem("hackathons")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `"hackathons"`)

	require.ErrorIs(t, s.SetItem("hackathons", "[]"), boom)
	require.ErrorIs(t, s.RemoveItem("hackathons"), boom)
	require.ErrorIs(t, s.Clear("hackathons"), boom)
}

func TestLocalStorage_Clear(t *testing.T) {
	backend := NewMemoryBackend()
	s := New(backend)
	require.NoError(t, s.SetItem("a", "1"))
	require.NoError(t, s.SetItem("b", "2"))
	require.NoError(t, s.SetItem("c", "3"))

	require.NoError(t, s.Clear("a", "b", "missing"))
	assert.Equal(t, 1, backend.Len())
}

func TestPrefixed_IsolatesClients(t *testing.T) {
	shared := NewMemoryBackend()
	alice := New(Prefixed(shared, "client:alice"))
	bob := New(Prefixed(shared, "client:bob:"))

	require.NoError(t, alice.SetItem("currentUser", "alice"))
	require.NoError(t, bob.SetItem("currentUser", "bob"))

	value, ok, err := alice.GetItem("currentUser")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "alice", value)

	raw, ok, err := shared.GetItem("client:bob:currentUser")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "bob", raw)

	require.NoError(t, alice.RemoveItem("currentUser"))
	_, ok, err = bob.GetItem("currentUser")
	require.NoError(t, err)
	assert.True(t, ok)
}

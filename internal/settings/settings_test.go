package settings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memItems struct {
	data    map[string][]byte
	loadErr error
}

func (m *memItems) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.data[key], nil
}

func (m *memItems) SaveItem(key string, data []byte) error {
	if m.data == nil {
		m.data = map[string][]byte{}
	}
	m.data[key] = data
	return nil
}

func TestLoadDefaultsWhenEmpty(t *testing.T) {
	s := &Store{items: &memItems{}}
	v, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), v)
}

func TestSaveLoad(t *testing.T) {
	s := &Store{items: &memItems{}}
	want := Settings{Variant: "kaboom-lite", Difficulty: "hard", LastLevel: "deck"}
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	items := &memItems{data: map[string][]byte{itemKey: []byte(`{"lastLevel":"cove"}`)}}
	s := &Store{items: items}

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "cove", got.LastLevel)
	assert.Equal(t, "kaboom", got.Variant)
}

func TestLoadErrors(t *testing.T) {
	s := &Store{items: &memItems{loadErr: errors.New("disk on fire")}}
	_, err := s.Load()
	assert.ErrorContains(t, err, "settings: load")

	s = &Store{items: &memItems{data: map[string][]byte{itemKey: []byte("{")}}}
	v, err := s.Load()
	assert.ErrorContains(t, err, "settings: parse")
	assert.Equal(t, Defaults(), v)
}

func TestUpdate(t *testing.T) {
	s := &Store{items: &memItems{}}
	require.NoError(t, s.Update(func(v *Settings) { v.LastLevel = "deck" }))
	require.NoError(t, s.Update(func(v *Settings) { v.Difficulty = "easy" }))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, Settings{Variant: "kaboom", Difficulty: "easy", LastLevel: "deck"}, got)
}

func TestNilStoreIsNoop(t *testing.T) {
	var s *Store
	v, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), v)
	assert.NoError(t, s.Save(v))
}

func TestOpenGdata(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	s, err := Open("kaboom-test")
	require.NoError(t, err)

	v, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), v)

	v.LastLevel = "cove"
	require.NoError(t, s.Save(v))

	again, err := Open("kaboom-test")
	require.NoError(t, err)
	got, err := again.Load()
	require.NoError(t, err)
	assert.Equal(t, "cove", got.LastLevel)
}

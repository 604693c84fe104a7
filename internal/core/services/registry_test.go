package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_InsertionOrder(t *testing.T) {
	r := newRegistry[string]()
	r.put(5, "five")
	r.put(1, "one")
	r.put(3, "three")

	assert.Equal(t, []string{"five", "one", "three"}, r.values())
	assert.Equal(t, 3, r.len())
}

func TestRegistry_PutExistingKeepsPosition(t *testing.T) {
	r := newRegistry[string]()
	r.put(1, "a")
	r.put(2, "b")
	r.put(1, "c")

	assert.Equal(t, []string{"c", "b"}, r.values())
}

func TestRegistry_Get(t *testing.T) {
	r := newRegistry[int]()
	r.put(2, 20)

	v, ok := r.get(2)
	assert.True(t, ok)
	assert.Equal(t, 20, v)
	assert.True(t, r.has(2))

	_, ok = r.get(3)
	assert.False(t, ok)
	assert.False(t, r.has(3))
}

func TestRegistry_ValuesNeverNil(t *testing.T) {
	assert.NotNil(t, newRegistry[int]().values())
}

func TestRegistry_NextID(t *testing.T) {
	r := newRegistry[int]()
	assert.Equal(t, 2, r.nextID())

	r.put(1, 0)
	assert.Equal(t, 2, r.nextID())

	r.put(9, 0)
	r.put(4, 0)
	assert.Equal(t, 10, r.nextID())
}

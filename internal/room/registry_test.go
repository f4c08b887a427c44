package room

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return NewRegistry(testCatalog(time.Minute), clockwork.NewFakeClock(), NopNotifier{})
}

func TestCreateOrGetIsIdempotent(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)

	first, created, err := reg.CreateOrGet("Alpha")
	require.NoError(t, err)
	assert.True(t, created)

	first.Join("p-aaa", "Crew")

	second, created, err := reg.CreateOrGet("Alpha")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, first, second)
	assert.Len(t, second.State().Players, 1, "existing room returned unchanged")
}

func TestCreateOrGetRejectsBlankNames(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, _, err := reg.CreateOrGet(name)
		assert.ErrorIs(t, err, ErrInvalidName)
	}
	assert.Empty(t, reg.ListNames())
}

func TestGetUnknownRoom(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)

	_, err := reg.Get("nowhere")
	assert.ErrorIs(t, err, ErrUnknownRoom)
}

func TestListNamesSorted(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)

	for _, name := range []string{"charlie", "alpha", "bravo"} {
		_, _, err := reg.CreateOrGet(name)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, reg.ListNames())
}

func TestRemoveIfEmpty(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)

	assert.False(t, reg.RemoveIfEmpty("nowhere"))

	r, _, err := reg.CreateOrGet("Alpha")
	require.NoError(t, err)
	r.Join("p-aaa", "")

	assert.False(t, reg.RemoveIfEmpty("Alpha"), "occupied room survives")
	_, err = reg.Get("Alpha")
	assert.NoError(t, err)

	r.Leave("p-aaa")
	assert.True(t, reg.RemoveIfEmpty("Alpha"))
	_, err = reg.Get("Alpha")
	assert.ErrorIs(t, err, ErrUnknownRoom)
}

func TestRegistryConcurrentAccess(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("room-%d", i%5)
			r, _, err := reg.CreateOrGet(name)
			assert.NoError(t, err)
			r.Join(fmt.Sprintf("p-%d", i), "")
			reg.ListNames()
		}(i)
	}
	wg.Wait()

	assert.Len(t, reg.ListNames(), 5)
}

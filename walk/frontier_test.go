package walk_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/docview/walk"
	"github.com/stretchr/testify/assert"
)

func TestFrontier_Push_rejects_duplicate_addresses(t *testing.T) {
	t.Parallel()

	f := walk.NewFrontier(1000, 0.01)

	assert.True(t, f.Push("dart-core.String"))
	assert.False(t, f.Push("dart-core.String"))
	assert.False(t, f.Push("dart-core.String@id_length"), "anchors are dropped before deduplication")
	assert.Equal(t, 1, f.Len())
}

func TestFrontier_Pop_returns_shallowest_first(t *testing.T) {
	t.Parallel()

	f := walk.NewFrontier(1000, 0.01)

	f.Push("dart-core.String.trim")
	f.Push("dart-core.String")
	f.Push("dart-async")
	f.Push("dart-core.List")
	f.Push("dart-core")

	var got []string
	for {
		address, ok := f.Pop()
		if !ok {
			break
		}
		got = append(got, address)
	}

	assert.Equal(t, []string{
		"dart-async",
		"dart-core",
		"dart-core.String",
		"dart-core.List",
		"dart-core.String.trim",
	}, got)
}

func TestFrontier_Pop_strips_anchors(t *testing.T) {
	t.Parallel()

	f := walk.NewFrontier(1000, 0.01)
	f.Push("#dart-core.String@id_trim")

	address, ok := f.Pop()

	assert.True(t, ok)
	assert.Equal(t, "dart-core.String", address)
}

func TestFrontier_Len_tracks_queue_size(t *testing.T) {
	t.Parallel()

	f := walk.NewFrontier(1000, 0.01)

	assert.Equal(t, 0, f.Len(), "new frontier should be empty")

	f.Push("dart-core")
	f.Push("dart-async")
	assert.Equal(t, 2, f.Len())

	f.Pop()
	assert.Equal(t, 1, f.Len())

	f.Pop()
	_, ok := f.Pop()
	assert.False(t, ok, "pop on empty frontier should return false")
	assert.Equal(t, 0, f.Len())
}

func TestFrontier_Seen_persists_after_pop(t *testing.T) {
	t.Parallel()

	f := walk.NewFrontier(1000, 0.01)

	assert.False(t, f.Seen("dart-core"))
	f.Push("dart-core")
	f.Pop()

	assert.True(t, f.Seen("dart-core"))
	assert.True(t, f.Seen("dart-core@id_x"))
	assert.False(t, f.Push("dart-core"), "popped addresses stay deduplicated")
}

func TestFrontier_concurrent_access(t *testing.T) {
	t.Parallel()

	f := walk.NewFrontier(10000, 0.001)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				f.Push(fmt.Sprintf("lib%d.Class%d", i, j))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000, f.Len())

	var mu sync.Mutex
	popped := make(map[string]bool)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				address, ok := f.Pop()
				if !ok {
					return
				}
				mu.Lock()
				popped[address] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, popped, 1000)
	assert.Equal(t, 0, f.Len())
}

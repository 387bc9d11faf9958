package walk

import (
	"container/heap"
	"sync"

	"github.com/fwojciec/docview"
	"github.com/fwojciec/docview/bloom"
)

// Compile-time interface verification.
var _ docview.Frontier = (*Frontier)(nil)

// Frontier is an in-memory address queue with Bloom filter deduplication.
// Shallower addresses are popped first. It is safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue *addressHeap
	seq   int
}

// NewFrontier creates a new Frontier sized for n expected addresses with
// the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	h := &addressHeap{}
	heap.Init(h)
	return &Frontier{
		seen:  bloom.NewFilter(n, fpRate),
		queue: h,
	}
}

// Push adds an address to the frontier.
// Returns false if the address has already been seen. Anchors are dropped
// before deduplication.
func (f *Frontier) Push(address string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	loc := docview.ParseLocation(address)
	address = loc.WithoutAnchor()
	if f.seen.TestAndAdd(address) {
		return false
	}
	heap.Push(f.queue, entry{address: address, depth: depth(loc), seq: f.seq})
	f.seq++
	return true
}

// Pop returns the shallowest queued address.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.queue.Len() == 0 {
		return "", false
	}
	e, _ := heap.Pop(f.queue).(entry)
	return e.address, true
}

// Len returns the number of queued addresses.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queue.Len()
}

// Seen returns true if the address has been queued.
func (f *Frontier) Seen(address string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(docview.ParseLocation(address).WithoutAnchor())
}

// depth counts the components of a location below its package.
func depth(loc docview.Location) int {
	n := 0
	for _, part := range []string{loc.Library, loc.Member, loc.SubMember} {
		if part != "" {
			n++
		}
	}
	return n
}

type entry struct {
	address string
	depth   int
	seq     int
}

// addressHeap implements heap.Interface ordered by depth, then push order.
type addressHeap []entry

func (h addressHeap) Len() int { return len(h) }

func (h addressHeap) Less(i, j int) bool {
	if h[i].depth != h[j].depth {
		return h[i].depth < h[j].depth
	}
	return h[i].seq < h[j].seq
}

func (h addressHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *addressHeap) Push(x any) {
	e, _ := x.(entry)
	*h = append(*h, e)
}

func (h *addressHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

package docview

// Frontier is a queue of addresses to visit with deduplication.
type Frontier interface {
	// Push adds an address to the frontier.
	// Returns false if the address has already been seen.
	Push(address string) bool

	// Pop returns the next address. Shallower addresses come first; ties
	// are returned in push order.
	// Returns false if the frontier is empty.
	Pop() (string, bool)

	// Len returns the number of queued addresses.
	Len() int

	// Seen returns true if the address has been queued.
	Seen(address string) bool
}

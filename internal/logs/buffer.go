package logs

import "github.com/charliek/cwlog/internal/domain"

// RingBuffer remembers the ids of the most recent events so a poller can
// skip events it has already delivered. It is not safe for concurrent use.
type RingBuffer struct {
	entries  []string       // event ids in write order, circular
	ids      map[string]int // event id -> occurrences in buffer
	head     int            // next write position
	count    int            // current number of entries
	capacity int            // max entries
}

// NewRingBuffer creates a new ring buffer with the given capacity
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity <= 0 {
		capacity = 1000
	}
	return &RingBuffer{
		entries:  make([]string, capacity),
		ids:      make(map[string]int, capacity),
		capacity: capacity,
	}
}

// Write records the event, evicting the oldest when full
func (b *RingBuffer) Write(event domain.LogEvent) {
	if b.count == b.capacity {
		b.forget(b.entries[b.head])
	}

	b.entries[b.head] = event.ID
	b.ids[event.ID]++
	b.head = (b.head + 1) % b.capacity

	if b.count < b.capacity {
		b.count++
	}
}

// WriteIfNew records the event unless its id is already buffered.
// Returns true if the event was added.
func (b *RingBuffer) WriteIfNew(event domain.LogEvent) bool {
	if event.ID != "" && b.Contains(event.ID) {
		return false
	}
	b.Write(event)
	return true
}

func (b *RingBuffer) forget(id string) {
	if n := b.ids[id]; n > 1 {
		b.ids[id] = n - 1
	} else {
		delete(b.ids, id)
	}
}

// Contains returns true if an event with the id is buffered
func (b *RingBuffer) Contains(id string) bool {
	return b.ids[id] > 0
}

package gesture

// PointerCache maps each active pointer identifier to its latest tagged event.
// Entries iterate in the order their pointers started.
type PointerCache struct {
	entries map[int]TaggedEvent
	order   []int
}

// NewPointerCache returns an empty cache.
func NewPointerCache() *PointerCache {
	return &PointerCache{entries: make(map[int]TaggedEvent)}
}

// Update folds ev into the cache and reports whether the mapping changed.
//
// A start inserts or overwrites, every terminal tag removes, and a move
// overwrites only a pointer that is already present. A move for an unknown
// pointer never inserts.
func (c *PointerCache) Update(ev TaggedEvent) bool {
	id := ev.PointerID
	switch ev.Tag {
	case TagStart:
		if _, ok := c.entries[id]; !ok {
			c.order = append(c.order, id)
		}
		c.entries[id] = ev
		return true
	case TagMove:
		if _, ok := c.entries[id]; !ok {
			return false
		}
		c.entries[id] = ev
		return true
	case TagEnd, TagCancel, TagExitBounds, TagExitElement:
		if _, ok := c.entries[id]; !ok {
			return false
		}
		delete(c.entries, id)
		c.removeOrder(id)
		return true
	}
	return false
}

func (c *PointerCache) removeOrder(id int) {
	for i, v := range c.order {
		if v == id {
			copy(c.order[i:], c.order[i+1:])
			c.order = c.order[:len(c.order)-1]
			return
		}
	}
}

// Len returns the number of active pointers.
func (c *PointerCache) Len() int {
	return len(c.order)
}

// Get returns the latest event for pointer id.
func (c *PointerCache) Get(id int) (TaggedEvent, bool) {
	ev, ok := c.entries[id]
	return ev, ok
}

// Each calls fn for every active pointer in start order.
func (c *PointerCache) Each(fn func(TaggedEvent)) {
	for _, id := range c.order {
		fn(c.entries[id])
	}
}

// IDs returns the active pointer identifiers in start order.
func (c *PointerCache) IDs() []int {
	ids := make([]int, len(c.order))
	copy(ids, c.order)
	return ids
}

// Clear removes every entry.
func (c *PointerCache) Clear() {
	clear(c.entries)
	c.order = c.order[:0]
}

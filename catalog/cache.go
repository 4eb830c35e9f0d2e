package catalog

import (
	"container/list"

	enc "github.com/named-data/ndnd/std/encoding"
)

// segmentCache is a bounded, strict LRU map from a full segment name to
// its signed wire, used to answer query-results retrieval Interests
// from memory per spec.md §4.6. It is built on container/list plus a
// map, the same two-structure shape std/object/storage.MemoryStore uses
// for its own name-keyed store; see DESIGN.md for why this stays on the
// standard library instead of a third-party cache package.
//
// Callers are expected to serialize access with the same mutex the
// Active-Query Registry uses (see catalog.go); segmentCache itself does
// no locking.
type segmentCache struct {
	capacity int
	ll       *list.List
	items    map[string]*list.Element
}

type cacheEntry struct {
	key string
	pkt Packet
}

func newSegmentCache(capacity int) *segmentCache {
	return &segmentCache{
		capacity: capacity,
		ll:       list.New(),
		items:    make(map[string]*list.Element),
	}
}

// insert stores pkt under its own name, evicting the least recently
// used entry if the cache is at capacity. Re-inserting an existing name
// refreshes its recency.
func (c *segmentCache) insert(pkt Packet) {
	key := pkt.Name.String()

	if el, ok := c.items[key]; ok {
		el.Value.(*cacheEntry).pkt = pkt
		c.ll.MoveToFront(el)
		return
	}

	el := c.ll.PushFront(&cacheEntry{key: key, pkt: pkt})
	c.items[key] = el

	for c.ll.Len() > c.capacity {
		c.evictOldest()
	}
}

// find returns the Packet stored under name, if present, and marks it
// as most recently used.
func (c *segmentCache) find(name enc.Name) (Packet, bool) {
	key := name.String()
	el, ok := c.items[key]
	if !ok {
		return Packet{}, false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*cacheEntry).pkt, true
}

func (c *segmentCache) evictOldest() {
	el := c.ll.Back()
	if el == nil {
		return
	}
	c.ll.Remove(el)
	delete(c.items, el.Value.(*cacheEntry).key)
}

// len reports the number of cached segments, for tests and metrics.
func (c *segmentCache) len() int {
	return c.ll.Len()
}

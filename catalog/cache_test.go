package catalog

import (
	"testing"

	enc "github.com/named-data/ndnd/std/encoding"
	"github.com/stretchr/testify/require"
)

func TestSegmentCacheInsertAndFind(t *testing.T) {
	c := newSegmentCache(2)

	p1 := testPacket(t, "/catalog/query-results/v=1/seg=0")
	c.insert(p1)

	got, ok := c.find(p1.Name)
	require.True(t, ok)
	require.Equal(t, p1, got)
	require.Equal(t, 1, c.len())
}

func TestSegmentCacheMissOnUnknownName(t *testing.T) {
	c := newSegmentCache(2)
	name, err := enc.NameFromStr("/catalog/query-results/v=1/seg=0")
	require.NoError(t, err)

	_, ok := c.find(name)
	require.False(t, ok)
}

func TestSegmentCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := newSegmentCache(2)

	p1 := testPacket(t, "/catalog/query-results/v=1/seg=0")
	p2 := testPacket(t, "/catalog/query-results/v=1/seg=1")
	p3 := testPacket(t, "/catalog/query-results/v=1/seg=2")

	c.insert(p1)
	c.insert(p2)
	c.insert(p3) // evicts p1, the least recently used

	_, ok := c.find(p1.Name)
	require.False(t, ok)

	_, ok = c.find(p2.Name)
	require.True(t, ok)
	_, ok = c.find(p3.Name)
	require.True(t, ok)
	require.Equal(t, 2, c.len())
}

func TestSegmentCacheFindRefreshesRecency(t *testing.T) {
	c := newSegmentCache(2)

	p1 := testPacket(t, "/catalog/query-results/v=1/seg=0")
	p2 := testPacket(t, "/catalog/query-results/v=1/seg=1")
	p3 := testPacket(t, "/catalog/query-results/v=1/seg=2")

	c.insert(p1)
	c.insert(p2)

	_, ok := c.find(p1.Name) // p1 is now more recently used than p2
	require.True(t, ok)

	c.insert(p3) // must evict p2, not p1

	_, ok = c.find(p1.Name)
	require.True(t, ok)
	_, ok = c.find(p2.Name)
	require.False(t, ok)
}

func TestSegmentCacheReinsertUpdatesInPlace(t *testing.T) {
	c := newSegmentCache(2)

	p1 := testPacket(t, "/catalog/query-results/v=1/seg=0")
	c.insert(p1)

	p1Updated := p1
	p1Updated.Wire = enc.Wire{[]byte("updated")}
	c.insert(p1Updated)

	require.Equal(t, 1, c.len())
	got, ok := c.find(p1.Name)
	require.True(t, ok)
	require.Equal(t, p1Updated, got)
}

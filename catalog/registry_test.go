package catalog

import (
	"sync"
	"testing"

	enc "github.com/named-data/ndnd/std/encoding"
	"github.com/stretchr/testify/require"
)

func testPacket(t *testing.T, name string) Packet {
	n, err := enc.NameFromStr(name)
	require.NoError(t, err)
	return Packet{Name: n, Wire: enc.Wire{[]byte("x")}}
}

func TestActiveQueryRegistryInsertIfAbsent(t *testing.T) {
	r := newActiveQueryRegistry(&sync.Mutex{})

	ack1 := testPacket(t, "/catalog/query-results/v=1")
	got, inserted := r.insertIfAbsent("q1", ack1)
	require.True(t, inserted)
	require.Equal(t, ack1, got)
	require.Equal(t, 1, r.len())

	ack2 := testPacket(t, "/catalog/query-results/v=2")
	got, inserted = r.insertIfAbsent("q1", ack2)
	require.False(t, inserted)
	require.Equal(t, ack1, got)
	require.Equal(t, 1, r.len())
}

func TestActiveQueryRegistryLookup(t *testing.T) {
	r := newActiveQueryRegistry(&sync.Mutex{})

	_, ok := r.lookup("missing")
	require.False(t, ok)

	ack := testPacket(t, "/catalog/query-results/v=1")
	r.insertIfAbsent("q1", ack)

	got, ok := r.lookup("q1")
	require.True(t, ok)
	require.Equal(t, ack, got)
}

// Run with -race: concurrent lookups of one query must never observe
// Go's "concurrent map read and map write" fatal error while another
// goroutine is inside insertIfAbsent, which is exactly what duplicate
// in-flight query Interests produce.
func TestActiveQueryRegistryConcurrentLookupAndInsert(t *testing.T) {
	r := newActiveQueryRegistry(&sync.Mutex{})
	ack := testPacket(t, "/catalog/query-results/v=1")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.lookup("q1")
		}()
		go func() {
			defer wg.Done()
			r.insertIfAbsent("q1", ack)
		}()
	}
	wg.Wait()

	got, ok := r.lookup("q1")
	require.True(t, ok)
	require.Equal(t, ack, got)
}

func TestActiveQueryRegistryDistinctQueriesDoNotCollide(t *testing.T) {
	r := newActiveQueryRegistry(&sync.Mutex{})

	ack1 := testPacket(t, "/catalog/query-results/v=1")
	ack2 := testPacket(t, "/catalog/query-results/v=2")

	r.insertIfAbsent(`{"a":"1"}`, ack1)
	r.insertIfAbsent(`{"a":"2"}`, ack2)

	require.Equal(t, 2, r.len())

	got, ok := r.lookup(`{"a":"1"}`)
	require.True(t, ok)
	require.Equal(t, ack1, got)

	got, ok = r.lookup(`{"a":"2"}`)
	require.True(t, ok)
	require.Equal(t, ack2, got)
}

package catalog

import (
	"encoding/json"
	"testing"
	"time"

	enc "github.com/named-data/ndnd/std/encoding"
	"github.com/named-data/ndnd/std/ndn"
	"github.com/named-data/ndnd/std/ndn/spec_2022"
	sec "github.com/named-data/ndnd/std/security"
	"github.com/named-data/ndnd/std/security/signer"
	"github.com/named-data/ndnd/std/types/optional"
	"github.com/stretchr/testify/require"
)

// fakeEngine is a minimal ndn.Engine stand-in that records attached
// handlers and registered routes without any network or RIB behavior,
// in place of std/engine/basic's full forwarder-protocol engine which
// would need a live RIB manager on the other end of RegisterRoute.
type fakeEngine struct {
	handlers  map[string]ndn.InterestHandler
	routes    map[string]bool
	routeErrs map[string]error
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		handlers: make(map[string]ndn.InterestHandler),
		routes:   make(map[string]bool),
	}
}

func (e *fakeEngine) String() string          { return "fake-engine" }
func (e *fakeEngine) EngineTrait() ndn.Engine { return e }
func (e *fakeEngine) Spec() ndn.Spec          { return spec_2022.Spec{} }
func (e *fakeEngine) Timer() ndn.Timer        { return nil }
func (e *fakeEngine) Face() ndn.Face          { return nil }
func (e *fakeEngine) Start() error            { return nil }
func (e *fakeEngine) Stop() error              { return nil }
func (e *fakeEngine) IsRunning() bool         { return true }

func (e *fakeEngine) AttachHandler(prefix enc.Name, handler ndn.InterestHandler) error {
	e.handlers[prefix.String()] = handler
	return nil
}

func (e *fakeEngine) DetachHandler(prefix enc.Name) error {
	delete(e.handlers, prefix.String())
	return nil
}

func (e *fakeEngine) Express(interest *ndn.EncodedInterest, callback ndn.ExpressCallbackFunc) error {
	return nil
}

func (e *fakeEngine) ExecMgmtCmd(module string, cmd string, args any) (any, error) {
	return nil, nil
}

func (e *fakeEngine) SetCmdSec(signer ndn.Signer, validator func(enc.Name, enc.Wire, ndn.Signature) bool) {
}

func (e *fakeEngine) RegisterRoute(prefix enc.Name) error {
	if err := e.routeErrs[prefix.String()]; err != nil {
		return err
	}
	e.routes[prefix.String()] = true
	return nil
}

func (e *fakeEngine) UnregisterRoute(prefix enc.Name) error {
	delete(e.routes, prefix.String())
	return nil
}

func (e *fakeEngine) Post(f func()) { f() }

func testConfig(t *testing.T) *Config {
	cfg := DefaultConfig()
	cfg.Prefix = "/catalog"
	cfg.SigningId = "/catalog/test-signer"
	cfg.KeyChainUri = "mem://"
	cfg.Database = DatabaseConfig{
		Driver:   "mysql",
		DbServer: "localhost:3306",
		DbName:   "cmip5",
		DbUser:   "catalog",
		DbPasswd: "secret",
	}
	require.NoError(t, cfg.Parse())
	return cfg
}

func mustInterest(t *testing.T, name enc.Name) ndn.Interest {
	encoded, err := spec_2022.Spec{}.MakeInterest(name, &ndn.InterestConfig{
		Lifetime: optional.Some(4 * time.Second),
	}, nil, nil)
	require.NoError(t, err)
	interest, _, err := spec_2022.Spec{}.ReadInterest(enc.NewWireView(encoded.Wire))
	require.NoError(t, err)
	return interest
}

func TestNewCatalogRequiresKnownSigningIdentity(t *testing.T) {
	cfg := testConfig(t)
	_, err := NewCatalog(cfg, newFakeEngine(), NewMemBackend())
	require.Error(t, err)
}

func newTestCatalog(t *testing.T) (*Catalog, *fakeEngine) {
	cfg := testConfig(t)

	// The configured signing identity name, used below to name the
	// test signer's key.
	identityName, err := cfg.SigningIdName()
	require.NoError(t, err)

	backend := NewMemBackend()
	engine := newFakeEngine()

	// NewCatalog opens its own mem:// keychain internally, so we cannot
	// pre-seed it from here; instead verify the failure path above and,
	// for handler-level tests, construct the Catalog by hand with a
	// signer we control.
	sg, err := signer.KeygenEd25519(sec.MakeKeyName(identityName))
	require.NoError(t, err)

	c := &Catalog{
		config:             cfg,
		engine:             engine,
		signer:             sg,
		backend:            backend,
		cache:              newSegmentCache(cfg.CacheCapacity),
		workers:            make(chan struct{}, cfg.MaxWorkers),
		queryPrefix:        cfg.PrefixN.Append(queryComponent),
		queryResultsPrefix: cfg.PrefixN.Append(queryResultsComponent),
	}
	c.registry = newActiveQueryRegistry(&c.mu)

	return c, engine
}

func TestCatalogStartRegistersBothPrefixes(t *testing.T) {
	c, engine := newTestCatalog(t)
	require.NoError(t, c.Start())

	require.Contains(t, engine.routes, c.queryPrefix.String())
	require.Contains(t, engine.routes, c.queryResultsPrefix.String())
	require.Contains(t, engine.handlers, c.queryPrefix.String())
	require.Contains(t, engine.handlers, c.queryResultsPrefix.String())
}

func TestCatalogStopUnregistersRoutesAndClosesBackend(t *testing.T) {
	c, engine := newTestCatalog(t)
	require.NoError(t, c.Start())
	require.NoError(t, c.Stop())

	require.NotContains(t, engine.routes, c.queryPrefix.String())
	require.NotContains(t, engine.routes, c.queryResultsPrefix.String())
}

func TestOnQueryInterestBadArityIsDropped(t *testing.T) {
	c, _ := newTestCatalog(t)

	replied := false
	interest := mustInterest(t, c.queryPrefix) // missing the json-blob component
	c.onQueryInterest(ndn.InterestHandlerArgs{
		Interest: interest,
		Reply:    func(enc.Wire) error { replied = true; return nil },
	})

	require.False(t, replied)
}

func TestRunQueryAcksAndProducesSegments(t *testing.T) {
	c, _ := newTestCatalog(t)
	c.backend = NewMemBackend("alpha.nc", "beta.nc")

	blob := []byte(`{"experiment":"rcp45"}`)
	name := c.queryPrefix.Append(enc.NewBytesComponent(enc.TypeGenericNameComponent, blob))

	var replies []enc.Wire
	c.runQuery(name, blob, func(w enc.Wire) error {
		replies = append(replies, w)
		return nil
	})

	require.Len(t, replies, 1, "exactly one ACK should be replayed to the Interest")
	require.Equal(t, 1, c.registry.len())
	require.Equal(t, 1, c.cache.len(), "a single small result set fits in one segment")
}

func TestRunQueryDuplicateReplaysSameAck(t *testing.T) {
	c, _ := newTestCatalog(t)
	c.backend = NewMemBackend("alpha.nc")

	blob := []byte(`{"experiment":"rcp45"}`)
	name := c.queryPrefix.Append(enc.NewBytesComponent(enc.TypeGenericNameComponent, blob))

	var first, second enc.Wire
	c.runQuery(name, blob, func(w enc.Wire) error { first = w; return nil })
	c.runQuery(name, blob, func(w enc.Wire) error { second = w; return nil })

	require.Equal(t, first.Join(), second.Join())
	require.Equal(t, 1, c.registry.len(), "a duplicate query must not create a second registry entry")
}

func TestRunQueryMalformedBlobIsDropped(t *testing.T) {
	c, _ := newTestCatalog(t)

	blob := []byte(`not json`)
	name := c.queryPrefix.Append(enc.NewBytesComponent(enc.TypeGenericNameComponent, blob))

	called := false
	c.runQuery(name, blob, func(enc.Wire) error { called = true; return nil })

	require.False(t, called)
	require.Equal(t, 0, c.registry.len())
}

func TestOnQueryResultsInterestServesCachedSegment(t *testing.T) {
	c, _ := newTestCatalog(t)

	pkt := testPacket(t, c.queryResultsPrefix.String()+"/v=1/seg=0")
	c.cache.insert(pkt)

	var reply enc.Wire
	c.onQueryResultsInterest(ndn.InterestHandlerArgs{
		Interest: mustInterest(t, pkt.Name),
		Reply:    func(w enc.Wire) error { reply = w; return nil },
	})

	require.Equal(t, pkt.Wire.Join(), reply.Join())
}

func TestOnQueryResultsInterestMissUnreplied(t *testing.T) {
	c, _ := newTestCatalog(t)

	name := c.queryResultsPrefix.Append(enc.NewVersionComponent(1), enc.NewSegmentComponent(0))
	called := false
	c.onQueryResultsInterest(ndn.InterestHandlerArgs{
		Interest: mustInterest(t, name),
		Reply:    func(enc.Wire) error { called = true; return nil },
	})

	require.False(t, called)
}

func TestParseQuerySameBlobYieldsSameSQL(t *testing.T) {
	// Guards the premise runQuery's dedup relies on: identical JSON bytes
	// must translate into the identical SQL text every time.
	blob := []byte(`{"variable":"tas","experiment":"rcp45"}`)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(blob, &raw)) // sanity: it is valid JSON

	q1, err := ParseQuery(blob)
	require.NoError(t, err)
	q2, err := ParseQuery(blob)
	require.NoError(t, err)
	require.Equal(t, q1.SQL, q2.SQL)
}

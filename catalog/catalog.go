package catalog

import (
	"context"
	"fmt"
	"sync"

	enc "github.com/named-data/ndnd/std/encoding"
	"github.com/named-data/ndnd/std/log"
	"github.com/named-data/ndnd/std/ndn"
	"github.com/named-data/ndnd/std/object/storage"
	"github.com/named-data/ndnd/std/types/optional"
)

// queryComponent and queryResultsComponent name the two child
// namespaces registered under the catalog's prefix, per spec.md §3.
var (
	queryComponent        = enc.NewStringComponent(enc.TypeGenericNameComponent, "query")
	queryResultsComponent = enc.NewStringComponent(enc.TypeGenericNameComponent, "query-results")
	okComponent           = enc.NewStringComponent(enc.TypeGenericNameComponent, "OK")
)

// Catalog is the query-serving core described by spec.md: it
// dispatches query and query-results Interests, translates queries to
// SQL, segments and signs results, and caches segments for retrieval.
// It plays the role repo.Repo plays for the storage service — a
// top-level component owning an ndn.Engine and the state built on it.
type Catalog struct {
	config  *Config
	engine  ndn.Engine
	signer  ndn.Signer
	kc      ndn.KeyChain
	backend Backend

	mu       sync.Mutex
	registry *activeQueryRegistry
	cache    *segmentCache
	clock    versionClock

	workers chan struct{}

	queryPrefix        enc.Name
	queryResultsPrefix enc.Name
}

// NewCatalog constructs a Catalog bound to engine and backend, signing
// outgoing Data with the identity named in config. Call Start to
// register interest filters and begin serving.
func NewCatalog(config *Config, engine ndn.Engine, backend Backend) (*Catalog, error) {
	store := storage.NewMemoryStore()
	kc, err := openKeyChain(config.KeyChainUri, store)
	if err != nil {
		return nil, fmt.Errorf("failed to open keychain: %w", err)
	}

	signingIdName, err := config.SigningIdName()
	if err != nil {
		return nil, fmt.Errorf("invalid signingId: %w", err)
	}

	signer, err := newSigner(kc, signingIdName)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		config:             config,
		engine:             engine,
		signer:             signer,
		kc:                 kc,
		backend:            backend,
		cache:              newSegmentCache(config.CacheCapacity),
		workers:            make(chan struct{}, config.MaxWorkers),
		queryPrefix:        config.PrefixN.Append(queryComponent),
		queryResultsPrefix: config.PrefixN.Append(queryResultsComponent),
	}
	c.registry = newActiveQueryRegistry(&c.mu)

	return c, nil
}

func (c *Catalog) String() string {
	return "catalog"
}

// Start registers the "query" and "query-results" interest filters and
// their routes, mirroring repo.Repo.Start's own prefix registration.
func (c *Catalog) Start() error {
	log.Info(c, "Starting NDN catalog query core", "prefix", c.config.PrefixN)

	if err := c.engine.AttachHandler(c.queryPrefix, c.onQueryInterest); err != nil {
		return fmt.Errorf("failed to attach query handler: %w", err)
	}
	if err := c.engine.AttachHandler(c.queryResultsPrefix, c.onQueryResultsInterest); err != nil {
		return fmt.Errorf("failed to attach query-results handler: %w", err)
	}

	if err := c.engine.RegisterRoute(c.queryPrefix); err != nil {
		return fmt.Errorf("failed to register query route: %w", err)
	}
	if err := c.engine.RegisterRoute(c.queryResultsPrefix); err != nil {
		return fmt.Errorf("failed to register query-results route: %w", err)
	}

	return nil
}

// Stop unregisters every interest filter and route this Catalog
// registered, per spec.md §6's exit behavior.
func (c *Catalog) Stop() error {
	log.Info(c, "Stopping NDN catalog query core")

	if err := c.engine.UnregisterRoute(c.queryPrefix); err != nil {
		log.Warn(c, "Failed to unregister query route", "err", err)
	}
	if err := c.engine.UnregisterRoute(c.queryResultsPrefix); err != nil {
		log.Warn(c, "Failed to unregister query-results route", "err", err)
	}
	if err := c.engine.DetachHandler(c.queryPrefix); err != nil {
		log.Warn(c, "Failed to detach query handler", "err", err)
	}
	if err := c.engine.DetachHandler(c.queryResultsPrefix); err != nil {
		log.Warn(c, "Failed to detach query-results handler", "err", err)
	}

	return c.backend.Close()
}

// onQueryInterest is the Dispatcher's handler for P/"query"/<json-blob>,
// per spec.md §4.1. Malformed arity is dropped silently (reserved for a
// future NACK); well-formed Interests are handed to a bounded worker.
func (c *Catalog) onQueryInterest(args ndn.InterestHandlerArgs) {
	name := args.Interest.Name()
	if len(name) != len(c.queryPrefix)+1 {
		return
	}

	blob := name[len(c.queryPrefix)].Val

	select {
	case c.workers <- struct{}{}:
	default:
		log.Warn(c, "Worker pool saturated, dropping query Interest", "name", name)
		return
	}

	go func() {
		defer func() { <-c.workers }()
		c.runQuery(args.Interest.Name(), blob, args.Reply)
	}()
}

// onQueryResultsInterest is the Dispatcher's handler for
// P/"query-results"/<Version>/<SegmentNo>, per spec.md §4.1. It answers
// strictly from the Segment Cache; an unknown name produces no Data.
func (c *Catalog) onQueryResultsInterest(args ndn.InterestHandlerArgs) {
	name := args.Interest.Name()

	c.mu.Lock()
	pkt, ok := c.cache.find(name)
	c.mu.Unlock()

	if !ok {
		return
	}

	if err := args.Reply(pkt.Wire); err != nil {
		log.Warn(c, "Failed to reply with cached segment", "name", name, "err", err)
	}
}

// runQuery implements the Query Execution State Machine of spec.md
// §4.8: two-phase dedup against the Active-Query Registry, ACK
// emission, SQL translation, and segment production.
func (c *Catalog) runQuery(interestName enc.Name, blob []byte, reply ndn.WireReplyFunc) {
	query := string(blob)

	// Locked check before the expensive path, per spec.md §4.3 and §9's
	// sanctioned "single locked check plus insert-if-absent" shape.
	if ack, ok := c.registry.lookup(query); ok {
		c.replay(reply, ack)
		return
	}

	q, err := ParseQuery(blob)
	if err != nil {
		log.Debug(c, "Dropping query Interest with unparseable JSON", "err", err)
		return
	}

	version := c.clock.next()
	versionComp := enc.NewVersionComponent(version)

	ackName := interestName.Append(versionComp, okComponent)
	ack, err := c.makeAck(ackName)
	if err != nil {
		log.Error(c, "Failed to sign ACK", "err", err)
		return
	}

	existing, inserted := c.registry.insertIfAbsent(query, ack)
	if !inserted {
		c.replay(reply, existing)
		return
	}

	c.replay(reply, ack)

	segmentPrefix := c.queryResultsPrefix.Append(versionComp)
	c.produceSegments(segmentPrefix, q)
}

func (c *Catalog) replay(reply ndn.WireReplyFunc, ack Packet) {
	if err := reply(ack.Wire); err != nil {
		log.Warn(c, "Failed to reply with ACK", "name", ack.Name, "err", err)
	}
}

func (c *Catalog) makeAck(ackName enc.Name) (Packet, error) {
	encoded, err := c.engine.Spec().MakeData(ackName, &ndn.DataConfig{
		ContentType: optional.Some(ndn.ContentTypeBlob),
	}, nil, c.signer)
	if err != nil {
		return Packet{}, err
	}
	return Packet{Name: ackName, Wire: encoded.Wire}, nil
}

func (c *Catalog) produceSegments(segmentPrefix enc.Name, q Query) {
	producer := &segmentProducer{spec: c.engine.Spec(), signer: c.signer}

	n, err := producer.produce(context.Background(), c.backend, segmentPrefix, q, func(pkt Packet) {
		c.mu.Lock()
		c.cache.insert(pkt)
		c.mu.Unlock()
	})
	if err != nil {
		log.Error(c, "Query run failed", "prefix", segmentPrefix, "segments", n, "err", err)
		return
	}

	log.Debug(c, "Query run complete", "prefix", segmentPrefix, "segments", n)
}

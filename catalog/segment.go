package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	enc "github.com/named-data/ndnd/std/encoding"
	"github.com/named-data/ndnd/std/ndn"
	"github.com/named-data/ndnd/std/types/optional"
)

// errNilResultSet is returned when the backend reports success but
// hands back no row stream at all, the Go analogue of the source's
// NULL MYSQL_RES check.
var errNilResultSet = errors.New("catalog backend returned a nil result set")

// PayloadLimit caps the cumulative strlen(name)+1 of names buffered into
// a single result segment. It is a conservative fraction of the ~8KiB
// maximum NDN packet payload, leaving room for signature and name
// overhead, per spec.md §4.4.
const PayloadLimit = 7000

// SegmentFreshness is the Freshness field on every result segment.
const SegmentFreshness = 10 * time.Second

// Packet is a signed, encoded Data wire together with the name it was
// built under. The core keeps Data in this shape end to end — in the
// Active-Query Registry, the Segment Cache, and in the reply path —
// rather than re-parsing MakeData's output back into an ndn.Data: the
// encoded wire is all ndn.Engine's WireReplyFunc (the engine's Reply
// callback) and the forwarder's content store need.
type Packet struct {
	Name enc.Name
	Wire enc.Wire
}

type resultsPayload struct {
	Results []string `json:"results"`
}

type nextPayload struct {
	Next []string `json:"next"`
}

// encodeSegmentContent serializes names as {"results":[...]} or
// {"next":[...]} depending on autocomplete, then appends a trailing NUL
// byte, matching query-adapter.hpp::makeReplyData's
// `payloadLength = jsonMessage.size() + 1`.
func encodeSegmentContent(names []string, autocomplete bool) ([]byte, error) {
	if names == nil {
		names = []string{}
	}

	var body []byte
	var err error
	if autocomplete {
		body, err = json.Marshal(nextPayload{Next: names})
	} else {
		body, err = json.Marshal(resultsPayload{Results: names})
	}
	if err != nil {
		return nil, err
	}

	return append(body, 0x00), nil
}

// segmentProducer runs a single query-to-segments pipeline per spec.md
// §4.4: execute the SQL, buffer names under PayloadLimit, flush each
// full buffer as a non-final segment, and flush the remainder as the
// final segment carrying FinalBlockID.
type segmentProducer struct {
	spec   ndn.Spec
	signer ndn.Signer
}

// produce runs q.SQL against backend and calls emit for each signed
// segment it builds under segmentPrefix, in increasing SegmentNo order.
// It returns the number of segments emitted, or an error if the
// backend could not execute the query at all (spec.md §7: a NULL
// result handle aborts the run; here it surfaces as an error so the
// caller can log it, per §7's "log and abort the run").
func (p *segmentProducer) produce(
	ctx context.Context,
	backend Backend,
	segmentPrefix enc.Name,
	q Query,
	emit func(Packet),
) (int, error) {
	rows, err := backend.Query(ctx, q.SQL)
	if err != nil {
		return 0, err
	}
	if rows == nil {
		return 0, errNilResultSet
	}
	defer rows.Close()

	var buf []string
	usedBytes := 0
	segmentNo := uint64(0)

	flush := func(final bool) error {
		content, err := encodeSegmentContent(buf, q.Autocomplete)
		if err != nil {
			return err
		}

		pkt, err := p.makeSegment(segmentPrefix, segmentNo, content, final)
		if err != nil {
			return err
		}

		emit(pkt)
		return nil
	}

	for rows.Next() {
		name := rows.Name()
		size := len(name) + 1

		if usedBytes+size > PayloadLimit {
			if err := flush(false); err != nil {
				return int(segmentNo), err
			}
			buf = nil
			usedBytes = 0
			segmentNo++
		}

		buf = append(buf, name)
		usedBytes += size
	}
	if err := rows.Err(); err != nil {
		return int(segmentNo), err
	}

	if err := flush(true); err != nil {
		return int(segmentNo), err
	}

	return int(segmentNo) + 1, nil
}

func (p *segmentProducer) makeSegment(segmentPrefix enc.Name, segmentNo uint64, content []byte, final bool) (Packet, error) {
	segComp := enc.NewSegmentComponent(segmentNo)
	name := segmentPrefix.Append(segComp)

	config := &ndn.DataConfig{
		ContentType: optional.Some(ndn.ContentTypeBlob),
		Freshness:   optional.Some(SegmentFreshness),
	}
	if final {
		config.FinalBlockID = optional.Some(segComp)
	}

	encoded, err := p.spec.MakeData(name, config, enc.Wire{content}, p.signer)
	if err != nil {
		return Packet{}, err
	}

	return Packet{Name: name, Wire: encoded.Wire}, nil
}

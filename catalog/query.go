package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// AutocompleteKey is the reserved JSON key that triggers a prefix-match
// autocomplete query instead of an equality predicate.
const AutocompleteKey = "?"

// ErrEmptyQuery is returned when the json-blob name component carried by
// the query Interest has zero length.
var ErrEmptyQuery = errors.New("empty query blob")

// queryField is one member of the parsed query object, kept in the
// order it appeared in the JSON text so the generated SQL (and thus the
// ACK bytes) is deterministic for a given query string.
type queryField struct {
	Key   string
	Value string
}

// parseQueryFields decodes the JSON object carried by a query Interest's
// final name component into an ordered list of field/value pairs.
//
// A plain map[string]string would also work functionally, but Go
// randomizes map iteration order, which would make the generated SQL
// (and the resulting ACK content) nondeterministic across runs of an
// otherwise identical query. Token-level decoding keeps the source
// order instead.
func parseQueryFields(blob []byte) ([]queryField, error) {
	if len(blob) == 0 {
		return nil, ErrEmptyQuery
	}

	dec := json.NewDecoder(bytes.NewReader(blob))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("top-level query value must be a JSON object")
	}

	var fields []queryField
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("query object key must be a string")
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		var value string
		switch v := valTok.(type) {
		case string:
			value = v
		case json.Number:
			value = v.String()
		case bool:
			value = strconv.FormatBool(v)
		case nil:
			value = ""
		case json.Delim:
			return nil, fmt.Errorf("nested query values are not supported")
		default:
			return nil, fmt.Errorf("unsupported query value type %T", v)
		}

		fields = append(fields, queryField{Key: key, Value: value})
	}

	// consume the closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return fields, nil
}

// Query is the result of translating a query Interest's JSON payload
// into a SQL statement against the catalog table.
type Query struct {
	SQL          string
	Autocomplete bool
}

// translateQuery builds the parameterless SQL SELECT the source
// generates from a JSON query object. The translator does no escaping:
// callers must trust configured schemas. This reproduces the known
// injection surface of the original implementation.
func translateQuery(fields []queryField) Query {
	var sb strings.Builder
	sb.WriteString("SELECT name FROM cmip5")

	autocomplete := false
	for i, f := range fields {
		if i == 0 {
			sb.WriteString(" WHERE")
		} else {
			sb.WriteString(" AND")
		}

		if f.Key == AutocompleteKey {
			sb.WriteString(" name REGEXP '^")
			sb.WriteString(f.Value)
			sb.WriteString("'")
			autocomplete = true
		} else {
			sb.WriteString(" ")
			sb.WriteString(f.Key)
			sb.WriteString("='")
			sb.WriteString(f.Value)
			sb.WriteString("'")
		}
	}

	if len(fields) == 0 {
		sb.WriteString(" limit 0")
	}
	sb.WriteString(";")

	return Query{SQL: sb.String(), Autocomplete: autocomplete}
}

// ParseQuery parses the raw bytes of a query Interest's json-blob name
// component and produces the SQL text and autocomplete flag. Malformed
// input (empty blob, non-parseable JSON, non-object top level) is
// reported as an error; callers should drop the Interest silently per
// spec, reserved for a future NACK.
func ParseQuery(blob []byte) (Query, error) {
	fields, err := parseQueryFields(blob)
	if err != nil {
		return Query{}, err
	}
	return translateQuery(fields), nil
}

/*
registry.go - Entity-type dispatch registry

PURPOSE:
  One immutable row per entity type: the field name the ledger contract
  stores the payload under, the Create/Edit/Delete choice labels an
  external command builder needs, and the converter pair. Generic callers
  dispatch by tag; callers that know the concrete type can import the
  entities package and call the named converters directly.

HOW IT WORKS:
  1. The entities package defines converter pairs per entity type
  2. entities/register.go registers every row on init()
  3. Dispatch functions here look rows up, never mutate them

CONCURRENCY:
  The table is written only during package initialization and read-only
  for the life of the process, so lookups need no locking. The mutex
  below only guards against misuse of Register after startup.

SEE ALSO:
  - entities/register.go: The rows
  - ocf/types.go: The closed tag enumeration a completeness test walks
*/
package convert

import (
	"fmt"
	"sync"

	"github.com/Fairmint/ocp-canton-sdk-sub006/ocf"
)

// Entry is one immutable registry row.
type Entry struct {
	Type ocf.ObjectType

	// LedgerField is the name of the field holding this entity's payload
	// inside the contract's create argument.
	LedgerField string

	// Choice labels for the ledger's create/edit/delete tagged union.
	// Exposed so external command builders can wrap payloads into
	// exercise envelopes; this layer never builds the envelope itself.
	CreateChoice string
	EditChoice   string
	DeleteChoice string

	ToLedger ToLedgerFunc
	ToOpen   ToOpenFunc
}

var (
	registry   = make(map[ocf.ObjectType]Entry)
	registryMu sync.Mutex
)

// Register adds a registry row. Call from package init() only.
// Panics on duplicates or incomplete rows: the table is static program
// data and a bad row is a bug, not a runtime condition.
func Register(e Entry) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if e.Type == "" || e.LedgerField == "" || e.ToLedger == nil || e.ToOpen == nil {
		panic(fmt.Sprintf("convert: incomplete registry entry for %q", e.Type))
	}
	if _, dup := registry[e.Type]; dup {
		panic(fmt.Sprintf("convert: duplicate registry entry for %q", e.Type))
	}
	registry[e.Type] = e
}

// Lookup finds the row for a tag.
func Lookup(t ocf.ObjectType) (Entry, bool) {
	e, ok := registry[t]
	return e, ok
}

// Entries returns all rows. Used by completeness tests and /api/types.
func Entries() []Entry {
	out := make([]Entry, 0, len(registry))
	for _, e := range registry {
		out = append(out, e)
	}
	return out
}

// =============================================================================
// GENERIC DISPATCH
// =============================================================================

// ConvertToLedger converts an open-format object of the given type to its
// ledger payload. An unregistered tag is an UnknownEntityTypeError - a
// caller bug, not bad data.
func ConvertToLedger(t ocf.ObjectType, open Document) (Document, error) {
	e, ok := Lookup(t)
	if !ok {
		return nil, &UnknownEntityTypeError{Type: string(t)}
	}
	return e.ToLedger(open)
}

// ConvertToOpen converts a ledger payload of the given type back to its
// open-format object.
func ConvertToOpen(t ocf.ObjectType, payload Document) (Document, error) {
	e, ok := Lookup(t)
	if !ok {
		return nil, &UnknownEntityTypeError{Type: string(t)}
	}
	return e.ToOpen(payload)
}

// ExtractEntityPayload pulls the entity's payload out of a raw ledger
// record. The record may be the bare create argument, or the full query
// envelope {created: {createdEvent: {createArgument: {...}}}}; either
// way the registered field must be present and be an object.
func ExtractEntityPayload(t ocf.ObjectType, raw Document) (Document, error) {
	e, ok := Lookup(t)
	if !ok {
		return nil, &UnknownEntityTypeError{Type: string(t)}
	}
	if raw == nil {
		return nil, &SchemaMismatchError{Entity: t, ExpectedField: e.LedgerField}
	}

	arg := raw
	for _, envelope := range []string{"created", "createdEvent", "createArgument"} {
		inner, present := arg[envelope]
		if !present {
			continue
		}
		obj, isObj := asDocument(inner)
		if !isObj {
			return nil, &SchemaMismatchError{Entity: t, ExpectedField: envelope}
		}
		arg = obj
	}

	payload, present := arg[e.LedgerField]
	if !present {
		return nil, &SchemaMismatchError{Entity: t, ExpectedField: e.LedgerField}
	}
	obj, isObj := asDocument(payload)
	if !isObj {
		return nil, &SchemaMismatchError{Entity: t, ExpectedField: e.LedgerField}
	}
	return obj, nil
}

/*
enumtable.go - Bidirectional enum label tables

PURPOSE:
  Every enumerated concept shared by the two schemas (valuation types,
  compensation types, allocation types, day-of-month codes, ...) is a
  total bidirectional mapping between the open-format spelling and the
  ledger constructor label. Tables are built once at init and are
  read-only afterwards; a duplicate or colliding pair is a construction
  bug and panics immediately rather than surfacing as a silent mismatch
  at request time.

LOOKUP SEMANTICS:
  Lookups return (value, ok). The mapper turns a failed lookup into a
  ParseError naming the field and the offending raw value - never a
  default substitution, since silently guessing a business-meaningful
  enum is worse than failing loudly.

SEE ALSO:
  - enums/tables.go: The concrete tables
  - mapper.go: ReqEnum/OptEnum
*/
package convert

import "fmt"

// Pair is one (open spelling, ledger label) row of a Table.
type Pair struct {
	Open   string
	Ledger string
}

// Table is a total bidirectional mapping for one enumerated concept.
// Immutable after construction.
type Table struct {
	name     string
	toLedger map[string]string
	toOpen   map[string]string
}

// NewTable builds a table from pairs. Panics on duplicates in either
// direction: tables are static program data, so a collision is a bug.
func NewTable(name string, pairs ...Pair) *Table {
	t := &Table{
		name:     name,
		toLedger: make(map[string]string, len(pairs)),
		toOpen:   make(map[string]string, len(pairs)),
	}
	for _, p := range pairs {
		if _, dup := t.toLedger[p.Open]; dup {
			panic(fmt.Sprintf("enum table %s: duplicate open value %q", name, p.Open))
		}
		if _, dup := t.toOpen[p.Ledger]; dup {
			panic(fmt.Sprintf("enum table %s: duplicate ledger label %q", name, p.Ledger))
		}
		t.toLedger[p.Open] = p.Ledger
		t.toOpen[p.Ledger] = p.Open
	}
	return t
}

// Name identifies the table in error messages.
func (t *Table) Name() string { return t.name }

// ToLedger maps an open-format spelling to its ledger label.
func (t *Table) ToLedger(open string) (string, bool) {
	v, ok := t.toLedger[open]
	return v, ok
}

// ToOpen maps a ledger label back to its open-format spelling.
func (t *Table) ToOpen(label string) (string, bool) {
	v, ok := t.toOpen[label]
	return v, ok
}

// Len returns the number of rows. Used by totality tests.
func (t *Table) Len() int { return len(t.toLedger) }

// OpenValues returns all open-format spellings. Used by totality tests.
func (t *Table) OpenValues() []string {
	out := make([]string, 0, len(t.toLedger))
	for k := range t.toLedger {
		out = append(out, k)
	}
	return out
}

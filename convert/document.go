/*
Package convert is the core of the OCF <-> Canton ledger bridge.

PURPOSE:
  This package contains the entity-agnostic machinery: numeric/temporal/
  monetary normalizers, the optional/null bridge, the field mapper the
  per-entity converters are built from, the dispatch registry, the
  round-trip equivalence checker, and the error taxonomy.

KEY CONCEPTS IN THIS FILE (document.go):
  - Document: a decoded JSON object, the wire shape on BOTH sides.
    Open-format objects use absent keys for optional fields; ledger
    payloads use explicit nulls. Converters translate between the two.

WHY map[string]any AND NOT STRUCTS:
  The two schemas evolve independently and disagree on null semantics
  ("absent key" vs "explicit null") and numeric typing ("500" vs 500).
  Those distinctions are exactly what this layer normalizes, and they are
  only observable at the JSON level. Typed structs would erase them before
  the converters ever ran. The closed tagged unions (conversion mechanisms,
  vesting triggers, vesting periods) are still dispatched through closed
  tables so unknown variants fail at the table, never deep in field code.

SEE ALSO:
  - mapper.go: Field-level conversion built on Document
  - registry.go: Entity-type dispatch
*/
package convert

// Document is a decoded JSON object: an open-format entity on one side of
// a conversion, a ledger contract payload on the other.
type Document = map[string]any

// CloneDocument deep-copies a document. Converters never mutate their
// input; the clone is for callers that need to.
func CloneDocument(d Document) Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Document:
		return CloneDocument(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// asDocument returns v as a Document if it is a JSON object.
func asDocument(v any) (Document, bool) {
	d, ok := v.(map[string]any)
	return d, ok
}

// isMissing reports whether an open-format value counts as "not provided":
// absent (nil), explicit null, or the empty string. Empty arrays are
// handled separately because array emptiness is field-specific.
func isMissing(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

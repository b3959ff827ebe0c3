/*
equivalence.go - Round-trip equivalence checker

PURPOSE:
  Deep comparison of two open-format objects under the normalization rules
  of this layer. Used to assert toOpen(toLedger(x)) ~ x for every entity
  type, and by the sync planner to detect no-op differences that would
  otherwise make the external replication process loop writing spurious
  edits.

EQUIVALENCE RULES:
  1. A key present with null in one object and absent in the other are
     equal. Empty arrays likewise count as "not provided".
  2. Values that both parse as decimal numbers are compared after
     canonicalization: "22500", 22500, and "22500.0" are all equal.
  3. Everything else requires exact equality, including array order.

SEE ALSO:
  - normalize.go: The numeric canonicalization rule 2 relies on
  - sync/planner.go: No-op edit suppression
*/
package convert

// Equivalent reports whether two open-format values are indistinguishable
// under the normalization rules above.
func Equivalent(a, b any) bool {
	if valueAbsent(a) && valueAbsent(b) {
		return true
	}
	if valueAbsent(a) || valueAbsent(b) {
		return false
	}

	// Numeric rule: if both sides denote decimal numbers (as strings or
	// JSON numbers), compare the canonical forms.
	if as, err := NumericValueToString(a); err == nil {
		if bs, err := NumericValueToString(b); err == nil {
			return as == bs
		}
		return false
	}

	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok {
			return false
		}
		return equivalentDocs(av, bv)
	case []any:
		bv, ok := b.([]any)
		if !ok {
			return false
		}
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equivalent(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func equivalentDocs(a, b Document) bool {
	for k, av := range a {
		if !Equivalent(av, b[k]) {
			return false
		}
	}
	for k, bv := range b {
		if _, seen := a[k]; seen {
			continue
		}
		// Key only in b: equivalent only if it counts as absent.
		if !valueAbsent(bv) {
			return false
		}
	}
	return true
}

// valueAbsent reports whether a value counts as "not provided" for
// equivalence: nil or an empty array. Empty strings are real values here;
// the open format never uses them for absence, so a "" vs absent
// difference is a genuine difference.
func valueAbsent(v any) bool {
	if v == nil {
		return true
	}
	arr, ok := v.([]any)
	return ok && len(arr) == 0
}

/*
optional.go - The optional/null bridge

PURPOSE:
  The two schemas disagree about what "no value" looks like:
  - Open format: the key is ABSENT. Never an explicit null, never "".
  - Ledger format: the field is PRESENT with an explicit null.

  These two helpers apply that asymmetry uniformly. Inconsistent
  application per field is the main source of round-trip failures, so
  per-entity converters go through the mapper (mapper.go), which calls
  these for every optional field.

ARRAY EMPTINESS:
  An empty array on the open side means "not provided" (e.g. comments),
  so it becomes null on the ledger side, and a null or empty ledger array
  produces NO key on the open side. An empty comments array is never
  emitted as [].
*/
package convert

// ToLedgerOptional maps an open-format optional value to the ledger
// convention: explicit null for absent, empty string, or empty array;
// the value unchanged otherwise.
func ToLedgerOptional(v any) any {
	if isMissing(v) {
		return nil
	}
	if arr, ok := v.([]any); ok && len(arr) == 0 {
		return nil
	}
	return v
}

// SetOpenOptional assigns doc[key] = v following the open-format
// convention: nulls and empty arrays are omitted entirely.
func SetOpenOptional(doc Document, key string, v any) {
	if v == nil {
		return
	}
	if arr, ok := v.([]any); ok && len(arr) == 0 {
		return
	}
	doc[key] = v
}

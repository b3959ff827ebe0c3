/*
mapper.go - Field-level conversion primitives

PURPOSE:
  Per-entity converters are long lists of field mappings. The two mappers
  here keep those lists declarative and make it impossible to forget the
  optional/null bridge on a field:

    m := convert.NewLedgerMapper(ocf.TypeValuation, src)
    m.ReqString("id", "id")
    m.ReqMonetary("price_per_share", "pricePerShare")
    m.ReqDate("effective_date", "effectiveDate")
    m.OptStringList("comments", "comments")
    return m.Result()

ERROR ACCUMULATION:
  The first failure sticks; later calls are no-ops. Result() returns either
  the full output document or the typed error - never a partial payload.

DIRECTION CONVENTIONS:
  LedgerMapper methods take (openKey, ledgerKey); OpenMapper methods take
  (ledgerKey, openKey). Open-side keys are snake_case, ledger-side keys are
  camelCase, so argument order always reads source-to-destination.

SEE ALSO:
  - optional.go: The null/absent bridge every Opt* method applies
  - normalize.go: Numeric/date/monetary canonicalization
  - errors.go: ValidationError / ParseError raised here
*/
package convert

import (
	"fmt"

	"github.com/Fairmint/ocp-canton-sdk-sub006/ocf"
)

// ToLedgerFunc converts one open-format object to its ledger payload.
type ToLedgerFunc func(Document) (Document, error)

// ToOpenFunc converts one ledger payload back to its open-format object.
type ToOpenFunc func(Document) (Document, error)

// =============================================================================
// OPEN -> LEDGER
// =============================================================================

// LedgerMapper builds a ledger payload from an open-format object.
type LedgerMapper struct {
	entity ocf.ObjectType
	src    Document
	out    Document
	prefix string
	err    error
}

// NewLedgerMapper starts a mapping for one entity.
func NewLedgerMapper(entity ocf.ObjectType, src Document) *LedgerMapper {
	return &LedgerMapper{entity: entity, src: src, out: Document{}}
}

// NewLedgerMapperAt is NewLedgerMapper with a dotted path prefix, for
// mapping nested structures (triggers, mechanisms) with full error paths.
func NewLedgerMapperAt(entity ocf.ObjectType, src Document, prefix string) *LedgerMapper {
	return &LedgerMapper{entity: entity, src: src, out: Document{}, prefix: prefix}
}

func (m *LedgerMapper) path(key string) string {
	if m.prefix == "" {
		return key
	}
	return m.prefix + "." + key
}

// Fail records the first error. Exposed for entity-specific checks.
func (m *LedgerMapper) Fail(err error) {
	if m.err == nil {
		m.err = err
	}
}

// Missing records a ValidationError for a required open-format field.
func (m *LedgerMapper) Missing(key, expected string) {
	m.Fail(&ValidationError{Entity: m.entity, Path: m.path(key), Expected: expected})
}

func (m *LedgerMapper) failNumeric(key string, err error) {
	m.Fail(fmt.Errorf("%s: field %q: %w", m.entity, m.path(key), err))
}

// Set writes a raw ledger value, bypassing the bridge. Use for constants
// and pre-converted sub-structures.
func (m *LedgerMapper) Set(ledgerKey string, v any) { m.out[ledgerKey] = v }

// ReqString maps a required open string field.
func (m *LedgerMapper) ReqString(openKey, ledgerKey string) {
	if m.err != nil {
		return
	}
	s, ok := m.src[openKey].(string)
	if !ok || s == "" {
		m.Missing(openKey, "string")
		return
	}
	m.out[ledgerKey] = s
}

// OptString maps an optional open string field to explicit-null.
func (m *LedgerMapper) OptString(openKey, ledgerKey string) {
	if m.err != nil {
		return
	}
	m.out[ledgerKey] = ToLedgerOptional(m.src[openKey])
}

// ReqNumeric maps a required quantity, accepting number or string input
// and emitting the canonical decimal string.
func (m *LedgerMapper) ReqNumeric(openKey, ledgerKey string) {
	if m.err != nil {
		return
	}
	v, ok := m.src[openKey]
	if !ok || isMissing(v) {
		m.Missing(openKey, "numeric string")
		return
	}
	s, err := NumericValueToString(v)
	if err != nil {
		m.failNumeric(openKey, err)
		return
	}
	m.out[ledgerKey] = s
}

// OptNumeric maps an optional quantity; absent becomes null.
func (m *LedgerMapper) OptNumeric(openKey, ledgerKey string) {
	if m.err != nil {
		return
	}
	v, ok := m.src[openKey]
	if !ok || isMissing(v) {
		m.out[ledgerKey] = nil
		return
	}
	s, err := NumericValueToString(v)
	if err != nil {
		m.failNumeric(openKey, err)
		return
	}
	m.out[ledgerKey] = s
}

// ReqDate maps a required calendar date to a ledger timestamp.
func (m *LedgerMapper) ReqDate(openKey, ledgerKey string) {
	if m.err != nil {
		return
	}
	s, ok := m.src[openKey].(string)
	if !ok || s == "" {
		m.Missing(openKey, "YYYY-MM-DD date")
		return
	}
	m.out[ledgerKey] = DateToLedgerTime(s)
}

// OptDate maps an optional calendar date; absent becomes null.
func (m *LedgerMapper) OptDate(openKey, ledgerKey string) {
	if m.err != nil {
		return
	}
	s, ok := m.src[openKey].(string)
	if !ok || s == "" {
		m.out[ledgerKey] = nil
		return
	}
	m.out[ledgerKey] = DateToLedgerTime(s)
}

// ReqMonetary maps a required {amount, currency} object.
func (m *LedgerMapper) ReqMonetary(openKey, ledgerKey string) {
	if m.err != nil {
		return
	}
	obj, ok := asDocument(m.src[openKey])
	if !ok {
		m.Missing(openKey, "{amount, currency} object")
		return
	}
	converted, err := MonetaryToLedger(obj)
	if err != nil {
		m.failNumeric(openKey, err)
		return
	}
	m.out[ledgerKey] = converted
}

// OptMonetary maps an optional {amount, currency} object; absent is null.
func (m *LedgerMapper) OptMonetary(openKey, ledgerKey string) {
	if m.err != nil {
		return
	}
	obj, ok := asDocument(m.src[openKey])
	if !ok {
		m.out[ledgerKey] = nil
		return
	}
	converted, err := MonetaryToLedger(obj)
	if err != nil {
		m.failNumeric(openKey, err)
		return
	}
	m.out[ledgerKey] = converted
}

// ReqRatio maps a required {numerator, denominator} ratio.
func (m *LedgerMapper) ReqRatio(openKey, ledgerKey string) {
	if m.err != nil {
		return
	}
	obj, ok := asDocument(m.src[openKey])
	if !ok {
		m.Missing(openKey, "{numerator, denominator} ratio")
		return
	}
	converted, err := RatioToLedger(obj)
	if err != nil {
		m.failNumeric(openKey, err)
		return
	}
	m.out[ledgerKey] = converted
}

// OptRatio maps an optional ratio; absent becomes null.
func (m *LedgerMapper) OptRatio(openKey, ledgerKey string) {
	if m.err != nil {
		return
	}
	obj, ok := asDocument(m.src[openKey])
	if !ok {
		m.out[ledgerKey] = nil
		return
	}
	converted, err := RatioToLedger(obj)
	if err != nil {
		m.failNumeric(openKey, err)
		return
	}
	m.out[ledgerKey] = converted
}

// OptBool maps an optional boolean; absent becomes null.
func (m *LedgerMapper) OptBool(openKey, ledgerKey string) {
	if m.err != nil {
		return
	}
	b, ok := m.src[openKey].(bool)
	if !ok {
		m.out[ledgerKey] = nil
		return
	}
	m.out[ledgerKey] = b
}

// ReqStringList maps a required, non-empty array of strings.
func (m *LedgerMapper) ReqStringList(openKey, ledgerKey string) {
	if m.err != nil {
		return
	}
	arr, ok := m.src[openKey].([]any)
	if !ok || len(arr) == 0 {
		m.Missing(openKey, "non-empty string array")
		return
	}
	m.out[ledgerKey] = cloneValue(arr)
}

// OptStringList maps an optional array; absent OR EMPTY becomes null
// (an empty comments array means "not provided").
func (m *LedgerMapper) OptStringList(openKey, ledgerKey string) {
	if m.err != nil {
		return
	}
	arr, ok := m.src[openKey].([]any)
	if !ok || len(arr) == 0 {
		m.out[ledgerKey] = nil
		return
	}
	m.out[ledgerKey] = cloneValue(arr)
}

// ReqSingleFromList adapts an open-format one-element array to a singular
// ledger field. The shapes are identical modulo this wrapping; entities
// whose ledger side stores a single resulting security use this adapter.
func (m *LedgerMapper) ReqSingleFromList(openKey, ledgerKey string) {
	if m.err != nil {
		return
	}
	arr, ok := m.src[openKey].([]any)
	if !ok || len(arr) == 0 {
		m.Missing(openKey, "one-element string array")
		return
	}
	if len(arr) != 1 {
		m.Fail(&ValidationError{Entity: m.entity, Path: m.path(openKey), Expected: "exactly one element"})
		return
	}
	m.out[ledgerKey] = arr[0]
}

// ReqEnum maps a required enumerated string through a label table.
// An unmapped value is a parse error naming the field, never a default.
func (m *LedgerMapper) ReqEnum(openKey, ledgerKey string, t *Table) {
	if m.err != nil {
		return
	}
	s, ok := m.src[openKey].(string)
	if !ok || s == "" {
		m.Missing(openKey, t.Name()+" enum")
		return
	}
	label, ok := t.ToLedger(s)
	if !ok {
		m.Fail(&ParseError{Entity: m.entity, Path: m.path(openKey), Value: s, Reason: "not a " + t.Name() + " value"})
		return
	}
	m.out[ledgerKey] = label
}

// OptEnum maps an optional enumerated string; absent becomes null.
func (m *LedgerMapper) OptEnum(openKey, ledgerKey string, t *Table) {
	if m.err != nil {
		return
	}
	s, ok := m.src[openKey].(string)
	if !ok || s == "" {
		m.out[ledgerKey] = nil
		return
	}
	label, ok := t.ToLedger(s)
	if !ok {
		m.Fail(&ParseError{Entity: m.entity, Path: m.path(openKey), Value: s, Reason: "not a " + t.Name() + " value"})
		return
	}
	m.out[ledgerKey] = label
}

// Src exposes the source document for entity-specific logic.
func (m *LedgerMapper) Src() Document { return m.src }

// Err returns the first recorded error.
func (m *LedgerMapper) Err() error { return m.err }

// Result returns the full ledger payload, or the first error.
// Never both, never a partial payload.
func (m *LedgerMapper) Result() (Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.out, nil
}

// =============================================================================
// LEDGER -> OPEN
// =============================================================================

// OpenMapper rebuilds an open-format object from a ledger payload.
type OpenMapper struct {
	entity ocf.ObjectType
	src    Document
	out    Document
	prefix string
	err    error
}

// NewOpenMapper starts a reverse mapping for one entity.
func NewOpenMapper(entity ocf.ObjectType, src Document) *OpenMapper {
	return &OpenMapper{entity: entity, src: src, out: Document{}}
}

// NewOpenMapperAt is NewOpenMapper with a dotted path prefix.
func NewOpenMapperAt(entity ocf.ObjectType, src Document, prefix string) *OpenMapper {
	return &OpenMapper{entity: entity, src: src, out: Document{}, prefix: prefix}
}

func (m *OpenMapper) path(key string) string {
	if m.prefix == "" {
		return key
	}
	return m.prefix + "." + key
}

// Fail records the first error.
func (m *OpenMapper) Fail(err error) {
	if m.err == nil {
		m.err = err
	}
}

func (m *OpenMapper) parseFail(key string, value any, reason string) {
	m.Fail(&ParseError{Entity: m.entity, Path: m.path(key), Value: value, Reason: reason})
}

// Set writes an open-format value through the optional bridge.
func (m *OpenMapper) Set(openKey string, v any) { SetOpenOptional(m.out, openKey, v) }

// ReqString maps a required ledger string field.
func (m *OpenMapper) ReqString(ledgerKey, openKey string) {
	if m.err != nil {
		return
	}
	s, ok := m.src[ledgerKey].(string)
	if !ok {
		m.parseFail(ledgerKey, m.src[ledgerKey], "expected string")
		return
	}
	m.out[openKey] = s
}

// OptString maps a nullable ledger string field; null omits the key.
func (m *OpenMapper) OptString(ledgerKey, openKey string) {
	if m.err != nil {
		return
	}
	SetOpenOptional(m.out, openKey, m.src[ledgerKey])
}

// ReqNumeric maps a required ledger quantity to the canonical string.
func (m *OpenMapper) ReqNumeric(ledgerKey, openKey string) {
	if m.err != nil {
		return
	}
	v, ok := m.src[ledgerKey]
	if !ok || v == nil {
		m.parseFail(ledgerKey, v, "expected numeric string")
		return
	}
	s, err := NumericValueToString(v)
	if err != nil {
		m.parseFail(ledgerKey, v, "not a numeric value")
		return
	}
	m.out[openKey] = s
}

// OptNumeric maps a nullable ledger quantity; null omits the key.
func (m *OpenMapper) OptNumeric(ledgerKey, openKey string) {
	if m.err != nil {
		return
	}
	v := m.src[ledgerKey]
	if v == nil {
		return
	}
	s, err := NumericValueToString(v)
	if err != nil {
		m.parseFail(ledgerKey, v, "not a numeric value")
		return
	}
	m.out[openKey] = s
}

// ReqDate maps a required ledger timestamp back to a calendar date.
func (m *OpenMapper) ReqDate(ledgerKey, openKey string) {
	if m.err != nil {
		return
	}
	s, ok := m.src[ledgerKey].(string)
	if !ok || s == "" {
		m.parseFail(ledgerKey, m.src[ledgerKey], "expected timestamp")
		return
	}
	m.out[openKey] = LedgerTimeToDate(s)
}

// OptDate maps a nullable ledger timestamp; null omits the key.
func (m *OpenMapper) OptDate(ledgerKey, openKey string) {
	if m.err != nil {
		return
	}
	s, ok := m.src[ledgerKey].(string)
	if !ok || s == "" {
		return
	}
	m.out[openKey] = LedgerTimeToDate(s)
}

// ReqMonetary maps a required ledger monetary record.
func (m *OpenMapper) ReqMonetary(ledgerKey, openKey string) {
	if m.err != nil {
		return
	}
	obj, ok := asDocument(m.src[ledgerKey])
	if !ok {
		m.parseFail(ledgerKey, m.src[ledgerKey], "expected monetary object")
		return
	}
	converted, err := LedgerMonetaryToOpen(obj)
	if err != nil {
		m.parseFail(ledgerKey, m.src[ledgerKey], "invalid monetary object")
		return
	}
	m.out[openKey] = converted
}

// OptMonetary maps a nullable ledger monetary record; null omits the key.
func (m *OpenMapper) OptMonetary(ledgerKey, openKey string) {
	if m.err != nil {
		return
	}
	obj, ok := asDocument(m.src[ledgerKey])
	if !ok {
		return
	}
	converted, err := LedgerMonetaryToOpen(obj)
	if err != nil {
		m.parseFail(ledgerKey, m.src[ledgerKey], "invalid monetary object")
		return
	}
	m.out[openKey] = converted
}

// ReqRatio maps a required ledger ratio record.
func (m *OpenMapper) ReqRatio(ledgerKey, openKey string) {
	if m.err != nil {
		return
	}
	obj, ok := asDocument(m.src[ledgerKey])
	if !ok {
		m.parseFail(ledgerKey, m.src[ledgerKey], "expected ratio object")
		return
	}
	converted, err := RatioToOpen(obj)
	if err != nil {
		m.parseFail(ledgerKey, m.src[ledgerKey], "invalid ratio object")
		return
	}
	m.out[openKey] = converted
}

// OptRatio maps a nullable ledger ratio record; null omits the key.
func (m *OpenMapper) OptRatio(ledgerKey, openKey string) {
	if m.err != nil {
		return
	}
	obj, ok := asDocument(m.src[ledgerKey])
	if !ok {
		return
	}
	converted, err := RatioToOpen(obj)
	if err != nil {
		m.parseFail(ledgerKey, m.src[ledgerKey], "invalid ratio object")
		return
	}
	m.out[openKey] = converted
}

// OptBool maps a nullable ledger boolean; null omits the key.
func (m *OpenMapper) OptBool(ledgerKey, openKey string) {
	if m.err != nil {
		return
	}
	b, ok := m.src[ledgerKey].(bool)
	if !ok {
		return
	}
	m.out[openKey] = b
}

// ReqStringList maps a required ledger array.
func (m *OpenMapper) ReqStringList(ledgerKey, openKey string) {
	if m.err != nil {
		return
	}
	arr, ok := m.src[ledgerKey].([]any)
	if !ok || len(arr) == 0 {
		m.parseFail(ledgerKey, m.src[ledgerKey], "expected non-empty array")
		return
	}
	m.out[openKey] = cloneValue(arr)
}

// OptStringList maps a nullable ledger array; null and [] omit the key.
func (m *OpenMapper) OptStringList(ledgerKey, openKey string) {
	if m.err != nil {
		return
	}
	arr, ok := m.src[ledgerKey].([]any)
	if !ok || len(arr) == 0 {
		return
	}
	m.out[openKey] = cloneValue(arr)
}

// ReqListFromSingle adapts a singular ledger field back to the
// one-element open-format array. Inverse of LedgerMapper.ReqSingleFromList.
func (m *OpenMapper) ReqListFromSingle(ledgerKey, openKey string) {
	if m.err != nil {
		return
	}
	s, ok := m.src[ledgerKey].(string)
	if !ok || s == "" {
		m.parseFail(ledgerKey, m.src[ledgerKey], "expected security id")
		return
	}
	m.out[openKey] = []any{s}
}

// ReqEnum maps a required ledger label back through a table.
// An unknown label is a parse error naming the field and value.
func (m *OpenMapper) ReqEnum(ledgerKey, openKey string, t *Table) {
	if m.err != nil {
		return
	}
	s, ok := m.src[ledgerKey].(string)
	if !ok || s == "" {
		m.parseFail(ledgerKey, m.src[ledgerKey], "expected "+t.Name()+" label")
		return
	}
	v, ok := t.ToOpen(s)
	if !ok {
		m.parseFail(ledgerKey, s, "unknown "+t.Name()+" label")
		return
	}
	m.out[openKey] = v
}

// OptEnum maps a nullable ledger label; null omits the key.
func (m *OpenMapper) OptEnum(ledgerKey, openKey string, t *Table) {
	if m.err != nil {
		return
	}
	s, ok := m.src[ledgerKey].(string)
	if !ok || s == "" {
		return
	}
	v, ok := t.ToOpen(s)
	if !ok {
		m.parseFail(ledgerKey, s, "unknown "+t.Name()+" label")
		return
	}
	m.out[openKey] = v
}

// Src exposes the ledger payload for entity-specific logic.
func (m *OpenMapper) Src() Document { return m.src }

// Err returns the first recorded error.
func (m *OpenMapper) Err() error { return m.err }

// Result returns the full open-format object, or the first error.
func (m *OpenMapper) Result() (Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.out, nil
}

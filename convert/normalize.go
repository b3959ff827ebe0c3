/*
normalize.go - Numeric, temporal, and monetary canonicalization

PURPOSE:
  Pure functions that collapse the representational freedom of the two
  schemas into canonical forms:
  - Quantities: decimal strings with no exponent and no insignificant
    trailing zeros ("22500.00" -> "22500", "1.50" -> "1.5")
  - Dates: OCF calendar dates (YYYY-MM-DD) <-> ledger timestamps
    (YYYY-MM-DDT00:00:00.000Z)
  - Money: {amount, currency} pairs with the amount canonicalized

PRECISION:
  All numeric work goes through shopspring/decimal. Cap-table share counts
  routinely exceed float64's exact integer range; float parsing is only
  used in tests as a tolerance check, never here.

REJECTION OVER COERCION:
  Scientific notation and non-numeric text are NumericFormatErrors. A
  silently coerced quantity is a corrupted cap table.

SEE ALSO:
  - mapper.go: Applies these per field
  - equivalence.go: Uses NormalizeNumericString to compare quantities
*/
package convert

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ledgerTimeLayout is the timestamp shape the ledger stores for OCF
// calendar dates. Milliseconds are always present, always zero for
// date-only values.
const ledgerTimeLayout = "2006-01-02T15:04:05.000Z"

// dateLayout is the OCF calendar-date shape.
const dateLayout = "2006-01-02"

// =============================================================================
// NUMERIC STRINGS
// =============================================================================

// NormalizeNumericString canonicalizes a decimal string: strips trailing
// zeros after the decimal point (and the point itself when nothing
// significant remains), preserves sign and integer magnitude exactly.
// Scientific notation is rejected, not expanded. Idempotent.
func NormalizeNumericString(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", &NumericFormatError{Value: s, Reason: "empty string"}
	}
	if strings.ContainsAny(trimmed, "eE") {
		return "", &NumericFormatError{Value: s, Reason: "scientific notation not allowed"}
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return "", &NumericFormatError{Value: s, Reason: "not a decimal number"}
	}
	// decimal.String() already drops insignificant trailing zeros and
	// renders without an exponent for any value parsed from plain notation.
	return d.String(), nil
}

// NumericValueToString accepts a quantity as either a JSON number or a
// string (both occur in the wild on the open-format side) and returns the
// canonical string. Any other type is a format error.
func NumericValueToString(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return NormalizeNumericString(t)
	case float64:
		return NormalizeNumericString(decimal.NewFromFloat(t).String())
	case int:
		return decimal.NewFromInt(int64(t)).String(), nil
	case int64:
		return decimal.NewFromInt(t).String(), nil
	default:
		return "", &NumericFormatError{Value: fmt.Sprintf("%v", v), Reason: "not a number or numeric string"}
	}
}

// NumericallyEqual reports whether two values denote the same quantity
// after canonicalization. Either side may be a number or a string.
func NumericallyEqual(a, b any) bool {
	as, err := NumericValueToString(a)
	if err != nil {
		return false
	}
	bs, err := NumericValueToString(b)
	if err != nil {
		return false
	}
	return as == bs
}

// =============================================================================
// DATES AND TIMESTAMPS
// =============================================================================

// DateToLedgerTime expands an OCF calendar date to the ledger timestamp
// shape. A value already carrying a time component passes through
// unchanged (treated as already expanded).
func DateToLedgerTime(dateStr string) string {
	if strings.Contains(dateStr, "T") {
		return dateStr
	}
	return dateStr + "T00:00:00.000Z"
}

// LedgerTimeToDate takes the calendar-date portion of a ledger timestamp.
// Exact inverse of DateToLedgerTime for date-only input.
func LedgerTimeToDate(ts string) string {
	if i := strings.Index(ts, "T"); i >= 0 {
		return ts[:i]
	}
	return ts
}

// =============================================================================
// MONETARY VALUES
// =============================================================================

// MonetaryToLedger converts an open-format {amount, currency} object to
// the ledger shape. Currency passes through untouched; the amount is
// canonicalized and may arrive as a number or a string.
func MonetaryToLedger(m Document) (Document, error) {
	amount, err := NumericValueToString(m["amount"])
	if err != nil {
		return nil, err
	}
	currency, _ := m["currency"].(string)
	if currency == "" {
		return nil, &NumericFormatError{Value: amount, Reason: "monetary value missing currency"}
	}
	return Document{"amount": amount, "currency": currency}, nil
}

// LedgerMonetaryToOpen converts a ledger monetary record back to the open
// shape. The ledger side always stores string amounts, but canonicalize
// anyway so round-trips are stable regardless of how the value was written.
func LedgerMonetaryToOpen(m Document) (Document, error) {
	return MonetaryToLedger(m)
}

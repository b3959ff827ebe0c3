package convert_test

import (
	"fmt"
	"testing"

	"github.com/Fairmint/ocp-canton-sdk-sub006/convert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// NUMERIC CANONICALIZATION TESTS
// =============================================================================

func TestNormalizeNumericString_TrailingZeros(t *testing.T) {
	// GIVEN: Quantities written with insignificant trailing zeros
	// WHEN: Normalizing them
	// THEN: Trailing zeros (and a bare decimal point) are stripped,
	//       integer magnitude and sign are untouched

	cases := map[string]string{
		"22500.00":    "22500",
		"1.50":        "1.5",
		"500":         "500",
		"0.0":         "0",
		"-42.100":     "-42.1",
		"0.000001":    "0.000001",
		"1000000":     "1000000",
		"10000000.10": "10000000.1",
	}
	for in, want := range cases {
		got, err := convert.NormalizeNumericString(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestNormalizeNumericString_Idempotent(t *testing.T) {
	// GIVEN: An already-normalized quantity
	// WHEN: Normalizing again
	// THEN: The value is unchanged

	for _, s := range []string{"22500", "1.5", "0", "-42.1", "0.000001"} {
		got, err := convert.NormalizeNumericString(s)
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestNormalizeNumericString_RejectsScientificNotation(t *testing.T) {
	// GIVEN: A quantity in scientific notation
	// WHEN: Normalizing it
	// THEN: A NumericFormatError, never a silent expansion

	for _, s := range []string{"1.5e10", "1E6", "2e-3"} {
		_, err := convert.NormalizeNumericString(s)
		assert.ErrorIs(t, err, convert.ErrNumericFormat, "input %q", s)
	}
}

func TestNormalizeNumericString_RejectsGarbage(t *testing.T) {
	// GIVEN: Non-numeric text
	// WHEN: Normalizing it
	// THEN: A NumericFormatError carrying the offending value

	for _, s := range []string{"", "  ", "abc", "12.3.4", "1,000"} {
		_, err := convert.NormalizeNumericString(s)
		require.Error(t, err, "input %q", s)
		var nerr *convert.NumericFormatError
		assert.ErrorAs(t, err, &nerr)
	}
}

func TestNormalizeNumericString_LargeShareCounts(t *testing.T) {
	// GIVEN: A share count beyond float64's exact integer range
	// WHEN: Normalizing it
	// THEN: Every digit survives

	in := "92233720368547758089"
	got, err := convert.NormalizeNumericString(in)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestNumericValueToString_AcceptsNumbersAndStrings(t *testing.T) {
	// GIVEN: A quantity arriving as a JSON number or a string
	// WHEN: Converting to the canonical string
	// THEN: Both spellings land on the same canonical form

	fromNumber, err := convert.NumericValueToString(float64(22500))
	require.NoError(t, err)
	fromString, err := convert.NumericValueToString("22500.0")
	require.NoError(t, err)
	assert.Equal(t, "22500", fromNumber)
	assert.Equal(t, fromNumber, fromString)

	_, err = convert.NumericValueToString(true)
	assert.ErrorIs(t, err, convert.ErrNumericFormat)
}

func TestNumericallyEqual(t *testing.T) {
	assert.True(t, convert.NumericallyEqual("22500", float64(22500)))
	assert.True(t, convert.NumericallyEqual("1.50", "1.5"))
	assert.False(t, convert.NumericallyEqual("1.5", "1.51"))
	assert.False(t, convert.NumericallyEqual("abc", "1"))
}

// =============================================================================
// DATE / TIMESTAMP TESTS
// =============================================================================

func TestDateToLedgerTime_RoundTrip(t *testing.T) {
	// GIVEN: Calendar dates across the plausible cap-table range
	// WHEN: Expanding to the ledger timestamp and collapsing back
	// THEN: The original date returns exactly

	for year := 1900; year <= 2100; year += 25 {
		date := fmt.Sprintf("%04d-06-15", year)
		ts := convert.DateToLedgerTime(date)
		assert.Equal(t, date+"T00:00:00.000Z", ts)
		assert.Equal(t, date, convert.LedgerTimeToDate(ts))
	}
}

func TestDateToLedgerTime_PassesThroughTimestamps(t *testing.T) {
	// GIVEN: A value that already carries a time component
	// WHEN: Expanding it
	// THEN: It is treated as already expanded

	ts := "2024-03-10T09:30:00.000Z"
	assert.Equal(t, ts, convert.DateToLedgerTime(ts))
	assert.Equal(t, "2024-03-10", convert.LedgerTimeToDate(ts))
}

// =============================================================================
// MONETARY TESTS
// =============================================================================

func TestMonetaryToLedger_CanonicalizesAmount(t *testing.T) {
	// GIVEN: A monetary value with a number amount and trailing zeros
	// WHEN: Converting to the ledger shape
	// THEN: The amount is a canonical string, the currency passes through

	out, err := convert.MonetaryToLedger(convert.Document{"amount": float64(10.50), "currency": "USD"})
	require.NoError(t, err)
	assert.Equal(t, convert.Document{"amount": "10.5", "currency": "USD"}, out)
}

func TestMonetaryToLedger_RequiresCurrency(t *testing.T) {
	// GIVEN: A monetary value missing its currency
	// WHEN: Converting it
	// THEN: A NumericFormatError; a bare amount is not money

	_, err := convert.MonetaryToLedger(convert.Document{"amount": "10.5"})
	assert.ErrorIs(t, err, convert.ErrNumericFormat)
}

func TestMonetaryRoundTrip(t *testing.T) {
	in := convert.Document{"amount": "123.450", "currency": "EUR"}
	ledger, err := convert.MonetaryToLedger(in)
	require.NoError(t, err)
	back, err := convert.LedgerMonetaryToOpen(ledger)
	require.NoError(t, err)
	assert.Equal(t, convert.Document{"amount": "123.45", "currency": "EUR"}, back)
}

// =============================================================================
// RATIO TESTS
// =============================================================================

func TestRatioRoundTrip(t *testing.T) {
	in := convert.Document{"numerator": float64(7), "denominator": "1.0"}
	ledger, err := convert.RatioToLedger(in)
	require.NoError(t, err)
	assert.Equal(t, convert.Document{"numerator": "7", "denominator": "1"}, ledger)

	back, err := convert.RatioToOpen(ledger)
	require.NoError(t, err)
	assert.Equal(t, ledger, back)
}

func TestRatioToLedger_RejectsMissingParts(t *testing.T) {
	_, err := convert.RatioToLedger(convert.Document{"numerator": "7"})
	assert.ErrorIs(t, err, convert.ErrNumericFormat)
}

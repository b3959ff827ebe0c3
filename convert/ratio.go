/*
ratio.go - Ratio conversion

A ratio is {numerator, denominator} with decimal-string parts on both
sides; only the key casing and numeric canonicalization differ. Ratios
appear in stock-class splits, conversion-ratio adjustments, exit
multiples, and vesting portions.
*/
package convert

// RatioToLedger converts an open-format ratio to the ledger record.
// Parts accept number-or-string input like every other quantity.
func RatioToLedger(r Document) (Document, error) {
	num, err := NumericValueToString(r["numerator"])
	if err != nil {
		return nil, err
	}
	den, err := NumericValueToString(r["denominator"])
	if err != nil {
		return nil, err
	}
	return Document{"numerator": num, "denominator": den}, nil
}

// RatioToOpen converts a ledger ratio record back to the open shape.
func RatioToOpen(r Document) (Document, error) {
	return RatioToLedger(r)
}

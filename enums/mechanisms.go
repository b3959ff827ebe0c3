/*
mechanisms.go - Conversion mechanism tagged union

PURPOSE:
  A convertible/warrant conversion right carries a mechanism describing
  HOW the instrument converts. The open format discriminates on "type";
  the ledger stores a {tag, value} variant record. Each kind carries its
  own required fields, so translation is structural: selecting the tag,
  mapping the kind-specific payload, and validating the kind's required
  fields. A missing required field is a validation error, never a
  silent default.

CLOSED DISPATCH:
  Both directions dispatch through closed maps keyed by open "type" /
  ledger tag. An unknown discriminator is a parse error naming the field
  path and the offending value.

KINDS:
  SAFE_CONVERSION, CONVERTIBLE_NOTE_CONVERSION, FIXED_AMOUNT_CONVERSION,
  FIXED_PERCENT_OF_CAPITALIZATION_CONVERSION, VALUATION_BASED_CONVERSION,
  SHARE_PRICE_BASED_CONVERSION, CUSTOM_CONVERSION

SEE ALSO:
  - triggers.go: Conversion rights/triggers wrapping these mechanisms
*/
package enums

import (
	"fmt"

	"github.com/Fairmint/ocp-canton-sdk-sub006/convert"
	"github.com/Fairmint/ocp-canton-sdk-sub006/ocf"
)

// mechanismCodec translates one mechanism kind's payload. toLedger maps
// the open object (minus "type") to the variant value record; toOpen is
// the inverse (minus the reconstructed "type").
type mechanismCodec struct {
	openType  string
	ledgerTag string
	toLedger  func(e ocf.ObjectType, path string, open convert.Document) (convert.Document, error)
	toOpen    func(e ocf.ObjectType, path string, value convert.Document) (convert.Document, error)
}

var mechanismCodecs = []mechanismCodec{
	{
		openType:  "SAFE_CONVERSION",
		ledgerTag: "OcfMechSafeConversion",
		toLedger: func(e ocf.ObjectType, path string, open convert.Document) (convert.Document, error) {
			m := convert.NewLedgerMapperAt(e, open, path)
			m.OptNumeric("conversion_discount", "conversionDiscount")
			m.OptMonetary("conversion_valuation_cap", "conversionValuationCap")
			m.OptRatio("exit_multiple", "exitMultiple")
			m.OptBool("conversion_mfn", "conversionMfn")
			return m.Result()
		},
		toOpen: func(e ocf.ObjectType, path string, value convert.Document) (convert.Document, error) {
			m := convert.NewOpenMapperAt(e, value, path)
			m.OptNumeric("conversionDiscount", "conversion_discount")
			m.OptMonetary("conversionValuationCap", "conversion_valuation_cap")
			m.OptRatio("exitMultiple", "exit_multiple")
			m.OptBool("conversionMfn", "conversion_mfn")
			return m.Result()
		},
	},
	{
		openType:  "CONVERTIBLE_NOTE_CONVERSION",
		ledgerTag: "OcfMechNoteConversion",
		toLedger:  noteConversionToLedger,
		toOpen:    noteConversionToOpen,
	},
	{
		openType:  "FIXED_AMOUNT_CONVERSION",
		ledgerTag: "OcfMechFixedAmountConversion",
		toLedger: func(e ocf.ObjectType, path string, open convert.Document) (convert.Document, error) {
			m := convert.NewLedgerMapperAt(e, open, path)
			m.ReqNumeric("converts_to_quantity", "convertsToQuantity")
			return m.Result()
		},
		toOpen: func(e ocf.ObjectType, path string, value convert.Document) (convert.Document, error) {
			m := convert.NewOpenMapperAt(e, value, path)
			m.ReqNumeric("convertsToQuantity", "converts_to_quantity")
			return m.Result()
		},
	},
	{
		openType:  "FIXED_PERCENT_OF_CAPITALIZATION_CONVERSION",
		ledgerTag: "OcfMechPercentCapitalizationConversion",
		toLedger: func(e ocf.ObjectType, path string, open convert.Document) (convert.Document, error) {
			m := convert.NewLedgerMapperAt(e, open, path)
			m.ReqNumeric("converts_to_percent", "convertsToPercent")
			return m.Result()
		},
		toOpen: func(e ocf.ObjectType, path string, value convert.Document) (convert.Document, error) {
			m := convert.NewOpenMapperAt(e, value, path)
			m.ReqNumeric("convertsToPercent", "converts_to_percent")
			return m.Result()
		},
	},
	{
		openType:  "VALUATION_BASED_CONVERSION",
		ledgerTag: "OcfMechValuationBasedConversion",
		toLedger: func(e ocf.ObjectType, path string, open convert.Document) (convert.Document, error) {
			m := convert.NewLedgerMapperAt(e, open, path)
			m.OptEnum("valuation_type", "valuationType", ValuationTypes)
			m.OptMonetary("valuation_amount", "valuationAmount")
			return m.Result()
		},
		toOpen: func(e ocf.ObjectType, path string, value convert.Document) (convert.Document, error) {
			m := convert.NewOpenMapperAt(e, value, path)
			m.OptEnum("valuationType", "valuation_type", ValuationTypes)
			m.OptMonetary("valuationAmount", "valuation_amount")
			return m.Result()
		},
	},
	{
		openType:  "SHARE_PRICE_BASED_CONVERSION",
		ledgerTag: "OcfMechSharePriceBasedConversion",
		toLedger: func(e ocf.ObjectType, path string, open convert.Document) (convert.Document, error) {
			m := convert.NewLedgerMapperAt(e, open, path)
			m.ReqString("description", "description")
			m.OptBool("discount", "discount")
			m.OptNumeric("discount_percentage", "discountPercentage")
			m.OptMonetary("discount_amount", "discountAmount")
			return m.Result()
		},
		toOpen: func(e ocf.ObjectType, path string, value convert.Document) (convert.Document, error) {
			m := convert.NewOpenMapperAt(e, value, path)
			m.ReqString("description", "description")
			m.OptBool("discount", "discount")
			m.OptNumeric("discountPercentage", "discount_percentage")
			m.OptMonetary("discountAmount", "discount_amount")
			return m.Result()
		},
	},
	{
		openType:  "CUSTOM_CONVERSION",
		ledgerTag: "OcfMechCustomConversion",
		toLedger: func(e ocf.ObjectType, path string, open convert.Document) (convert.Document, error) {
			m := convert.NewLedgerMapperAt(e, open, path)
			m.ReqString("custom_conversion_description", "customConversionDescription")
			return m.Result()
		},
		toOpen: func(e ocf.ObjectType, path string, value convert.Document) (convert.Document, error) {
			m := convert.NewOpenMapperAt(e, value, path)
			m.ReqString("customConversionDescription", "custom_conversion_description")
			return m.Result()
		},
	},
}

var (
	mechanismByOpenType = make(map[string]mechanismCodec, len(mechanismCodecs))
	mechanismByTag      = make(map[string]mechanismCodec, len(mechanismCodecs))
)

func init() {
	for _, c := range mechanismCodecs {
		if _, dup := mechanismByOpenType[c.openType]; dup {
			panic("enums: duplicate mechanism type " + c.openType)
		}
		if _, dup := mechanismByTag[c.ledgerTag]; dup {
			panic("enums: duplicate mechanism tag " + c.ledgerTag)
		}
		mechanismByOpenType[c.openType] = c
		mechanismByTag[c.ledgerTag] = c
	}
}

// MechanismToLedger converts an open-format conversion mechanism to the
// ledger {tag, value} variant record. path locates the mechanism in the
// enclosing entity for error messages.
func MechanismToLedger(e ocf.ObjectType, path string, open convert.Document) (convert.Document, error) {
	kind, _ := open["type"].(string)
	if kind == "" {
		return nil, &convert.ValidationError{Entity: e, Path: path + ".type", Expected: "conversion mechanism type"}
	}
	codec, ok := mechanismByOpenType[kind]
	if !ok {
		return nil, &convert.ParseError{Entity: e, Path: path + ".type", Value: kind, Reason: "unknown conversion mechanism"}
	}
	value, err := codec.toLedger(e, path, open)
	if err != nil {
		return nil, err
	}
	return convert.Document{"tag": codec.ledgerTag, "value": value}, nil
}

// MechanismToOpen reconstructs the open-format mechanism (including its
// "type" discriminator) from a ledger variant record.
func MechanismToOpen(e ocf.ObjectType, path string, ledger convert.Document) (convert.Document, error) {
	tag, _ := ledger["tag"].(string)
	if tag == "" {
		return nil, &convert.ParseError{Entity: e, Path: path + ".tag", Value: ledger["tag"], Reason: "expected variant tag"}
	}
	codec, ok := mechanismByTag[tag]
	if !ok {
		return nil, &convert.ParseError{Entity: e, Path: path + ".tag", Value: tag, Reason: "unknown conversion mechanism tag"}
	}
	value, _ := ledger["value"].(map[string]any)
	if value == nil {
		value = convert.Document{}
	}
	open, err := codec.toOpen(e, path, value)
	if err != nil {
		return nil, err
	}
	open["type"] = codec.openType
	return open, nil
}

// =============================================================================
// CONVERTIBLE NOTE - the field-heavy kind
// =============================================================================

// noteConversionToLedger maps a note mechanism. The interest-rate
// schedule, day-count convention, payout, accrual period, and compounding
// type are all required; a note without them cannot accrue interest and
// is rejected rather than defaulted.
func noteConversionToLedger(e ocf.ObjectType, path string, open convert.Document) (convert.Document, error) {
	m := convert.NewLedgerMapperAt(e, open, path)
	m.ReqEnum("day_count_convention", "dayCountConvention", DayCountConventions)
	m.ReqEnum("interest_payout", "interestPayout", InterestPayoutTypes)
	m.ReqEnum("interest_accrual_period", "interestAccrualPeriod", AccrualPeriodTypes)
	m.ReqEnum("compounding_type", "compoundingType", CompoundingTypes)
	m.OptNumeric("conversion_discount", "conversionDiscount")
	m.OptMonetary("conversion_valuation_cap", "conversionValuationCap")
	m.OptRatio("exit_multiple", "exitMultiple")

	rates, ok := open["interest_rates"].([]any)
	if !ok || len(rates) == 0 {
		m.Missing("interest_rates", "non-empty interest rate schedule")
		return m.Result()
	}
	converted := make([]any, 0, len(rates))
	for i, raw := range rates {
		entry, ok := raw.(map[string]any)
		if !ok {
			m.Fail(&convert.ValidationError{Entity: e, Path: fmt.Sprintf("%s.interest_rates.%d", path, i), Expected: "interest rate object"})
			return m.Result()
		}
		rm := convert.NewLedgerMapperAt(e, entry, fmt.Sprintf("%s.interest_rates.%d", path, i))
		rm.ReqNumeric("rate", "rate")
		rm.ReqDate("accrual_start_date", "accrualStartDate")
		rm.OptDate("accrual_end_date", "accrualEndDate")
		out, err := rm.Result()
		if err != nil {
			return nil, err
		}
		converted = append(converted, out)
	}
	m.Set("interestRates", converted)
	return m.Result()
}

func noteConversionToOpen(e ocf.ObjectType, path string, value convert.Document) (convert.Document, error) {
	m := convert.NewOpenMapperAt(e, value, path)
	m.ReqEnum("dayCountConvention", "day_count_convention", DayCountConventions)
	m.ReqEnum("interestPayout", "interest_payout", InterestPayoutTypes)
	m.ReqEnum("interestAccrualPeriod", "interest_accrual_period", AccrualPeriodTypes)
	m.ReqEnum("compoundingType", "compounding_type", CompoundingTypes)
	m.OptNumeric("conversionDiscount", "conversion_discount")
	m.OptMonetary("conversionValuationCap", "conversion_valuation_cap")
	m.OptRatio("exitMultiple", "exit_multiple")

	rates, ok := value["interestRates"].([]any)
	if !ok || len(rates) == 0 {
		m.Fail(&convert.ParseError{Entity: e, Path: path + ".interestRates", Value: value["interestRates"], Reason: "expected non-empty rate schedule"})
		return m.Result()
	}
	converted := make([]any, 0, len(rates))
	for i, raw := range rates {
		entry, ok := raw.(map[string]any)
		if !ok {
			m.Fail(&convert.ParseError{Entity: e, Path: fmt.Sprintf("%s.interestRates.%d", path, i), Value: raw, Reason: "expected rate object"})
			return m.Result()
		}
		rm := convert.NewOpenMapperAt(e, entry, fmt.Sprintf("%s.interestRates.%d", path, i))
		rm.ReqNumeric("rate", "rate")
		rm.ReqDate("accrualStartDate", "accrual_start_date")
		rm.OptDate("accrualEndDate", "accrual_end_date")
		out, err := rm.Result()
		if err != nil {
			return nil, err
		}
		converted = append(converted, out)
	}
	m.Set("interest_rates", converted)
	return m.Result()
}

/*
adjustment.go - Cap-table adjustment converters

PURPOSE:
  Adjustments re-state an attribute of an existing object: a split ratio,
  a conversion ratio, an authorized-share count, a plan pool size. The
  interesting ones re-nest: the open format keeps flat
  numerator/denominator fields where the ledger nests a ratio record (the
  split), or wraps the ratio in a larger mechanism structure (the
  conversion ratio adjustment).

THE CONVERSION-PRICE DEFAULT:
  The ledger's ratio-conversion mechanism requires a conversionPrice, but
  the open-format ratio adjustment has no equivalent field. The converter
  injects {amount: "0", currency: "USD"} - a deliberate, documented
  exception to "never default", forced by the ledger schema. Preserve the
  default exactly; do not "improve" it unless the ledger schema makes the
  field optional. The reverse path drops it, so round-trips are clean.
*/
package entities

import (
	"github.com/Fairmint/ocp-canton-sdk-sub006/convert"
	"github.com/Fairmint/ocp-canton-sdk-sub006/ocf"
)

// ratioFromFlat builds a ledger ratio record from flat open-format
// numerator/denominator fields.
func ratioFromFlat(e ocf.ObjectType, open convert.Document, numKey, denKey string) (convert.Document, error) {
	num, ok := open[numKey]
	if !ok || num == nil || num == "" {
		return nil, &convert.ValidationError{Entity: e, Path: numKey, Expected: "numeric string"}
	}
	den, ok := open[denKey]
	if !ok || den == nil || den == "" {
		return nil, &convert.ValidationError{Entity: e, Path: denKey, Expected: "numeric string"}
	}
	return convert.RatioToLedger(convert.Document{"numerator": num, "denominator": den})
}

// flatFromRatio is the inverse: spread a ledger ratio record back into
// flat open-format fields.
func flatFromRatio(e ocf.ObjectType, m *convert.OpenMapper, ledgerKey, numKey, denKey string) error {
	ratio, ok := m.Src()[ledgerKey].(map[string]any)
	if !ok {
		return &convert.ParseError{Entity: e, Path: ledgerKey, Value: m.Src()[ledgerKey], Reason: "expected ratio record"}
	}
	open, err := convert.RatioToOpen(ratio)
	if err != nil {
		return &convert.ParseError{Entity: e, Path: ledgerKey, Value: m.Src()[ledgerKey], Reason: "invalid ratio record"}
	}
	m.Set(numKey, open["numerator"])
	m.Set(denKey, open["denominator"])
	return nil
}

// =============================================================================
// STOCK CLASS SPLIT
// =============================================================================

// StockClassSplitToLedger converts a TX_STOCK_CLASS_SPLIT. The open
// format states the ratio as two flat fields; the ledger nests them.
func StockClassSplitToLedger(open convert.Document) (convert.Document, error) {
	const e = ocf.TypeStockClassSplit
	m := convert.NewLedgerMapper(e, open)
	m.ReqString("id", "id")
	m.ReqDate("date", "date")
	m.ReqString("stock_class_id", "stockClassId")
	m.OptDate("board_approval_date", "boardApprovalDate")
	m.OptStringList("comments", "comments")

	ratio, err := ratioFromFlat(e, open, "split_ratio_numerator", "split_ratio_denominator")
	if err != nil {
		return nil, err
	}
	m.Set("splitRatio", ratio)

	return m.Result()
}

// StockClassSplitToOpen converts the ledger payload back to the flat
// open-format fields.
func StockClassSplitToOpen(payload convert.Document) (convert.Document, error) {
	const e = ocf.TypeStockClassSplit
	m := convert.NewOpenMapper(e, payload)
	m.ReqString("id", "id")
	m.ReqDate("date", "date")
	m.ReqString("stockClassId", "stock_class_id")
	m.OptDate("boardApprovalDate", "board_approval_date")
	m.OptStringList("comments", "comments")

	if err := flatFromRatio(e, m, "splitRatio", "split_ratio_numerator", "split_ratio_denominator"); err != nil {
		return nil, err
	}

	return m.Result()
}

// =============================================================================
// CONVERSION RATIO ADJUSTMENT
// =============================================================================

// StockClassConversionRatioAdjustmentToLedger converts a
// TX_STOCK_CLASS_CONVERSION_RATIO_ADJUSTMENT. The ledger wraps the new
// ratio inside a ratio-conversion mechanism whose conversionPrice field
// is required by the contract schema but has no open-format counterpart;
// see the package comment for the injected default.
func StockClassConversionRatioAdjustmentToLedger(open convert.Document) (convert.Document, error) {
	const e = ocf.TypeStockClassConversionRatioAdjustment
	m := convert.NewLedgerMapper(e, open)
	m.ReqString("id", "id")
	m.ReqDate("date", "date")
	m.ReqString("stock_class_id", "stockClassId")
	m.OptDate("board_approval_date", "boardApprovalDate")
	m.OptDate("stockholder_approval_date", "stockholderApprovalDate")
	m.OptStringList("comments", "comments")

	ratio, err := ratioFromFlat(e, open, "new_ratio_numerator", "new_ratio_denominator")
	if err != nil {
		return nil, err
	}
	// conversionPrice is required by the ledger schema; the open format
	// has no equivalent field, so inject the documented default.
	m.Set("newRatioConversionMechanism", convert.Document{
		"tag": "OcfMechRatioConversion",
		"value": convert.Document{
			"ratio":           ratio,
			"conversionPrice": convert.Document{"amount": "0", "currency": "USD"},
		},
	})

	return m.Result()
}

// StockClassConversionRatioAdjustmentToOpen converts the ledger payload
// back, dropping the injected conversionPrice.
func StockClassConversionRatioAdjustmentToOpen(payload convert.Document) (convert.Document, error) {
	const e = ocf.TypeStockClassConversionRatioAdjustment
	m := convert.NewOpenMapper(e, payload)
	m.ReqString("id", "id")
	m.ReqDate("date", "date")
	m.ReqString("stockClassId", "stock_class_id")
	m.OptDate("boardApprovalDate", "board_approval_date")
	m.OptDate("stockholderApprovalDate", "stockholder_approval_date")
	m.OptStringList("comments", "comments")

	mech, ok := payload["newRatioConversionMechanism"].(map[string]any)
	if !ok {
		return nil, &convert.ParseError{Entity: e, Path: "newRatioConversionMechanism", Value: payload["newRatioConversionMechanism"], Reason: "expected mechanism record"}
	}
	if tag, _ := mech["tag"].(string); tag != "OcfMechRatioConversion" {
		return nil, &convert.ParseError{Entity: e, Path: "newRatioConversionMechanism.tag", Value: mech["tag"], Reason: "expected ratio conversion mechanism"}
	}
	value, ok := mech["value"].(map[string]any)
	if !ok {
		return nil, &convert.ParseError{Entity: e, Path: "newRatioConversionMechanism.value", Value: mech["value"], Reason: "expected mechanism payload"}
	}
	vm := convert.NewOpenMapperAt(e, value, "newRatioConversionMechanism.value")
	if err := flatFromRatio(e, vm, "ratio", "new_ratio_numerator", "new_ratio_denominator"); err != nil {
		return nil, err
	}
	flat, err := vm.Result()
	if err != nil {
		return nil, err
	}
	m.Set("new_ratio_numerator", flat["new_ratio_numerator"])
	m.Set("new_ratio_denominator", flat["new_ratio_denominator"])

	return m.Result()
}

// =============================================================================
// AUTHORIZED SHARES / POOL ADJUSTMENTS
// =============================================================================

// newSharesAdjustmentPair covers the stock-class and issuer
// authorized-share adjustments, which differ only in the subject id.
func newSharesAdjustmentPair(entity ocf.ObjectType, openSubject, ledgerSubject string) (convert.ToLedgerFunc, convert.ToOpenFunc) {
	toLedger := func(open convert.Document) (convert.Document, error) {
		m := convert.NewLedgerMapper(entity, open)
		m.ReqString("id", "id")
		m.ReqDate("date", "date")
		m.ReqString(openSubject, ledgerSubject)
		reqSharesAuthorized(m, entity, "new_shares_authorized", "newSharesAuthorized")
		m.OptDate("board_approval_date", "boardApprovalDate")
		m.OptDate("stockholder_approval_date", "stockholderApprovalDate")
		m.OptStringList("comments", "comments")
		return m.Result()
	}
	toOpen := func(payload convert.Document) (convert.Document, error) {
		m := convert.NewOpenMapper(entity, payload)
		m.ReqString("id", "id")
		m.ReqDate("date", "date")
		m.ReqString(ledgerSubject, openSubject)
		sharesAuthorizedToOpen(m, entity, "newSharesAuthorized", "new_shares_authorized", true)
		m.OptDate("boardApprovalDate", "board_approval_date")
		m.OptDate("stockholderApprovalDate", "stockholder_approval_date")
		m.OptStringList("comments", "comments")
		return m.Result()
	}
	return toLedger, toOpen
}

// StockPlanPoolAdjustmentToLedger converts a TX_STOCK_PLAN_POOL_ADJUSTMENT.
func StockPlanPoolAdjustmentToLedger(open convert.Document) (convert.Document, error) {
	m := convert.NewLedgerMapper(ocf.TypeStockPlanPoolAdjustment, open)
	m.ReqString("id", "id")
	m.ReqDate("date", "date")
	m.ReqString("stock_plan_id", "stockPlanId")
	m.ReqNumeric("shares_reserved", "sharesReserved")
	m.OptDate("board_approval_date", "boardApprovalDate")
	m.OptDate("stockholder_approval_date", "stockholderApprovalDate")
	m.OptStringList("comments", "comments")
	return m.Result()
}

// StockPlanPoolAdjustmentToOpen converts the ledger payload back.
func StockPlanPoolAdjustmentToOpen(payload convert.Document) (convert.Document, error) {
	m := convert.NewOpenMapper(ocf.TypeStockPlanPoolAdjustment, payload)
	m.ReqString("id", "id")
	m.ReqDate("date", "date")
	m.ReqString("stockPlanId", "stock_plan_id")
	m.ReqNumeric("sharesReserved", "shares_reserved")
	m.OptDate("boardApprovalDate", "board_approval_date")
	m.OptDate("stockholderApprovalDate", "stockholder_approval_date")
	m.OptStringList("comments", "comments")
	return m.Result()
}

// StockPlanReturnToPoolToLedger converts a TX_STOCK_PLAN_RETURN_TO_POOL.
func StockPlanReturnToPoolToLedger(open convert.Document) (convert.Document, error) {
	m := convert.NewLedgerMapper(ocf.TypeStockPlanReturnToPool, open)
	m.ReqString("id", "id")
	m.ReqDate("date", "date")
	m.ReqString("security_id", "securityId")
	m.ReqString("stock_plan_id", "stockPlanId")
	m.ReqNumeric("quantity", "quantity")
	m.ReqString("reason_text", "reasonText")
	m.OptStringList("comments", "comments")
	return m.Result()
}

// StockPlanReturnToPoolToOpen converts the ledger payload back.
func StockPlanReturnToPoolToOpen(payload convert.Document) (convert.Document, error) {
	m := convert.NewOpenMapper(ocf.TypeStockPlanReturnToPool, payload)
	m.ReqString("id", "id")
	m.ReqDate("date", "date")
	m.ReqString("securityId", "security_id")
	m.ReqString("stockPlanId", "stock_plan_id")
	m.ReqNumeric("quantity", "quantity")
	m.ReqString("reasonText", "reason_text")
	m.OptStringList("comments", "comments")
	return m.Result()
}

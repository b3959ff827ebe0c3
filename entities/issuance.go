/*
issuance.go - Security issuance converters

PURPOSE:
  The four issuance kinds share a base (identifiers, dates, stakeholder,
  approvals, security-law exemptions) and differ in their instrument
  payload. Convertible and warrant issuances compose the conversion
  trigger/mechanism tagged unions; equity compensation composes the
  termination-window table.

SEE ALSO:
  - enums/triggers.go: Trigger arrays (trigger_id required per trigger)
  - enums/mechanisms.go: The mechanism variants inside each trigger
*/
package entities

import (
	"fmt"

	"github.com/Fairmint/ocp-canton-sdk-sub006/convert"
	"github.com/Fairmint/ocp-canton-sdk-sub006/enums"
	"github.com/Fairmint/ocp-canton-sdk-sub006/ocf"
)

// =============================================================================
// SHARED ISSUANCE BASE
// =============================================================================

func exemptionToLedger(e ocf.ObjectType, path string, x convert.Document) (convert.Document, error) {
	m := convert.NewLedgerMapperAt(e, x, path)
	m.ReqString("description", "description")
	m.ReqString("jurisdiction", "jurisdiction")
	return m.Result()
}

func exemptionToOpen(e ocf.ObjectType, path string, x convert.Document) (convert.Document, error) {
	m := convert.NewOpenMapperAt(e, x, path)
	m.ReqString("description", "description")
	m.ReqString("jurisdiction", "jurisdiction")
	return m.Result()
}

// issuanceBaseToLedger maps the fields common to every issuance kind.
func issuanceBaseToLedger(e ocf.ObjectType, m *convert.LedgerMapper) error {
	m.ReqString("id", "id")
	m.ReqString("security_id", "securityId")
	m.ReqDate("date", "date")
	m.ReqString("custom_id", "customId")
	m.ReqString("stakeholder_id", "stakeholderId")
	m.OptDate("board_approval_date", "boardApprovalDate")
	m.OptDate("stockholder_approval_date", "stockholderApprovalDate")
	m.OptString("consideration_text", "considerationText")
	m.OptStringList("comments", "comments")

	exemptions, err := objectListToLedger(e, m.Src(), "security_law_exemptions", exemptionToLedger)
	if err != nil {
		return err
	}
	m.Set("securityLawExemptions", exemptions)
	return nil
}

func issuanceBaseToOpen(e ocf.ObjectType, m *convert.OpenMapper) error {
	m.ReqString("id", "id")
	m.ReqString("securityId", "security_id")
	m.ReqDate("date", "date")
	m.ReqString("customId", "custom_id")
	m.ReqString("stakeholderId", "stakeholder_id")
	m.OptDate("boardApprovalDate", "board_approval_date")
	m.OptDate("stockholderApprovalDate", "stockholder_approval_date")
	m.OptString("considerationText", "consideration_text")
	m.OptStringList("comments", "comments")

	exemptions, err := objectListToOpen(e, m.Src(), "securityLawExemptions", exemptionToOpen)
	if err != nil {
		return err
	}
	m.Set("security_law_exemptions", exemptions)
	return nil
}

// =============================================================================
// STOCK ISSUANCE
// =============================================================================

func shareRangeToLedger(e ocf.ObjectType, path string, r convert.Document) (convert.Document, error) {
	m := convert.NewLedgerMapperAt(e, r, path)
	m.ReqNumeric("starting_share_number", "startingShareNumber")
	m.ReqNumeric("ending_share_number", "endingShareNumber")
	return m.Result()
}

func shareRangeToOpen(e ocf.ObjectType, path string, r convert.Document) (convert.Document, error) {
	m := convert.NewOpenMapperAt(e, r, path)
	m.ReqNumeric("startingShareNumber", "starting_share_number")
	m.ReqNumeric("endingShareNumber", "ending_share_number")
	return m.Result()
}

// StockIssuanceToLedger converts a TX_STOCK_ISSUANCE.
func StockIssuanceToLedger(open convert.Document) (convert.Document, error) {
	const e = ocf.TypeStockIssuance
	m := convert.NewLedgerMapper(e, open)
	if err := issuanceBaseToLedger(e, m); err != nil {
		return nil, err
	}
	m.ReqString("stock_class_id", "stockClassId")
	m.OptString("stock_plan_id", "stockPlanId")
	m.ReqMonetary("share_price", "sharePrice")
	m.ReqNumeric("quantity", "quantity")
	m.OptMonetary("cost_basis", "costBasis")
	m.OptString("vesting_terms_id", "vestingTermsId")
	m.OptString("issuance_type", "issuanceType")
	m.OptStringList("stock_legend_ids", "stockLegendIds")

	ranges, err := objectListToLedger(e, open, "share_numbers_issued", shareRangeToLedger)
	if err != nil {
		return nil, err
	}
	m.Set("shareNumbersIssued", ranges)

	return m.Result()
}

// StockIssuanceToOpen converts a TX_STOCK_ISSUANCE ledger payload back.
func StockIssuanceToOpen(payload convert.Document) (convert.Document, error) {
	const e = ocf.TypeStockIssuance
	m := convert.NewOpenMapper(e, payload)
	if err := issuanceBaseToOpen(e, m); err != nil {
		return nil, err
	}
	m.ReqString("stockClassId", "stock_class_id")
	m.OptString("stockPlanId", "stock_plan_id")
	m.ReqMonetary("sharePrice", "share_price")
	m.ReqNumeric("quantity", "quantity")
	m.OptMonetary("costBasis", "cost_basis")
	m.OptString("vestingTermsId", "vesting_terms_id")
	m.OptString("issuanceType", "issuance_type")
	m.OptStringList("stockLegendIds", "stock_legend_ids")

	ranges, err := objectListToOpen(e, payload, "shareNumbersIssued", shareRangeToOpen)
	if err != nil {
		return nil, err
	}
	m.Set("share_numbers_issued", ranges)

	return m.Result()
}

// =============================================================================
// CONVERTIBLE ISSUANCE
// =============================================================================

// ConvertibleIssuanceToLedger converts a TX_CONVERTIBLE_ISSUANCE,
// including its conversion trigger array. Every trigger requires a
// trigger_id; the converter fails fast on the first trigger without one.
func ConvertibleIssuanceToLedger(open convert.Document) (convert.Document, error) {
	const e = ocf.TypeConvertibleIssuance
	m := convert.NewLedgerMapper(e, open)
	if err := issuanceBaseToLedger(e, m); err != nil {
		return nil, err
	}
	m.ReqMonetary("investment_amount", "investmentAmount")
	m.ReqEnum("convertible_type", "convertibleType", enums.ConvertibleTypes)
	m.ReqNumeric("seniority", "seniority")
	m.OptNumeric("pro_rata", "proRata")

	triggers, err := enums.TriggersToLedger(e, open)
	if err != nil {
		return nil, err
	}
	m.Set("conversionTriggers", triggers)

	return m.Result()
}

// ConvertibleIssuanceToOpen converts the ledger payload back.
func ConvertibleIssuanceToOpen(payload convert.Document) (convert.Document, error) {
	const e = ocf.TypeConvertibleIssuance
	m := convert.NewOpenMapper(e, payload)
	if err := issuanceBaseToOpen(e, m); err != nil {
		return nil, err
	}
	m.ReqMonetary("investmentAmount", "investment_amount")
	m.ReqEnum("convertibleType", "convertible_type", enums.ConvertibleTypes)
	m.ReqNumeric("seniority", "seniority")
	m.OptNumeric("proRata", "pro_rata")

	raw, ok := payload["conversionTriggers"].([]any)
	if !ok || len(raw) == 0 {
		return nil, &convert.ParseError{Entity: e, Path: "conversionTriggers", Value: payload["conversionTriggers"], Reason: "expected non-empty trigger list"}
	}
	triggers, err := enums.TriggersToOpen(e, raw)
	if err != nil {
		return nil, err
	}
	m.Set("conversion_triggers", triggers)

	return m.Result()
}

// =============================================================================
// WARRANT ISSUANCE
// =============================================================================

// WarrantIssuanceToLedger converts a TX_WARRANT_ISSUANCE. Warrants carry
// the same trigger union under exercise_triggers.
func WarrantIssuanceToLedger(open convert.Document) (convert.Document, error) {
	const e = ocf.TypeWarrantIssuance
	m := convert.NewLedgerMapper(e, open)
	if err := issuanceBaseToLedger(e, m); err != nil {
		return nil, err
	}
	m.OptNumeric("quantity", "quantity")
	m.OptMonetary("exercise_price", "exercisePrice")
	m.ReqMonetary("purchase_price", "purchasePrice")
	m.OptDate("warrant_expiration_date", "warrantExpirationDate")
	m.OptString("vesting_terms_id", "vestingTermsId")

	raw, ok := open["exercise_triggers"].([]any)
	if !ok || len(raw) == 0 {
		return nil, &convert.ValidationError{Entity: e, Path: "exercise_triggers", Expected: "non-empty trigger array"}
	}
	triggers := make([]any, 0, len(raw))
	for i, t := range raw {
		trigger, ok := t.(map[string]any)
		if !ok {
			return nil, &convert.ValidationError{Entity: e, Path: fmt.Sprintf("exercise_triggers.%d", i), Expected: "trigger object"}
		}
		converted, err := enums.TriggerToLedger(e, fmt.Sprintf("exercise_triggers.%d", i), trigger)
		if err != nil {
			return nil, err
		}
		triggers = append(triggers, converted)
	}
	m.Set("exerciseTriggers", triggers)

	return m.Result()
}

// WarrantIssuanceToOpen converts the ledger payload back.
func WarrantIssuanceToOpen(payload convert.Document) (convert.Document, error) {
	const e = ocf.TypeWarrantIssuance
	m := convert.NewOpenMapper(e, payload)
	if err := issuanceBaseToOpen(e, m); err != nil {
		return nil, err
	}
	m.OptNumeric("quantity", "quantity")
	m.OptMonetary("exercisePrice", "exercise_price")
	m.ReqMonetary("purchasePrice", "purchase_price")
	m.OptDate("warrantExpirationDate", "warrant_expiration_date")
	m.OptString("vestingTermsId", "vesting_terms_id")

	raw, ok := payload["exerciseTriggers"].([]any)
	if !ok || len(raw) == 0 {
		return nil, &convert.ParseError{Entity: e, Path: "exerciseTriggers", Value: payload["exerciseTriggers"], Reason: "expected non-empty trigger list"}
	}
	triggers := make([]any, 0, len(raw))
	for i, t := range raw {
		trigger, ok := t.(map[string]any)
		if !ok {
			return nil, &convert.ParseError{Entity: e, Path: fmt.Sprintf("exerciseTriggers.%d", i), Value: t, Reason: "expected trigger variant"}
		}
		converted, err := enums.TriggerToOpen(e, fmt.Sprintf("exerciseTriggers.%d", i), trigger)
		if err != nil {
			return nil, err
		}
		triggers = append(triggers, converted)
	}
	m.Set("exercise_triggers", triggers)

	return m.Result()
}

// =============================================================================
// EQUITY COMPENSATION ISSUANCE
// =============================================================================

func terminationWindowToLedger(e ocf.ObjectType, path string, w convert.Document) (convert.Document, error) {
	m := convert.NewLedgerMapperAt(e, w, path)
	m.ReqEnum("reason", "reason", enums.TerminationWindowReasons)
	m.ReqNumeric("period", "period")
	m.ReqEnum("period_type", "periodType", enums.PeriodTypes)
	return m.Result()
}

func terminationWindowToOpen(e ocf.ObjectType, path string, w convert.Document) (convert.Document, error) {
	m := convert.NewOpenMapperAt(e, w, path)
	m.ReqEnum("reason", "reason", enums.TerminationWindowReasons)
	m.ReqNumeric("period", "period")
	m.ReqEnum("periodType", "period_type", enums.PeriodTypes)
	return m.Result()
}

// EquityCompensationIssuanceToLedger converts a
// TX_EQUITY_COMPENSATION_ISSUANCE.
func EquityCompensationIssuanceToLedger(open convert.Document) (convert.Document, error) {
	const e = ocf.TypeEquityCompensationIssuance
	m := convert.NewLedgerMapper(e, open)
	if err := issuanceBaseToLedger(e, m); err != nil {
		return nil, err
	}
	m.ReqEnum("compensation_type", "compensationType", enums.CompensationTypes)
	m.ReqNumeric("quantity", "quantity")
	m.OptString("stock_plan_id", "stockPlanId")
	m.OptString("stock_class_id", "stockClassId")
	m.OptMonetary("exercise_price", "exercisePrice")
	m.OptMonetary("base_price", "basePrice")
	m.OptBool("early_exercisable", "earlyExercisable")
	m.OptString("vesting_terms_id", "vestingTermsId")
	m.OptDate("expiration_date", "expirationDate")

	windows, err := objectListToLedger(e, open, "termination_exercise_windows", terminationWindowToLedger)
	if err != nil {
		return nil, err
	}
	m.Set("terminationExerciseWindows", windows)

	return m.Result()
}

// EquityCompensationIssuanceToOpen converts the ledger payload back.
func EquityCompensationIssuanceToOpen(payload convert.Document) (convert.Document, error) {
	const e = ocf.TypeEquityCompensationIssuance
	m := convert.NewOpenMapper(e, payload)
	if err := issuanceBaseToOpen(e, m); err != nil {
		return nil, err
	}
	m.ReqEnum("compensationType", "compensation_type", enums.CompensationTypes)
	m.ReqNumeric("quantity", "quantity")
	m.OptString("stockPlanId", "stock_plan_id")
	m.OptString("stockClassId", "stock_class_id")
	m.OptMonetary("exercisePrice", "exercise_price")
	m.OptMonetary("basePrice", "base_price")
	m.OptBool("earlyExercisable", "early_exercisable")
	m.OptString("vestingTermsId", "vesting_terms_id")
	m.OptDate("expirationDate", "expiration_date")

	windows, err := objectListToOpen(e, payload, "terminationExerciseWindows", terminationWindowToOpen)
	if err != nil {
		return nil, err
	}
	m.Set("termination_exercise_windows", windows)

	return m.Result()
}

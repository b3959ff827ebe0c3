/*
register.go - Registry rows for every entity type

PURPOSE:
  Binds each tag of the closed enumeration to its ledger payload field
  name, its Create/Edit/Delete choice labels, and its converter pair.
  Registration happens on package init, the way resource types register
  with their engine registry; the table is immutable afterwards.

  The parametric converter pairs (transfers, cancellations, acceptances,
  ...) are also exported as named pairs here, for callers that know the
  concrete type and want to skip tag dispatch.

SEE ALSO:
  - convert/registry.go: Lookup and generic dispatch
  - ocf/types.go: The enumeration a completeness test walks
*/
package entities

import (
	"github.com/Fairmint/ocp-canton-sdk-sub006/convert"
	"github.com/Fairmint/ocp-canton-sdk-sub006/ocf"
)

// =============================================================================
// NAMED PARAMETRIC PAIRS
// =============================================================================

var (
	StockTransferToLedger, StockTransferToOpen                           = newTransferPair(ocf.TypeStockTransfer)
	WarrantTransferToLedger, WarrantTransferToOpen                       = newTransferPair(ocf.TypeWarrantTransfer)
	EquityCompensationTransferToLedger, EquityCompensationTransferToOpen = newTransferPair(ocf.TypeEquityCompensationTransfer)
	ConvertibleTransferToLedger, ConvertibleTransferToOpen               = newConvertibleTransferPair(ocf.TypeConvertibleTransfer)

	StockCancellationToLedger, StockCancellationToOpen                           = newCancellationPair(ocf.TypeStockCancellation)
	WarrantCancellationToLedger, WarrantCancellationToOpen                       = newCancellationPair(ocf.TypeWarrantCancellation)
	EquityCompensationCancellationToLedger, EquityCompensationCancellationToOpen = newCancellationPair(ocf.TypeEquityCompensationCancellation)
	ConvertibleCancellationToLedger, ConvertibleCancellationToOpen               = newConvertibleCancellationPair(ocf.TypeConvertibleCancellation)

	StockRepurchaseToLedger, StockRepurchaseToOpen = newRepurchasePair(ocf.TypeStockRepurchase)

	WarrantExerciseToLedger, WarrantExerciseToOpen                       = newExercisePair(ocf.TypeWarrantExercise)
	EquityCompensationExerciseToLedger, EquityCompensationExerciseToOpen = newExercisePair(ocf.TypeEquityCompensationExercise)
	EquityCompensationReleaseToLedger, EquityCompensationReleaseToOpen   = newExercisePair(ocf.TypeEquityCompensationRelease)

	StockConversionToLedger, StockConversionToOpen = newStockConversionPair(ocf.TypeStockConversion)

	StockAcceptanceToLedger, StockAcceptanceToOpen                           = newAcceptancePair(ocf.TypeStockAcceptance)
	WarrantAcceptanceToLedger, WarrantAcceptanceToOpen                       = newAcceptancePair(ocf.TypeWarrantAcceptance)
	ConvertibleAcceptanceToLedger, ConvertibleAcceptanceToOpen               = newAcceptancePair(ocf.TypeConvertibleAcceptance)
	EquityCompensationAcceptanceToLedger, EquityCompensationAcceptanceToOpen = newAcceptancePair(ocf.TypeEquityCompensationAcceptance)

	StockRetractionToLedger, StockRetractionToOpen                           = newRetractionPair(ocf.TypeStockRetraction)
	WarrantRetractionToLedger, WarrantRetractionToOpen                       = newRetractionPair(ocf.TypeWarrantRetraction)
	ConvertibleRetractionToLedger, ConvertibleRetractionToOpen               = newRetractionPair(ocf.TypeConvertibleRetraction)
	EquityCompensationRetractionToLedger, EquityCompensationRetractionToOpen = newRetractionPair(ocf.TypeEquityCompensationRetraction)

	VestingStartToLedger, VestingStartToOpen = newVestingConditionEventPair(ocf.TypeVestingStart)
	VestingEventToLedger, VestingEventToOpen = newVestingConditionEventPair(ocf.TypeVestingEvent)

	StockClassAuthorizedSharesAdjustmentToLedger, StockClassAuthorizedSharesAdjustmentToOpen = newSharesAdjustmentPair(
		ocf.TypeStockClassAuthorizedSharesAdjustment, "stock_class_id", "stockClassId")
	IssuerAuthorizedSharesAdjustmentToLedger, IssuerAuthorizedSharesAdjustmentToOpen = newSharesAdjustmentPair(
		ocf.TypeIssuerAuthorizedSharesAdjustment, "issuer_id", "issuerId")
)

// =============================================================================
// REGISTRY ROWS
// =============================================================================

// row is shorthand for one registry entry: the choice labels follow the
// Create/Edit/Delete + entity pattern uniformly, so they are derived
// from a single base name.
func row(t ocf.ObjectType, field, base string, toLedger convert.ToLedgerFunc, toOpen convert.ToOpenFunc) convert.Entry {
	return convert.Entry{
		Type:         t,
		LedgerField:  field,
		CreateChoice: "Create" + base,
		EditChoice:   "Edit" + base,
		DeleteChoice: "Delete" + base,
		ToLedger:     toLedger,
		ToOpen:       toOpen,
	}
}

func init() {
	for _, e := range []convert.Entry{
		// Objects
		row(ocf.TypeIssuer, "issuer", "Issuer", IssuerToLedger, IssuerToOpen),
		row(ocf.TypeStakeholder, "stakeholder", "Stakeholder", StakeholderToLedger, StakeholderToOpen),
		row(ocf.TypeStockClass, "stockClass", "StockClass", StockClassToLedger, StockClassToOpen),
		row(ocf.TypeStockPlan, "stockPlan", "StockPlan", StockPlanToLedger, StockPlanToOpen),
		row(ocf.TypeStockLegendTemplate, "stockLegendTemplate", "StockLegendTemplate", StockLegendTemplateToLedger, StockLegendTemplateToOpen),
		row(ocf.TypeValuation, "valuation", "Valuation", ValuationToLedger, ValuationToOpen),
		row(ocf.TypeVestingTerms, "vestingTerms", "VestingTerms", VestingTermsToLedger, VestingTermsToOpen),
		row(ocf.TypeDocument, "document", "Document", DocumentToLedger, DocumentToOpen),

		// Stock lifecycle
		row(ocf.TypeStockIssuance, "stockIssuance", "StockIssuance", StockIssuanceToLedger, StockIssuanceToOpen),
		row(ocf.TypeStockTransfer, "stockTransfer", "StockTransfer", StockTransferToLedger, StockTransferToOpen),
		row(ocf.TypeStockCancellation, "stockCancellation", "StockCancellation", StockCancellationToLedger, StockCancellationToOpen),
		row(ocf.TypeStockRetraction, "stockRetraction", "StockRetraction", StockRetractionToLedger, StockRetractionToOpen),
		row(ocf.TypeStockAcceptance, "stockAcceptance", "StockAcceptance", StockAcceptanceToLedger, StockAcceptanceToOpen),
		row(ocf.TypeStockRepurchase, "stockRepurchase", "StockRepurchase", StockRepurchaseToLedger, StockRepurchaseToOpen),
		row(ocf.TypeStockReissuance, "stockReissuance", "StockReissuance", StockReissuanceToLedger, StockReissuanceToOpen),
		row(ocf.TypeStockConversion, "stockConversion", "StockConversion", StockConversionToLedger, StockConversionToOpen),
		row(ocf.TypeStockConsolidation, "stockConsolidation", "StockConsolidation", StockConsolidationToLedger, StockConsolidationToOpen),

		// Convertible lifecycle
		row(ocf.TypeConvertibleIssuance, "convertibleIssuance", "ConvertibleIssuance", ConvertibleIssuanceToLedger, ConvertibleIssuanceToOpen),
		row(ocf.TypeConvertibleTransfer, "convertibleTransfer", "ConvertibleTransfer", ConvertibleTransferToLedger, ConvertibleTransferToOpen),
		row(ocf.TypeConvertibleCancellation, "convertibleCancellation", "ConvertibleCancellation", ConvertibleCancellationToLedger, ConvertibleCancellationToOpen),
		row(ocf.TypeConvertibleRetraction, "convertibleRetraction", "ConvertibleRetraction", ConvertibleRetractionToLedger, ConvertibleRetractionToOpen),
		row(ocf.TypeConvertibleAcceptance, "convertibleAcceptance", "ConvertibleAcceptance", ConvertibleAcceptanceToLedger, ConvertibleAcceptanceToOpen),
		row(ocf.TypeConvertibleConversion, "convertibleConversion", "ConvertibleConversion", ConvertibleConversionToLedger, ConvertibleConversionToOpen),

		// Warrant lifecycle
		row(ocf.TypeWarrantIssuance, "warrantIssuance", "WarrantIssuance", WarrantIssuanceToLedger, WarrantIssuanceToOpen),
		row(ocf.TypeWarrantTransfer, "warrantTransfer", "WarrantTransfer", WarrantTransferToLedger, WarrantTransferToOpen),
		row(ocf.TypeWarrantCancellation, "warrantCancellation", "WarrantCancellation", WarrantCancellationToLedger, WarrantCancellationToOpen),
		row(ocf.TypeWarrantRetraction, "warrantRetraction", "WarrantRetraction", WarrantRetractionToLedger, WarrantRetractionToOpen),
		row(ocf.TypeWarrantAcceptance, "warrantAcceptance", "WarrantAcceptance", WarrantAcceptanceToLedger, WarrantAcceptanceToOpen),
		row(ocf.TypeWarrantExercise, "warrantExercise", "WarrantExercise", WarrantExerciseToLedger, WarrantExerciseToOpen),

		// Equity compensation lifecycle
		row(ocf.TypeEquityCompensationIssuance, "equityCompensationIssuance", "EquityCompensationIssuance", EquityCompensationIssuanceToLedger, EquityCompensationIssuanceToOpen),
		row(ocf.TypeEquityCompensationTransfer, "equityCompensationTransfer", "EquityCompensationTransfer", EquityCompensationTransferToLedger, EquityCompensationTransferToOpen),
		row(ocf.TypeEquityCompensationCancellation, "equityCompensationCancellation", "EquityCompensationCancellation", EquityCompensationCancellationToLedger, EquityCompensationCancellationToOpen),
		row(ocf.TypeEquityCompensationRetraction, "equityCompensationRetraction", "EquityCompensationRetraction", EquityCompensationRetractionToLedger, EquityCompensationRetractionToOpen),
		row(ocf.TypeEquityCompensationAcceptance, "equityCompensationAcceptance", "EquityCompensationAcceptance", EquityCompensationAcceptanceToLedger, EquityCompensationAcceptanceToOpen),
		row(ocf.TypeEquityCompensationExercise, "equityCompensationExercise", "EquityCompensationExercise", EquityCompensationExerciseToLedger, EquityCompensationExerciseToOpen),
		row(ocf.TypeEquityCompensationRelease, "equityCompensationRelease", "EquityCompensationRelease", EquityCompensationReleaseToLedger, EquityCompensationReleaseToOpen),

		// Vesting
		row(ocf.TypeVestingStart, "vestingStart", "VestingStart", VestingStartToLedger, VestingStartToOpen),
		row(ocf.TypeVestingEvent, "vestingEvent", "VestingEvent", VestingEventToLedger, VestingEventToOpen),
		row(ocf.TypeVestingAcceleration, "vestingAcceleration", "VestingAcceleration", VestingAccelerationToLedger, VestingAccelerationToOpen),

		// Adjustments
		row(ocf.TypeStockClassSplit, "stockClassSplit", "StockClassSplit", StockClassSplitToLedger, StockClassSplitToOpen),
		row(ocf.TypeStockClassConversionRatioAdjustment, "stockClassConversionRatioAdjustment", "StockClassConversionRatioAdjustment", StockClassConversionRatioAdjustmentToLedger, StockClassConversionRatioAdjustmentToOpen),
		row(ocf.TypeStockClassAuthorizedSharesAdjustment, "stockClassAuthorizedSharesAdjustment", "StockClassAuthorizedSharesAdjustment", StockClassAuthorizedSharesAdjustmentToLedger, StockClassAuthorizedSharesAdjustmentToOpen),
		row(ocf.TypeIssuerAuthorizedSharesAdjustment, "issuerAuthorizedSharesAdjustment", "IssuerAuthorizedSharesAdjustment", IssuerAuthorizedSharesAdjustmentToLedger, IssuerAuthorizedSharesAdjustmentToOpen),
		row(ocf.TypeStockPlanPoolAdjustment, "stockPlanPoolAdjustment", "StockPlanPoolAdjustment", StockPlanPoolAdjustmentToLedger, StockPlanPoolAdjustmentToOpen),
		row(ocf.TypeStockPlanReturnToPool, "stockPlanReturnToPool", "StockPlanReturnToPool", StockPlanReturnToPoolToLedger, StockPlanReturnToPoolToOpen),
	} {
		convert.Register(e)
	}
}

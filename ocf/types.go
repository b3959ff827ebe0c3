/*
Package ocf defines the closed set of Open Cap Table Format entity types
handled by the conversion layer.

PURPOSE:
  Every cap-table object and transaction the ledger bridge understands is
  identified by one of the ObjectType tags below. The set is closed: adding
  a kind means adding a constant here AND a registry row in the entities
  package. Nothing is configurable at runtime.

KEY CONCEPTS IN THIS FILE (types.go):
  - ObjectType: The entity-type tag, matching the OCF "object_type" field
  - Families:   Objects (ISSUER, STOCK_CLASS, ...) vs transactions (TX_*)

SEE ALSO:
  - convert/registry.go: Dispatch table keyed by ObjectType
  - entities/register.go: The registry rows for every tag below
*/
package ocf

// ObjectType identifies one cap-table entity or transaction kind.
// Values match the OCF "object_type" discriminator exactly.
type ObjectType string

// =============================================================================
// OBJECTS
// =============================================================================

const (
	TypeIssuer             ObjectType = "ISSUER"
	TypeStakeholder        ObjectType = "STAKEHOLDER"
	TypeStockClass         ObjectType = "STOCK_CLASS"
	TypeStockPlan          ObjectType = "STOCK_PLAN"
	TypeStockLegendTemplate ObjectType = "STOCK_LEGEND_TEMPLATE"
	TypeValuation          ObjectType = "VALUATION"
	TypeVestingTerms       ObjectType = "VESTING_TERMS"
	TypeDocument           ObjectType = "DOCUMENT"
)

// =============================================================================
// TRANSACTIONS
// =============================================================================

const (
	// Stock lifecycle
	TypeStockIssuance      ObjectType = "TX_STOCK_ISSUANCE"
	TypeStockTransfer      ObjectType = "TX_STOCK_TRANSFER"
	TypeStockCancellation  ObjectType = "TX_STOCK_CANCELLATION"
	TypeStockRetraction    ObjectType = "TX_STOCK_RETRACTION"
	TypeStockAcceptance    ObjectType = "TX_STOCK_ACCEPTANCE"
	TypeStockRepurchase    ObjectType = "TX_STOCK_REPURCHASE"
	TypeStockReissuance    ObjectType = "TX_STOCK_REISSUANCE"
	TypeStockConversion    ObjectType = "TX_STOCK_CONVERSION"
	TypeStockConsolidation ObjectType = "TX_STOCK_CONSOLIDATION"

	// Convertible lifecycle
	TypeConvertibleIssuance     ObjectType = "TX_CONVERTIBLE_ISSUANCE"
	TypeConvertibleTransfer     ObjectType = "TX_CONVERTIBLE_TRANSFER"
	TypeConvertibleCancellation ObjectType = "TX_CONVERTIBLE_CANCELLATION"
	TypeConvertibleRetraction   ObjectType = "TX_CONVERTIBLE_RETRACTION"
	TypeConvertibleAcceptance   ObjectType = "TX_CONVERTIBLE_ACCEPTANCE"
	TypeConvertibleConversion   ObjectType = "TX_CONVERTIBLE_CONVERSION"

	// Warrant lifecycle
	TypeWarrantIssuance     ObjectType = "TX_WARRANT_ISSUANCE"
	TypeWarrantTransfer     ObjectType = "TX_WARRANT_TRANSFER"
	TypeWarrantCancellation ObjectType = "TX_WARRANT_CANCELLATION"
	TypeWarrantRetraction   ObjectType = "TX_WARRANT_RETRACTION"
	TypeWarrantAcceptance   ObjectType = "TX_WARRANT_ACCEPTANCE"
	TypeWarrantExercise     ObjectType = "TX_WARRANT_EXERCISE"

	// Equity compensation lifecycle
	TypeEquityCompensationIssuance     ObjectType = "TX_EQUITY_COMPENSATION_ISSUANCE"
	TypeEquityCompensationTransfer     ObjectType = "TX_EQUITY_COMPENSATION_TRANSFER"
	TypeEquityCompensationCancellation ObjectType = "TX_EQUITY_COMPENSATION_CANCELLATION"
	TypeEquityCompensationRetraction   ObjectType = "TX_EQUITY_COMPENSATION_RETRACTION"
	TypeEquityCompensationAcceptance   ObjectType = "TX_EQUITY_COMPENSATION_ACCEPTANCE"
	TypeEquityCompensationExercise     ObjectType = "TX_EQUITY_COMPENSATION_EXERCISE"
	TypeEquityCompensationRelease      ObjectType = "TX_EQUITY_COMPENSATION_RELEASE"

	// Vesting
	TypeVestingStart        ObjectType = "TX_VESTING_START"
	TypeVestingEvent        ObjectType = "TX_VESTING_EVENT"
	TypeVestingAcceleration ObjectType = "TX_VESTING_ACCELERATION"

	// Adjustments
	TypeStockClassSplit                     ObjectType = "TX_STOCK_CLASS_SPLIT"
	TypeStockClassConversionRatioAdjustment ObjectType = "TX_STOCK_CLASS_CONVERSION_RATIO_ADJUSTMENT"
	TypeStockClassAuthorizedSharesAdjustment ObjectType = "TX_STOCK_CLASS_AUTHORIZED_SHARES_ADJUSTMENT"
	TypeIssuerAuthorizedSharesAdjustment    ObjectType = "TX_ISSUER_AUTHORIZED_SHARES_ADJUSTMENT"
	TypeStockPlanPoolAdjustment             ObjectType = "TX_STOCK_PLAN_POOL_ADJUSTMENT"
	TypeStockPlanReturnToPool               ObjectType = "TX_STOCK_PLAN_RETURN_TO_POOL"
)

// AllTypes returns the complete closed enumeration, in a stable order.
// The registry-completeness test walks this list.
func AllTypes() []ObjectType {
	return []ObjectType{
		TypeIssuer,
		TypeStakeholder,
		TypeStockClass,
		TypeStockPlan,
		TypeStockLegendTemplate,
		TypeValuation,
		TypeVestingTerms,
		TypeDocument,

		TypeStockIssuance,
		TypeStockTransfer,
		TypeStockCancellation,
		TypeStockRetraction,
		TypeStockAcceptance,
		TypeStockRepurchase,
		TypeStockReissuance,
		TypeStockConversion,
		TypeStockConsolidation,

		TypeConvertibleIssuance,
		TypeConvertibleTransfer,
		TypeConvertibleCancellation,
		TypeConvertibleRetraction,
		TypeConvertibleAcceptance,
		TypeConvertibleConversion,

		TypeWarrantIssuance,
		TypeWarrantTransfer,
		TypeWarrantCancellation,
		TypeWarrantRetraction,
		TypeWarrantAcceptance,
		TypeWarrantExercise,

		TypeEquityCompensationIssuance,
		TypeEquityCompensationTransfer,
		TypeEquityCompensationCancellation,
		TypeEquityCompensationRetraction,
		TypeEquityCompensationAcceptance,
		TypeEquityCompensationExercise,
		TypeEquityCompensationRelease,

		TypeVestingStart,
		TypeVestingEvent,
		TypeVestingAcceleration,

		TypeStockClassSplit,
		TypeStockClassConversionRatioAdjustment,
		TypeStockClassAuthorizedSharesAdjustment,
		TypeIssuerAuthorizedSharesAdjustment,
		TypeStockPlanPoolAdjustment,
		TypeStockPlanReturnToPool,
	}
}

// IsTransaction reports whether the tag is a TX_* event rather than a
// standing object.
func (t ObjectType) IsTransaction() bool {
	return len(t) > 3 && t[:3] == "TX_"
}

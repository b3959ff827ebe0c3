/*
Package enums holds the bidirectional mapping tables between open-format
enumerated spellings and Canton ledger constructor labels, plus the
structural codecs for the three tagged-union families (conversion
mechanisms, conversion triggers, vesting schedules).

PURPOSE:
  Open-format enums are SCREAMING_SNAKE strings; the ledger stores Daml
  constructor labels (Ocf-prefixed PascalCase). Simple enums are pure
  label swaps through convert.Table. The structural families additionally
  carry kind-specific payloads and are translated by the codecs in
  mechanisms.go, triggers.go, and vesting.go.

TOTALITY:
  Each table covers its open-format enumeration completely; the tests
  assert expected row counts so a schema addition cannot land half-mapped.

SEE ALSO:
  - convert/enumtable.go: Table construction and lookup semantics
  - entities/: The converters these tables feed
*/
package enums

import (
	"fmt"

	"github.com/Fairmint/ocp-canton-sdk-sub006/convert"
)

// =============================================================================
// SIMPLE LABEL TABLES
// =============================================================================

// ValuationTypes maps valuation methodologies.
var ValuationTypes = convert.NewTable("valuation type",
	convert.Pair{Open: "409A", Ledger: "OcfValuation409A"},
)

// StockClassTypes maps stock class kinds.
var StockClassTypes = convert.NewTable("stock class type",
	convert.Pair{Open: "COMMON", Ledger: "OcfStockClassCommon"},
	convert.Pair{Open: "PREFERRED", Ledger: "OcfStockClassPreferred"},
)

// StakeholderTypes maps stakeholder kinds.
var StakeholderTypes = convert.NewTable("stakeholder type",
	convert.Pair{Open: "INDIVIDUAL", Ledger: "OcfStakeholderIndividual"},
	convert.Pair{Open: "INSTITUTION", Ledger: "OcfStakeholderInstitution"},
)

// StakeholderRelationships maps the current_relationship enumeration.
var StakeholderRelationships = convert.NewTable("stakeholder relationship",
	convert.Pair{Open: "ADVISOR", Ledger: "OcfRelAdvisor"},
	convert.Pair{Open: "BOARD_MEMBER", Ledger: "OcfRelBoardMember"},
	convert.Pair{Open: "CONSULTANT", Ledger: "OcfRelConsultant"},
	convert.Pair{Open: "EMPLOYEE", Ledger: "OcfRelEmployee"},
	convert.Pair{Open: "EX_ADVISOR", Ledger: "OcfRelExAdvisor"},
	convert.Pair{Open: "EX_CONSULTANT", Ledger: "OcfRelExConsultant"},
	convert.Pair{Open: "EX_EMPLOYEE", Ledger: "OcfRelExEmployee"},
	convert.Pair{Open: "EXECUTIVE", Ledger: "OcfRelExecutive"},
	convert.Pair{Open: "FOUNDER", Ledger: "OcfRelFounder"},
	convert.Pair{Open: "INVESTOR", Ledger: "OcfRelInvestor"},
	convert.Pair{Open: "NON_US_EMPLOYEE", Ledger: "OcfRelNonUSEmployee"},
	convert.Pair{Open: "OFFICER", Ledger: "OcfRelOfficer"},
	convert.Pair{Open: "OTHER", Ledger: "OcfRelOther"},
)

// CompensationTypes maps equity compensation kinds.
var CompensationTypes = convert.NewTable("compensation type",
	convert.Pair{Open: "OPTION_NSO", Ledger: "OcfCompOptionNSO"},
	convert.Pair{Open: "OPTION_ISO", Ledger: "OcfCompOptionISO"},
	convert.Pair{Open: "OPTION", Ledger: "OcfCompOption"},
	convert.Pair{Open: "RSU", Ledger: "OcfCompRSU"},
	convert.Pair{Open: "RSA", Ledger: "OcfCompRSA"},
	convert.Pair{Open: "SAR", Ledger: "OcfCompSAR"},
	convert.Pair{Open: "PHANTOM_STOCK", Ledger: "OcfCompPhantomStock"},
	convert.Pair{Open: "OTHER", Ledger: "OcfCompOther"},
)

// ConvertibleTypes maps convertible instrument kinds.
var ConvertibleTypes = convert.NewTable("convertible type",
	convert.Pair{Open: "NOTE", Ledger: "OcfConvNote"},
	convert.Pair{Open: "SAFE", Ledger: "OcfConvSafe"},
	convert.Pair{Open: "CONVERTIBLE_SECURITY", Ledger: "OcfConvSecurity"},
)

// StockPlanCancellationBehaviors maps what a plan does with cancelled
// grants.
var StockPlanCancellationBehaviors = convert.NewTable("cancellation behavior",
	convert.Pair{Open: "RETIRE", Ledger: "OcfCancelRetire"},
	convert.Pair{Open: "RETURN_TO_POOL", Ledger: "OcfCancelReturnToPool"},
	convert.Pair{Open: "HOLD_AS_CAPITAL_STOCK", Ledger: "OcfCancelHoldAsCapitalStock"},
	convert.Pair{Open: "DEFINED_PER_PLAN_SECURITY", Ledger: "OcfCancelDefinedPerPlanSecurity"},
)

// AllocationTypes maps the seven vesting allocation kinds.
var AllocationTypes = convert.NewTable("allocation type",
	convert.Pair{Open: "CUMULATIVE_ROUNDING", Ledger: "OcfAllocCumulativeRounding"},
	convert.Pair{Open: "CUMULATIVE_ROUND_DOWN", Ledger: "OcfAllocCumulativeRoundDown"},
	convert.Pair{Open: "FRONT_LOADED", Ledger: "OcfAllocFrontLoaded"},
	convert.Pair{Open: "BACK_LOADED", Ledger: "OcfAllocBackLoaded"},
	convert.Pair{Open: "FRONT_LOADED_TO_SINGLE_TRANCHE", Ledger: "OcfAllocFrontLoadedSingleTranche"},
	convert.Pair{Open: "BACK_LOADED_TO_SINGLE_TRANCHE", Ledger: "OcfAllocBackLoadedSingleTranche"},
	convert.Pair{Open: "FRACTIONAL", Ledger: "OcfAllocFractional"},
)

// TriggerTypes maps the six conversion-trigger timing kinds. The label is
// only half of a trigger: the structural payload goes through triggers.go.
var TriggerTypes = convert.NewTable("trigger type",
	convert.Pair{Open: "AUTOMATIC_ON_CONDITION", Ledger: "OcfTriggerAutomaticOnCondition"},
	convert.Pair{Open: "AUTOMATIC_ON_DATE", Ledger: "OcfTriggerAutomaticOnDate"},
	convert.Pair{Open: "ELECTIVE_ON_CONDITION", Ledger: "OcfTriggerElectiveOnCondition"},
	convert.Pair{Open: "ELECTIVE_ON_DATE", Ledger: "OcfTriggerElectiveOnDate"},
	convert.Pair{Open: "ELECTIVE_AT_WILL", Ledger: "OcfTriggerElectiveAtWill"},
	convert.Pair{Open: "UNSPECIFIED", Ledger: "OcfTriggerUnspecified"},
)

// DayCountConventions maps interest day-count conventions.
var DayCountConventions = convert.NewTable("day count convention",
	convert.Pair{Open: "ACTUAL_365", Ledger: "OcfDayCountActual365"},
	convert.Pair{Open: "30_360", Ledger: "OcfDayCount30_360"},
)

// InterestPayoutTypes maps interest payout modes.
var InterestPayoutTypes = convert.NewTable("interest payout",
	convert.Pair{Open: "DEFERRED", Ledger: "OcfPayoutDeferred"},
	convert.Pair{Open: "CASH", Ledger: "OcfPayoutCash"},
)

// CompoundingTypes maps interest compounding modes.
var CompoundingTypes = convert.NewTable("compounding type",
	convert.Pair{Open: "COMPOUNDING", Ledger: "OcfCompounding"},
	convert.Pair{Open: "SIMPLE", Ledger: "OcfSimpleInterest"},
)

// AccrualPeriodTypes maps interest accrual periods.
var AccrualPeriodTypes = convert.NewTable("accrual period",
	convert.Pair{Open: "DAILY", Ledger: "OcfAccrualDaily"},
	convert.Pair{Open: "MONTHLY", Ledger: "OcfAccrualMonthly"},
	convert.Pair{Open: "QUARTERLY", Ledger: "OcfAccrualQuarterly"},
	convert.Pair{Open: "SEMI_ANNUAL", Ledger: "OcfAccrualSemiAnnual"},
	convert.Pair{Open: "ANNUAL", Ledger: "OcfAccrualAnnual"},
)

// PeriodTypes maps termination-window period units.
var PeriodTypes = convert.NewTable("period type",
	convert.Pair{Open: "DAYS", Ledger: "OcfPeriodDays"},
	convert.Pair{Open: "MONTHS", Ledger: "OcfPeriodMonths"},
	convert.Pair{Open: "YEARS", Ledger: "OcfPeriodYears"},
)

// TerminationWindowReasons maps termination reasons on exercise windows.
var TerminationWindowReasons = convert.NewTable("termination reason",
	convert.Pair{Open: "VOLUNTARY_OTHER", Ledger: "OcfTermVoluntaryOther"},
	convert.Pair{Open: "VOLUNTARY_GOOD_CAUSE", Ledger: "OcfTermVoluntaryGoodCause"},
	convert.Pair{Open: "VOLUNTARY_RETIREMENT", Ledger: "OcfTermVoluntaryRetirement"},
	convert.Pair{Open: "INVOLUNTARY_OTHER", Ledger: "OcfTermInvoluntaryOther"},
	convert.Pair{Open: "INVOLUNTARY_DEATH", Ledger: "OcfTermInvoluntaryDeath"},
	convert.Pair{Open: "INVOLUNTARY_DISABILITY", Ledger: "OcfTermInvoluntaryDisability"},
	convert.Pair{Open: "INVOLUNTARY_WITH_CAUSE", Ledger: "OcfTermInvoluntaryWithCause"},
)

// DayOfMonthCodes maps the 31 vesting day-of-month codes: "01".."28" plus
// the three or-last-day codes for short months.
var DayOfMonthCodes = convert.NewTable("day of month", dayOfMonthPairs()...)

func dayOfMonthPairs() []convert.Pair {
	pairs := make([]convert.Pair, 0, 31)
	for d := 1; d <= 28; d++ {
		pairs = append(pairs, convert.Pair{
			Open:   fmt.Sprintf("%02d", d),
			Ledger: fmt.Sprintf("OcfDay%02d", d),
		})
	}
	pairs = append(pairs,
		convert.Pair{Open: "29_OR_LAST_DAY_OF_MONTH", Ledger: "OcfDay29OrLast"},
		convert.Pair{Open: "30_OR_LAST_DAY_OF_MONTH", Ledger: "OcfDay30OrLast"},
		convert.Pair{Open: "31_OR_LAST_DAY_OF_MONTH", Ledger: "OcfDay31OrLast"},
	)
	return pairs
}

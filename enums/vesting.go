/*
vesting.go - Vesting schedule tagged unions

PURPOSE:
  Vesting terms are a graph of conditions, each fired by a trigger. Both
  the trigger and the period inside a relative trigger are tagged unions:

  Vesting period:  DAYS | MONTHS (months carry a day-of-month code for
                   short months: "29_OR_LAST_DAY_OF_MONTH" etc.)
  Vesting trigger: VESTING_START_DATE | VESTING_SCHEDULE_ABSOLUTE |
                   VESTING_SCHEDULE_RELATIVE | VESTING_EVENT

  As with mechanisms, translation is structural and dispatch is closed:
  an unknown kind is a parse error naming the path, and a kind's required
  fields (e.g. relative_to_condition_id on relative triggers) are
  validated, never defaulted.

SEE ALSO:
  - tables.go: DayOfMonthCodes, AllocationTypes
  - entities/objects.go: The VESTING_TERMS converter using these
*/
package enums

import (
	"fmt"

	"github.com/Fairmint/ocp-canton-sdk-sub006/convert"
	"github.com/Fairmint/ocp-canton-sdk-sub006/ocf"
)

// =============================================================================
// VESTING PERIODS
// =============================================================================

// VestingPeriodToLedger converts a DAYS/MONTHS vesting period.
func VestingPeriodToLedger(e ocf.ObjectType, path string, open convert.Document) (convert.Document, error) {
	kind, _ := open["type"].(string)
	m := convert.NewLedgerMapperAt(e, open, path)
	m.ReqNumeric("length", "length")
	m.ReqNumeric("occurrences", "occurrences")

	var tag string
	switch kind {
	case "DAYS":
		tag = "OcfVestingPeriodDays"
	case "MONTHS":
		tag = "OcfVestingPeriodMonths"
		m.ReqEnum("day_of_month", "dayOfMonth", DayOfMonthCodes)
	case "":
		return nil, &convert.ValidationError{Entity: e, Path: path + ".type", Expected: "vesting period type"}
	default:
		return nil, &convert.ParseError{Entity: e, Path: path + ".type", Value: kind, Reason: "unknown vesting period type"}
	}

	value, err := m.Result()
	if err != nil {
		return nil, err
	}
	return convert.Document{"tag": tag, "value": value}, nil
}

// VestingPeriodToOpen is the inverse of VestingPeriodToLedger.
func VestingPeriodToOpen(e ocf.ObjectType, path string, ledger convert.Document) (convert.Document, error) {
	tag, _ := ledger["tag"].(string)
	value, _ := ledger["value"].(map[string]any)
	if value == nil {
		value = convert.Document{}
	}
	m := convert.NewOpenMapperAt(e, value, path)
	m.ReqNumeric("length", "length")
	m.ReqNumeric("occurrences", "occurrences")

	var kind string
	switch tag {
	case "OcfVestingPeriodDays":
		kind = "DAYS"
	case "OcfVestingPeriodMonths":
		kind = "MONTHS"
		m.ReqEnum("dayOfMonth", "day_of_month", DayOfMonthCodes)
	default:
		return nil, &convert.ParseError{Entity: e, Path: path + ".tag", Value: ledger["tag"], Reason: "unknown vesting period tag"}
	}

	open, err := m.Result()
	if err != nil {
		return nil, err
	}
	open["type"] = kind
	return open, nil
}

// =============================================================================
// VESTING TRIGGERS
// =============================================================================

// VestingTriggerToLedger converts one vesting trigger variant.
func VestingTriggerToLedger(e ocf.ObjectType, path string, open convert.Document) (convert.Document, error) {
	kind, _ := open["type"].(string)
	switch kind {
	case "VESTING_START_DATE":
		return convert.Document{"tag": "OcfVestTriggerStart", "value": convert.Document{}}, nil
	case "VESTING_EVENT":
		return convert.Document{"tag": "OcfVestTriggerEvent", "value": convert.Document{}}, nil
	case "VESTING_SCHEDULE_ABSOLUTE":
		m := convert.NewLedgerMapperAt(e, open, path)
		m.ReqDate("date", "date")
		value, err := m.Result()
		if err != nil {
			return nil, err
		}
		return convert.Document{"tag": "OcfVestTriggerAbsolute", "value": value}, nil
	case "VESTING_SCHEDULE_RELATIVE":
		m := convert.NewLedgerMapperAt(e, open, path)
		m.ReqString("relative_to_condition_id", "relativeToConditionId")
		periodRaw, ok := open["period"].(map[string]any)
		if !ok {
			return nil, &convert.ValidationError{Entity: e, Path: path + ".period", Expected: "vesting period object"}
		}
		period, err := VestingPeriodToLedger(e, path+".period", periodRaw)
		if err != nil {
			return nil, err
		}
		m.Set("period", period)
		value, err := m.Result()
		if err != nil {
			return nil, err
		}
		return convert.Document{"tag": "OcfVestTriggerRelative", "value": value}, nil
	case "":
		return nil, &convert.ValidationError{Entity: e, Path: path + ".type", Expected: "vesting trigger type"}
	default:
		return nil, &convert.ParseError{Entity: e, Path: path + ".type", Value: kind, Reason: "unknown vesting trigger type"}
	}
}

// VestingTriggerToOpen is the inverse of VestingTriggerToLedger.
func VestingTriggerToOpen(e ocf.ObjectType, path string, ledger convert.Document) (convert.Document, error) {
	tag, _ := ledger["tag"].(string)
	value, _ := ledger["value"].(map[string]any)
	if value == nil {
		value = convert.Document{}
	}
	switch tag {
	case "OcfVestTriggerStart":
		return convert.Document{"type": "VESTING_START_DATE"}, nil
	case "OcfVestTriggerEvent":
		return convert.Document{"type": "VESTING_EVENT"}, nil
	case "OcfVestTriggerAbsolute":
		m := convert.NewOpenMapperAt(e, value, path)
		m.ReqDate("date", "date")
		open, err := m.Result()
		if err != nil {
			return nil, err
		}
		open["type"] = "VESTING_SCHEDULE_ABSOLUTE"
		return open, nil
	case "OcfVestTriggerRelative":
		m := convert.NewOpenMapperAt(e, value, path)
		m.ReqString("relativeToConditionId", "relative_to_condition_id")
		periodRaw, ok := value["period"].(map[string]any)
		if !ok {
			return nil, &convert.ParseError{Entity: e, Path: path + ".period", Value: value["period"], Reason: "expected vesting period variant"}
		}
		period, err := VestingPeriodToOpen(e, path+".period", periodRaw)
		if err != nil {
			return nil, err
		}
		open, err := m.Result()
		if err != nil {
			return nil, err
		}
		open["type"] = "VESTING_SCHEDULE_RELATIVE"
		open["period"] = period
		return open, nil
	default:
		return nil, &convert.ParseError{Entity: e, Path: path + ".tag", Value: ledger["tag"], Reason: "unknown vesting trigger tag"}
	}
}

// =============================================================================
// VESTING CONDITIONS
// =============================================================================

// VestingConditionToLedger converts one node of the vesting graph.
func VestingConditionToLedger(e ocf.ObjectType, path string, open convert.Document) (convert.Document, error) {
	m := convert.NewLedgerMapperAt(e, open, path)
	m.ReqString("id", "id")
	m.OptString("description", "description")
	m.OptNumeric("quantity", "quantity")
	m.OptStringList("next_condition_ids", "nextConditionIds")

	if portionRaw, ok := open["portion"].(map[string]any); ok {
		pm := convert.NewLedgerMapperAt(e, portionRaw, path+".portion")
		pm.ReqNumeric("numerator", "numerator")
		pm.ReqNumeric("denominator", "denominator")
		pm.OptBool("remainder", "remainder")
		portion, err := pm.Result()
		if err != nil {
			return nil, err
		}
		m.Set("portion", portion)
	} else {
		m.Set("portion", nil)
	}

	triggerRaw, ok := open["trigger"].(map[string]any)
	if !ok {
		return nil, &convert.ValidationError{Entity: e, Path: path + ".trigger", Expected: "vesting trigger object"}
	}
	trigger, err := VestingTriggerToLedger(e, path+".trigger", triggerRaw)
	if err != nil {
		return nil, err
	}
	m.Set("trigger", trigger)
	return m.Result()
}

// VestingConditionToOpen is the inverse of VestingConditionToLedger.
func VestingConditionToOpen(e ocf.ObjectType, path string, ledger convert.Document) (convert.Document, error) {
	m := convert.NewOpenMapperAt(e, ledger, path)
	m.ReqString("id", "id")
	m.OptString("description", "description")
	m.OptNumeric("quantity", "quantity")
	m.OptStringList("nextConditionIds", "next_condition_ids")

	if portionRaw, ok := ledger["portion"].(map[string]any); ok {
		pm := convert.NewOpenMapperAt(e, portionRaw, path+".portion")
		pm.ReqNumeric("numerator", "numerator")
		pm.ReqNumeric("denominator", "denominator")
		pm.OptBool("remainder", "remainder")
		portion, err := pm.Result()
		if err != nil {
			return nil, err
		}
		m.Set("portion", portion)
	}

	triggerRaw, ok := ledger["trigger"].(map[string]any)
	if !ok {
		return nil, &convert.ParseError{Entity: e, Path: path + ".trigger", Value: ledger["trigger"], Reason: "expected vesting trigger variant"}
	}
	trigger, err := VestingTriggerToOpen(e, path+".trigger", triggerRaw)
	if err != nil {
		return nil, err
	}

	open, err := m.Result()
	if err != nil {
		return nil, err
	}
	open["trigger"] = trigger
	return open, nil
}

// VestingConditionsToLedger converts the full vesting_conditions array.
func VestingConditionsToLedger(e ocf.ObjectType, open convert.Document) ([]any, error) {
	raw, ok := open["vesting_conditions"].([]any)
	if !ok || len(raw) == 0 {
		return nil, &convert.ValidationError{Entity: e, Path: "vesting_conditions", Expected: "non-empty condition array"}
	}
	out := make([]any, 0, len(raw))
	for i, c := range raw {
		cond, ok := c.(map[string]any)
		if !ok {
			return nil, &convert.ValidationError{Entity: e, Path: fmt.Sprintf("vesting_conditions.%d", i), Expected: "condition object"}
		}
		converted, err := VestingConditionToLedger(e, fmt.Sprintf("vesting_conditions.%d", i), cond)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

// VestingConditionsToOpen is the inverse of VestingConditionsToLedger.
func VestingConditionsToOpen(e ocf.ObjectType, ledger []any) ([]any, error) {
	out := make([]any, 0, len(ledger))
	for i, c := range ledger {
		cond, ok := c.(map[string]any)
		if !ok {
			return nil, &convert.ParseError{Entity: e, Path: fmt.Sprintf("vestingConditions.%d", i), Value: c, Reason: "expected condition record"}
		}
		converted, err := VestingConditionToOpen(e, fmt.Sprintf("vestingConditions.%d", i), cond)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

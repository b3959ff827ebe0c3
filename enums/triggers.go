/*
triggers.go - Conversion triggers and conversion rights

PURPOSE:
  Convertible and warrant issuances carry a list of conversion triggers:
  WHEN the instrument converts (the trigger timing kind plus its
  kind-specific condition or date) and WHAT it converts into (a conversion
  right wrapping a mechanism from mechanisms.go).

SHAPES:
  Open trigger:  {type, trigger_id, nickname?, trigger_description?,
                  trigger_condition? | trigger_date?, conversion_right}
  Ledger trigger: {tag: <timing label>, value: {triggerId, nickname,
                  triggerDescription, triggerCondition/triggerDate,
                  conversionRight}}

  Every trigger requires trigger_id; conversion fails fast without it.
  Date-timed kinds require trigger_date, condition-timed kinds require
  trigger_condition.

SEE ALSO:
  - mechanisms.go: The mechanism variant inside each conversion right
  - tables.go: TriggerTypes (the six timing labels)
*/
package enums

import (
	"fmt"

	"github.com/Fairmint/ocp-canton-sdk-sub006/convert"
	"github.com/Fairmint/ocp-canton-sdk-sub006/ocf"
)

// =============================================================================
// CONVERSION RIGHTS
// =============================================================================

// conversionRightTags maps the open right discriminator to its ledger tag.
var conversionRightTags = convert.NewTable("conversion right type",
	convert.Pair{Open: "CONVERTIBLE_CONVERSION_RIGHT", Ledger: "OcfRightConvertible"},
	convert.Pair{Open: "WARRANT_CONVERSION_RIGHT", Ledger: "OcfRightWarrant"},
	convert.Pair{Open: "STOCK_CLASS_CONVERSION_RIGHT", Ledger: "OcfRightStockClass"},
)

// ConversionRightToLedger converts an open-format conversion right to the
// ledger {tag, value} record.
func ConversionRightToLedger(e ocf.ObjectType, path string, open convert.Document) (convert.Document, error) {
	kind, _ := open["type"].(string)
	if kind == "" {
		return nil, &convert.ValidationError{Entity: e, Path: path + ".type", Expected: "conversion right type"}
	}
	tag, ok := conversionRightTags.ToLedger(kind)
	if !ok {
		return nil, &convert.ParseError{Entity: e, Path: path + ".type", Value: kind, Reason: "unknown conversion right type"}
	}

	m := convert.NewLedgerMapperAt(e, open, path)
	m.OptBool("converts_to_future_round", "convertsToFutureRound")
	m.OptString("converts_to_stock_class_id", "convertsToStockClassId")

	mechRaw, ok := open["conversion_mechanism"].(map[string]any)
	if !ok {
		return nil, &convert.ValidationError{Entity: e, Path: path + ".conversion_mechanism", Expected: "conversion mechanism object"}
	}
	mech, err := MechanismToLedger(e, path+".conversion_mechanism", mechRaw)
	if err != nil {
		return nil, err
	}
	m.Set("conversionMechanism", mech)

	value, err := m.Result()
	if err != nil {
		return nil, err
	}
	return convert.Document{"tag": tag, "value": value}, nil
}

// ConversionRightToOpen is the inverse of ConversionRightToLedger.
func ConversionRightToOpen(e ocf.ObjectType, path string, ledger convert.Document) (convert.Document, error) {
	tag, _ := ledger["tag"].(string)
	kind, ok := conversionRightTags.ToOpen(tag)
	if !ok {
		return nil, &convert.ParseError{Entity: e, Path: path + ".tag", Value: ledger["tag"], Reason: "unknown conversion right tag"}
	}
	value, _ := ledger["value"].(map[string]any)
	if value == nil {
		value = convert.Document{}
	}

	m := convert.NewOpenMapperAt(e, value, path)
	m.OptBool("convertsToFutureRound", "converts_to_future_round")
	m.OptString("convertsToStockClassId", "converts_to_stock_class_id")

	mechRaw, ok := value["conversionMechanism"].(map[string]any)
	if !ok {
		return nil, &convert.ParseError{Entity: e, Path: path + ".conversionMechanism", Value: value["conversionMechanism"], Reason: "expected mechanism variant"}
	}
	mech, err := MechanismToOpen(e, path+".conversionMechanism", mechRaw)
	if err != nil {
		return nil, err
	}

	open, err := m.Result()
	if err != nil {
		return nil, err
	}
	open["type"] = kind
	open["conversion_mechanism"] = mech
	return open, nil
}

// =============================================================================
// CONVERSION TRIGGERS
// =============================================================================

// triggerNeedsDate lists the timing kinds that carry a trigger_date.
var triggerNeedsDate = map[string]bool{
	"AUTOMATIC_ON_DATE": true,
	"ELECTIVE_ON_DATE":  true,
}

// triggerNeedsCondition lists the timing kinds that carry a condition.
var triggerNeedsCondition = map[string]bool{
	"AUTOMATIC_ON_CONDITION": true,
	"ELECTIVE_ON_CONDITION":  true,
}

// TriggerToLedger converts one open-format conversion trigger to the
// ledger variant record.
func TriggerToLedger(e ocf.ObjectType, path string, open convert.Document) (convert.Document, error) {
	kind, _ := open["type"].(string)
	if kind == "" {
		return nil, &convert.ValidationError{Entity: e, Path: path + ".type", Expected: "trigger type"}
	}
	tag, ok := TriggerTypes.ToLedger(kind)
	if !ok {
		return nil, &convert.ParseError{Entity: e, Path: path + ".type", Value: kind, Reason: "unknown trigger type"}
	}

	m := convert.NewLedgerMapperAt(e, open, path)
	m.ReqString("trigger_id", "triggerId")
	m.OptString("nickname", "nickname")
	m.OptString("trigger_description", "triggerDescription")
	switch {
	case triggerNeedsDate[kind]:
		m.ReqDate("trigger_date", "triggerDate")
	case triggerNeedsCondition[kind]:
		m.ReqString("trigger_condition", "triggerCondition")
	}

	rightRaw, ok := open["conversion_right"].(map[string]any)
	if !ok {
		return nil, &convert.ValidationError{Entity: e, Path: path + ".conversion_right", Expected: "conversion right object"}
	}
	right, err := ConversionRightToLedger(e, path+".conversion_right", rightRaw)
	if err != nil {
		return nil, err
	}
	m.Set("conversionRight", right)

	value, err := m.Result()
	if err != nil {
		return nil, err
	}
	return convert.Document{"tag": tag, "value": value}, nil
}

// TriggerToOpen is the inverse of TriggerToLedger.
func TriggerToOpen(e ocf.ObjectType, path string, ledger convert.Document) (convert.Document, error) {
	tag, _ := ledger["tag"].(string)
	kind, ok := TriggerTypes.ToOpen(tag)
	if !ok {
		return nil, &convert.ParseError{Entity: e, Path: path + ".tag", Value: ledger["tag"], Reason: "unknown trigger tag"}
	}
	value, _ := ledger["value"].(map[string]any)
	if value == nil {
		value = convert.Document{}
	}

	m := convert.NewOpenMapperAt(e, value, path)
	m.ReqString("triggerId", "trigger_id")
	m.OptString("nickname", "nickname")
	m.OptString("triggerDescription", "trigger_description")
	switch {
	case triggerNeedsDate[kind]:
		m.ReqDate("triggerDate", "trigger_date")
	case triggerNeedsCondition[kind]:
		m.ReqString("triggerCondition", "trigger_condition")
	}

	rightRaw, ok := value["conversionRight"].(map[string]any)
	if !ok {
		return nil, &convert.ParseError{Entity: e, Path: path + ".conversionRight", Value: value["conversionRight"], Reason: "expected conversion right variant"}
	}
	right, err := ConversionRightToOpen(e, path+".conversionRight", rightRaw)
	if err != nil {
		return nil, err
	}

	open, err := m.Result()
	if err != nil {
		return nil, err
	}
	open["type"] = kind
	open["conversion_right"] = right
	return open, nil
}

// TriggersToLedger converts the whole conversion_triggers array of an
// issuance. The array is required and non-empty for convertibles and
// warrants.
func TriggersToLedger(e ocf.ObjectType, open convert.Document) ([]any, error) {
	raw, ok := open["conversion_triggers"].([]any)
	if !ok || len(raw) == 0 {
		return nil, &convert.ValidationError{Entity: e, Path: "conversion_triggers", Expected: "non-empty trigger array"}
	}
	out := make([]any, 0, len(raw))
	for i, t := range raw {
		trigger, ok := t.(map[string]any)
		if !ok {
			return nil, &convert.ValidationError{Entity: e, Path: fmt.Sprintf("conversion_triggers.%d", i), Expected: "trigger object"}
		}
		converted, err := TriggerToLedger(e, fmt.Sprintf("conversion_triggers.%d", i), trigger)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

// TriggersToOpen is the inverse of TriggersToLedger.
func TriggersToOpen(e ocf.ObjectType, ledger []any) ([]any, error) {
	out := make([]any, 0, len(ledger))
	for i, t := range ledger {
		trigger, ok := t.(map[string]any)
		if !ok {
			return nil, &convert.ParseError{Entity: e, Path: fmt.Sprintf("conversionTriggers.%d", i), Value: t, Reason: "expected trigger variant"}
		}
		converted, err := TriggerToOpen(e, fmt.Sprintf("conversionTriggers.%d", i), trigger)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

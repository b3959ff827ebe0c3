/*
Package entities holds the per-entity-type converter pairs and the
registry rows that make them dispatchable by tag.

PURPOSE:
  Each entity type gets a ToLedger/ToOpen pair built from the convert
  mappers and the enums tables. The pairs follow a small number of
  shapes:
  - Simple records (acceptances, retractions, vesting events):
    field copies plus date/optional normalization       -> simple.go
  - Quantity transactions (transfers, cancellations, ...):
    one parametric core, thin per-entity adapters        -> quantity.go
  - Issuances composing trigger/mechanism variants       -> issuance.go
  - Adjustments with structural re-nesting               -> adjustment.go
  - Standing objects (issuer, stock class, ...)          -> this file

  Converters never return partial payloads: the first missing required
  field or unknown enum aborts with the typed error.

KEY CONCEPTS IN THIS FILE (objects.go):
  The eight standing objects, plus the contact shapes (address, email,
  phone, tax ids) shared between issuer and stakeholder, and the
  shares-authorized value that is either a quantity or one of two
  sentinel spellings.

SEE ALSO:
  - register.go: The registry rows for every converter here
  - convert/mapper.go: The field primitives
*/
package entities

import (
	"fmt"

	"github.com/Fairmint/ocp-canton-sdk-sub006/convert"
	"github.com/Fairmint/ocp-canton-sdk-sub006/enums"
	"github.com/Fairmint/ocp-canton-sdk-sub006/ocf"
)

// =============================================================================
// SHARED VALUE SHAPES
// =============================================================================

// sharesAuthorizedToLedger handles authorized-share counts, which are
// either a quantity or one of two sentinel spellings ("UNLIMITED",
// "NOT APPLICABLE"). Sentinels pass through; quantities canonicalize.
func sharesAuthorizedToLedger(e ocf.ObjectType, path string, v any) (any, error) {
	if s, ok := v.(string); ok && (s == "UNLIMITED" || s == "NOT APPLICABLE") {
		return s, nil
	}
	n, err := convert.NumericValueToString(v)
	if err != nil {
		return nil, fmt.Errorf("%s: field %q: %w", e, path, err)
	}
	return n, nil
}

func reqSharesAuthorized(m *convert.LedgerMapper, e ocf.ObjectType, openKey, ledgerKey string) {
	if m.Err() != nil {
		return
	}
	v, ok := m.Src()[openKey]
	if !ok || v == nil || v == "" {
		m.Missing(openKey, "share count or UNLIMITED")
		return
	}
	out, err := sharesAuthorizedToLedger(e, openKey, v)
	if err != nil {
		m.Fail(err)
		return
	}
	m.Set(ledgerKey, out)
}

func optSharesAuthorized(m *convert.LedgerMapper, e ocf.ObjectType, openKey, ledgerKey string) {
	if m.Err() != nil {
		return
	}
	v, ok := m.Src()[openKey]
	if !ok || v == nil || v == "" {
		m.Set(ledgerKey, nil)
		return
	}
	out, err := sharesAuthorizedToLedger(e, openKey, v)
	if err != nil {
		m.Fail(err)
		return
	}
	m.Set(ledgerKey, out)
}

// sharesAuthorizedToOpen is the inverse; the ledger stores the same
// sentinel-or-quantity string.
func sharesAuthorizedToOpen(m *convert.OpenMapper, e ocf.ObjectType, ledgerKey, openKey string, required bool) {
	if m.Err() != nil {
		return
	}
	v := m.Src()[ledgerKey]
	if v == nil {
		if required {
			m.Fail(&convert.ParseError{Entity: e, Path: ledgerKey, Value: v, Reason: "expected share count"})
		}
		return
	}
	if s, ok := v.(string); ok && (s == "UNLIMITED" || s == "NOT APPLICABLE") {
		m.Set(openKey, s)
		return
	}
	n, err := convert.NumericValueToString(v)
	if err != nil {
		m.Fail(&convert.ParseError{Entity: e, Path: ledgerKey, Value: v, Reason: "not a share count"})
		return
	}
	m.Set(openKey, n)
}

// =============================================================================
// CONTACT SHAPES (issuer, stakeholder)
// =============================================================================

func addressToLedger(e ocf.ObjectType, path string, a convert.Document) (convert.Document, error) {
	m := convert.NewLedgerMapperAt(e, a, path)
	m.ReqString("address_type", "addressType")
	m.OptString("street_suite", "streetSuite")
	m.OptString("city", "city")
	m.OptString("country_subdivision", "countrySubdivision")
	m.ReqString("country", "country")
	m.OptString("postal_code", "postalCode")
	return m.Result()
}

func addressToOpen(e ocf.ObjectType, path string, a convert.Document) (convert.Document, error) {
	m := convert.NewOpenMapperAt(e, a, path)
	m.ReqString("addressType", "address_type")
	m.OptString("streetSuite", "street_suite")
	m.OptString("city", "city")
	m.OptString("countrySubdivision", "country_subdivision")
	m.ReqString("country", "country")
	m.OptString("postalCode", "postal_code")
	return m.Result()
}

func taxIDToLedger(e ocf.ObjectType, path string, t convert.Document) (convert.Document, error) {
	m := convert.NewLedgerMapperAt(e, t, path)
	m.ReqString("tax_id", "taxId")
	m.ReqString("country", "country")
	return m.Result()
}

func taxIDToOpen(e ocf.ObjectType, path string, t convert.Document) (convert.Document, error) {
	m := convert.NewOpenMapperAt(e, t, path)
	m.ReqString("taxId", "tax_id")
	m.ReqString("country", "country")
	return m.Result()
}

// objectListToLedger applies an element converter over an optional array;
// an absent or empty array becomes an explicit ledger null.
func objectListToLedger(e ocf.ObjectType, src convert.Document, openKey string,
	conv func(ocf.ObjectType, string, convert.Document) (convert.Document, error)) (any, error) {
	raw, ok := src[openKey].([]any)
	if !ok || len(raw) == 0 {
		return nil, nil
	}
	out := make([]any, 0, len(raw))
	for i, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &convert.ValidationError{Entity: e, Path: fmt.Sprintf("%s.%d", openKey, i), Expected: "object"}
		}
		converted, err := conv(e, fmt.Sprintf("%s.%d", openKey, i), obj)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

// objectListToOpen is the inverse; a ledger null or empty list omits the
// open-format key.
func objectListToOpen(e ocf.ObjectType, src convert.Document, ledgerKey string,
	conv func(ocf.ObjectType, string, convert.Document) (convert.Document, error)) ([]any, error) {
	raw, ok := src[ledgerKey].([]any)
	if !ok || len(raw) == 0 {
		return nil, nil
	}
	out := make([]any, 0, len(raw))
	for i, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &convert.ParseError{Entity: e, Path: fmt.Sprintf("%s.%d", ledgerKey, i), Value: item, Reason: "expected object"}
		}
		converted, err := conv(e, fmt.Sprintf("%s.%d", ledgerKey, i), obj)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

// =============================================================================
// ISSUER
// =============================================================================

// IssuerToLedger converts an ISSUER object to its ledger payload.
func IssuerToLedger(open convert.Document) (convert.Document, error) {
	const e = ocf.TypeIssuer
	m := convert.NewLedgerMapper(e, open)
	m.ReqString("id", "id")
	m.ReqString("legal_name", "legalName")
	m.OptString("dba", "dba")
	m.OptDate("formation_date", "formationDate")
	m.ReqString("country_of_formation", "countryOfFormation")
	m.OptString("country_subdivision_of_formation", "countrySubdivisionOfFormation")
	optSharesAuthorized(m, e, "initial_shares_authorized", "initialSharesAuthorized")
	m.OptStringList("comments", "comments")

	taxIDs, err := objectListToLedger(e, open, "tax_ids", taxIDToLedger)
	if err != nil {
		return nil, err
	}
	m.Set("taxIds", taxIDs)

	if addr, ok := open["address"].(map[string]any); ok {
		converted, err := addressToLedger(e, "address", addr)
		if err != nil {
			return nil, err
		}
		m.Set("address", converted)
	} else {
		m.Set("address", nil)
	}

	return m.Result()
}

// IssuerToOpen converts an ISSUER ledger payload back to the open format.
func IssuerToOpen(payload convert.Document) (convert.Document, error) {
	const e = ocf.TypeIssuer
	m := convert.NewOpenMapper(e, payload)
	m.ReqString("id", "id")
	m.ReqString("legalName", "legal_name")
	m.OptString("dba", "dba")
	m.OptDate("formationDate", "formation_date")
	m.ReqString("countryOfFormation", "country_of_formation")
	m.OptString("countrySubdivisionOfFormation", "country_subdivision_of_formation")
	sharesAuthorizedToOpen(m, e, "initialSharesAuthorized", "initial_shares_authorized", false)
	m.OptStringList("comments", "comments")

	taxIDs, err := objectListToOpen(e, payload, "taxIds", taxIDToOpen)
	if err != nil {
		return nil, err
	}
	m.Set("tax_ids", taxIDs)

	if addr, ok := payload["address"].(map[string]any); ok {
		converted, err := addressToOpen(e, "address", addr)
		if err != nil {
			return nil, err
		}
		m.Set("address", converted)
	}

	return m.Result()
}

// =============================================================================
// STAKEHOLDER
// =============================================================================

// StakeholderToLedger converts a STAKEHOLDER object.
func StakeholderToLedger(open convert.Document) (convert.Document, error) {
	const e = ocf.TypeStakeholder
	m := convert.NewLedgerMapper(e, open)
	m.ReqString("id", "id")
	m.ReqEnum("stakeholder_type", "stakeholderType", enums.StakeholderTypes)
	m.OptString("issuer_assigned_id", "issuerAssignedId")
	m.OptEnum("current_relationship", "currentRelationship", enums.StakeholderRelationships)
	m.OptStringList("comments", "comments")

	name, ok := open["name"].(map[string]any)
	if !ok {
		return nil, &convert.ValidationError{Entity: e, Path: "name", Expected: "name object"}
	}
	nm := convert.NewLedgerMapperAt(e, name, "name")
	nm.ReqString("legal_name", "legalName")
	nm.OptString("first_name", "firstName")
	nm.OptString("last_name", "lastName")
	converted, err := nm.Result()
	if err != nil {
		return nil, err
	}
	m.Set("name", converted)

	addresses, err := objectListToLedger(e, open, "addresses", addressToLedger)
	if err != nil {
		return nil, err
	}
	m.Set("addresses", addresses)

	taxIDs, err := objectListToLedger(e, open, "tax_ids", taxIDToLedger)
	if err != nil {
		return nil, err
	}
	m.Set("taxIds", taxIDs)

	return m.Result()
}

// StakeholderToOpen converts a STAKEHOLDER ledger payload back.
func StakeholderToOpen(payload convert.Document) (convert.Document, error) {
	const e = ocf.TypeStakeholder
	m := convert.NewOpenMapper(e, payload)
	m.ReqString("id", "id")
	m.ReqEnum("stakeholderType", "stakeholder_type", enums.StakeholderTypes)
	m.OptString("issuerAssignedId", "issuer_assigned_id")
	m.OptEnum("currentRelationship", "current_relationship", enums.StakeholderRelationships)
	m.OptStringList("comments", "comments")

	name, ok := payload["name"].(map[string]any)
	if !ok {
		return nil, &convert.ParseError{Entity: e, Path: "name", Value: payload["name"], Reason: "expected name record"}
	}
	nm := convert.NewOpenMapperAt(e, name, "name")
	nm.ReqString("legalName", "legal_name")
	nm.OptString("firstName", "first_name")
	nm.OptString("lastName", "last_name")
	converted, err := nm.Result()
	if err != nil {
		return nil, err
	}
	m.Set("name", converted)

	addresses, err := objectListToOpen(e, payload, "addresses", addressToOpen)
	if err != nil {
		return nil, err
	}
	m.Set("addresses", addresses)

	taxIDs, err := objectListToOpen(e, payload, "taxIds", taxIDToOpen)
	if err != nil {
		return nil, err
	}
	m.Set("tax_ids", taxIDs)

	return m.Result()
}

// =============================================================================
// STOCK CLASS
// =============================================================================

// StockClassToLedger converts a STOCK_CLASS object, including its
// conversion rights (tagged unions shared with convertible issuances).
func StockClassToLedger(open convert.Document) (convert.Document, error) {
	const e = ocf.TypeStockClass
	m := convert.NewLedgerMapper(e, open)
	m.ReqString("id", "id")
	m.ReqString("name", "name")
	m.ReqEnum("class_type", "classType", enums.StockClassTypes)
	m.ReqString("default_id_prefix", "defaultIdPrefix")
	reqSharesAuthorized(m, e, "initial_shares_authorized", "initialSharesAuthorized")
	m.ReqNumeric("votes_per_share", "votesPerShare")
	m.ReqNumeric("seniority", "seniority")
	m.OptMonetary("par_value", "parValue")
	m.OptMonetary("price_per_share", "pricePerShare")
	m.OptNumeric("liquidation_preference_multiple", "liquidationPreferenceMultiple")
	m.OptNumeric("participation_cap_multiple", "participationCapMultiple")
	m.OptDate("board_approval_date", "boardApprovalDate")
	m.OptDate("stockholder_approval_date", "stockholderApprovalDate")
	m.OptStringList("comments", "comments")

	rights, err := objectListToLedger(e, open, "conversion_rights",
		func(e ocf.ObjectType, path string, r convert.Document) (convert.Document, error) {
			return enums.ConversionRightToLedger(e, path, r)
		})
	if err != nil {
		return nil, err
	}
	m.Set("conversionRights", rights)

	return m.Result()
}

// StockClassToOpen converts a STOCK_CLASS ledger payload back.
func StockClassToOpen(payload convert.Document) (convert.Document, error) {
	const e = ocf.TypeStockClass
	m := convert.NewOpenMapper(e, payload)
	m.ReqString("id", "id")
	m.ReqString("name", "name")
	m.ReqEnum("classType", "class_type", enums.StockClassTypes)
	m.ReqString("defaultIdPrefix", "default_id_prefix")
	sharesAuthorizedToOpen(m, e, "initialSharesAuthorized", "initial_shares_authorized", true)
	m.ReqNumeric("votesPerShare", "votes_per_share")
	m.ReqNumeric("seniority", "seniority")
	m.OptMonetary("parValue", "par_value")
	m.OptMonetary("pricePerShare", "price_per_share")
	m.OptNumeric("liquidationPreferenceMultiple", "liquidation_preference_multiple")
	m.OptNumeric("participationCapMultiple", "participation_cap_multiple")
	m.OptDate("boardApprovalDate", "board_approval_date")
	m.OptDate("stockholderApprovalDate", "stockholder_approval_date")
	m.OptStringList("comments", "comments")

	rights, err := objectListToOpen(e, payload, "conversionRights",
		func(e ocf.ObjectType, path string, r convert.Document) (convert.Document, error) {
			return enums.ConversionRightToOpen(e, path, r)
		})
	if err != nil {
		return nil, err
	}
	m.Set("conversion_rights", rights)

	return m.Result()
}

// =============================================================================
// STOCK PLAN
// =============================================================================

// StockPlanToLedger converts a STOCK_PLAN object.
func StockPlanToLedger(open convert.Document) (convert.Document, error) {
	const e = ocf.TypeStockPlan
	m := convert.NewLedgerMapper(e, open)
	m.ReqString("id", "id")
	m.ReqString("plan_name", "planName")
	m.ReqStringList("stock_class_ids", "stockClassIds")
	m.ReqNumeric("initial_shares_reserved", "initialSharesReserved")
	m.OptEnum("default_cancellation_behavior", "defaultCancellationBehavior", enums.StockPlanCancellationBehaviors)
	m.OptDate("board_approval_date", "boardApprovalDate")
	m.OptDate("stockholder_approval_date", "stockholderApprovalDate")
	m.OptStringList("comments", "comments")
	return m.Result()
}

// StockPlanToOpen converts a STOCK_PLAN ledger payload back.
func StockPlanToOpen(payload convert.Document) (convert.Document, error) {
	const e = ocf.TypeStockPlan
	m := convert.NewOpenMapper(e, payload)
	m.ReqString("id", "id")
	m.ReqString("planName", "plan_name")
	m.ReqStringList("stockClassIds", "stock_class_ids")
	m.ReqNumeric("initialSharesReserved", "initial_shares_reserved")
	m.OptEnum("defaultCancellationBehavior", "default_cancellation_behavior", enums.StockPlanCancellationBehaviors)
	m.OptDate("boardApprovalDate", "board_approval_date")
	m.OptDate("stockholderApprovalDate", "stockholder_approval_date")
	m.OptStringList("comments", "comments")
	return m.Result()
}

// =============================================================================
// STOCK LEGEND TEMPLATE
// =============================================================================

// StockLegendTemplateToLedger converts a STOCK_LEGEND_TEMPLATE object.
func StockLegendTemplateToLedger(open convert.Document) (convert.Document, error) {
	m := convert.NewLedgerMapper(ocf.TypeStockLegendTemplate, open)
	m.ReqString("id", "id")
	m.ReqString("name", "name")
	m.ReqString("text", "text")
	m.OptStringList("comments", "comments")
	return m.Result()
}

// StockLegendTemplateToOpen converts the ledger payload back.
func StockLegendTemplateToOpen(payload convert.Document) (convert.Document, error) {
	m := convert.NewOpenMapper(ocf.TypeStockLegendTemplate, payload)
	m.ReqString("id", "id")
	m.ReqString("name", "name")
	m.ReqString("text", "text")
	m.OptStringList("comments", "comments")
	return m.Result()
}

// =============================================================================
// VALUATION
// =============================================================================

// ValuationToLedger converts a VALUATION object.
func ValuationToLedger(open convert.Document) (convert.Document, error) {
	m := convert.NewLedgerMapper(ocf.TypeValuation, open)
	m.ReqString("id", "id")
	m.ReqString("stock_class_id", "stockClassId")
	m.OptString("provider", "provider")
	m.OptDate("board_approval_date", "boardApprovalDate")
	m.OptDate("stockholder_approval_date", "stockholderApprovalDate")
	m.ReqMonetary("price_per_share", "pricePerShare")
	m.ReqDate("effective_date", "effectiveDate")
	m.ReqEnum("valuation_type", "valuationType", enums.ValuationTypes)
	m.OptStringList("comments", "comments")
	return m.Result()
}

// ValuationToOpen converts a VALUATION ledger payload back.
func ValuationToOpen(payload convert.Document) (convert.Document, error) {
	m := convert.NewOpenMapper(ocf.TypeValuation, payload)
	m.ReqString("id", "id")
	m.ReqString("stockClassId", "stock_class_id")
	m.OptString("provider", "provider")
	m.OptDate("boardApprovalDate", "board_approval_date")
	m.OptDate("stockholderApprovalDate", "stockholder_approval_date")
	m.ReqMonetary("pricePerShare", "price_per_share")
	m.ReqDate("effectiveDate", "effective_date")
	m.ReqEnum("valuationType", "valuation_type", enums.ValuationTypes)
	m.OptStringList("comments", "comments")
	return m.Result()
}

// =============================================================================
// VESTING TERMS
// =============================================================================

// VestingTermsToLedger converts a VESTING_TERMS object, including the
// full condition graph with its trigger/period tagged unions.
func VestingTermsToLedger(open convert.Document) (convert.Document, error) {
	const e = ocf.TypeVestingTerms
	m := convert.NewLedgerMapper(e, open)
	m.ReqString("id", "id")
	m.ReqString("name", "name")
	m.ReqString("description", "description")
	m.ReqEnum("allocation_type", "allocationType", enums.AllocationTypes)
	m.OptStringList("comments", "comments")

	conditions, err := enums.VestingConditionsToLedger(e, open)
	if err != nil {
		return nil, err
	}
	m.Set("vestingConditions", conditions)

	return m.Result()
}

// VestingTermsToOpen converts the ledger payload back.
func VestingTermsToOpen(payload convert.Document) (convert.Document, error) {
	const e = ocf.TypeVestingTerms
	m := convert.NewOpenMapper(e, payload)
	m.ReqString("id", "id")
	m.ReqString("name", "name")
	m.ReqString("description", "description")
	m.ReqEnum("allocationType", "allocation_type", enums.AllocationTypes)
	m.OptStringList("comments", "comments")

	raw, ok := payload["vestingConditions"].([]any)
	if !ok || len(raw) == 0 {
		return nil, &convert.ParseError{Entity: e, Path: "vestingConditions", Value: payload["vestingConditions"], Reason: "expected non-empty condition list"}
	}
	conditions, err := enums.VestingConditionsToOpen(e, raw)
	if err != nil {
		return nil, err
	}
	m.Set("vesting_conditions", conditions)

	return m.Result()
}

// =============================================================================
// DOCUMENT
// =============================================================================

func relatedObjectToLedger(e ocf.ObjectType, path string, r convert.Document) (convert.Document, error) {
	m := convert.NewLedgerMapperAt(e, r, path)
	m.ReqString("object_type", "objectType")
	m.ReqString("object_id", "objectId")
	return m.Result()
}

func relatedObjectToOpen(e ocf.ObjectType, path string, r convert.Document) (convert.Document, error) {
	m := convert.NewOpenMapperAt(e, r, path)
	m.ReqString("objectType", "object_type")
	m.ReqString("objectId", "object_id")
	return m.Result()
}

// DocumentToLedger converts a DOCUMENT object.
func DocumentToLedger(open convert.Document) (convert.Document, error) {
	const e = ocf.TypeDocument
	m := convert.NewLedgerMapper(e, open)
	m.ReqString("id", "id")
	m.OptString("path", "path")
	m.OptString("uri", "uri")
	m.ReqString("md5", "md5")
	m.OptStringList("comments", "comments")

	related, err := objectListToLedger(e, open, "related_objects", relatedObjectToLedger)
	if err != nil {
		return nil, err
	}
	m.Set("relatedObjects", related)

	return m.Result()
}

// DocumentToOpen converts a DOCUMENT ledger payload back.
func DocumentToOpen(payload convert.Document) (convert.Document, error) {
	const e = ocf.TypeDocument
	m := convert.NewOpenMapper(e, payload)
	m.ReqString("id", "id")
	m.OptString("path", "path")
	m.OptString("uri", "uri")
	m.ReqString("md5", "md5")
	m.OptStringList("comments", "comments")

	related, err := objectListToOpen(e, payload, "relatedObjects", relatedObjectToOpen)
	if err != nil {
		return nil, err
	}
	m.Set("related_objects", related)

	return m.Result()
}

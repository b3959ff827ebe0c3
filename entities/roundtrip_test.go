package entities_test

import (
	"testing"

	"github.com/Fairmint/ocp-canton-sdk-sub006/convert"
	"github.com/Fairmint/ocp-canton-sdk-sub006/ocf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/Fairmint/ocp-canton-sdk-sub006/entities"
)

// =============================================================================
// FIXTURES - one representative open-format object per entity type
// =============================================================================

func money(amount string) convert.Document {
	return convert.Document{"amount": amount, "currency": "USD"}
}

func safeTrigger(id string) convert.Document {
	return convert.Document{
		"type":       "ELECTIVE_AT_WILL",
		"trigger_id": id,
		"conversion_right": convert.Document{
			"type":                     "CONVERTIBLE_CONVERSION_RIGHT",
			"converts_to_future_round": true,
			"conversion_mechanism": convert.Document{
				"type":                     "SAFE_CONVERSION",
				"conversion_discount":      "20",
				"conversion_valuation_cap": money("10000000"),
			},
		},
	}
}

func issuanceBase(id string) convert.Document {
	return convert.Document{
		"id":             id,
		"security_id":    "sec-" + id,
		"date":           "2024-03-15",
		"custom_id":      "CS-1",
		"stakeholder_id": "sh-1",
		"security_law_exemptions": []any{
			convert.Document{"description": "Reg D", "jurisdiction": "US"},
		},
		"comments": []any{"issued at close"},
	}
}

func withBase(id string, extra convert.Document) convert.Document {
	doc := issuanceBase(id)
	for k, v := range extra {
		doc[k] = v
	}
	return doc
}

// fixtures returns one convertible open-format object per entity type.
// The round-trip loop below walks the whole closed set, so a missing
// fixture fails the test rather than silently shrinking coverage.
func fixtures() map[ocf.ObjectType]convert.Document {
	return map[ocf.ObjectType]convert.Document{
		ocf.TypeIssuer: {
			"id":                   "iss-1",
			"legal_name":           "Acme Inc.",
			"country_of_formation": "US",
			"formation_date":       "2020-01-02",
			"tax_ids":              []any{convert.Document{"tax_id": "12-3456789", "country": "US"}},
			"address": convert.Document{
				"address_type": "LEGAL",
				"country":      "US",
				"city":         "San Francisco",
			},
			"initial_shares_authorized": "10000000",
		},
		ocf.TypeStakeholder: {
			"id":                   "sh-1",
			"stakeholder_type":     "INDIVIDUAL",
			"name":                 convert.Document{"legal_name": "Jordan Doe", "first_name": "Jordan"},
			"current_relationship": "FOUNDER",
			"addresses": []any{
				convert.Document{"address_type": "CONTACT", "country": "US"},
			},
		},
		ocf.TypeStockClass: {
			"id":                        "sc-1",
			"name":                      "Series A Preferred",
			"class_type":                "PREFERRED",
			"default_id_prefix":         "PA-",
			"initial_shares_authorized": "5000000",
			"votes_per_share":           "1",
			"seniority":                 "2",
			"price_per_share":           money("1.25"),
			"conversion_rights": []any{
				convert.Document{
					"type":                       "STOCK_CLASS_CONVERSION_RIGHT",
					"converts_to_stock_class_id": "sc-common",
					"conversion_mechanism": convert.Document{
						"type":                 "FIXED_AMOUNT_CONVERSION",
						"converts_to_quantity": "100",
					},
				},
			},
		},
		ocf.TypeStockPlan: {
			"id":                      "sp-1",
			"plan_name":               "2024 Equity Incentive Plan",
			"stock_class_ids":         []any{"sc-common"},
			"initial_shares_reserved": "1000000",
			"default_cancellation_behavior": "RETURN_TO_POOL",
		},
		ocf.TypeStockLegendTemplate: {
			"id":   "slt-1",
			"name": "Transfer Restriction",
			"text": "THE SHARES MAY NOT BE TRANSFERRED...",
		},
		ocf.TypeValuation: {
			"id":              "val-1",
			"stock_class_id":  "sc-common",
			"price_per_share": money("0.42"),
			"effective_date":  "2024-02-01",
			"valuation_type":  "409A",
			"provider":        "Example Valuations LLC",
		},
		ocf.TypeVestingTerms: {
			"id":              "vt-1",
			"name":            "4 year / 1 year cliff",
			"description":     "Standard vesting",
			"allocation_type": "CUMULATIVE_ROUNDING",
			"vesting_conditions": []any{
				convert.Document{
					"id":                 "start",
					"trigger":            convert.Document{"type": "VESTING_START_DATE"},
					"next_condition_ids": []any{"cliff"},
				},
				convert.Document{
					"id":      "cliff",
					"portion": convert.Document{"numerator": "12", "denominator": "48"},
					"trigger": convert.Document{
						"type":                     "VESTING_SCHEDULE_RELATIVE",
						"relative_to_condition_id": "start",
						"period": convert.Document{
							"type": "MONTHS", "length": "12", "occurrences": "1",
							"day_of_month": "29_OR_LAST_DAY_OF_MONTH",
						},
					},
				},
			},
		},
		ocf.TypeDocument: {
			"id":   "doc-1",
			"md5":  "d41d8cd98f00b204e9800998ecf8427e",
			"path": "/documents/board-consent.pdf",
			"related_objects": []any{
				convert.Document{"object_type": "TX_STOCK_ISSUANCE", "object_id": "tx-si-1"},
			},
		},

		ocf.TypeStockIssuance: withBase("tx-si-1", convert.Document{
			"stock_class_id": "sc-1",
			"share_price":    money("1.25"),
			"quantity":       "22500.00",
			"cost_basis":     money("0.05"),
			"share_numbers_issued": []any{
				convert.Document{"starting_share_number": "1", "ending_share_number": "22500"},
			},
		}),
		ocf.TypeStockTransfer: {
			"id": "tx-st-1", "security_id": "sec-1", "date": "2024-04-01",
			"quantity":               "1000",
			"resulting_security_ids": []any{"sec-2"},
			"balance_security_id":    "sec-3",
		},
		ocf.TypeStockCancellation: {
			"id": "tx-sc-1", "security_id": "sec-1", "date": "2024-04-02",
			"quantity": "500", "reason_text": "unvested shares repurchased",
		},
		ocf.TypeStockRetraction: {
			"id": "tx-sr-1", "security_id": "sec-1", "date": "2024-04-03",
			"reason_text": "issued in error",
		},
		ocf.TypeStockAcceptance: {
			"id": "tx-sa-1", "security_id": "sec-1", "date": "2024-04-04",
		},
		ocf.TypeStockRepurchase: {
			"id": "tx-srp-1", "security_id": "sec-1", "date": "2024-04-05",
			"quantity": "250", "price": money("1.30"),
		},
		ocf.TypeStockReissuance: {
			"id": "tx-sri-1", "security_id": "sec-1", "date": "2024-04-06",
			"resulting_security_ids": []any{"sec-4", "sec-5"},
		},
		ocf.TypeStockConversion: {
			"id": "tx-scv-1", "security_id": "sec-1", "date": "2024-04-07",
			"quantity_converted":     "100",
			"resulting_security_ids": []any{"sec-6"},
		},
		ocf.TypeStockConsolidation: {
			"id": "tx-scn-1", "date": "2024-04-08",
			"security_ids":          []any{"sec-4", "sec-5"},
			"resulting_security_id": "sec-7",
		},

		ocf.TypeConvertibleIssuance: withBase("tx-ci-1", convert.Document{
			"investment_amount":   money("500000"),
			"convertible_type":    "SAFE",
			"seniority":           "1",
			"conversion_triggers": []any{safeTrigger("trig-1")},
		}),
		ocf.TypeConvertibleTransfer: {
			"id": "tx-ct-1", "security_id": "sec-c1", "date": "2024-05-01",
			"amount":                 money("250000"),
			"resulting_security_ids": []any{"sec-c2"},
		},
		ocf.TypeConvertibleCancellation: {
			"id": "tx-cc-1", "security_id": "sec-c1", "date": "2024-05-02",
			"amount": money("100000"), "reason_text": "repaid",
		},
		ocf.TypeConvertibleRetraction: {
			"id": "tx-cr-1", "security_id": "sec-c1", "date": "2024-05-03",
			"reason_text": "issued in error",
		},
		ocf.TypeConvertibleAcceptance: {
			"id": "tx-ca-1", "security_id": "sec-c1", "date": "2024-05-04",
		},
		ocf.TypeConvertibleConversion: {
			"id": "tx-ccv-1", "security_id": "sec-c1", "date": "2024-05-05",
			"trigger_id":             "trig-1",
			"amount_converted":       money("500000"),
			"resulting_security_ids": []any{"sec-s1"},
		},

		ocf.TypeWarrantIssuance: withBase("tx-wi-1", convert.Document{
			"purchase_price":    money("100"),
			"exercise_price":    money("2.50"),
			"quantity":          "10000",
			"exercise_triggers": []any{safeTrigger("trig-w1")},
		}),
		ocf.TypeWarrantTransfer: {
			"id": "tx-wt-1", "security_id": "sec-w1", "date": "2024-06-01",
			"quantity":               "5000",
			"resulting_security_ids": []any{"sec-w2"},
		},
		ocf.TypeWarrantCancellation: {
			"id": "tx-wc-1", "security_id": "sec-w1", "date": "2024-06-02",
			"quantity": "5000", "reason_text": "expired",
		},
		ocf.TypeWarrantRetraction: {
			"id": "tx-wr-1", "security_id": "sec-w1", "date": "2024-06-03",
			"reason_text": "issued in error",
		},
		ocf.TypeWarrantAcceptance: {
			"id": "tx-wa-1", "security_id": "sec-w1", "date": "2024-06-04",
		},
		ocf.TypeWarrantExercise: {
			"id": "tx-we-1", "security_id": "sec-w1", "date": "2024-06-05",
			"quantity":               "2500",
			"resulting_security_ids": []any{"sec-s2"},
		},

		ocf.TypeEquityCompensationIssuance: withBase("tx-ei-1", convert.Document{
			"compensation_type": "OPTION_ISO",
			"quantity":          "40000",
			"stock_plan_id":     "sp-1",
			"exercise_price":    money("0.42"),
			"vesting_terms_id":  "vt-1",
			"termination_exercise_windows": []any{
				convert.Document{"reason": "VOLUNTARY_OTHER", "period": "3", "period_type": "MONTHS"},
			},
		}),
		ocf.TypeEquityCompensationTransfer: {
			"id": "tx-et-1", "security_id": "sec-e1", "date": "2024-07-01",
			"quantity":               "1000",
			"resulting_security_ids": []any{"sec-e2"},
		},
		ocf.TypeEquityCompensationCancellation: {
			"id": "tx-ec-1", "security_id": "sec-e1", "date": "2024-07-02",
			"quantity": "1000", "reason_text": "termination",
		},
		ocf.TypeEquityCompensationRetraction: {
			"id": "tx-er-1", "security_id": "sec-e1", "date": "2024-07-03",
			"reason_text": "issued in error",
		},
		ocf.TypeEquityCompensationAcceptance: {
			"id": "tx-ea-1", "security_id": "sec-e1", "date": "2024-07-04",
		},
		ocf.TypeEquityCompensationExercise: {
			"id": "tx-ee-1", "security_id": "sec-e1", "date": "2024-07-05",
			"quantity":               "10000",
			"resulting_security_ids": []any{"sec-s3"},
		},
		ocf.TypeEquityCompensationRelease: {
			"id": "tx-el-1", "security_id": "sec-e1", "date": "2024-07-06",
			"quantity":               "5000",
			"resulting_security_ids": []any{"sec-s4"},
		},

		ocf.TypeVestingStart: {
			"id": "tx-vs-1", "security_id": "sec-e1", "date": "2024-03-15",
			"vesting_condition_id": "start",
		},
		ocf.TypeVestingEvent: {
			"id": "tx-ve-1", "security_id": "sec-e1", "date": "2024-09-15",
			"vesting_condition_id": "cliff",
		},
		ocf.TypeVestingAcceleration: {
			"id": "tx-va-1", "security_id": "sec-e1", "date": "2024-10-01",
			"quantity": "10000", "reason_text": "change of control",
		},

		ocf.TypeStockClassSplit: {
			"id": "tx-spl-1", "date": "2024-08-01", "stock_class_id": "sc-1",
			"split_ratio_numerator": "10", "split_ratio_denominator": "1",
		},
		ocf.TypeStockClassConversionRatioAdjustment: {
			"id": "tx-cra-1", "date": "2024-08-02", "stock_class_id": "sc-1",
			"new_ratio_numerator": "2", "new_ratio_denominator": "1",
		},
		ocf.TypeStockClassAuthorizedSharesAdjustment: {
			"id": "tx-casa-1", "date": "2024-08-03", "stock_class_id": "sc-1",
			"new_shares_authorized": "20000000",
		},
		ocf.TypeIssuerAuthorizedSharesAdjustment: {
			"id": "tx-iasa-1", "date": "2024-08-04", "issuer_id": "iss-1",
			"new_shares_authorized": "UNLIMITED",
		},
		ocf.TypeStockPlanPoolAdjustment: {
			"id": "tx-spa-1", "date": "2024-08-05", "stock_plan_id": "sp-1",
			"shares_reserved": "1500000",
		},
		ocf.TypeStockPlanReturnToPool: {
			"id": "tx-rtp-1", "date": "2024-08-06", "security_id": "sec-e1",
			"stock_plan_id": "sp-1", "quantity": "1000",
			"reason_text": "cancelled grant",
		},
	}
}

// =============================================================================
// ROUND-TRIP PROPERTY
// =============================================================================

func TestRoundTrip_EveryEntityType(t *testing.T) {
	// GIVEN: A representative open-format object for every tag in the
	//        closed set
	// WHEN: Converting to the ledger payload and back
	// THEN: The result is equivalent to the input, and the input itself is
	//       never mutated

	fx := fixtures()
	for _, typ := range ocf.AllTypes() {
		open, ok := fx[typ]
		require.True(t, ok, "no fixture for %s", typ)

		pristine := convert.CloneDocument(open)

		ledger, err := convert.ConvertToLedger(typ, open)
		require.NoError(t, err, "%s: toLedger", typ)
		back, err := convert.ConvertToOpen(typ, ledger)
		require.NoError(t, err, "%s: toOpen", typ)

		assert.True(t, convert.Equivalent(open, back),
			"%s: round trip not equivalent\n in: %#v\nout: %#v", typ, open, back)
		assert.Equal(t, pristine, open, "%s: input mutated", typ)
	}
}

// =============================================================================
// SCENARIO TESTS
// =============================================================================

func TestStockIssuance_NormalizesQuantitySpellings(t *testing.T) {
	// GIVEN: The same issuance with quantity as "22500.00", "22500", and
	//        the JSON number 22500
	// WHEN: Converting each to the ledger payload
	// THEN: All three produce the identical canonical payload

	variants := []any{"22500.00", "22500", float64(22500)}
	var payloads []convert.Document
	for _, q := range variants {
		open := fixtures()[ocf.TypeStockIssuance]
		open["quantity"] = q
		out, err := convert.ConvertToLedger(ocf.TypeStockIssuance, open)
		require.NoError(t, err)
		payloads = append(payloads, out)
	}
	assert.Equal(t, "22500", payloads[0]["quantity"])
	assert.Equal(t, payloads[0], payloads[1])
	assert.Equal(t, payloads[0], payloads[2])
}

func TestStockIssuance_MissingRequiredField(t *testing.T) {
	// GIVEN: A stock issuance without its stakeholder
	// WHEN: Converting
	// THEN: A ValidationError naming the field; no partial payload

	open := fixtures()[ocf.TypeStockIssuance]
	delete(open, "stakeholder_id")
	out, err := convert.ConvertToLedger(ocf.TypeStockIssuance, open)
	require.Error(t, err)
	assert.Nil(t, out)

	var verr *convert.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "stakeholder_id", verr.Path)
	assert.True(t, convert.IsClientError(err))
}

func TestStockIssuance_OptionalFieldsBecomeExplicitNulls(t *testing.T) {
	// GIVEN: An issuance omitting every optional field
	// WHEN: Converting to the ledger payload
	// THEN: The optional keys are present with explicit nulls, and the
	//       reverse conversion omits them again

	open := convert.Document{
		"id": "tx-min", "security_id": "sec-min", "date": "2024-01-01",
		"custom_id": "CS-9", "stakeholder_id": "sh-9",
		"stock_class_id": "sc-1", "share_price": money("1"), "quantity": "10",
	}
	ledger, err := convert.ConvertToLedger(ocf.TypeStockIssuance, open)
	require.NoError(t, err)

	for _, key := range []string{"boardApprovalDate", "costBasis", "stockPlanId", "comments"} {
		v, present := ledger[key]
		assert.True(t, present, "ledger key %q should be present", key)
		assert.Nil(t, v, "ledger key %q should be null", key)
	}

	back, err := convert.ConvertToOpen(ocf.TypeStockIssuance, ledger)
	require.NoError(t, err)
	for _, key := range []string{"board_approval_date", "cost_basis", "stock_plan_id", "comments"} {
		_, present := back[key]
		assert.False(t, present, "open key %q should be absent", key)
	}
}

func TestStockClassSplit_RenestsRatio(t *testing.T) {
	// GIVEN: A split stated as flat numerator/denominator fields
	// WHEN: Converting to the ledger payload
	// THEN: The ratio is nested under splitRatio, and flattens back

	open := fixtures()[ocf.TypeStockClassSplit]
	ledger, err := convert.ConvertToLedger(ocf.TypeStockClassSplit, open)
	require.NoError(t, err)

	ratio, ok := ledger["splitRatio"].(map[string]any)
	require.True(t, ok, "splitRatio should be a nested record")
	assert.Equal(t, "10", ratio["numerator"])
	assert.Equal(t, "1", ratio["denominator"])
	_, flat := ledger["split_ratio_numerator"]
	assert.False(t, flat)

	back, err := convert.ConvertToOpen(ocf.TypeStockClassSplit, ledger)
	require.NoError(t, err)
	assert.Equal(t, "10", back["split_ratio_numerator"])
	assert.Equal(t, "1", back["split_ratio_denominator"])
}

func TestConversionRatioAdjustment_InjectsConversionPriceDefault(t *testing.T) {
	// GIVEN: A ratio adjustment, which has no conversion price in the open
	//        format
	// WHEN: Converting to the ledger payload
	// THEN: The mechanism wraps the ratio and carries the required
	//       {amount: "0", currency: "USD"} default; the reverse path drops
	//       it so the round trip stays clean

	open := fixtures()[ocf.TypeStockClassConversionRatioAdjustment]
	ledger, err := convert.ConvertToLedger(ocf.TypeStockClassConversionRatioAdjustment, open)
	require.NoError(t, err)

	mech := ledger["newRatioConversionMechanism"].(map[string]any)
	assert.Equal(t, "OcfMechRatioConversion", mech["tag"])
	value := mech["value"].(map[string]any)
	assert.Equal(t, convert.Document{"amount": "0", "currency": "USD"}, value["conversionPrice"])
	assert.Equal(t, convert.Document{"numerator": "2", "denominator": "1"}, value["ratio"])

	back, err := convert.ConvertToOpen(ocf.TypeStockClassConversionRatioAdjustment, ledger)
	require.NoError(t, err)
	_, leaked := back["conversion_price"]
	assert.False(t, leaked, "injected default must not leak into the open format")
	assert.True(t, convert.Equivalent(open, back))
}

func TestWarrantExercise_SingularResultingSecurity(t *testing.T) {
	// GIVEN: An exercise whose open format carries a one-element
	//        resulting_security_ids array
	// WHEN: Converting to the ledger payload
	// THEN: The ledger stores the single id; two elements are rejected

	open := fixtures()[ocf.TypeWarrantExercise]
	ledger, err := convert.ConvertToLedger(ocf.TypeWarrantExercise, open)
	require.NoError(t, err)
	assert.Equal(t, "sec-s2", ledger["resultingSecurityId"])
	_, hasList := ledger["resultingSecurityIds"]
	assert.False(t, hasList)

	back, err := convert.ConvertToOpen(ocf.TypeWarrantExercise, ledger)
	require.NoError(t, err)
	assert.Equal(t, []any{"sec-s2"}, back["resulting_security_ids"])

	open["resulting_security_ids"] = []any{"sec-a", "sec-b"}
	_, err = convert.ConvertToLedger(ocf.TypeWarrantExercise, open)
	assert.ErrorIs(t, err, convert.ErrValidation)
}

func TestConvertibleIssuance_TriggerWithoutIDFailsFast(t *testing.T) {
	// GIVEN: A convertible issuance whose second trigger lacks trigger_id
	// WHEN: Converting
	// THEN: The whole conversion fails with the dotted path of the bad
	//       trigger; nothing is emitted

	open := fixtures()[ocf.TypeConvertibleIssuance]
	bad := safeTrigger("")
	delete(bad, "trigger_id")
	open["conversion_triggers"] = []any{safeTrigger("trig-1"), bad}

	out, err := convert.ConvertToLedger(ocf.TypeConvertibleIssuance, open)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, convert.ErrValidation)
	assert.Contains(t, err.Error(), "conversion_triggers.1.trigger_id")
}

func TestIssuerAdjustment_SentinelSharesPassThrough(t *testing.T) {
	// GIVEN: An issuer adjustment to UNLIMITED authorized shares
	// WHEN: Converting both ways
	// THEN: The sentinel passes through untouched, never canonicalized

	open := fixtures()[ocf.TypeIssuerAuthorizedSharesAdjustment]
	ledger, err := convert.ConvertToLedger(ocf.TypeIssuerAuthorizedSharesAdjustment, open)
	require.NoError(t, err)
	assert.Equal(t, "UNLIMITED", ledger["newSharesAuthorized"])

	back, err := convert.ConvertToOpen(ocf.TypeIssuerAuthorizedSharesAdjustment, ledger)
	require.NoError(t, err)
	assert.Equal(t, "UNLIMITED", back["new_shares_authorized"])
}

func TestStockClass_UnknownEnumValueRejected(t *testing.T) {
	// GIVEN: A stock class with a class type outside the enumeration
	// WHEN: Converting
	// THEN: A ParseError naming the field and offending value

	open := fixtures()[ocf.TypeStockClass]
	open["class_type"] = "SUPERVOTING"
	_, err := convert.ConvertToLedger(ocf.TypeStockClass, open)
	require.Error(t, err)
	assert.ErrorIs(t, err, convert.ErrParse)
	assert.Contains(t, err.Error(), "SUPERVOTING")
}

func TestStakeholder_LedgerEnumLabelUnknown(t *testing.T) {
	// GIVEN: A ledger stakeholder payload carrying an unmapped label
	// WHEN: Converting back to the open format
	// THEN: A ParseError, never a guessed enum

	open := fixtures()[ocf.TypeStakeholder]
	ledger, err := convert.ConvertToLedger(ocf.TypeStakeholder, open)
	require.NoError(t, err)
	ledger["stakeholderType"] = "OcfStakeholderRobot"

	_, err = convert.ConvertToOpen(ocf.TypeStakeholder, ledger)
	assert.ErrorIs(t, err, convert.ErrParse)
}

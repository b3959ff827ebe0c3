package convert_test

import (
	"testing"

	"github.com/Fairmint/ocp-canton-sdk-sub006/convert"
	"github.com/Fairmint/ocp-canton-sdk-sub006/ocf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	// Registers every entity-type row.
	_ "github.com/Fairmint/ocp-canton-sdk-sub006/entities"
)

// =============================================================================
// COMPLETENESS TESTS
// =============================================================================

func TestRegistry_CoversEveryEntityType(t *testing.T) {
	// GIVEN: The closed entity-type enumeration
	// WHEN: Looking up each tag
	// THEN: Every tag has a complete row, and nothing extra is registered

	for _, typ := range ocf.AllTypes() {
		e, ok := convert.Lookup(typ)
		require.True(t, ok, "no registry row for %s", typ)
		assert.NotEmpty(t, e.LedgerField, "%s: missing ledger field", typ)
		assert.NotEmpty(t, e.CreateChoice, "%s: missing create choice", typ)
		assert.NotEmpty(t, e.EditChoice, "%s: missing edit choice", typ)
		assert.NotEmpty(t, e.DeleteChoice, "%s: missing delete choice", typ)
		assert.NotNil(t, e.ToLedger, "%s: missing toLedger", typ)
		assert.NotNil(t, e.ToOpen, "%s: missing toOpen", typ)
	}
	assert.Len(t, convert.Entries(), len(ocf.AllTypes()))
}

func TestRegistry_LedgerFieldsAreUnique(t *testing.T) {
	// GIVEN: All registry rows
	// WHEN: Collecting ledger field names and choice labels
	// THEN: No two entity types collide

	fields := map[string]ocf.ObjectType{}
	choices := map[string]ocf.ObjectType{}
	for _, e := range convert.Entries() {
		prev, dup := fields[e.LedgerField]
		assert.False(t, dup, "field %q used by both %s and %s", e.LedgerField, prev, e.Type)
		fields[e.LedgerField] = e.Type

		for _, c := range []string{e.CreateChoice, e.EditChoice, e.DeleteChoice} {
			prev, dup := choices[c]
			assert.False(t, dup, "choice %q used by both %s and %s", c, prev, e.Type)
			choices[c] = e.Type
		}
	}
}

// =============================================================================
// DISPATCH TESTS
// =============================================================================

func TestConvertToLedger_UnknownType(t *testing.T) {
	// GIVEN: A tag outside the closed set
	// WHEN: Dispatching a conversion
	// THEN: UnknownEntityTypeError - a caller bug, not a validation failure

	_, err := convert.ConvertToLedger(ocf.ObjectType("TX_BOGUS"), convert.Document{"id": "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, convert.ErrUnknownEntityType)
	assert.False(t, convert.IsClientError(err))

	_, err = convert.ConvertToOpen(ocf.ObjectType("TX_BOGUS"), convert.Document{"id": "x"})
	assert.ErrorIs(t, err, convert.ErrUnknownEntityType)
}

func TestConvertToLedger_DispatchesByTag(t *testing.T) {
	// GIVEN: A minimal valuation object
	// WHEN: Converting through the generic dispatcher
	// THEN: The same result as the named converter

	open := convert.Document{
		"id":              "val-1",
		"stock_class_id":  "sc-1",
		"price_per_share": convert.Document{"amount": "1.25", "currency": "USD"},
		"effective_date":  "2024-01-15",
		"valuation_type":  "409A",
	}
	out, err := convert.ConvertToLedger(ocf.TypeValuation, open)
	require.NoError(t, err)
	assert.Equal(t, "OcfValuation409A", out["valuationType"])
	assert.Equal(t, "2024-01-15T00:00:00.000Z", out["effectiveDate"])
}

// =============================================================================
// PAYLOAD EXTRACTION TESTS
// =============================================================================

func TestExtractEntityPayload_BareCreateArgument(t *testing.T) {
	// GIVEN: A raw record that is already the create argument
	// WHEN: Extracting the issuer payload
	// THEN: The nested object under the registered field comes back

	raw := convert.Document{
		"issuer": convert.Document{"id": "iss-1", "legalName": "Acme Inc."},
	}
	payload, err := convert.ExtractEntityPayload(ocf.TypeIssuer, raw)
	require.NoError(t, err)
	assert.Equal(t, "iss-1", payload["id"])
}

func TestExtractEntityPayload_QueryEnvelope(t *testing.T) {
	// GIVEN: A full query envelope wrapping the create argument
	// WHEN: Extracting
	// THEN: The extractor descends created -> createdEvent -> createArgument

	raw := convert.Document{
		"created": convert.Document{
			"createdEvent": convert.Document{
				"createArgument": convert.Document{
					"stockIssuance": convert.Document{"id": "tx-1"},
				},
			},
		},
	}
	payload, err := convert.ExtractEntityPayload(ocf.TypeStockIssuance, raw)
	require.NoError(t, err)
	assert.Equal(t, "tx-1", payload["id"])
}

func TestExtractEntityPayload_MissingField(t *testing.T) {
	// GIVEN: A record lacking the registered entity field
	// WHEN: Extracting
	// THEN: SchemaMismatchError naming the expected field

	_, err := convert.ExtractEntityPayload(ocf.TypeIssuer, convert.Document{"other": "x"})
	require.Error(t, err)
	var serr *convert.SchemaMismatchError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "issuer", serr.ExpectedField)
	assert.True(t, convert.IsClientError(err))
}

func TestExtractEntityPayload_FieldNotAnObject(t *testing.T) {
	_, err := convert.ExtractEntityPayload(ocf.TypeIssuer, convert.Document{"issuer": "not an object"})
	assert.ErrorIs(t, err, convert.ErrSchemaMismatch)
}

func TestExtractEntityPayload_UnknownType(t *testing.T) {
	_, err := convert.ExtractEntityPayload(ocf.ObjectType("TX_BOGUS"), convert.Document{})
	assert.ErrorIs(t, err, convert.ErrUnknownEntityType)
}

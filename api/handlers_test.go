/*
handlers_test.go - Unit tests for API handlers

Tests for:
- Conversion endpoints and the error taxonomy -> HTTP status mapping
- Registry and diff endpoints
- Sync planning over the mirror
*/
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fairmint/ocp-canton-sdk-sub006/convert"
	"github.com/Fairmint/ocp-canton-sdk-sub006/ocf"
	"github.com/Fairmint/ocp-canton-sdk-sub006/store/sqlite"

	_ "github.com/Fairmint/ocp-canton-sdk-sub006/entities"
)

func newTestServer(t *testing.T) *httptest.Server {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	srv := httptest.NewServer(NewRouter(NewHandler(store)))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func stakeholderDoc(id string) convert.Document {
	return convert.Document{
		"object_type":      string(ocf.TypeStakeholder),
		"id":               id,
		"name":             convert.Document{"legal_name": "Ada Example"},
		"stakeholder_type": "INDIVIDUAL",
	}
}

// =============================================================================
// CONVERSION ENDPOINT TESTS
// =============================================================================

func TestConvertToLedger_Success(t *testing.T) {
	// GIVEN: A valid open-format stakeholder
	// WHEN: Converting it to a ledger payload over HTTP
	// THEN: 200 with the camelCase payload

	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/convert/STAKEHOLDER/ledger", stakeholderDoc("sh-1"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload convert.Document
	decodeBody(t, resp, &payload)
	assert.Equal(t, "sh-1", payload["id"])
	assert.Equal(t, "OcfStakeholderIndividual", payload["stakeholderType"])
}

func TestConvertToLedger_ValidationErrorIs400(t *testing.T) {
	// GIVEN: A stakeholder missing its required type
	// WHEN: Converting it
	// THEN: 400 with the validation code and failing path

	srv := newTestServer(t)

	doc := stakeholderDoc("sh-1")
	delete(doc, "stakeholder_type")
	resp := postJSON(t, srv.URL+"/api/convert/STAKEHOLDER/ledger", doc)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "validation", body.Code)
	assert.Equal(t, "STAKEHOLDER", body.Entity)
	assert.Equal(t, "stakeholder_type", body.Path)
}

func TestConvertToLedger_UnknownTypeIs404(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/convert/WARRANT_SPLIT/ledger", convert.Document{"id": "x"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "unknown_entity_type", body.Code)
}

func TestConvertToOpen_EnumLabelRejectedIs400(t *testing.T) {
	// GIVEN: A ledger payload with an unregistered variant tag
	// WHEN: Converting back to the open format
	// THEN: 400 with the parse code

	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/convert/STAKEHOLDER/ocf", convert.Document{
		"id":              "sh-1",
		"name":            convert.Document{"legalName": "Ada Example"},
		"stakeholderType": "OcfStakeholderRobot",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "parse", body.Code)
}

func TestExtract_EnvelopeToOpenObject(t *testing.T) {
	// GIVEN: A raw ledger record wrapping a stakeholder payload
	// WHEN: Extracting it
	// THEN: The open-format object comes back, snake_case and enum decoded

	srv := newTestServer(t)

	raw := convert.Document{
		"created": convert.Document{
			"createdEvent": convert.Document{
				"createArgument": convert.Document{
					"stakeholder": convert.Document{
						"id":              "sh-1",
						"name":            convert.Document{"legalName": "Ada Example"},
						"stakeholderType": "OcfStakeholderIndividual",
					},
				},
			},
		},
	}
	resp := postJSON(t, srv.URL+"/api/extract/STAKEHOLDER", raw)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var open convert.Document
	decodeBody(t, resp, &open)
	assert.Equal(t, "INDIVIDUAL", open["stakeholder_type"])
}

func TestExtract_MissingFieldIsSchemaMismatch(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/extract/ISSUER", convert.Document{
		"stakeholder": convert.Document{"id": "x"},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "schema_mismatch", body.Code)
}

// =============================================================================
// REGISTRY AND DIFF TESTS
// =============================================================================

func TestListTypes_CoversEveryTag(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/types")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dtos []EntityTypeDTO
	decodeBody(t, resp, &dtos)
	assert.Len(t, dtos, len(ocf.AllTypes()))
	for _, d := range dtos {
		assert.NotEmpty(t, d.LedgerField, d.ObjectType)
		assert.NotEmpty(t, d.CreateChoice, d.ObjectType)
	}
}

func TestDiff_EquivalentSpellings(t *testing.T) {
	// GIVEN: Two objects differing only in numeric spelling and an
	//        explicit null vs an absent key
	// WHEN: Diffing them
	// THEN: Equivalent

	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/diff", DiffRequest{
		Left:  convert.Document{"id": "a", "quantity": "22500.00"},
		Right: convert.Document{"id": "a", "quantity": 22500, "comments": nil},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body DiffResponse
	decodeBody(t, resp, &body)
	assert.True(t, body.Equivalent)

	resp = postJSON(t, srv.URL+"/api/diff", DiffRequest{
		Left:  convert.Document{"id": "a"},
		Right: convert.Document{"id": "b"},
	})
	decodeBody(t, resp, &body)
	assert.False(t, body.Equivalent)
}

// =============================================================================
// SYNC ENDPOINT TESTS
// =============================================================================

func TestPlanSync_CommitThenNoop(t *testing.T) {
	// GIVEN: A batch committed to the mirror
	// WHEN: Planning the same batch again with a respelled field
	// THEN: First run creates, second run is all no-ops

	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/sync/plan", SyncPlanRequest{
		Objects: []convert.Document{stakeholderDoc("sh-1")},
		Commit:  true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body SyncPlanResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, 1, body.Creates)
	assert.Equal(t, 0, body.Noops)

	again := stakeholderDoc("sh-1")
	again["comments"] = []any{}
	resp = postJSON(t, srv.URL+"/api/sync/plan", SyncPlanRequest{
		Objects: []convert.Document{again},
	})
	decodeBody(t, resp, &body)
	assert.Equal(t, 0, body.Creates)
	assert.Equal(t, 1, body.Noops)

	// Both runs were recorded
	runsResp, err := http.Get(srv.URL + "/api/sync/runs")
	require.NoError(t, err)
	defer runsResp.Body.Close()
	var runs []SyncRunDTO
	decodeBody(t, runsResp, &runs)
	assert.Len(t, runs, 2)
}

func TestGetMirrored_NotFoundIs404(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/mirror/STAKEHOLDER/sh-404")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

/*
scenarios_test.go - Tests for demo scenario loading and the sync scheduler
*/
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fairmint/ocp-canton-sdk-sub006/convert"
	"github.com/Fairmint/ocp-canton-sdk-sub006/ocf"
	"github.com/Fairmint/ocp-canton-sdk-sub006/store/sqlite"
)

func TestLoadScenario_SeedsMirror(t *testing.T) {
	// GIVEN: An empty mirror
	// WHEN: Loading the seed-round scenario
	// THEN: Every object converts cleanly and lands in the mirror

	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/scenarios/load", LoadScenarioRequest{ScenarioID: "seed-round"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body SyncPlanResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, 6, body.Creates)
	assert.Zero(t, body.Failures, "scenario objects must all convert: %v", body.Errors)

	mirrorResp, err := http.Get(srv.URL + "/api/mirror/STAKEHOLDER")
	require.NoError(t, err)
	defer mirrorResp.Body.Close()
	var docs []convert.Document
	decodeBody(t, mirrorResp, &docs)
	assert.Len(t, docs, 2)
}

func TestLoadScenario_OptionPool(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/scenarios/load", LoadScenarioRequest{ScenarioID: "option-pool"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body SyncPlanResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, 4, body.Creates)
	assert.Zero(t, body.Failures, "scenario objects must all convert: %v", body.Errors)
}

func TestLoadScenario_UnknownIs404(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/scenarios/load", LoadScenarioRequest{ScenarioID: "ipo"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListScenarios(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/scenarios/")
	require.NoError(t, err)
	defer resp.Body.Close()

	var dtos []ScenarioDTO
	decodeBody(t, resp, &dtos)
	assert.Len(t, dtos, 2)
}

// =============================================================================
// SCHEDULER TESTS
// =============================================================================

func TestSyncScheduler_FileSource(t *testing.T) {
	// GIVEN: A snapshot file with one stakeholder
	// WHEN: Running the scheduler once, twice
	// THEN: First run creates and commits, second run is a no-op

	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	h := NewHandler(store)

	snapshot := []convert.Document{{
		"object_type":      string(ocf.TypeStakeholder),
		"id":               "sh-1",
		"name":             convert.Document{"legal_name": "Ada Example"},
		"stakeholder_type": "INDIVIDUAL",
	}}
	data, err := json.Marshal(snapshot)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	sched := NewSyncScheduler(h, FileSnapshotSource(path))
	ctx := context.Background()

	res, err := sched.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Creates)

	res, err = sched.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Creates)
	assert.Equal(t, 1, res.Noops)
}

func TestFileSnapshotSource_WrappedForm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"items":[{"object_type":"STAKEHOLDER","id":"sh-1"}]}`), 0o644))

	objects, err := FileSnapshotSource(path)(context.Background())
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "sh-1", objects[0]["id"])
}

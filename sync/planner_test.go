package sync_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fairmint/ocp-canton-sdk-sub006/convert"
	"github.com/Fairmint/ocp-canton-sdk-sub006/ocf"
	"github.com/Fairmint/ocp-canton-sdk-sub006/store/sqlite"
	"github.com/Fairmint/ocp-canton-sdk-sub006/sync"

	_ "github.com/Fairmint/ocp-canton-sdk-sub006/entities"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestPlanner(t *testing.T) (*sync.Planner, *sqlite.Store) {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return sync.NewPlanner(store), store
}

func testValuation(id string) convert.Document {
	return convert.Document{
		"object_type":     string(ocf.TypeValuation),
		"id":              id,
		"stock_class_id":  "sc-1",
		"price_per_share": convert.Document{"amount": "1.25", "currency": "USD"},
		"effective_date":  "2024-02-01",
		"valuation_type":  "409A",
	}
}

// =============================================================================
// CLASSIFICATION TESTS
// =============================================================================

func TestPlanner_NewEntityIsCreate(t *testing.T) {
	// GIVEN: An empty mirror
	// WHEN: Planning an incoming valuation
	// THEN: Create, with the converted ledger payload attached

	planner, _ := newTestPlanner(t)
	ctx := context.Background()

	d, err := planner.Plan(ctx, ocf.TypeValuation, testValuation("val-1"))
	require.NoError(t, err)
	assert.Equal(t, sync.ActionCreate, d.Action)
	assert.Equal(t, "val-1", d.ID)
	require.NotNil(t, d.Payload)
	assert.Equal(t, "OcfValuation409A", d.Payload["valuationType"])
}

func TestPlanner_EquivalentSpellingIsNoop(t *testing.T) {
	// GIVEN: A mirrored valuation
	// WHEN: The same valuation arrives with a different numeric spelling
	//       and an explicit-null optional field
	// THEN: Noop - this is exactly the difference that makes a naive
	//       replication loop write spurious edits forever

	planner, _ := newTestPlanner(t)
	ctx := context.Background()

	original := testValuation("val-1")
	d, err := planner.Plan(ctx, ocf.TypeValuation, original)
	require.NoError(t, err)
	require.NoError(t, planner.Commit(ctx, d, original))

	respelled := testValuation("val-1")
	respelled["price_per_share"] = convert.Document{"amount": "1.250", "currency": "USD"}
	respelled["provider"] = nil

	d, err = planner.Plan(ctx, ocf.TypeValuation, respelled)
	require.NoError(t, err)
	assert.Equal(t, sync.ActionNoop, d.Action)
	assert.Nil(t, d.Payload)
}

func TestPlanner_GenuineChangeIsEdit(t *testing.T) {
	// GIVEN: A mirrored valuation
	// WHEN: The price actually changes
	// THEN: Edit, with the new ledger payload

	planner, _ := newTestPlanner(t)
	ctx := context.Background()

	original := testValuation("val-1")
	d, err := planner.Plan(ctx, ocf.TypeValuation, original)
	require.NoError(t, err)
	require.NoError(t, planner.Commit(ctx, d, original))

	changed := testValuation("val-1")
	changed["price_per_share"] = convert.Document{"amount": "2.00", "currency": "USD"}

	d, err = planner.Plan(ctx, ocf.TypeValuation, changed)
	require.NoError(t, err)
	assert.Equal(t, sync.ActionEdit, d.Action)
	assert.Equal(t, convert.Document{"amount": "2", "currency": "USD"}, d.Payload["pricePerShare"])
}

func TestPlanner_InvalidObjectFails(t *testing.T) {
	// GIVEN: A valuation missing its required valuation type
	// WHEN: Planning it
	// THEN: The conversion error surfaces even though the entity is new

	planner, _ := newTestPlanner(t)

	bad := testValuation("val-1")
	delete(bad, "valuation_type")
	_, err := planner.Plan(context.Background(), ocf.TypeValuation, bad)
	assert.ErrorIs(t, err, convert.ErrValidation)
}

func TestPlanner_MissingIDFails(t *testing.T) {
	planner, _ := newTestPlanner(t)

	bad := testValuation("")
	delete(bad, "id")
	_, err := planner.Plan(context.Background(), ocf.TypeValuation, bad)
	assert.ErrorIs(t, err, convert.ErrValidation)
}

// =============================================================================
// BATCH RUN TESTS
// =============================================================================

func TestPlanner_PlanBatch_MixedOutcomes(t *testing.T) {
	// GIVEN: A mirror holding val-1; a batch with an equivalent val-1, a
	//        new val-2, and one malformed object
	// WHEN: Planning the batch
	// THEN: One noop, one create, one failure; the run is recorded

	planner, store := newTestPlanner(t)
	ctx := context.Background()

	first, err := planner.Plan(ctx, ocf.TypeValuation, testValuation("val-1"))
	require.NoError(t, err)
	require.NoError(t, planner.Commit(ctx, first, testValuation("val-1")))

	bad := testValuation("val-3")
	bad["valuation_type"] = "410A"

	res, err := planner.PlanBatch(ctx, []convert.Document{
		testValuation("val-1"),
		testValuation("val-2"),
		bad,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Noops)
	assert.Equal(t, 1, res.Creates)
	assert.Equal(t, 0, res.Edits)
	assert.Equal(t, 1, res.Failures)
	assert.Len(t, res.Decisions, 2)
	assert.NotEmpty(t, res.RunID)

	runs, err := store.RecentSyncRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, res.RunID, runs[0].ID)
	assert.Equal(t, 1, runs[0].Creates)
	assert.Equal(t, 1, runs[0].Failures)
	assert.NotEmpty(t, runs[0].Error)
}

func TestPlanner_PlanBatch_MissingTypeTag(t *testing.T) {
	planner, _ := newTestPlanner(t)

	res, err := planner.PlanBatch(context.Background(), []convert.Document{
		{"id": "x"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Failures)
	assert.Empty(t, res.Decisions)
}

// =============================================================================
// MIRROR STORE TESTS
// =============================================================================

func TestMirror_PutGetRoundTrip(t *testing.T) {
	// GIVEN: A mirrored stakeholder
	// WHEN: Reading it back
	// THEN: The stored JSON decodes to the same document

	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	ctx := context.Background()

	doc := convert.Document{"id": "sh-1", "stakeholder_type": "INDIVIDUAL"}
	require.NoError(t, store.Put(ctx, ocf.TypeStakeholder, "sh-1", doc))

	got, ok, err := store.Get(ctx, ocf.TypeStakeholder, "sh-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, convert.Equivalent(doc, got))

	_, ok, err = store.Get(ctx, ocf.TypeStakeholder, "sh-2")
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := store.Count(ctx, ocf.TypeStakeholder)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, store.Delete(ctx, ocf.TypeStakeholder, "sh-1"))
	_, ok, _ = store.Get(ctx, ocf.TypeStakeholder, "sh-1")
	assert.False(t, ok)
}

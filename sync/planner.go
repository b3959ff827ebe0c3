/*
Package sync plans replication actions between an open-format cap table
and the ledger mirror.

PURPOSE:
  A replication loop that writes an edit every time it sees an object
  will loop forever when the two schemas spell the same value two ways
  ("22500.00" vs 22500, absent vs null). The planner classifies every
  incoming open-format object against the mirror using the conversion
  layer's equivalence rules, so only genuine differences become ledger
  commands:

    create - the entity has never been mirrored
    edit   - mirrored, but the incoming object genuinely differs
    noop   - mirrored and equivalent under normalization

  The planner converts every object it classifies, so a malformed object
  fails its run entry even when it would have been a no-op.

SEE ALSO:
  - convert/equivalence.go: The no-op test
  - store/sqlite: The mirror implementation
*/
package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Fairmint/ocp-canton-sdk-sub006/convert"
	"github.com/Fairmint/ocp-canton-sdk-sub006/ocf"
	"github.com/Fairmint/ocp-canton-sdk-sub006/store/sqlite"
)

// Action classifies what the ledger needs for one incoming object.
type Action string

const (
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionNoop   Action = "noop"
)

// Mirror is the subset of the sqlite store the planner needs.
type Mirror interface {
	Get(ctx context.Context, typ ocf.ObjectType, id string) (convert.Document, bool, error)
	Put(ctx context.Context, typ ocf.ObjectType, id string, doc convert.Document) error
	SaveSyncRun(ctx context.Context, r sqlite.SyncRun) error
}

// Decision is the planner's verdict for one object: the action, plus the
// ledger payload a create/edit command needs (nil for a no-op).
type Decision struct {
	Type    ocf.ObjectType
	ID      string
	Action  Action
	Payload convert.Document
}

// Planner classifies open-format objects against the mirror.
type Planner struct {
	mirror Mirror
}

// NewPlanner builds a planner over a mirror store.
func NewPlanner(mirror Mirror) *Planner {
	return &Planner{mirror: mirror}
}

// Plan classifies one open-format object. The object is converted before
// classification so invalid input fails here, not at command submission.
func (p *Planner) Plan(ctx context.Context, typ ocf.ObjectType, open convert.Document) (Decision, error) {
	id, _ := open["id"].(string)
	if id == "" {
		return Decision{}, &convert.ValidationError{Entity: typ, Path: "id", Expected: "entity id"}
	}

	payload, err := convert.ConvertToLedger(typ, open)
	if err != nil {
		return Decision{}, err
	}

	mirrored, exists, err := p.mirror.Get(ctx, typ, id)
	if err != nil {
		return Decision{}, fmt.Errorf("mirror lookup %s/%s: %w", typ, id, err)
	}

	d := Decision{Type: typ, ID: id, Action: ActionCreate, Payload: payload}
	switch {
	case !exists:
	case convert.Equivalent(mirrored, open):
		d.Action = ActionNoop
		d.Payload = nil
	default:
		d.Action = ActionEdit
	}
	return d, nil
}

// Commit records that a planned create/edit was applied to the ledger,
// updating the mirror so the next run sees it as a no-op. Committing a
// no-op is allowed and refreshes the mirrored spelling.
func (p *Planner) Commit(ctx context.Context, d Decision, open convert.Document) error {
	return p.mirror.Put(ctx, d.Type, d.ID, convert.CloneDocument(open))
}

// =============================================================================
// BATCH RUNS
// =============================================================================

// RunResult summarizes one batch run.
type RunResult struct {
	RunID     string
	Decisions []Decision
	Creates   int
	Edits     int
	Noops     int
	Failures  int
	Errors    []error
}

// PlanBatch classifies a batch of open-format objects, dispatching on
// each object's "object_type" discriminator, and records the run. A bad
// object counts as a failure without aborting the rest of the batch.
func (p *Planner) PlanBatch(ctx context.Context, objects []convert.Document) (RunResult, error) {
	res := RunResult{RunID: uuid.NewString()}
	started := time.Now().UTC()

	for i, open := range objects {
		typ, _ := open["object_type"].(string)
		if typ == "" {
			res.Failures++
			res.Errors = append(res.Errors,
				&convert.ValidationError{Entity: "", Path: fmt.Sprintf("%d.object_type", i), Expected: "entity type tag"})
			continue
		}
		d, err := p.Plan(ctx, ocf.ObjectType(typ), open)
		if err != nil {
			res.Failures++
			res.Errors = append(res.Errors, err)
			continue
		}
		res.Decisions = append(res.Decisions, d)
		switch d.Action {
		case ActionCreate:
			res.Creates++
		case ActionEdit:
			res.Edits++
		case ActionNoop:
			res.Noops++
		}
	}

	finished := time.Now().UTC()
	run := sqlite.SyncRun{
		ID:         res.RunID,
		StartedAt:  started,
		FinishedAt: &finished,
		Creates:    res.Creates,
		Edits:      res.Edits,
		Noops:      res.Noops,
		Failures:   res.Failures,
	}
	if res.Failures > 0 {
		run.Error = res.Errors[0].Error()
	}
	if err := p.mirror.SaveSyncRun(ctx, run); err != nil {
		return res, fmt.Errorf("record sync run: %w", err)
	}
	return res, nil
}

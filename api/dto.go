/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the conversion layer's internal types from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

TYPES:
  Registry:
    EntityTypeDTO

  Equivalence:
    DiffRequest, DiffResponse

  Sync:
    SyncPlanRequest, SyncPlanResponse, DecisionDTO, SyncRunDTO

  Errors:
    ErrorResponse

VALIDATION:
  Conversion input is NOT validated here: the open-format and ledger
  documents stay schemaless maps all the way down to the converters,
  which produce the structured errors the error mapper translates.

SEE ALSO:
  - handlers.go: Uses these types
  - convert/registry.go: Entry, the source of EntityTypeDTO
*/
package api

import (
	"time"

	"github.com/Fairmint/ocp-canton-sdk-sub006/convert"
	"github.com/Fairmint/ocp-canton-sdk-sub006/store/sqlite"
	"github.com/Fairmint/ocp-canton-sdk-sub006/sync"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// EntityTypeDTO describes one registered entity type.
type EntityTypeDTO struct {
	ObjectType   string `json:"object_type"`
	LedgerField  string `json:"ledger_field"`
	CreateChoice string `json:"create_choice"`
	EditChoice   string `json:"edit_choice"`
	DeleteChoice string `json:"delete_choice"`
}

// DiffRequest carries two open-format objects to compare.
type DiffRequest struct {
	Left  convert.Document `json:"left"`
	Right convert.Document `json:"right"`
}

// DiffResponse reports whether the two objects are equivalent under the
// layer's normalization rules.
type DiffResponse struct {
	Equivalent bool `json:"equivalent"`
}

// SyncPlanRequest is a batch of open-format objects to classify against
// the mirror. Each object carries its own "object_type" discriminator.
// With Commit set, planned creates and edits are written to the mirror.
type SyncPlanRequest struct {
	Objects []convert.Document `json:"objects"`
	Commit  bool               `json:"commit,omitempty"`
}

// DecisionDTO is the planner's verdict for one object.
type DecisionDTO struct {
	ObjectType string           `json:"object_type"`
	ID         string           `json:"id"`
	Action     string           `json:"action"`
	Payload    convert.Document `json:"payload,omitempty"`
}

// SyncPlanResponse summarizes one planner run.
type SyncPlanResponse struct {
	RunID     string        `json:"run_id"`
	Decisions []DecisionDTO `json:"decisions"`
	Creates   int           `json:"creates"`
	Edits     int           `json:"edits"`
	Noops     int           `json:"noops"`
	Failures  int           `json:"failures"`
	Errors    []string      `json:"errors,omitempty"`
}

// SyncRunDTO is one historical planner run.
type SyncRunDTO struct {
	ID         string `json:"id"`
	StartedAt  string `json:"started_at"`
	FinishedAt string `json:"finished_at,omitempty"`
	Creates    int    `json:"creates"`
	Edits      int    `json:"edits"`
	Noops      int    `json:"noops"`
	Failures   int    `json:"failures"`
	Error      string `json:"error,omitempty"`
}

// ErrorResponse is the standard error response. Code carries the error
// family; Entity/Path/Details carry the structured fields when present.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Entity  string `json:"entity,omitempty"`
	Path    string `json:"path,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toDecisionDTO(d sync.Decision) DecisionDTO {
	return DecisionDTO{
		ObjectType: string(d.Type),
		ID:         d.ID,
		Action:     string(d.Action),
		Payload:    d.Payload,
	}
}

func toSyncRunDTO(r sqlite.SyncRun) SyncRunDTO {
	dto := SyncRunDTO{
		ID:        r.ID,
		StartedAt: r.StartedAt.Format(time.RFC3339),
		Creates:   r.Creates,
		Edits:     r.Edits,
		Noops:     r.Noops,
		Failures:  r.Failures,
		Error:     r.Error,
	}
	if r.FinishedAt != nil {
		dto.FinishedAt = r.FinishedAt.Format(time.RFC3339)
	}
	return dto
}

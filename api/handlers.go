/*
handlers.go - HTTP API handlers for the conversion service

PURPOSE:
  Exposes the open-format <-> ledger conversion layer via REST API.
  Handles HTTP request/response, JSON serialization, and delegates to
  the converters, the equivalence checker, and the sync planner.

ENDPOINTS:
  Conversion:
    POST /api/convert/{type}/ledger  Open-format object -> ledger payload
    POST /api/convert/{type}/ocf     Ledger payload -> open-format object
    POST /api/extract/{type}         Raw ledger record -> entity payload

  Registry:
    GET  /api/types                  Registered entity types and choices

  Equivalence:
    POST /api/diff                   Compare two open-format objects

  Sync:
    POST /api/sync/plan              Classify a batch against the mirror
    GET  /api/sync/runs              Recent planner runs
    GET  /api/mirror/{type}          Mirrored objects of one type
    GET  /api/mirror/{type}/{id}     One mirrored object
    POST /api/admin/reset            Clear the mirror (dev only)

ERROR HANDLING:
  Conversion errors are returned as JSON with the error family code and
  the structured Entity/Path fields:
  - 400: validation, parse, schema mismatch, numeric format
  - 404: unknown entity type, mirror row not found
  - 500: storage and encoding failures

SECURITY NOTE:
  Currently NO authentication or authorization. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - sync/planner.go: Batch classification
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/Fairmint/ocp-canton-sdk-sub006/convert"
	"github.com/Fairmint/ocp-canton-sdk-sub006/ocf"
	"github.com/Fairmint/ocp-canton-sdk-sub006/store/sqlite"
	"github.com/Fairmint/ocp-canton-sdk-sub006/sync"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store   *sqlite.Store
	Planner *sync.Planner
}

// NewHandler creates a new handler over the given mirror store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{
		Store:   store,
		Planner: sync.NewPlanner(store),
	}
}

// =============================================================================
// CONVERSION HANDLERS
// =============================================================================

// ConvertToLedger converts an open-format object to its ledger payload.
// POST /api/convert/{type}/ledger
func (h *Handler) ConvertToLedger(w http.ResponseWriter, r *http.Request) {
	typ := ocf.ObjectType(chi.URLParam(r, "type"))

	var open convert.Document
	if err := json.NewDecoder(r.Body).Decode(&open); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}

	payload, err := convert.ConvertToLedger(typ, open)
	if err != nil {
		writeConversionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// ConvertToOpen converts a ledger payload back to an open-format object.
// POST /api/convert/{type}/ocf
func (h *Handler) ConvertToOpen(w http.ResponseWriter, r *http.Request) {
	typ := ocf.ObjectType(chi.URLParam(r, "type"))

	var payload convert.Document
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}

	open, err := convert.ConvertToOpen(typ, payload)
	if err != nil {
		writeConversionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, open)
}

// ExtractPayload digs the entity payload out of a raw ledger record and
// converts it to an open-format object.
// POST /api/extract/{type}
func (h *Handler) ExtractPayload(w http.ResponseWriter, r *http.Request) {
	typ := ocf.ObjectType(chi.URLParam(r, "type"))

	var raw convert.Document
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}

	payload, err := convert.ExtractEntityPayload(typ, raw)
	if err != nil {
		writeConversionError(w, err)
		return
	}
	open, err := convert.ConvertToOpen(typ, payload)
	if err != nil {
		writeConversionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, open)
}

// ListTypes returns every registered entity type with its ledger field
// and choice labels, sorted by tag.
// GET /api/types
func (h *Handler) ListTypes(w http.ResponseWriter, r *http.Request) {
	entries := convert.Entries()
	dtos := make([]EntityTypeDTO, len(entries))
	for i, e := range entries {
		dtos[i] = EntityTypeDTO{
			ObjectType:   string(e.Type),
			LedgerField:  e.LedgerField,
			CreateChoice: e.CreateChoice,
			EditChoice:   e.EditChoice,
			DeleteChoice: e.DeleteChoice,
		}
	}
	sort.Slice(dtos, func(i, j int) bool { return dtos[i].ObjectType < dtos[j].ObjectType })
	writeJSON(w, http.StatusOK, dtos)
}

// Diff reports whether two open-format objects are equivalent under the
// normalization rules (absent == null, numeric spellings unified).
// POST /api/diff
func (h *Handler) Diff(w http.ResponseWriter, r *http.Request) {
	var req DiffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}
	writeJSON(w, http.StatusOK, DiffResponse{
		Equivalent: convert.Equivalent(req.Left, req.Right),
	})
}

// =============================================================================
// SYNC HANDLERS
// =============================================================================

// PlanSync classifies a batch of open-format objects against the mirror.
// With commit=true, planned creates and edits update the mirror so the
// next run sees them as no-ops.
// POST /api/sync/plan
func (h *Handler) PlanSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SyncPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}

	res, err := h.Planner.PlanBatch(ctx, req.Objects)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to plan sync", err)
		return
	}

	if req.Commit {
		byKey := make(map[string]convert.Document, len(req.Objects))
		for _, o := range req.Objects {
			typ, _ := o["object_type"].(string)
			id, _ := o["id"].(string)
			byKey[typ+"/"+id] = o
		}
		for _, d := range res.Decisions {
			if d.Action == sync.ActionNoop {
				continue
			}
			open, ok := byKey[string(d.Type)+"/"+d.ID]
			if !ok {
				continue
			}
			if err := h.Planner.Commit(ctx, d, open); err != nil {
				writeError(w, http.StatusInternalServerError, "Failed to commit decision", err)
				return
			}
		}
	}

	resp := SyncPlanResponse{
		RunID:    res.RunID,
		Creates:  res.Creates,
		Edits:    res.Edits,
		Noops:    res.Noops,
		Failures: res.Failures,
	}
	resp.Decisions = make([]DecisionDTO, len(res.Decisions))
	for i, d := range res.Decisions {
		resp.Decisions[i] = toDecisionDTO(d)
	}
	for _, e := range res.Errors {
		resp.Errors = append(resp.Errors, e.Error())
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListSyncRuns returns the most recent planner runs, newest first.
// GET /api/sync/runs
func (h *Handler) ListSyncRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.Store.RecentSyncRuns(r.Context(), 50)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list sync runs", err)
		return
	}
	dtos := make([]SyncRunDTO, len(runs))
	for i, run := range runs {
		dtos[i] = toSyncRunDTO(run)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// ListMirrored returns all mirrored objects of one type.
// GET /api/mirror/{type}
func (h *Handler) ListMirrored(w http.ResponseWriter, r *http.Request) {
	typ := ocf.ObjectType(chi.URLParam(r, "type"))
	if _, ok := convert.Lookup(typ); !ok {
		writeConversionError(w, &convert.UnknownEntityTypeError{Type: string(typ)})
		return
	}

	docs, err := h.Store.ListByType(r.Context(), typ)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list mirror", err)
		return
	}
	if docs == nil {
		docs = []convert.Document{}
	}
	writeJSON(w, http.StatusOK, docs)
}

// GetMirrored returns one mirrored object.
// GET /api/mirror/{type}/{id}
func (h *Handler) GetMirrored(w http.ResponseWriter, r *http.Request) {
	typ := ocf.ObjectType(chi.URLParam(r, "type"))
	id := chi.URLParam(r, "id")

	doc, ok, err := h.Store.Get(r.Context(), typ, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load mirror row", err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Entity not mirrored", nil)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// ResetMirror clears all mirrored data (dev only).
// POST /api/admin/reset
func (h *Handler) ResetMirror(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset mirror", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeConversionError maps the conversion error taxonomy to HTTP:
// bad data is 400, an unknown tag is 404, anything else is 500.
func writeConversionError(w http.ResponseWriter, err error) {
	resp := ErrorResponse{Error: err.Error()}
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, convert.ErrUnknownEntityType):
		status = http.StatusNotFound
		resp.Code = "unknown_entity_type"
	case errors.Is(err, convert.ErrNumericFormat):
		status = http.StatusBadRequest
		resp.Code = "numeric_format"
	case errors.Is(err, convert.ErrSchemaMismatch):
		status = http.StatusBadRequest
		resp.Code = "schema_mismatch"
	case errors.Is(err, convert.ErrParse):
		status = http.StatusBadRequest
		resp.Code = "parse"
	case errors.Is(err, convert.ErrValidation):
		status = http.StatusBadRequest
		resp.Code = "validation"
	}

	var verr *convert.ValidationError
	var perr *convert.ParseError
	switch {
	case errors.As(err, &verr):
		resp.Entity = string(verr.Entity)
		resp.Path = verr.Path
	case errors.As(err, &perr):
		resp.Entity = string(perr.Entity)
		resp.Path = perr.Path
	}

	writeJSON(w, status, resp)
}

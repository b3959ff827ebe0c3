/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:

	Provides pre-built cap-table snapshots that populate the mirror with
	realistic data for testing and demos. Each scenario resets the mirror
	and syncs a small open-format cap table through the planner, so the
	seeded state is exactly what a real snapshot sync would produce.

AVAILABLE SCENARIOS:

	seed-round:   Issuer, common + preferred stock classes, two
	              stakeholders, a priced issuance
	option-pool:  Stock plan, plan security issuance, vesting start

USAGE VIA API:

	POST /api/scenarios/load
	{"scenario_id": "seed-round"}

SEE ALSO:

	- handlers.go: Route registration
	- sync/planner.go: The seeding path
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/Fairmint/ocp-canton-sdk-sub006/convert"
	"github.com/Fairmint/ocp-canton-sdk-sub006/ocf"
)

// ScenarioDTO describes one demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LoadScenarioRequest selects the scenario to load.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

var scenarios = []ScenarioDTO{
	{
		ID:          "seed-round",
		Name:        "Seed round",
		Description: "Issuer, common and preferred stock classes, two stakeholders, a priced issuance",
	},
	{
		ID:          "option-pool",
		Name:        "Option pool",
		Description: "Stock plan with an equity compensation issuance and vesting start",
	},
}

func tagged(t ocf.ObjectType, doc convert.Document) convert.Document {
	doc["object_type"] = string(t)
	return doc
}

func usd(amount string) convert.Document {
	return convert.Document{"amount": amount, "currency": "USD"}
}

func scenarioObjects(id string) []convert.Document {
	switch id {
	case "seed-round":
		return []convert.Document{
			tagged(ocf.TypeIssuer, convert.Document{
				"id":                   "iss-1",
				"legal_name":           "Acme Inc.",
				"country_of_formation": "US",
				"formation_date":       "2020-01-02",
			}),
			tagged(ocf.TypeStockClass, convert.Document{
				"id": "sc-common", "name": "Common Stock", "class_type": "COMMON",
				"default_id_prefix": "CS-", "initial_shares_authorized": "10000000",
				"votes_per_share": "1", "seniority": "1",
			}),
			tagged(ocf.TypeStockClass, convert.Document{
				"id": "sc-seed", "name": "Series Seed Preferred", "class_type": "PREFERRED",
				"default_id_prefix": "PS-", "initial_shares_authorized": "2000000",
				"votes_per_share": "1", "seniority": "2",
				"price_per_share": usd("0.80"),
			}),
			tagged(ocf.TypeStakeholder, convert.Document{
				"id": "sh-founder", "stakeholder_type": "INDIVIDUAL",
				"name":                 convert.Document{"legal_name": "Jordan Doe"},
				"current_relationship": "FOUNDER",
			}),
			tagged(ocf.TypeStakeholder, convert.Document{
				"id": "sh-fund", "stakeholder_type": "INSTITUTION",
				"name":                 convert.Document{"legal_name": "Seed Fund LP"},
				"current_relationship": "INVESTOR",
			}),
			tagged(ocf.TypeStockIssuance, convert.Document{
				"id": "tx-si-1", "security_id": "sec-ps-1", "date": "2024-03-15",
				"custom_id": "PS-1", "stakeholder_id": "sh-fund", "stock_class_id": "sc-seed",
				"quantity": "1250000", "share_price": usd("0.80"),
				"security_law_exemptions": []any{
					convert.Document{"description": "Reg D", "jurisdiction": "US"},
				},
			}),
		}
	case "option-pool":
		return []convert.Document{
			tagged(ocf.TypeStockPlan, convert.Document{
				"id": "sp-1", "plan_name": "2024 Equity Incentive Plan",
				"stock_class_ids": []any{"sc-common"}, "initial_shares_reserved": "1000000",
				"default_cancellation_behavior": "RETURN_TO_POOL",
			}),
			tagged(ocf.TypeStakeholder, convert.Document{
				"id": "sh-emp", "stakeholder_type": "INDIVIDUAL",
				"name":                 convert.Document{"legal_name": "Casey Example"},
				"current_relationship": "EMPLOYEE",
			}),
			tagged(ocf.TypeEquityCompensationIssuance, convert.Document{
				"id": "tx-ec-1", "security_id": "sec-opt-1", "date": "2024-05-01",
				"custom_id": "OPT-1", "stakeholder_id": "sh-emp", "stock_plan_id": "sp-1",
				"compensation_type": "OPTION_ISO", "quantity": "48000",
				"exercise_price": usd("0.42"),
				"security_law_exemptions": []any{
					convert.Document{"description": "Rule 701", "jurisdiction": "US"},
				},
			}),
			tagged(ocf.TypeVestingStart, convert.Document{
				"id": "tx-vs-1", "security_id": "sec-opt-1", "date": "2024-05-01",
				"vesting_condition_id": "vc-start",
			}),
		}
	}
	return nil
}

// ListScenarios returns the available demo scenarios.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// LoadScenario resets the mirror and syncs a scenario's cap table.
// POST /api/scenarios/load
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}

	objects := scenarioObjects(req.ScenarioID)
	if objects == nil {
		writeError(w, http.StatusNotFound, "Unknown scenario", nil)
		return
	}

	if err := h.Store.Reset(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset mirror", err)
		return
	}

	res, err := h.Planner.PlanBatch(ctx, objects)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load scenario", err)
		return
	}
	for _, d := range res.Decisions {
		for _, o := range objects {
			id, _ := o["id"].(string)
			typ, _ := o["object_type"].(string)
			if id == d.ID && typ == string(d.Type) {
				if err := h.Planner.Commit(ctx, d, o); err != nil {
					writeError(w, http.StatusInternalServerError, "Failed to seed mirror", err)
					return
				}
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
	for _, e := range res.Errors {
		resp.Errors = append(resp.Errors, e.Error())
	}
	writeJSON(w, http.StatusOK, resp)
}

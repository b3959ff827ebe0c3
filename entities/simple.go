/*
simple.go - Simple record converters

PURPOSE:
  Acceptances, retractions, vesting lifecycle events, reissuances, and
  consolidations are direct field copies plus date/optional
  normalization. Acceptances and retractions are shape-identical across
  all four security families, so one parametric pair covers each.
*/
package entities

import (
	"github.com/Fairmint/ocp-canton-sdk-sub006/convert"
	"github.com/Fairmint/ocp-canton-sdk-sub006/ocf"
)

// =============================================================================
// ACCEPTANCE / RETRACTION (parametric across security families)
// =============================================================================

// newAcceptancePair builds the converter pair for a security acceptance.
func newAcceptancePair(entity ocf.ObjectType) (convert.ToLedgerFunc, convert.ToOpenFunc) {
	toLedger := func(open convert.Document) (convert.Document, error) {
		m := convert.NewLedgerMapper(entity, open)
		m.ReqString("id", "id")
		m.ReqString("security_id", "securityId")
		m.ReqDate("date", "date")
		m.OptStringList("comments", "comments")
		return m.Result()
	}
	toOpen := func(payload convert.Document) (convert.Document, error) {
		m := convert.NewOpenMapper(entity, payload)
		m.ReqString("id", "id")
		m.ReqString("securityId", "security_id")
		m.ReqDate("date", "date")
		m.OptStringList("comments", "comments")
		return m.Result()
	}
	return toLedger, toOpen
}

// newRetractionPair builds the converter pair for a security retraction.
// A retraction always states why.
func newRetractionPair(entity ocf.ObjectType) (convert.ToLedgerFunc, convert.ToOpenFunc) {
	toLedger := func(open convert.Document) (convert.Document, error) {
		m := convert.NewLedgerMapper(entity, open)
		m.ReqString("id", "id")
		m.ReqString("security_id", "securityId")
		m.ReqDate("date", "date")
		m.ReqString("reason_text", "reasonText")
		m.OptStringList("comments", "comments")
		return m.Result()
	}
	toOpen := func(payload convert.Document) (convert.Document, error) {
		m := convert.NewOpenMapper(entity, payload)
		m.ReqString("id", "id")
		m.ReqString("securityId", "security_id")
		m.ReqDate("date", "date")
		m.ReqString("reasonText", "reason_text")
		m.OptStringList("comments", "comments")
		return m.Result()
	}
	return toLedger, toOpen
}

// =============================================================================
// STOCK REISSUANCE / CONSOLIDATION
// =============================================================================

// StockReissuanceToLedger converts a TX_STOCK_REISSUANCE.
func StockReissuanceToLedger(open convert.Document) (convert.Document, error) {
	m := convert.NewLedgerMapper(ocf.TypeStockReissuance, open)
	m.ReqString("id", "id")
	m.ReqString("security_id", "securityId")
	m.ReqDate("date", "date")
	m.ReqStringList("resulting_security_ids", "resultingSecurityIds")
	m.OptString("reason_text", "reasonText")
	m.OptString("split_transaction_id", "splitTransactionId")
	m.OptStringList("comments", "comments")
	return m.Result()
}

// StockReissuanceToOpen converts the ledger payload back.
func StockReissuanceToOpen(payload convert.Document) (convert.Document, error) {
	m := convert.NewOpenMapper(ocf.TypeStockReissuance, payload)
	m.ReqString("id", "id")
	m.ReqString("securityId", "security_id")
	m.ReqDate("date", "date")
	m.ReqStringList("resultingSecurityIds", "resulting_security_ids")
	m.OptString("reasonText", "reason_text")
	m.OptString("splitTransactionId", "split_transaction_id")
	m.OptStringList("comments", "comments")
	return m.Result()
}

// StockConsolidationToLedger converts a TX_STOCK_CONSOLIDATION: many
// input securities, exactly one resulting security (singular on both
// sides, no adapter needed).
func StockConsolidationToLedger(open convert.Document) (convert.Document, error) {
	m := convert.NewLedgerMapper(ocf.TypeStockConsolidation, open)
	m.ReqString("id", "id")
	m.ReqDate("date", "date")
	m.ReqStringList("security_ids", "securityIds")
	m.ReqString("resulting_security_id", "resultingSecurityId")
	m.OptString("reason_text", "reasonText")
	m.OptStringList("comments", "comments")
	return m.Result()
}

// StockConsolidationToOpen converts the ledger payload back.
func StockConsolidationToOpen(payload convert.Document) (convert.Document, error) {
	m := convert.NewOpenMapper(ocf.TypeStockConsolidation, payload)
	m.ReqString("id", "id")
	m.ReqDate("date", "date")
	m.ReqStringList("securityIds", "security_ids")
	m.ReqString("resultingSecurityId", "resulting_security_id")
	m.OptString("reasonText", "reason_text")
	m.OptStringList("comments", "comments")
	return m.Result()
}

// =============================================================================
// VESTING LIFECYCLE
// =============================================================================

// newVestingConditionEventPair covers TX_VESTING_START and
// TX_VESTING_EVENT: both reference a vesting condition by id.
func newVestingConditionEventPair(entity ocf.ObjectType) (convert.ToLedgerFunc, convert.ToOpenFunc) {
	toLedger := func(open convert.Document) (convert.Document, error) {
		m := convert.NewLedgerMapper(entity, open)
		m.ReqString("id", "id")
		m.ReqString("security_id", "securityId")
		m.ReqDate("date", "date")
		m.ReqString("vesting_condition_id", "vestingConditionId")
		m.OptStringList("comments", "comments")
		return m.Result()
	}
	toOpen := func(payload convert.Document) (convert.Document, error) {
		m := convert.NewOpenMapper(entity, payload)
		m.ReqString("id", "id")
		m.ReqString("securityId", "security_id")
		m.ReqDate("date", "date")
		m.ReqString("vestingConditionId", "vesting_condition_id")
		m.OptStringList("comments", "comments")
		return m.Result()
	}
	return toLedger, toOpen
}

// VestingAccelerationToLedger converts a TX_VESTING_ACCELERATION: a
// stated quantity vests ahead of schedule for a stated reason.
func VestingAccelerationToLedger(open convert.Document) (convert.Document, error) {
	m := convert.NewLedgerMapper(ocf.TypeVestingAcceleration, open)
	m.ReqString("id", "id")
	m.ReqString("security_id", "securityId")
	m.ReqDate("date", "date")
	m.ReqNumeric("quantity", "quantity")
	m.ReqString("reason_text", "reasonText")
	m.OptStringList("comments", "comments")
	return m.Result()
}

// VestingAccelerationToOpen converts the ledger payload back.
func VestingAccelerationToOpen(payload convert.Document) (convert.Document, error) {
	m := convert.NewOpenMapper(ocf.TypeVestingAcceleration, payload)
	m.ReqString("id", "id")
	m.ReqString("securityId", "security_id")
	m.ReqDate("date", "date")
	m.ReqNumeric("quantity", "quantity")
	m.ReqString("reasonText", "reason_text")
	m.OptStringList("comments", "comments")
	return m.Result()
}

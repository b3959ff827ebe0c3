/*
quantity.go - Quantity-based transaction converters

PURPOSE:
  Transfers, cancellations, repurchases, exercises, releases, and
  conversions share one shape: an identified security, a date, a quantity
  (or monetary amount for convertibles), and some disposition of the
  remainder. The shapes are identical across stock, warrant, and equity
  compensation modulo the enclosing entity tag, so one parametric core
  builds them all; the per-entity differences (extra fields, and the
  singular-vs-array resulting-security adapters) are thin closures on
  top. Duplicating these per entity is how divergence bugs creep in.

SINGULAR/ARRAY ADAPTERS:
  Exercises and releases store a SINGLE resulting security on the ledger
  while the open format carries a one-element array; transfers and
  conversions keep the array on both sides. The adapters live here, not
  in the core.

SEE ALSO:
  - register.go: Which entity tags use which core
*/
package entities

import (
	"github.com/Fairmint/ocp-canton-sdk-sub006/convert"
	"github.com/Fairmint/ocp-canton-sdk-sub006/ocf"
)

// quantityTx describes one quantity-transaction kind for the parametric
// core: the base is id/security_id/date/comments plus a required
// quantity (or monetary amount when monetary is set), and extra adds the
// per-entity fields on top.
type quantityTx struct {
	entity      ocf.ObjectType
	monetary    bool // convertibles move money, not share counts
	amountKey   string
	ledgerKey   string
	extraLedger func(m *convert.LedgerMapper)
	extraOpen   func(m *convert.OpenMapper)
}

func (q quantityTx) toLedger(open convert.Document) (convert.Document, error) {
	m := convert.NewLedgerMapper(q.entity, open)
	m.ReqString("id", "id")
	m.ReqString("security_id", "securityId")
	m.ReqDate("date", "date")
	m.OptStringList("comments", "comments")
	if q.monetary {
		m.ReqMonetary(q.amountKey, q.ledgerKey)
	} else {
		m.ReqNumeric(q.amountKey, q.ledgerKey)
	}
	if q.extraLedger != nil {
		q.extraLedger(m)
	}
	return m.Result()
}

func (q quantityTx) toOpen(payload convert.Document) (convert.Document, error) {
	m := convert.NewOpenMapper(q.entity, payload)
	m.ReqString("id", "id")
	m.ReqString("securityId", "security_id")
	m.ReqDate("date", "date")
	m.OptStringList("comments", "comments")
	if q.monetary {
		m.ReqMonetary(q.ledgerKey, q.amountKey)
	} else {
		m.ReqNumeric(q.ledgerKey, q.amountKey)
	}
	if q.extraOpen != nil {
		q.extraOpen(m)
	}
	return m.Result()
}

// =============================================================================
// TRANSFERS
// =============================================================================

// newTransferPair builds the converter pair for a quantity transfer
// (stock, warrant, equity compensation). Transfers keep the
// resulting-security array on both sides.
func newTransferPair(entity ocf.ObjectType) (convert.ToLedgerFunc, convert.ToOpenFunc) {
	q := quantityTx{
		entity: entity, amountKey: "quantity", ledgerKey: "quantity",
		extraLedger: func(m *convert.LedgerMapper) {
			m.OptString("consideration_text", "considerationText")
			m.OptString("balance_security_id", "balanceSecurityId")
			m.ReqStringList("resulting_security_ids", "resultingSecurityIds")
		},
		extraOpen: func(m *convert.OpenMapper) {
			m.OptString("considerationText", "consideration_text")
			m.OptString("balanceSecurityId", "balance_security_id")
			m.ReqStringList("resultingSecurityIds", "resulting_security_ids")
		},
	}
	return q.toLedger, q.toOpen
}

// newConvertibleTransferPair is the transfer core with a monetary amount
// instead of a share quantity.
func newConvertibleTransferPair(entity ocf.ObjectType) (convert.ToLedgerFunc, convert.ToOpenFunc) {
	q := quantityTx{
		entity: entity, monetary: true, amountKey: "amount", ledgerKey: "amount",
		extraLedger: func(m *convert.LedgerMapper) {
			m.OptString("consideration_text", "considerationText")
			m.OptString("balance_security_id", "balanceSecurityId")
			m.ReqStringList("resulting_security_ids", "resultingSecurityIds")
		},
		extraOpen: func(m *convert.OpenMapper) {
			m.OptString("considerationText", "consideration_text")
			m.OptString("balanceSecurityId", "balance_security_id")
			m.ReqStringList("resultingSecurityIds", "resulting_security_ids")
		},
	}
	return q.toLedger, q.toOpen
}

// =============================================================================
// CANCELLATIONS
// =============================================================================

// newCancellationPair builds the converter pair for a quantity
// cancellation (stock, warrant, equity compensation).
func newCancellationPair(entity ocf.ObjectType) (convert.ToLedgerFunc, convert.ToOpenFunc) {
	q := quantityTx{
		entity: entity, amountKey: "quantity", ledgerKey: "quantity",
		extraLedger: func(m *convert.LedgerMapper) {
			m.ReqString("reason_text", "reasonText")
			m.OptString("balance_security_id", "balanceSecurityId")
		},
		extraOpen: func(m *convert.OpenMapper) {
			m.ReqString("reasonText", "reason_text")
			m.OptString("balanceSecurityId", "balance_security_id")
		},
	}
	return q.toLedger, q.toOpen
}

// newConvertibleCancellationPair cancels a monetary balance.
func newConvertibleCancellationPair(entity ocf.ObjectType) (convert.ToLedgerFunc, convert.ToOpenFunc) {
	q := quantityTx{
		entity: entity, monetary: true, amountKey: "amount", ledgerKey: "amount",
		extraLedger: func(m *convert.LedgerMapper) {
			m.ReqString("reason_text", "reasonText")
			m.OptString("balance_security_id", "balanceSecurityId")
		},
		extraOpen: func(m *convert.OpenMapper) {
			m.ReqString("reasonText", "reason_text")
			m.OptString("balanceSecurityId", "balance_security_id")
		},
	}
	return q.toLedger, q.toOpen
}

// =============================================================================
// REPURCHASE
// =============================================================================

// newRepurchasePair builds the stock repurchase converter pair.
func newRepurchasePair(entity ocf.ObjectType) (convert.ToLedgerFunc, convert.ToOpenFunc) {
	q := quantityTx{
		entity: entity, amountKey: "quantity", ledgerKey: "quantity",
		extraLedger: func(m *convert.LedgerMapper) {
			m.ReqMonetary("price", "price")
			m.OptString("consideration_text", "considerationText")
			m.OptString("balance_security_id", "balanceSecurityId")
		},
		extraOpen: func(m *convert.OpenMapper) {
			m.ReqMonetary("price", "price")
			m.OptString("considerationText", "consideration_text")
			m.OptString("balanceSecurityId", "balance_security_id")
		},
	}
	return q.toLedger, q.toOpen
}

// =============================================================================
// EXERCISE / RELEASE - singular resulting security on the ledger
// =============================================================================

// newExercisePair builds the converter pair for warrant exercises and
// equity compensation exercises/releases. The ledger stores exactly one
// resulting security; the open format wraps it in a one-element array.
func newExercisePair(entity ocf.ObjectType) (convert.ToLedgerFunc, convert.ToOpenFunc) {
	q := quantityTx{
		entity: entity, amountKey: "quantity", ledgerKey: "quantity",
		extraLedger: func(m *convert.LedgerMapper) {
			m.OptString("consideration_text", "considerationText")
			m.ReqSingleFromList("resulting_security_ids", "resultingSecurityId")
		},
		extraOpen: func(m *convert.OpenMapper) {
			m.OptString("considerationText", "consideration_text")
			m.ReqListFromSingle("resultingSecurityId", "resulting_security_ids")
		},
	}
	return q.toLedger, q.toOpen
}

// =============================================================================
// CONVERSIONS
// =============================================================================

// newStockConversionPair converts stock into another class.
func newStockConversionPair(entity ocf.ObjectType) (convert.ToLedgerFunc, convert.ToOpenFunc) {
	q := quantityTx{
		entity: entity, amountKey: "quantity_converted", ledgerKey: "quantityConverted",
		extraLedger: func(m *convert.LedgerMapper) {
			m.OptString("balance_security_id", "balanceSecurityId")
			m.ReqStringList("resulting_security_ids", "resultingSecurityIds")
		},
		extraOpen: func(m *convert.OpenMapper) {
			m.OptString("balanceSecurityId", "balance_security_id")
			m.ReqStringList("resultingSecurityIds", "resulting_security_ids")
		},
	}
	return q.toLedger, q.toOpen
}

// ConvertibleConversionToLedger converts a TX_CONVERTIBLE_CONVERSION.
// Not built on the parametric core: the amount fields are both optional
// (a conversion may be stated in money, in shares, or both) and the
// firing trigger is referenced by the same trigger_id the issuance
// declared.
func ConvertibleConversionToLedger(open convert.Document) (convert.Document, error) {
	const e = ocf.TypeConvertibleConversion
	m := convert.NewLedgerMapper(e, open)
	m.ReqString("id", "id")
	m.ReqString("security_id", "securityId")
	m.ReqDate("date", "date")
	m.ReqString("trigger_id", "triggerId")
	m.OptMonetary("amount_converted", "amountConverted")
	m.OptNumeric("quantity_converted", "quantityConverted")
	m.OptString("balance_security_id", "balanceSecurityId")
	m.ReqStringList("resulting_security_ids", "resultingSecurityIds")
	m.OptString("reason_text", "reasonText")
	m.OptStringList("comments", "comments")
	return m.Result()
}

// ConvertibleConversionToOpen converts the ledger payload back.
func ConvertibleConversionToOpen(payload convert.Document) (convert.Document, error) {
	const e = ocf.TypeConvertibleConversion
	m := convert.NewOpenMapper(e, payload)
	m.ReqString("id", "id")
	m.ReqString("securityId", "security_id")
	m.ReqDate("date", "date")
	m.ReqString("triggerId", "trigger_id")
	m.OptMonetary("amountConverted", "amount_converted")
	m.OptNumeric("quantityConverted", "quantity_converted")
	m.OptString("balanceSecurityId", "balance_security_id")
	m.ReqStringList("resultingSecurityIds", "resulting_security_ids")
	m.OptString("reasonText", "reason_text")
	m.OptStringList("comments", "comments")
	return m.Result()
}

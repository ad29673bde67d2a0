package domain

// Settlement describes how much of a transaction has been paid.
type Settlement string

const (
	SettlementUnpaid  Settlement = "unpaid"
	SettlementPartial Settlement = "partial"
	SettlementPaid    Settlement = "paid"
)

// StatusColor is a display hint derived from a transaction's status name.
type StatusColor string

const (
	StatusColorSuccess StatusColor = "success"
	StatusColorWarning StatusColor = "warning"
	StatusColorDanger  StatusColor = "danger"
	StatusColorDefault StatusColor = "default"
)

package dto

// Kafka message keys. Publishing is fire and forget; with no broker
// configured nothing is emitted.
const (
	EventUserRegistered  = "user.registered"
	EventEscrowCreated   = "escrow.created"
	EventEscrowReleased  = "escrow.released"
	EventRefundRequested = "escrow.refund_requested"
	EventEscrowRefunded  = "escrow.refunded"
	EventRefundDenied    = "escrow.refund_denied"
	EventBVNFlagged      = "bvn.flagged"
	EventSupportMessage  = "support.message"
)

type UserRegisteredEvent struct {
	UserID string  `json:"user_id"`
	Email  string  `json:"email"`
	Wallet float64 `json:"wallet"`
}

type TransactionEvent struct {
	TxID       string  `json:"tx_id"`
	BuyerEmail string  `json:"buyer_email"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}

type BVNFlaggedEvent struct {
	BVN        string `json:"bvn"`
	BuyerEmail string `json:"buyer_email"`
}

type SupportMessageEvent struct {
	MessageID string `json:"message_id"`
	Email     string `json:"email"`
}

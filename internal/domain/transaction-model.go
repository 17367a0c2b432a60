package domain

type TransactionStatus string

const (
	StatusHolding         TransactionStatus = "holding"
	StatusReleased        TransactionStatus = "released"
	StatusRefundRequested TransactionStatus = "refund_requested"
	StatusRefunded        TransactionStatus = "refunded"
)

// Admin review actions.
const (
	ActionApproveRefund = "approve_refund"
	ActionDenyRefund    = "deny_refund"
	ActionFlagBVN       = "flag_bvn"
)

// Transaction is a single escrow hold. Status always reflects the most recent
// transition; there is no history log. Timestamps are millisecond epochs to
// keep the wire shape of the original API.
type Transaction struct {
	ID           uint              `gorm:"primaryKey" json:"-"`
	PublicID     string            `gorm:"uniqueIndex;not null" json:"id"`
	BuyerEmail   string            `gorm:"index;not null" json:"buyerEmail"`
	SellerName   string            `json:"sellerName"`
	Amount       float64           `json:"amount"`
	Description  string            `json:"description"`
	Status       TransactionStatus `gorm:"type:varchar(20);not null;default:holding" json:"status"`
	CreatedAt    int64             `json:"createdAt"`
	ReleasedAt   *int64            `json:"releasedAt,omitempty"`
	RefundedAt   *int64            `json:"refundedAt,omitempty"`
	RefundReason *string           `json:"refundReason,omitempty"`
}

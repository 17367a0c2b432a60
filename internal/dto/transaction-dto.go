package dto

import "github.com/tmapay/escrow_service/internal/domain"

type CreateTransactionRequest struct {
	BuyerEmail string `json:"buyerEmail"`
	SellerName string `json:"sellerName"`
	// A zero amount counts as missing, like the original API.
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type RefundRequest struct {
	Reason string `json:"reason"`
}

type AdminReviewRequest struct {
	TxID   string `json:"txId"`
	Action string `json:"action"`
}

// AdminReviewResult carries either the reviewed transaction or, for the
// flag_bvn action, the number that was flagged.
type AdminReviewResult struct {
	Tx         *domain.Transaction
	FlaggedBVN string
}

type SupportRequest struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

type DebugSnapshot struct {
	Transactions []domain.Transaction `json:"transactions"`
	Users        int64                `json:"users"`
	FlaggedBVNs  []string             `json:"flaggedBVNs"`
}

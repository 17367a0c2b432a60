package services

import (
	"errors"

	"github.com/tmapay/escrow_service/internal/domain"
	"github.com/tmapay/escrow_service/internal/dto"
	"github.com/tmapay/escrow_service/internal/helper/utils"
	"github.com/tmapay/escrow_service/internal/interfaces"
	"github.com/tmapay/escrow_service/internal/repository"
	"gorm.io/gorm"
)

// EscrowService owns the transaction state machine:
//
//	holding -> released          (confirm delivery, admin deny)
//	holding|released -> refund_requested
//	refund_requested -> refunded (admin approve)
//
// Admin actions are deliberately unguarded by current status; any caller may
// invoke them against any transaction.
type EscrowService interface {
	Create(input dto.CreateTransactionRequest) (*domain.Transaction, error)
	ListByBuyer(email string) ([]domain.Transaction, error)
	ConfirmDelivery(txID string) (*domain.Transaction, error)
	RequestRefund(txID, reason string) (*domain.Transaction, error)
	AdminReview(input dto.AdminReviewRequest) (*dto.AdminReviewResult, error)
	DebugSnapshot() (*dto.DebugSnapshot, error)
}

type escrowService struct {
	txRepo   repository.TransactionRepository
	userRepo repository.UserRepository
	flagged  repository.FlaggedBVNRepository
	producer interfaces.ProducerHandler
}

func NewEscrowService(
	txRepo repository.TransactionRepository,
	userRepo repository.UserRepository,
	flagged repository.FlaggedBVNRepository,
	producer interfaces.ProducerHandler,
) EscrowService {
	return &escrowService{
		txRepo:   txRepo,
		userRepo: userRepo,
		flagged:  flagged,
		producer: producer,
	}
}

func (s *escrowService) Create(input dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if input.BuyerEmail == "" || input.Amount == 0 {
		return nil, domain.ErrMissingFields
	}

	if _, err := s.userRepo.FindUserByEmail(input.BuyerEmail); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBuyerNotFound
		}
		return nil, err
	}

	sellerName := input.SellerName
	if sellerName == "" {
		sellerName = "Unknown Seller"
	}

	// The buyer wallet is not debited: escrow in this prototype is symbolic.
	tx := &domain.Transaction{
		PublicID:    utils.NewID("tx"),
		BuyerEmail:  input.BuyerEmail,
		SellerName:  sellerName,
		Amount:      input.Amount,
		Description: input.Description,
		Status:      domain.StatusHolding,
		CreatedAt:   utils.NowMillis(),
	}

	created, err := s.txRepo.CreateTransaction(tx)
	if err != nil {
		return nil, err
	}

	s.publishTransition(dto.EventEscrowCreated, created)

	return created, nil
}

func (s *escrowService) ListByBuyer(email string) ([]domain.Transaction, error) {
	txs, err := s.txRepo.FindByBuyerEmail(email)
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []domain.Transaction{} // serialize as [], never null
	}
	return txs, nil
}

func (s *escrowService) ConfirmDelivery(txID string) (*domain.Transaction, error) {
	tx, err := s.findTransaction(txID)
	if err != nil {
		return nil, err
	}

	if tx.Status != domain.StatusHolding {
		return nil, domain.ErrCannotConfirm
	}

	now := utils.NowMillis()
	tx.Status = domain.StatusReleased
	tx.ReleasedAt = &now

	if err := s.txRepo.SaveTransaction(tx); err != nil {
		return nil, err
	}

	s.publishTransition(dto.EventEscrowReleased, tx)

	return tx, nil
}

func (s *escrowService) RequestRefund(txID, reason string) (*domain.Transaction, error) {
	tx, err := s.findTransaction(txID)
	if err != nil {
		return nil, err
	}

	if tx.Status != domain.StatusHolding && tx.Status != domain.StatusReleased {
		return nil, domain.ErrRefundNotAllowed
	}

	tx.Status = domain.StatusRefundRequested
	tx.RefundReason = &reason

	if err := s.txRepo.SaveTransaction(tx); err != nil {
		return nil, err
	}

	s.publishTransition(dto.EventRefundRequested, tx)

	return tx, nil
}

// AdminReview resolves a refund request or flags the buyer's BVN. The
// transaction lookup happens before the action is validated, so an unknown
// action against a missing transaction reports 404, not 400.
func (s *escrowService) AdminReview(input dto.AdminReviewRequest) (*dto.AdminReviewResult, error) {
	tx, err := s.findTransaction(input.TxID)
	if err != nil {
		return nil, err
	}

	switch input.Action {
	case domain.ActionApproveRefund:
		now := utils.NowMillis()
		tx.Status = domain.StatusRefunded
		tx.RefundedAt = &now
		if err := s.txRepo.SaveTransaction(tx); err != nil {
			return nil, err
		}
		s.publishTransition(dto.EventEscrowRefunded, tx)
		return &dto.AdminReviewResult{Tx: tx}, nil

	case domain.ActionDenyRefund:
		tx.Status = domain.StatusReleased
		if err := s.txRepo.SaveTransaction(tx); err != nil {
			return nil, err
		}
		s.publishTransition(dto.EventRefundDenied, tx)
		return &dto.AdminReviewResult{Tx: tx}, nil

	case domain.ActionFlagBVN:
		buyer, err := s.userRepo.FindUserByEmail(tx.BuyerEmail)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrBuyerNotFound
			}
			return nil, err
		}
		if err := s.flagged.Flag(buyer.BVN); err != nil {
			return nil, err
		}
		publish(s.producer, dto.EventBVNFlagged, dto.BVNFlaggedEvent{
			BVN:        buyer.BVN,
			BuyerEmail: buyer.Email,
		})
		return &dto.AdminReviewResult{FlaggedBVN: buyer.BVN}, nil

	default:
		return nil, domain.ErrInvalidAction
	}
}

func (s *escrowService) DebugSnapshot() (*dto.DebugSnapshot, error) {
	txs, err := s.txRepo.ListAll()
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}

	users, err := s.userRepo.CountUsers()
	if err != nil {
		return nil, err
	}

	bvns, err := s.flagged.ListBVNs()
	if err != nil {
		return nil, err
	}
	if bvns == nil {
		bvns = []string{}
	}

	return &dto.DebugSnapshot{Transactions: txs, Users: users, FlaggedBVNs: bvns}, nil
}

func (s *escrowService) findTransaction(txID string) (*domain.Transaction, error) {
	tx, err := s.txRepo.FindByPublicID(txID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return tx, nil
}

func (s *escrowService) publishTransition(key string, tx *domain.Transaction) {
	publish(s.producer, key, dto.TransactionEvent{
		TxID:       tx.PublicID,
		BuyerEmail: tx.BuyerEmail,
		Amount:     tx.Amount,
		Status:     string(tx.Status),
	})
}

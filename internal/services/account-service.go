package services

import (
	"encoding/json"
	"errors"
	"log"
	"regexp"

	"github.com/tmapay/escrow_service/internal/domain"
	"github.com/tmapay/escrow_service/internal/dto"
	"github.com/tmapay/escrow_service/internal/helper/utils"
	"github.com/tmapay/escrow_service/internal/interfaces"
	"github.com/tmapay/escrow_service/internal/repository"
	"gorm.io/gorm"
)

// Verification is simulated: a BVN passes if it is 10 or 11 numeric digits.
var bvnFormat = regexp.MustCompile(`^[0-9]{10,11}$`)

type AccountService interface {
	Register(input dto.SignupRequest) (*dto.UserSummary, error)
	Login(email string) (*dto.UserSummary, error)
}

type accountService struct {
	repo     repository.UserRepository
	flagged  repository.FlaggedBVNRepository
	producer interfaces.ProducerHandler
}

func NewAccountService(
	repo repository.UserRepository,
	flagged repository.FlaggedBVNRepository,
	producer interfaces.ProducerHandler,
) AccountService {
	return &accountService{
		repo:     repo,
		flagged:  flagged,
		producer: producer,
	}
}

// Register runs the signup checks in the order the API documents them:
// required fields, fraud flag, BVN format, duplicate email.
func (s *accountService) Register(input dto.SignupRequest) (*dto.UserSummary, error) {
	if input.Name == "" || input.Email == "" || input.BVN == "" {
		return nil, domain.ErrMissingFields
	}

	flagged, err := s.flagged.IsFlagged(input.BVN)
	if err != nil {
		return nil, err
	}
	if flagged {
		return nil, domain.ErrBVNFlagged
	}

	if !bvnFormat.MatchString(input.BVN) {
		return nil, domain.ErrInvalidBVNFormat
	}

	if _, err := s.repo.FindUserByEmail(input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &domain.User{
		PublicID: utils.NewID("u"),
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: input.Password,
		BVN:      input.BVN,
		Verified: true, // simulated, never actually checked anywhere
		Wallet:   domain.WalletPrefill,
		Role:     domain.DefaultRole,
	}

	usr, err := s.repo.CreateUser(user)
	if err != nil {
		return nil, err
	}

	publish(s.producer, dto.EventUserRegistered, dto.UserRegisteredEvent{
		UserID: usr.PublicID,
		Email:  usr.Email,
		Wallet: usr.Wallet,
	})

	return &dto.UserSummary{Name: usr.Name, Email: usr.Email, Wallet: usr.Wallet}, nil
}

// Login is a lookup by email. The prototype contract performs no password
// comparison and issues no session.
func (s *accountService) Login(email string) (*dto.UserSummary, error) {
	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return &dto.UserSummary{Name: user.Name, Email: user.Email, Wallet: user.Wallet}, nil
}

// publish emits a domain event if a producer is wired. Failures are logged
// and dropped; events never fail a request.
func publish(producer interfaces.ProducerHandler, key string, payload any) {
	if producer == nil {
		return
	}

	value, err := json.Marshal(payload)
	if err != nil {
		log.Printf("marshal %s event error: %v", key, err)
		return
	}

	_ = producer.PublishMessage([]byte(key), value)
}

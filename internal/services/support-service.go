package services

import (
	"github.com/tmapay/escrow_service/internal/domain"
	"github.com/tmapay/escrow_service/internal/dto"
	"github.com/tmapay/escrow_service/internal/helper/utils"
	"github.com/tmapay/escrow_service/internal/interfaces"
	"github.com/tmapay/escrow_service/internal/repository"
)

type SupportService interface {
	Submit(email, message string) (string, error)
}

type supportService struct {
	repo     repository.SupportRepository
	producer interfaces.ProducerHandler
}

func NewSupportService(repo repository.SupportRepository, producer interfaces.ProducerHandler) SupportService {
	return &supportService{repo: repo, producer: producer}
}

// Submit appends whatever it is given. Empty email or message is stored as-is.
func (s *supportService) Submit(email, message string) (string, error) {
	msg := &domain.SupportMessage{
		PublicID: utils.NewID("s"),
		Email:    email,
		Message:  message,
		TS:       utils.NowMillis(),
	}

	created, err := s.repo.CreateMessage(msg)
	if err != nil {
		return "", err
	}

	publish(s.producer, dto.EventSupportMessage, dto.SupportMessageEvent{
		MessageID: created.PublicID,
		Email:     created.Email,
	})

	return created.PublicID, nil
}

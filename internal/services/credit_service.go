package services

import (
	"github.com/shivharejitendra/visora/internal/repositories"
	"github.com/shivharejitendra/visora/internal/services/dto"
	"github.com/shivharejitendra/visora/pkg/apperrors"
)

type CreditService interface {
	GetBalance(userID string) (*dto.CreditsResponse, error)
}

type CreditServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewCreditService(userRepo repositories.UserRepository) CreditService {
	return &CreditServiceImpl{userRepo: userRepo}
}

// GetBalance возвращает текущий баланс и публичный профиль.
// Баланс всегда читается из хранилища, токен его не несет.
func (s *CreditServiceImpl) GetBalance(userID string) (*dto.CreditsResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.CreditsResponse{
		Credits: user.Credits,
		User: dto.ProfileUser{
			ID:      user.ID,
			Name:    user.Name,
			Email:   user.Email,
			Credits: user.Credits,
		},
	}, nil
}

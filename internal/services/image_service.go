package services

import (
	"context"

	"github.com/shivharejitendra/visora/internal/imageproc"
	"github.com/shivharejitendra/visora/internal/logger"
	"github.com/shivharejitendra/visora/internal/repositories"
	"github.com/shivharejitendra/visora/internal/services/dto"
	"github.com/shivharejitendra/visora/pkg/apperrors"
)

// ImageGenerator - то, что сервису нужно от API синтеза изображений.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

type ImageService interface {
	Generate(ctx context.Context, userID, prompt string) (*dto.GenerateImageResponse, error)
}

type ImageServiceImpl struct {
	userRepo  repositories.UserRepository
	generator ImageGenerator
	processor *imageproc.Processor
}

func NewImageService(
	userRepo repositories.UserRepository,
	generator ImageGenerator,
	processor *imageproc.Processor,
) ImageService {
	return &ImageServiceImpl{
		userRepo:  userRepo,
		generator: generator,
		processor: processor,
	}
}

// Generate - прокси к API синтеза. Баланс проверяется ДО внешнего вызова
// (не тратим дорогой запрос впустую), а списывается только ПОСЛЕ успешного
// ответа. Любая ошибка внешнего сервиса - баланс не трогаем.
func (s *ImageServiceImpl) Generate(ctx context.Context, userID, prompt string) (*dto.GenerateImageResponse, error) {
	if prompt == "" {
		return nil, apperrors.NewValidationError("Missing details")
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if user.Credits <= 0 {
		return nil, apperrors.ErrInsufficientCredits
	}

	raw, err := s.generator.GenerateImage(ctx, prompt)
	if err != nil {
		logger.CtxWithError(ctx, "image generation failed", err)
		return nil, apperrors.ErrUpstream(err, err.Error())
	}

	resultImage, err := s.processor.DataURL(raw)
	if err != nil {
		return nil, apperrors.ErrUpstream(err, "Image service returned an invalid image")
	}

	// Атомарное списание закрывает окно между проверкой баланса и ответом
	// внешнего API при конкурентных генерациях.
	credits, err := s.userRepo.DebitCredit(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInsufficientCredits) {
			return nil, apperrors.ErrInsufficientCredits
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "image generated", "credits_left", credits)

	return &dto.GenerateImageResponse{
		Credits:     credits,
		ResultImage: resultImage,
	}, nil
}

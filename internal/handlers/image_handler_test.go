package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivharejitendra/visora/internal/auth"
	"github.com/shivharejitendra/visora/internal/config"
	"github.com/shivharejitendra/visora/internal/services/dto"
	"github.com/shivharejitendra/visora/internal/validator"
	"github.com/shivharejitendra/visora/pkg/apperrors"
)

type stubImageService struct {
	resp *dto.GenerateImageResponse
	err  error
}

func (s *stubImageService) Generate(_ context.Context, _, _ string) (*dto.GenerateImageResponse, error) {
	return s.resp, s.err
}

func setupImageRouter(t *testing.T, svc *stubImageService) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.Secret = testJWTSecret

	h := NewImageHandler(NewBaseHandler(validator.New()), svc)

	r := gin.New()
	h.RegisterRoutes(r.Group("/api"))
	return r
}

func TestImageHandler_Generate(t *testing.T) {
	svc := &stubImageService{
		resp: &dto.GenerateImageResponse{
			Credits:     4,
			ResultImage: "data:image/png;base64,aGVsbG8=",
		},
	}
	r := setupImageRouter(t, svc)

	token, err := auth.GenerateToken("u-1", testJWTSecret, time.Hour)
	require.NoError(t, err)

	w := postJSON(r, "/api/image/generate-image", dto.GenerateImageRequest{Prompt: "a cat in space"}, token)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Image Generated", body["message"])
	assert.Equal(t, float64(4), body["credits"])
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", body["resultImage"])
}

func TestImageHandler_Generate_RequiresAuth(t *testing.T) {
	r := setupImageRouter(t, &stubImageService{})

	w := postJSON(r, "/api/image/generate-image", dto.GenerateImageRequest{Prompt: "a cat"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestImageHandler_Generate_InsufficientCredits(t *testing.T) {
	svc := &stubImageService{err: apperrors.ErrInsufficientCredits}
	r := setupImageRouter(t, svc)

	token, err := auth.GenerateToken("u-1", testJWTSecret, time.Hour)
	require.NoError(t, err)

	w := postJSON(r, "/api/image/generate-image", dto.GenerateImageRequest{Prompt: "a cat"}, token)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "No credit balance", body["message"])
}

func TestImageHandler_Generate_UpstreamDown(t *testing.T) {
	svc := &stubImageService{err: apperrors.ErrUpstream(assert.AnError, "Image service unavailable")}
	r := setupImageRouter(t, svc)

	token, err := auth.GenerateToken("u-1", testJWTSecret, time.Hour)
	require.NoError(t, err)

	w := postJSON(r, "/api/image/generate-image", dto.GenerateImageRequest{Prompt: "a cat"}, token)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

package handlers

import (
	"net/http"

	"github.com/shivharejitendra/visora/internal/middleware"
	"github.com/shivharejitendra/visora/internal/services"
	"github.com/shivharejitendra/visora/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ImageHandler struct {
	*BaseHandler
	imageService services.ImageService
}

func NewImageHandler(base *BaseHandler, imageService services.ImageService) *ImageHandler {
	return &ImageHandler{
		BaseHandler:  base,
		imageService: imageService,
	}
}

// RegisterRoutes регистрирует маршруты /api/image.
func (h *ImageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	image := rg.Group("/image")
	image.Use(middleware.AuthMiddleware())
	{
		image.POST("/generate-image", h.GenerateImage)
	}
}

func (h *ImageHandler) GenerateImage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.GenerateImageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.imageService.Generate(c.Request.Context(), userID, req.Prompt)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Image Generated",
		"credits":     resp.Credits,
		"resultImage": resp.ResultImage,
	})
}

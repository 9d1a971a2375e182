package handlers

import (
	"net/http"

	"github.com/shivharejitendra/visora/internal/middleware"
	"github.com/shivharejitendra/visora/internal/services"
	"github.com/shivharejitendra/visora/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	authService    services.AuthService
	creditService  services.CreditService
	paymentService services.PaymentService
}

func NewUserHandler(
	base *BaseHandler,
	authService services.AuthService,
	creditService services.CreditService,
	paymentService services.PaymentService,
) *UserHandler {
	return &UserHandler{
		BaseHandler:    base,
		authService:    authService,
		creditService:  creditService,
		paymentService: paymentService,
	}
}

// RegisterRoutes регистрирует маршруты /api/user.
// verify-payment без auth-guard'а: payload самоаутентифицируется подписью шлюза.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	user := rg.Group("/user")
	{
		user.POST("/register", h.Register)
		user.POST("/login", h.Login)
		user.POST("/verify-payment", h.VerifyPayment)

		authed := user.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/credits", h.Credits)
			authed.POST("/pay-razor", h.InitiatePurchase)
		}
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   resp.Token,
		"user":    resp.User,
	})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   resp.Token,
		"user":    resp.User,
	})
}

func (h *UserHandler) Credits(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.creditService.GetBalance(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"credits": resp.Credits,
		"user":    resp.User,
	})
}

func (h *UserHandler) InitiatePurchase(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.PayRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.paymentService.InitiatePurchase(c.Request.Context(), userID, req.PlanID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"order":         resp.Order,
		"transactionId": resp.TransactionID,
	})
}

func (h *UserHandler) VerifyPayment(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.paymentService.VerifyPayment(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Повторный callback по обработанной транзакции - не ошибка и не мутация:
	// клиенту отвечаем 200, success:false, как ждет существующий виджет.
	if result.AlreadyProcessed {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Payment already processed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment verified",
		"credits": result.Credits,
	})
}

package services

import (
	"context"

	"github.com/shivharejitendra/visora/internal/billing"
	"github.com/shivharejitendra/visora/internal/logger"
	"github.com/shivharejitendra/visora/internal/models"
	"github.com/shivharejitendra/visora/internal/repositories"
	"github.com/shivharejitendra/visora/internal/services/dto"
	"github.com/shivharejitendra/visora/pkg/apperrors"
)

// PaymentGateway - то, что сервису нужно от платежного шлюза.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, receipt string) (*billing.Order, error)
	VerifySignature(orderID, paymentID, receivedSig string) bool
}

type PaymentService interface {
	InitiatePurchase(ctx context.Context, userID, planID string) (*dto.InitiatePurchaseResponse, error)
	VerifyPayment(ctx context.Context, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResult, error)
}

type PaymentServiceImpl struct {
	userRepo repositories.UserRepository
	txnRepo  repositories.TransactionRepository
	gateway  PaymentGateway
}

func NewPaymentService(
	userRepo repositories.UserRepository,
	txnRepo repositories.TransactionRepository,
	gateway PaymentGateway,
) PaymentService {
	return &PaymentServiceImpl{
		userRepo: userRepo,
		txnRepo:  txnRepo,
		gateway:  gateway,
	}
}

// InitiatePurchase - первый шаг покупки: created-транзакция + заказ у шлюза.
// Транзакция пишется ДО обращения к шлюзу: сбой после создания заказа не
// теряет намерение. Транзакция без order id - сирота для ручной сверки,
// автоматического отката нет (известный пробел, см. DESIGN.md).
func (s *PaymentServiceImpl) InitiatePurchase(ctx context.Context, userID, planID string) (*dto.InitiatePurchaseResponse, error) {
	plan, ok := models.ResolvePlan(planID)
	if !ok {
		return nil, apperrors.ErrPlanNotFound
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	txn := &models.Transaction{
		UserID:  userID,
		Plan:    plan.Name,
		Amount:  plan.Amount,
		Credits: plan.Credits,
		Status:  models.TransactionStatusCreated,
	}
	if err := s.txnRepo.Create(txn); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Шлюз принимает сумму в минорных единицах
	order, err := s.gateway.CreateOrder(ctx, int64(plan.Amount)*100, txn.ID)
	if err != nil {
		logger.CtxWithError(ctx, "payment order creation failed", err, "transaction_id", txn.ID)
		return nil, apperrors.ErrUpstream(err, "Payment gateway unavailable")
	}

	if err := s.txnRepo.AttachOrderID(txn.ID, order.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "purchase initiated",
		"transaction_id", txn.ID, "plan", plan.Name, "order_id", order.ID)

	return &dto.InitiatePurchaseResponse{
		Order:         order,
		TransactionID: txn.ID,
	}, nil
}

// VerifyPayment - второй, терминальный шаг: проверка подписи callback'а и
// начисление кредитов. Порядок проверок важен: подпись до чтения транзакции
// (неподписанный запрос не должен ничего узнать), флаг verified до мутации
// (идемпотентность при повторном callback'е).
func (s *PaymentServiceImpl) VerifyPayment(ctx context.Context, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResult, error) {
	if req.RazorpayPaymentID == "" || req.RazorpayOrderID == "" || req.RazorpaySignature == "" {
		return nil, apperrors.NewValidationError("Missing payment verification details")
	}

	if !s.gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		logger.CtxWarn(ctx, "payment signature mismatch", "order_id", req.RazorpayOrderID)
		return nil, apperrors.ErrInvalidPaymentSignature
	}

	txn, err := s.txnRepo.FindByID(req.TransactionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if txn.PaymentVerified {
		return &dto.VerifyPaymentResult{AlreadyProcessed: true}, nil
	}

	credits, err := s.userRepo.AddCredits(txn.UserID, txn.Credits)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.txnRepo.MarkPaid(txn.ID, req.RazorpayPaymentID, req.RazorpaySignature); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "payment verified",
		"transaction_id", txn.ID, "credits_added", txn.Credits)

	return &dto.VerifyPaymentResult{Credits: credits}, nil
}

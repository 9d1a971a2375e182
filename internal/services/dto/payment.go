package dto

import "github.com/shivharejitendra/visora/internal/billing"

type PayRequest struct {
	PlanID string `json:"planId" binding:"required"`
}

type InitiatePurchaseResponse struct {
	Order         *billing.Order `json:"order"`
	TransactionID string         `json:"transactionId"`
}

// VerifyPaymentRequest - значения, выданные шлюзом, плюс наш id транзакции.
// Поля шлюза валидируются в сервисе, а не binding'ом: на отсутствие любого из
// них клиент должен получить осмысленное сообщение, а не ошибку привязки.
type VerifyPaymentRequest struct {
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	TransactionID     string `json:"transactionId"`
}

// VerifyPaymentResult различает первое успешное начисление и повторный
// callback по уже обработанной транзакции.
type VerifyPaymentResult struct {
	AlreadyProcessed bool
	Credits          int
}

package apperrors

import "net/http"

/*
Фабрики и предопределенные переменные для доменных ошибок.
HTTP-коды следуют таксономии, а не оригинальному поведению
"200 OK с success:false" (см. DESIGN.md).
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error, message string) *AppError {
	return Wrap(err, CodeNotFound, "resource", message, http.StatusNotFound)
}

// ErrUpstream - фабрика для ошибок внешних сервисов (502).
// Клиенту транслируется сообщение сервиса, без внутренних деталей.
func ErrUpstream(err error, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, "upstream", message, http.StatusBadGateway)
}

// --- Auth ---

// ErrEmailAlreadyExists - email уже используется.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusConflict,
)

// ErrInvalidCredentials - неверный email или пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Not authorized. Please log in again.",
	http.StatusUnauthorized,
)

// --- Credits & Payments ---

// ErrUserNotFound - пользователь не найден.
var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

// ErrTransactionNotFound - транзакция не найдена.
var ErrTransactionNotFound = New(
	CodeNotFound,
	"payment",
	"Transaction not found",
	http.StatusNotFound,
)

// ErrPlanNotFound - тариф не распознан.
var ErrPlanNotFound = New(
	CodePlanNotFound,
	"payment",
	"Plan not found",
	http.StatusBadRequest,
)

// ErrInvalidPaymentSignature - подпись callback'а не совпала.
// Единственное доказательство, что callback не подделан клиентом.
var ErrInvalidPaymentSignature = New(
	CodeInvalidSignature,
	"payment",
	"Invalid payment signature",
	http.StatusBadRequest,
)

// ErrInsufficientCredits - баланс исчерпан.
var ErrInsufficientCredits = New(
	CodeInsufficientCredits,
	"credits",
	"No credit balance",
	http.StatusPaymentRequired,
)

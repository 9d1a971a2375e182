package models

type TransactionStatus string

const (
	// Транзакция создана, ждем подтверждения оплаты от шлюза.
	TransactionStatusCreated TransactionStatus = "created"
	// Подпись проверена, кредиты начислены. Терминальный статус.
	TransactionStatusPaid TransactionStatus = "paid"
	// Зарезервировано: шлюз сообщил о неудачной оплате.
	TransactionStatusFailed TransactionStatus = "failed"
)

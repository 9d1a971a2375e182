package models

// Transaction - одна попытка покупки кредитов. Создается до обращения к
// платежному шлюзу, чтобы не потерять намерение при сбое после создания заказа.
type Transaction struct {
	BaseModel
	UserID  string            `gorm:"type:uuid;not null;index"`
	Plan    string            `gorm:"not null"`
	Amount  int               `gorm:"not null"` // сумма в основной валюте (не в минорных единицах)
	Credits int               `gorm:"not null"`
	Status  TransactionStatus `gorm:"type:varchar(20);default:'created'"`

	// Razorpay details
	RazorpayOrderID   string
	RazorpayPaymentID string
	RazorpaySignature string

	// Идемпотентность: кредиты начисляются не более одного раза на транзакцию.
	PaymentVerified bool `gorm:"default:false"`
}

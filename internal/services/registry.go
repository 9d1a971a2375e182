package services

// ServiceContainer собирает все сервисы приложения для передачи в хендлеры.
type ServiceContainer struct {
	AuthService    AuthService
	CreditService  CreditService
	PaymentService PaymentService
	ImageService   ImageService
}

package handlers

// AppHandlers собирает все хендлеры приложения для регистрации маршрутов.
type AppHandlers struct {
	UserHandler  *UserHandler
	ImageHandler *ImageHandler
}

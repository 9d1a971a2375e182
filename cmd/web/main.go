// @title           visora API
// @version         1.0
// @description     Бэкенд генерации изображений по тексту: кредиты, оплата, прокси к API синтеза.
// @host            localhost:4000
// @BasePath        /

package main

import "github.com/shivharejitendra/visora/internal/app"

func main() {
	app.Run()
}

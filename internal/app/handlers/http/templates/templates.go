// Package templates содержит HTML-шаблоны страниц сервиса.
package templates

import (
	"embed"
	"html/template"
)

const (
	Home      = "home.html"
	KeyFilled = "key_filled.html"
)

//go:embed *.html
var files embed.FS

// HomeData заполняет home.html. Error показывается над формой, если не пуст.
type HomeData struct {
	Error string
}

// KeyFilledData заполняет key_filled.html.
type KeyFilledData struct {
	BaseURL      string
	ShortenedURL string
}

// Parse разбирает все встроенные шаблоны. Имена шаблонов совпадают с именами файлов.
func Parse() (*template.Template, error) {
	return template.ParseFS(files, "*.html")
}

func MustParse() *template.Template {
	return template.Must(Parse())
}

package shortkey

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// DefaultLength — длина токена генерируемых ключей.
const DefaultLength = 5

// Generator выдаёт новые случайные ключи.
type Generator interface {
	Generate() (Key, error)
}

// GeneratorFunc позволяет использовать функцию как Generator.
type GeneratorFunc func() (Key, error)

func (f GeneratorFunc) Generate() (Key, error) {
	return f()
}

// NanoidGenerator берёт Length символов из URL-безопасного алфавита nanoid.
type NanoidGenerator struct {
	Length int
}

// Generate возвращает новый ключ. При Length <= 0 используется DefaultLength.
func (g NanoidGenerator) Generate() (Key, error) {
	length := g.Length
	if length <= 0 {
		length = DefaultLength
	}
	return Random(length)
}

// Random возвращает ключ из length случайных URL-безопасных символов.
// Проверка на совпадение с существующими ключами остаётся за вызывающим.
func Random(length int) (Key, error) {
	token, err := gonanoid.New(length)
	if err != nil {
		return Key{}, fmt.Errorf("generate key: %w", err)
	}
	return Key{token: token}, nil
}

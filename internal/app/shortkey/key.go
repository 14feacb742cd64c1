// Package shortkey описывает ключи коротких ссылок: генерацию, разбор из пути
// запроса или полного короткого URL и обратную сборку ссылки.
package shortkey

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput возвращается FromURL, если в URL нет сегмента пути, из которого можно взять ключ.
var ErrInvalidInput = errors.New("invalid input")

// Key идентифицирует зарегистрированный URL. Ключи сравниваются по токену и годятся как ключи map.
type Key struct {
	token string
}

// FromURL извлекает ключ из полного короткого URL: всё, что после последнего "/".
func FromURL(rawURL string) (Key, error) {
	i := strings.LastIndex(rawURL, "/")
	if i < 0 {
		return Key{}, fmt.Errorf("%w: no path segment in %q", ErrInvalidInput, rawURL)
	}
	return Key{token: rawURL[i+1:]}, nil
}

// FromID оборачивает сегмент пути запроса. Неизвестный id даст ошибку только при поиске.
func FromID(id string) Key {
	return Key{token: id}
}

// BuildURL собирает короткую ссылку в том виде, в каком клиент обратился к host.
func (k Key) BuildURL(host string) string {
	return host + "/" + k.token
}

func (k Key) String() string {
	return k.token
}

// IsZero сообщает, пустой ли ключ.
func (k Key) IsZero() bool {
	return k.token == ""
}

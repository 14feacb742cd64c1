package service

import (
	"errors"

	"github.com/aseptimu/tinylink/internal/app/shortkey"
)

var (
	ErrURLNotFound       = errors.New("URL not found")
	ErrKeySpaceExhausted = errors.New("no free short key found")
	ErrInvalidInput      = shortkey.ErrInvalidInput
)

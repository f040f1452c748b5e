package model

import "errors"

var (
	ErrInvalidPhoneNumber = errors.New("phone number must consist of exactly 9 digits")
	ErrReaderNotFound     = errors.New("reader not found")
)

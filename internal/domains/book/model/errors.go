package model

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")

	// State-conflict errors raised by the lending operations.
	ErrBookLentToSomeone   = errors.New("book is already lent to someone")
	ErrBookReserved        = errors.New("book is reserved by someone else")
	ErrBookNotLent         = errors.New("book is not lent")
	ErrBookNotLentToReader = errors.New("book is lent to a different reader")
)

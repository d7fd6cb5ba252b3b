package apperror

import "errors"

var (
	ErrWordTooShort = errors.New("word must be at least 3 letters")
	ErrWordTooLong  = errors.New("word must be 15 letters or less")
	ErrWordCharset  = errors.New("word must contain only letters")
)

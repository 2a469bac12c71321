package auth

import "errors"

var (
	ErrWrongPassword = errors.New("wrong password")
)

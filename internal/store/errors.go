package store

import "errors"

var (
	ErrUserExists          = errors.New("user already exists")
	ErrRecordNotFound      = errors.New("record not found")
	ErrConstraintViolation = errors.New("database constraint violation")
)

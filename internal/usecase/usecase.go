package usecase

import "errors"

var (
	ErrNoUsers = errors.New("users list is empty")
)

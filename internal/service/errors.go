package service

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrShopNotFound       = errors.New("shop not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

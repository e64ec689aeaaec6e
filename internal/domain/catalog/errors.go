package catalog

import "errors"

var (
	ErrPaymentTypeNotFound = errors.New("payment type not found")
	ErrMarkTypeNotFound    = errors.New("mark type not found")
)

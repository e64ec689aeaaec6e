package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrPositionNotFound = errors.New("position not found")
)

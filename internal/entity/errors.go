package entity

import "errors"

var (
	ErrIncorrectRequestBody = errors.New("incorrect request body")
	ErrInvalidInvoiceData   = errors.New("invalid invoice data")
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("forbidden")
	ErrStorage              = errors.New("storage failure")
	ErrRender               = errors.New("render failure")
	ErrPersistence          = errors.New("persistence failure")
)

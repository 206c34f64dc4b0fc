package service

import (
	"fmt"

	"github.com/hirelane/invoices/internal/entity"
)

func ValidateInvoiceData(data entity.InvoiceData) error {
	if data.Name == "" || data.Surname == "" || data.Address == "" || data.Plan == "" {
		return fmt.Errorf("%w: name, surname, address and plan are required", entity.ErrInvalidInvoiceData)
	}

	if data.Price == nil {
		return fmt.Errorf("%w: price is required", entity.ErrInvalidInvoiceData)
	}

	if data.Price.IsZero() {
		return fmt.Errorf("%w: price must not be zero", entity.ErrInvalidInvoiceData)
	}

	return nil
}

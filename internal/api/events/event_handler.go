package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/hirelane/invoices/internal/entity"
)

type Service interface {
	CreateInvoice(ctx context.Context, data entity.InvoiceData) (entity.Invoice, error)
}

type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

type OnPaymentCompletedEvent struct {
	PaymentID uuid.UUID       `json:"payment_id"`
	Name      string          `json:"name"`
	Surname   string          `json:"surname"`
	Address   string          `json:"address"`
	Plan      string          `json:"plan"`
	Amount    decimal.Decimal `json:"amount"`
}

// OnPaymentCompleted issues an invoice for a confirmed payment. Zero-amount
// events carry nothing billable and are skipped.
func (h *EventHandler) OnPaymentCompleted(ctx context.Context, msg kafka.Message) error {
	var event OnPaymentCompletedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if event.Amount.IsZero() {
		return nil
	}

	_, err = h.s.CreateInvoice(ctx, entity.InvoiceData{
		Name:    event.Name,
		Surname: event.Surname,
		Address: event.Address,
		Plan:    event.Plan,
		Price:   &event.Amount,
	})
	if err != nil {
		return fmt.Errorf("create invoice for payment %s: %w", event.PaymentID, err)
	}

	return nil
}

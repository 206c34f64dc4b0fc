package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
)

type Producer struct {
	l                   *slog.Logger
	w                   *kafka.Writer
	invoiceCreatedTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                   l,
		w:                   w,
		invoiceCreatedTopic: topic,
	}
}

type InvoiceCreatedEvent struct {
	InvoiceID    uuid.UUID `json:"invoice_id"`
	CreationDate time.Time `json:"creation_date"`
	PDFKey       string    `json:"pdf_key"`
}

// SendInvoiceCreated is best effort: the writer is async and delivery
// failures are only logged. Invoice creation never fails on the event.
func (p *Producer) SendInvoiceCreated(ctx context.Context, invoiceID uuid.UUID, creationDate time.Time, pdfKey string) {
	event := InvoiceCreatedEvent{
		InvoiceID:    invoiceID,
		CreationDate: creationDate,
		PDFKey:       pdfKey,
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(invoiceID.String()),
		Value: b,
		Topic: p.invoiceCreatedTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Invoice is the persisted record. Billing fields from InvoiceData are not
// retained: only the identifier, the issue date and the object key survive
// the creation flow.
type Invoice struct {
	ID           uuid.UUID `json:"id"`
	CreationDate time.Time `json:"creationDate"`
	PDFKey       string    `json:"pdfUrl,omitempty"`
}

// Bucket is the object-store bucket holding this invoice's document,
// one bucket per invoice.
func (i Invoice) Bucket() string {
	return i.ID.String()
}

// ObjectKey is the key of the PDF inside Bucket.
func (i Invoice) ObjectKey() string {
	return i.ID.String() + ".pdf"
}

// Ready reports whether the document upload completed. A record without a
// key is an in-flight creation or an orphan left by a crash and must never
// be resolved into a download URL.
func (i Invoice) Ready() bool {
	return i.PDFKey != ""
}

// InvoiceData is the transient creation payload. Price is a pointer so that
// an absent amount is distinguishable from an explicit zero; both are
// rejected by validation.
type InvoiceData struct {
	Name         string
	Surname      string
	Address      string
	Plan         string
	Price        *decimal.Decimal
	CreationDate *time.Time
}

// InvoiceDocument carries the fields rendered into the PDF.
type InvoiceDocument struct {
	Number     string
	ClientName string
	Address    string
	Plan       string
	Amount     string
	IssuedAt   time.Time
}

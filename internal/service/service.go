package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/hirelane/invoices/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	Save(ctx context.Context, invoice entity.Invoice) (entity.Invoice, error)
	InvoiceByID(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	Invoices(ctx context.Context) ([]entity.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Storage interface {
	Upload(ctx context.Context, bucket, key, filePath, contentType string, public bool) error
	PresignedURL(ctx context.Context, bucket, key string, ttl time.Duration) (string, error)
	RemoveObject(ctx context.Context, bucket, key string) error
}

type Renderer interface {
	Render(doc entity.InvoiceDocument) ([]byte, error)
}

type Events interface {
	SendInvoiceCreated(ctx context.Context, invoiceID uuid.UUID, creationDate time.Time, pdfKey string)
}

type Service struct {
	repo            Repository
	storage         Storage
	renderer        Renderer
	events          Events
	filesBaseURL    string
	presignTTL      time.Duration
	retainDocuments bool
}

func New(
	repo Repository,
	storage Storage,
	renderer Renderer,
	events Events,
	filesBaseURL string,
	presignTTL time.Duration,
	retainDocuments bool,
) *Service {
	return &Service{
		repo:            repo,
		storage:         storage,
		renderer:        renderer,
		events:          events,
		filesBaseURL:    filesBaseURL,
		presignTTL:      presignTTL,
		retainDocuments: retainDocuments,
	}
}

// CreateInvoice runs the creation saga: persist a placeholder to obtain the
// id, render the PDF, upload it into a private bucket named after the id,
// then re-persist the record with the object key. The first failing step
// rolls the completed ones back, so a failed attempt leaves no record
// behind.
func (s *Service) CreateInvoice(ctx context.Context, data entity.InvoiceData) (entity.Invoice, error) {
	err := ValidateInvoiceData(data)
	if err != nil {
		return entity.Invoice{}, err
	}

	creationDate := time.Now()
	if data.CreationDate != nil {
		creationDate = *data.CreationDate
	}

	var (
		invoice entity.Invoice
		pdfPath string
	)

	// The rendered document is spilled to a temp file for the upload and
	// removed on every exit path.
	defer func() {
		if pdfPath == "" {
			return
		}

		rmErr := os.Remove(pdfPath)
		if rmErr != nil {
			slog.ErrorContext(ctx, "remove temp pdf", "path", pdfPath, "error", rmErr)
		}
	}()

	steps := []sagaStep{
		{
			name: "persist placeholder",
			run: func(ctx context.Context) error {
				stored, err := s.repo.Save(ctx, entity.Invoice{CreationDate: creationDate})
				if err != nil {
					return err
				}

				invoice = stored

				return nil
			},
			rollback: func(ctx context.Context) error {
				return s.repo.Delete(ctx, invoice.ID)
			},
		},
		{
			name: "render pdf",
			run: func(ctx context.Context) error {
				doc, err := s.renderer.Render(invoiceDocument(invoice, data))
				if err != nil {
					return err
				}

				path, err := writeTempPDF(invoice.ID, doc)
				if err != nil {
					return err
				}

				pdfPath = path

				return nil
			},
		},
		{
			name: "upload pdf",
			run: func(ctx context.Context) error {
				return s.storage.Upload(ctx, invoice.Bucket(), invoice.ObjectKey(), pdfPath, "application/pdf", false)
			},
		},
		{
			name: "persist locator",
			run: func(ctx context.Context) error {
				invoice.PDFKey = invoice.ObjectKey()

				stored, err := s.repo.Save(ctx, invoice)
				if err != nil {
					return err
				}

				invoice = stored

				return nil
			},
		},
	}

	err = runSaga(ctx, steps)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("create invoice: %w", err)
	}

	slog.InfoContext(ctx, "invoice created", "invoice_id", invoice.ID)

	s.events.SendInvoiceCreated(ctx, invoice.ID, invoice.CreationDate, invoice.PDFKey)

	return invoice, nil
}

func (s *Service) InvoiceByID(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	return s.repo.InvoiceByID(ctx, id)
}

func (s *Service) Invoices(ctx context.Context) ([]entity.Invoice, error) {
	return s.repo.Invoices(ctx)
}

// InvoiceURL resolves a presigned download URL for the invoice document. A
// record without an object key is an in-flight creation or an orphan and is
// reported as not found, never resolved.
func (s *Service) InvoiceURL(ctx context.Context, id uuid.UUID) (string, error) {
	invoice, err := s.repo.InvoiceByID(ctx, id)
	if err != nil {
		return "", err
	}

	if !invoice.Ready() {
		return "", fmt.Errorf("%w: invoice %s has no document yet", entity.ErrNotFound, id)
	}

	raw, err := s.storage.PresignedURL(ctx, invoice.Bucket(), invoice.PDFKey, s.presignTTL)
	if err != nil {
		return "", err
	}

	return s.rewriteURL(raw)
}

// DeleteInvoice removes the record and, unless retention is enabled, the
// stored document.
func (s *Service) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.repo.InvoiceByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	if s.retainDocuments || !invoice.Ready() {
		return nil
	}

	err = s.storage.RemoveObject(ctx, invoice.Bucket(), invoice.PDFKey)
	if err != nil {
		// The record is already gone; failing now would misreport the delete.
		slog.ErrorContext(ctx, "remove invoice document", "invoice_id", id, "error", err)
	}

	return nil
}

// rewriteURL swaps the store's internal endpoint for the externally
// reachable files prefix, keeping the path and the signature query intact.
func (s *Service) rewriteURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: parse presigned url: %s", entity.ErrStorage, err)
	}

	return strings.TrimSuffix(s.filesBaseURL, "/") + u.RequestURI(), nil
}

func invoiceDocument(invoice entity.Invoice, data entity.InvoiceData) entity.InvoiceDocument {
	return entity.InvoiceDocument{
		Number:     invoice.ID.String(),
		ClientName: data.Name + " " + data.Surname,
		Address:    data.Address,
		Plan:       data.Plan,
		Amount:     data.Price.String() + " EUR",
		IssuedAt:   invoice.CreationDate,
	}
}

func writeTempPDF(id uuid.UUID, content []byte) (string, error) {
	f, err := os.CreateTemp("", id.String()+"-*.pdf")
	if err != nil {
		return "", fmt.Errorf("%w: create temp pdf: %s", entity.ErrRender, err)
	}

	_, err = f.Write(content)

	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}

	if err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("%w: write temp pdf: %s", entity.ErrRender, err)
	}

	return f.Name(), nil
}

package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hirelane/invoices/internal/entity"
	"github.com/hirelane/invoices/internal/mocks"
	"github.com/hirelane/invoices/internal/service"
)

const (
	testFilesBaseURL = "http://localhost:8090/api/v1/invoice-files"
	testPresignTTL   = 2 * time.Hour
)

type TestService struct {
	repo     *mocks.MockRepository
	storage  *mocks.MockStorage
	renderer *mocks.MockRenderer
	events   *mocks.MockEvents
	s        *service.Service
}

func NewTestService(t *testing.T, retainDocuments bool) *TestService {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRepository(ctrl)
	storage := mocks.NewMockStorage(ctrl)
	renderer := mocks.NewMockRenderer(ctrl)
	events := mocks.NewMockEvents(ctrl)

	s := service.New(repo, storage, renderer, events,
		testFilesBaseURL, testPresignTTL, retainDocuments)

	return &TestService{
		repo:     repo,
		storage:  storage,
		renderer: renderer,
		events:   events,
		s:        s,
	}
}

func testInvoiceData(creationDate *time.Time) entity.InvoiceData {
	price := decimal.RequireFromString("99.9")

	return entity.InvoiceData{
		Name:         "Jane",
		Surname:      "Doe",
		Address:      "1 Main St",
		Plan:         "Gold",
		Price:        &price,
		CreationDate: creationDate,
	}
}

func TestService_CreateInvoice(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, false)

	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())
	issued := time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)
	data := testInvoiceData(&issued)

	stored := entity.Invoice{ID: id, CreationDate: issued}
	final := entity.Invoice{ID: id, CreationDate: issued, PDFKey: id.String() + ".pdf"}

	ts.repo.EXPECT().Save(gomock.Any(), entity.Invoice{CreationDate: issued}).Return(stored, nil)
	ts.renderer.EXPECT().Render(entity.InvoiceDocument{
		Number:     id.String(),
		ClientName: "Jane Doe",
		Address:    "1 Main St",
		Plan:       "Gold",
		Amount:     "99.9 EUR",
		IssuedAt:   issued,
	}).Return([]byte("%PDF-1.7 test"), nil)
	ts.storage.EXPECT().
		Upload(gomock.Any(), id.String(), id.String()+".pdf", gomock.Any(), "application/pdf", false).
		Return(nil)
	ts.repo.EXPECT().Save(gomock.Any(), final).Return(final, nil)
	ts.events.EXPECT().SendInvoiceCreated(gomock.Any(), id, issued, final.PDFKey)

	got, err := ts.s.CreateInvoice(ctx, data)
	r.NoError(err)
	r.Equal(final, got)
	r.True(got.Ready())
}

func TestService_CreateInvoice_Validation(t *testing.T) {
	t.Parallel()

	zero := decimal.Zero

	tests := []struct {
		name   string
		mutate func(*entity.InvoiceData)
	}{
		{name: "missing name", mutate: func(d *entity.InvoiceData) { d.Name = "" }},
		{name: "missing surname", mutate: func(d *entity.InvoiceData) { d.Surname = "" }},
		{name: "missing address", mutate: func(d *entity.InvoiceData) { d.Address = "" }},
		{name: "missing plan", mutate: func(d *entity.InvoiceData) { d.Plan = "" }},
		{name: "missing price", mutate: func(d *entity.InvoiceData) { d.Price = nil }},
		{name: "zero price", mutate: func(d *entity.InvoiceData) { d.Price = &zero }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)
			ts := NewTestService(t, false)

			data := testInvoiceData(nil)
			tt.mutate(&data)

			// No mock expectations: validation rejects before any side effect.
			_, err := ts.s.CreateInvoice(context.Background(), data)
			r.ErrorIs(err, entity.ErrInvalidInvoiceData)
		})
	}
}

func TestService_CreateInvoice_UploadFails(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, false)

	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())
	issued := time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)

	ts.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entity.Invoice{ID: id, CreationDate: issued}, nil)
	ts.renderer.EXPECT().Render(gomock.Any()).Return([]byte("%PDF-1.7 test"), nil)
	ts.storage.EXPECT().
		Upload(gomock.Any(), id.String(), id.String()+".pdf", gomock.Any(), "application/pdf", false).
		Return(entity.ErrStorage)

	// Compensation: the placeholder record is removed.
	ts.repo.EXPECT().Delete(gomock.Any(), id).Return(nil)

	got, err := ts.s.CreateInvoice(ctx, testInvoiceData(&issued))
	r.ErrorIs(err, entity.ErrStorage)
	r.Equal(entity.Invoice{}, got)
}

func TestService_CreateInvoice_RenderFails(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, false)

	id := uuid.Must(uuid.NewV4())
	issued := time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)

	ts.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entity.Invoice{ID: id, CreationDate: issued}, nil)
	ts.renderer.EXPECT().Render(gomock.Any()).Return(nil, entity.ErrRender)
	ts.repo.EXPECT().Delete(gomock.Any(), id).Return(nil)

	_, err := ts.s.CreateInvoice(context.Background(), testInvoiceData(&issued))
	r.ErrorIs(err, entity.ErrRender)
}

func TestService_InvoiceURL(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, false)

	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())
	invoice := entity.Invoice{
		ID:           id,
		CreationDate: time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC),
		PDFKey:       id.String() + ".pdf",
	}

	ts.repo.EXPECT().InvoiceByID(gomock.Any(), id).Return(invoice, nil)
	ts.storage.EXPECT().
		PresignedURL(gomock.Any(), invoice.Bucket(), invoice.PDFKey, testPresignTTL).
		Return("http://invoice-minio:9000/"+invoice.Bucket()+"/"+invoice.PDFKey+"?X-Amz-Signature=abc", nil)

	got, err := ts.s.InvoiceURL(ctx, id)
	r.NoError(err)
	r.Equal(testFilesBaseURL+"/"+invoice.Bucket()+"/"+invoice.PDFKey+"?X-Amz-Signature=abc", got)
}

func TestService_InvoiceURL_NotFound(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, false)

	id := uuid.Must(uuid.NewV4())

	ts.repo.EXPECT().InvoiceByID(gomock.Any(), id).Return(entity.Invoice{}, entity.ErrNotFound)

	_, err := ts.s.InvoiceURL(context.Background(), id)
	r.ErrorIs(err, entity.ErrNotFound)
}

func TestService_InvoiceURL_DocumentNotReady(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, false)

	id := uuid.Must(uuid.NewV4())

	// A record without a key is an in-flight creation or an orphan; it must
	// never reach the storage gateway.
	ts.repo.EXPECT().InvoiceByID(gomock.Any(), id).
		Return(entity.Invoice{ID: id, CreationDate: time.Now()}, nil)

	_, err := ts.s.InvoiceURL(context.Background(), id)
	r.ErrorIs(err, entity.ErrNotFound)
}

func TestService_DeleteInvoice(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, false)

	id := uuid.Must(uuid.NewV4())
	invoice := entity.Invoice{ID: id, CreationDate: time.Now(), PDFKey: id.String() + ".pdf"}

	ts.repo.EXPECT().InvoiceByID(gomock.Any(), id).Return(invoice, nil)
	ts.repo.EXPECT().Delete(gomock.Any(), id).Return(nil)
	ts.storage.EXPECT().RemoveObject(gomock.Any(), invoice.Bucket(), invoice.PDFKey).Return(nil)

	r.NoError(ts.s.DeleteInvoice(context.Background(), id))
}

func TestService_DeleteInvoice_Retention(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, true)

	id := uuid.Must(uuid.NewV4())
	invoice := entity.Invoice{ID: id, CreationDate: time.Now(), PDFKey: id.String() + ".pdf"}

	ts.repo.EXPECT().InvoiceByID(gomock.Any(), id).Return(invoice, nil)
	ts.repo.EXPECT().Delete(gomock.Any(), id).Return(nil)

	r.NoError(ts.s.DeleteInvoice(context.Background(), id))
}

func TestValidateInvoiceData(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	r.NoError(service.ValidateInvoiceData(testInvoiceData(nil)))

	negative := decimal.RequireFromString("-10")
	data := testInvoiceData(nil)
	data.Price = &negative

	// Only zero and absent amounts are rejected; sign is not validated here.
	r.NoError(service.ValidateInvoiceData(data))
}

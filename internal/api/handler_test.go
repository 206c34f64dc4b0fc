package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hirelane/invoices/internal/api"
	"github.com/hirelane/invoices/internal/entity"
	"github.com/hirelane/invoices/internal/mocks"
)

type TestAPI struct {
	s      *mocks.MockService
	router chi.Router
}

func NewTestAPI(t *testing.T) *TestAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	s := mocks.NewMockService(ctrl)
	h := api.NewHandler(s)

	// Handlers mounted without the auth chain: middleware is exercised
	// against the real auth service, not here.
	router := chi.NewRouter()
	router.Post("/api/v1/invoice/", h.CreateInvoice)
	router.Get("/api/v1/invoice/", h.Invoices)
	router.Get("/api/v1/invoice/{id}", h.InvoiceByID)
	router.Get("/api/v1/invoice/url/{id}", h.InvoiceURL)
	router.Delete("/api/v1/invoice/{id}", h.DeleteInvoice)

	return &TestAPI{s: s, router: router}
}

func (a *TestAPI) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_CreateInvoice(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	a := NewTestAPI(t)

	// Fixed id: the response body is checked for leaked billing digits.
	id := uuid.FromStringOrNil("a3bb1846-6c2f-4f4b-8d5a-0f01e2d3c4b5")
	price := decimal.RequireFromString("99.0")
	invoice := entity.Invoice{
		ID:           id,
		CreationDate: time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC),
		PDFKey:       id.String() + ".pdf",
	}

	a.s.EXPECT().CreateInvoice(gomock.Any(), entity.InvoiceData{
		Name:    "Jane",
		Surname: "Doe",
		Address: "1 Main St",
		Plan:    "Gold",
		Price:   &price,
	}).Return(invoice, nil)

	body := `{"name":"Jane","surname":"Doe","address":"1 Main St","plan":"Gold","price":99.0}`
	rec := a.do(httptest.NewRequest(http.MethodPost, "/api/v1/invoice/", strings.NewReader(body)))

	r.Equal(http.StatusOK, rec.Code)

	got := rec.Body.String()
	r.Contains(got, id.String())
	r.Contains(got, invoice.PDFKey)

	// The projection carries only id/date/locator; billing fields are never
	// echoed back.
	r.NotContains(got, "Jane")
	r.NotContains(got, "Doe")
	r.NotContains(got, "Gold")
	r.NotContains(got, "1 Main St")
	r.NotContains(got, "99")
}

func TestHandler_CreateInvoice_InvalidData(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	a := NewTestAPI(t)

	a.s.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
		Return(entity.Invoice{}, entity.ErrInvalidInvoiceData)

	body := `{"name":"Jane"}`
	rec := a.do(httptest.NewRequest(http.MethodPost, "/api/v1/invoice/", strings.NewReader(body)))

	r.Equal(http.StatusBadRequest, rec.Code)
}

func TestHandler_CreateInvoice_BadBody(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	a := NewTestAPI(t)

	rec := a.do(httptest.NewRequest(http.MethodPost, "/api/v1/invoice/", strings.NewReader("{")))

	r.Equal(http.StatusBadRequest, rec.Code)
}

func TestHandler_InvoiceURL(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	a := NewTestAPI(t)

	id := uuid.Must(uuid.NewV4())
	want := "http://localhost:8090/api/v1/invoice-files/" + id.String() + "/" + id.String() + ".pdf?X-Amz-Signature=abc"

	a.s.EXPECT().InvoiceURL(gomock.Any(), id).Return(want, nil)

	rec := a.do(httptest.NewRequest(http.MethodGet, "/api/v1/invoice/url/"+id.String(), nil))

	r.Equal(http.StatusOK, rec.Code)
	r.Equal("text/plain", rec.Header().Get("Content-Type"))
	r.Equal(want, rec.Body.String())
}

func TestHandler_InvoiceURL_NotFound(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	a := NewTestAPI(t)

	id := uuid.Nil

	a.s.EXPECT().InvoiceURL(gomock.Any(), id).Return("", entity.ErrNotFound)

	rec := a.do(httptest.NewRequest(http.MethodGet, "/api/v1/invoice/url/"+id.String(), nil))

	r.Equal(http.StatusNotFound, rec.Code)
}

func TestHandler_InvoiceByID_InvalidID(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	a := NewTestAPI(t)

	rec := a.do(httptest.NewRequest(http.MethodGet, "/api/v1/invoice/not-a-uuid", nil))

	r.Equal(http.StatusBadRequest, rec.Code)
}

func TestHandler_DeleteInvoice(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	a := NewTestAPI(t)

	id := uuid.Must(uuid.NewV4())

	a.s.EXPECT().DeleteInvoice(gomock.Any(), id).Return(nil)

	rec := a.do(httptest.NewRequest(http.MethodDelete, "/api/v1/invoice/"+id.String(), nil))

	r.Equal(http.StatusOK, rec.Code)
}

func TestHandler_Invoices(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	a := NewTestAPI(t)

	invoices := []entity.Invoice{
		{ID: uuid.Must(uuid.NewV4()), CreationDate: time.Now()},
		{ID: uuid.Must(uuid.NewV4()), CreationDate: time.Now(), PDFKey: "x.pdf"},
	}

	a.s.EXPECT().Invoices(gomock.Any()).Return(invoices, nil)

	rec := a.do(httptest.NewRequest(http.MethodGet, "/api/v1/invoice/", nil))

	r.Equal(http.StatusOK, rec.Code)
	r.Contains(rec.Body.String(), invoices[0].ID.String())
	r.Contains(rec.Body.String(), invoices[1].ID.String())
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/hirelane/invoices/internal/entity"
)

type Service interface {
	CreateInvoice(ctx context.Context, data entity.InvoiceData) (entity.Invoice, error)
	InvoiceByID(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	Invoices(ctx context.Context) ([]entity.Invoice, error)
	InvoiceURL(ctx context.Context, id uuid.UUID) (string, error)
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
}

// @title Invoices API
// @version 1.0
// @description Billing documents for the recruiting platform.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s,
	}
}

// Health godoc
// @Summary      Service health
// @Tags         health
// @Success      200 {string} string "ok"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("ok\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
	}
}

type CreateInvoiceRequest struct {
	Name         string           `json:"name"`
	Surname      string           `json:"surname"`
	Address      string           `json:"address"`
	Plan         string           `json:"plan"`
	Price        *decimal.Decimal `json:"price"`
	CreationDate *time.Time       `json:"creationDate"`
}

// CreateInvoice godoc
// @Summary      Create an invoice
// @Description  Renders the invoice PDF, stores it and returns the record
// @Tags         invoice
// @Accept       json
// @Produce      json
// @Param        request body CreateInvoiceRequest true "Billing data"
// @Success      200 {object} entity.Invoice
// @Failure      400 {object} ResponseError "Invalid billing data or creation failure"
// @Security     BearerAuth
// @Router       /v1/invoice/ [post]
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateInvoiceRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest,
			fmt.Errorf("%w: %s", entity.ErrIncorrectRequestBody, err), "incorrect request body")
		return
	}

	invoice, err := h.s.CreateInvoice(ctx, entity.InvoiceData{
		Name:         req.Name,
		Surname:      req.Surname,
		Address:      req.Address,
		Plan:         req.Plan,
		Price:        req.Price,
		CreationDate: req.CreationDate,
	})
	if err != nil {
		if errors.Is(err, entity.ErrInvalidInvoiceData) {
			SendErr(ctx, w, http.StatusBadRequest, err, "invalid invoice data")
			return
		}

		SendErr(ctx, w, http.StatusBadRequest, err, "invoice creation failed")

		return
	}

	SendJSON(ctx, w, http.StatusOK, invoice)
}

// Invoices godoc
// @Summary      List invoices
// @Tags         invoice
// @Produce      json
// @Success      200 {array} entity.Invoice
// @Failure      400 {object} ResponseError
// @Security     BearerAuth
// @Router       /v1/invoice/ [get]
func (h *Handler) Invoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invoices, err := h.s.Invoices(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "listing invoices failed")
		return
	}

	SendJSON(ctx, w, http.StatusOK, invoices)
}

// InvoiceByID godoc
// @Summary      Get an invoice
// @Tags         invoice
// @Produce      json
// @Param        id path string true "Invoice ID"
// @Success      200 {object} entity.Invoice
// @Failure      400 {object} ResponseError
// @Security     BearerAuth
// @Router       /v1/invoice/{id} [get]
func (h *Handler) InvoiceByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "invalid invoice id")
		return
	}

	invoice, err := h.s.InvoiceByID(ctx, id)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "invoice lookup failed")
		return
	}

	SendJSON(ctx, w, http.StatusOK, invoice)
}

// InvoiceURL godoc
// @Summary      Resolve a download URL
// @Description  Returns a time-limited URL for the invoice PDF
// @Tags         invoice
// @Produce      plain
// @Param        id path string true "Invoice ID"
// @Success      200 {string} string
// @Failure      404 {object} ResponseError "No such invoice or document not ready"
// @Failure      400 {object} ResponseError
// @Security     BearerAuth
// @Router       /v1/invoice/url/{id} [get]
func (h *Handler) InvoiceURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "invalid invoice id")
		return
	}

	invoiceURL, err := h.s.InvoiceURL(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "invoice not found")
			return
		}

		SendErr(ctx, w, http.StatusBadRequest, err, "resolving invoice url failed")

		return
	}

	SendText(ctx, w, http.StatusOK, invoiceURL)
}

type DeleteInvoiceResponse struct {
	Message string `json:"message"`
}

// DeleteInvoice godoc
// @Summary      Delete an invoice
// @Tags         invoice
// @Produce      json
// @Param        id path string true "Invoice ID"
// @Success      200 {object} DeleteInvoiceResponse
// @Failure      400 {object} ResponseError
// @Security     BearerAuth
// @Router       /v1/invoice/{id} [delete]
func (h *Handler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "invalid invoice id")
		return
	}

	err = h.s.DeleteInvoice(ctx, id)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "invoice deletion failed")
		return
	}

	SendJSON(ctx, w, http.StatusOK, DeleteInvoiceResponse{
		Message: "invoice deleted",
	})
}

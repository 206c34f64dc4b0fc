package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hirelane/invoices/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

// Save persists the invoice, assigning an id on first save. Identity is
// stable across saves: re-saving the same record updates it in place.
func (r *Repository) Save(ctx context.Context, invoice entity.Invoice) (entity.Invoice, error) {
	if invoice.ID.IsNil() {
		invoice.ID = uuid.Must(uuid.NewV4())
	}

	sqlQuery :=
		`INSERT INTO invoices (id, creation_date, pdf_key)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET creation_date = $2, pdf_key = $3`

	_, err := r.db.Exec(ctx, sqlQuery,
		invoice.ID,
		invoice.CreationDate,
		invoice.PDFKey,
	)

	if err != nil {
		return entity.Invoice{}, fmt.Errorf("%w: save invoice %s: %s", entity.ErrPersistence, invoice.ID, err)
	}

	return invoice, nil
}

func (r *Repository) InvoiceByID(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	sqlQuery :=
		`SELECT id, creation_date, pdf_key
		FROM invoices
		WHERE id = $1`

	var invoice entity.Invoice

	err := r.db.QueryRow(ctx, sqlQuery, id).Scan(
		&invoice.ID,
		&invoice.CreationDate,
		&invoice.PDFKey,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Invoice{}, entity.ErrNotFound
		}

		return entity.Invoice{}, fmt.Errorf("%w: invoice by id %s: %s", entity.ErrPersistence, id, err)
	}

	return invoice, nil
}

func (r *Repository) Invoices(ctx context.Context) ([]entity.Invoice, error) {
	stmt := sq.Select("id", "creation_date", "pdf_key").
		From("invoices").
		OrderBy("creation_date DESC", "id").
		PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build invoices query: %s", entity.ErrPersistence, err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list invoices: %s", entity.ErrPersistence, err)
	}

	defer rows.Close()

	invoices := make([]entity.Invoice, 0)

	for rows.Next() {
		var invoice entity.Invoice

		err = rows.Scan(
			&invoice.ID,
			&invoice.CreationDate,
			&invoice.PDFKey,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scan invoice: %s", entity.ErrPersistence, err)
		}

		invoices = append(invoices, invoice)
	}

	return invoices, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	sqlQuery :=
		`DELETE FROM invoices
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, sqlQuery, id)
	if err != nil {
		return fmt.Errorf("%w: delete invoice %s: %s", entity.ErrPersistence, id, err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

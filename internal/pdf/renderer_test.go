package pdf_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hirelane/invoices/internal/entity"
	"github.com/hirelane/invoices/internal/pdf"
)

func testDocument() entity.InvoiceDocument {
	return entity.InvoiceDocument{
		Number:     "a3bb1846-6c2f-4f4b-8d5a-0f01e2d3c4b5",
		ClientName: "Jane Doe",
		Address:    "1 Main St",
		Plan:       "Gold",
		Amount:     "99.9 EUR",
		IssuedAt:   time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC),
	}
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	content, err := pdf.NewRenderer().Render(testDocument())
	r.NoError(err)
	r.NotEmpty(content)
	r.Equal("%PDF-", string(content[:5]))
}

func TestRenderer_Render_Deterministic(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	renderer := pdf.NewRenderer()

	// The document creation date is pinned to the issue date, so two renders
	// of the same fields are byte-identical.
	first, err := renderer.Render(testDocument())
	r.NoError(err)

	second, err := renderer.Render(testDocument())
	r.NoError(err)

	r.Equal(first, second)
}

func TestRenderer_Render_DependsOnFields(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	renderer := pdf.NewRenderer()

	first, err := renderer.Render(testDocument())
	r.NoError(err)

	changed := testDocument()
	changed.Amount = "10 EUR"

	second, err := renderer.Render(changed)
	r.NoError(err)

	r.NotEqual(first, second)
}

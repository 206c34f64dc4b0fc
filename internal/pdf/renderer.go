package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/hirelane/invoices/internal/entity"
)

const (
	titleRowHeight = 16
	fieldRowHeight = 10

	titleFontSize = 16
	fieldFontSize = 12
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces a single-page invoice. The document creation date is
// pinned to the invoice issue date, so identical input yields identical
// bytes.
func (r *Renderer) Render(doc entity.InvoiceDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithDefaultFont(&props.Font{
			Family: fontfamily.Courier,
			Size:   fieldFontSize,
		}).
		WithCreationDate(doc.IssuedAt).
		Build()

	m := maroto.New(cfg)

	m.AddRow(titleRowHeight,
		text.NewCol(12, "Invoice", props.Text{
			Size:  titleFontSize,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	fields := []string{
		"Invoice number: " + doc.Number,
		"Client name: " + doc.ClientName,
		"Address: " + doc.Address,
		"Plan: annual subscription " + doc.Plan,
		"Amount paid: " + doc.Amount,
	}

	for _, field := range fields {
		m.AddRow(fieldRowHeight,
			text.NewCol(12, field, props.Text{
				Size:  fieldFontSize,
				Align: align.Left,
			}),
		)
	}

	generated, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: generate invoice %s: %s", entity.ErrRender, doc.Number, err)
	}

	return generated.GetBytes(), nil
}

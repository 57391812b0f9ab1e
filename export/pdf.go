// Package export renders persisted shop data into printable and downloadable
// documents. Everything here is a pure transformation: it reads bills and
// settings that are already committed and never feeds back into cart or
// storage state.
package export

import (
	"errors"
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ankitv/shopbill/models"
)

var (
	// ErrNoColumns is returned when a tabular report has no header columns.
	ErrNoColumns = errors.New("report has no columns")

	// ErrTooManyColumns is returned when a report exceeds the 12-unit page
	// grid, one unit per column minimum.
	ErrTooManyColumns = errors.New("report has more than 12 columns")
)

const dateLayout = "02/01/2006 15:04"

// BillPDF renders a persisted bill as a printable PDF: shop header, bill
// metadata, the itemized table and a grand total footer.
func BillPDF(bill *models.Bill, settings *models.Settings) ([]byte, error) {
	m := newDocument()

	addShopHeader(m, settings, 20)
	m.AddRow(4, line.NewCol(12))

	m.AddRow(8,
		text.NewCol(6, "Bill No: "+bill.BillNumber, props.Text{Size: 10, Top: 2}),
		text.NewCol(6, "Date: "+time.Unix(bill.CreatedAt, 0).Format(dateLayout), props.Text{Size: 10, Top: 2, Align: align.Right}),
	)
	m.AddRow(6, text.NewCol(12, "Payment Mode: "+string(bill.PaymentMode), props.Text{Size: 10}))

	// Items table
	m.AddRow(8,
		text.NewCol(1, "#", headerText()),
		text.NewCol(5, "Item Name", headerText()),
		text.NewCol(2, "Price", headerTextRight()),
		text.NewCol(2, "Qty", headerTextRight()),
		text.NewCol(2, "Total", headerTextRight()),
	)
	m.AddRow(2, line.NewCol(12))
	for i, item := range bill.Items {
		m.AddRow(6,
			text.NewCol(1, fmt.Sprintf("%d", i+1), cellText()),
			text.NewCol(5, item.Name, cellText()),
			text.NewCol(2, item.Price.StringFixed(2), cellTextRight()),
			text.NewCol(2, fmt.Sprintf("%d", item.Quantity), cellTextRight()),
			text.NewCol(2, item.Total.StringFixed(2), cellTextRight()),
		)
	}
	m.AddRow(2, line.NewCol(12))

	m.AddRow(8,
		text.NewCol(8, "", cellText()),
		text.NewCol(2, "Grand Total", headerTextRight()),
		text.NewCol(2, bill.Total.StringFixed(2), headerTextRight()),
	)

	m.AddRow(16, text.NewCol(12, "Thank you for your business!", props.Text{
		Size:  10,
		Top:   10,
		Align: align.Center,
	}))

	return generate(m)
}

// ReportPDF renders an arbitrary tabular report (headers plus rows) with the
// shop header and a title line.
func ReportPDF(title string, headers []string, rows [][]string, settings *models.Settings) ([]byte, error) {
	if len(headers) == 0 {
		return nil, ErrNoColumns
	}
	if len(headers) > 12 {
		return nil, ErrTooManyColumns
	}

	m := newDocument()
	addShopHeader(m, settings, 16)
	m.AddRow(8, text.NewCol(12, title, props.Text{Size: 12, Align: align.Center}))
	m.AddRow(4, line.NewCol(12))

	widths := columnWidths(len(headers))
	headerCols := make([]core.Col, len(headers))
	for i, h := range headers {
		headerCols[i] = text.NewCol(widths[i], h, headerText())
	}
	m.AddRow(8, headerCols...)
	m.AddRow(2, line.NewCol(12))

	for _, r := range rows {
		cols := make([]core.Col, len(headers))
		for i := range headers {
			value := ""
			if i < len(r) {
				value = r[i]
			}
			cols[i] = text.NewCol(widths[i], value, cellText())
		}
		m.AddRow(6, cols...)
	}

	return generate(m)
}

func newDocument() core.Maroto {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(15).
		Build()
	return maroto.New(cfg)
}

func addShopHeader(m core.Maroto, settings *models.Settings, nameSize float64) {
	m.AddRow(12, text.NewCol(12, settings.ShopName, props.Text{
		Size:  nameSize,
		Style: fontstyle.Bold,
		Align: align.Center,
	}))
	m.AddRow(6, text.NewCol(12, "Phone: "+settings.ShopPhone, props.Text{
		Size:  10,
		Align: align.Center,
	}))
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

// columnWidths splits the 12-unit grid across n columns, giving the first
// columns the remainder.
func columnWidths(n int) []int {
	widths := make([]int, n)
	base := 12 / n
	rem := 12 % n
	for i := range widths {
		widths[i] = base
		if i < rem {
			widths[i]++
		}
	}
	return widths
}

func headerText() props.Text {
	return props.Text{Size: 10, Style: fontstyle.Bold}
}

func headerTextRight() props.Text {
	return props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}
}

func cellText() props.Text {
	return props.Text{Size: 9}
}

func cellTextRight() props.Text {
	return props.Text{Size: 9, Align: align.Right}
}

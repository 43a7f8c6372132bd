// Package pdf renders the simplified tax invoice receipt with Maroto v2.
//
// Receipt layout, top to bottom:
//
//	┌──────────────────────────────┐
//	│  Shop name / TRN / address   │
//	│  Simplified Tax Invoice      │
//	│  N° / date / customer / ref  │
//	│  ──────────────────────────  │
//	│  line items (+ weight line)  │
//	│  ──────────────────────────  │
//	│  Subtotal / VAT 15% / Total  │
//	│  barcode (invoice number)    │
//	│  QR (compliance payload)     │
//	└──────────────────────────────┘
//
// The same rows render on A4 for on-screen preview and on an 80mm roll for
// the thermal printer; only the page geometry differs between intents.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/barcode"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jawharapos/pos-api/internal/application/billing"
)

var colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}

// Thermal roll width in mm. Height is generous; the printer cuts the paper.
const (
	rollWidth  = 80
	rollHeight = 297
)

var _ billing.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implements billing.ReceiptGenerator with Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator builds the generator.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// Generate renders the receipt PDF and returns its bytes.
func (g *MarotoReceiptGenerator) Generate(data billing.ReceiptData, intent billing.ReceiptIntent) ([]byte, error) {
	builder := config.NewBuilder().
		WithLeftMargin(5).WithRightMargin(5).
		WithTopMargin(5).WithBottomMargin(5).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(fmt.Sprintf("Invoice %d", data.InvoiceNumber), true).
		WithAuthor(data.ShopName, true)
	if intent == billing.IntentPrint {
		builder = builder.WithDimensions(rollWidth, rollHeight)
	} else {
		builder = builder.WithPageSize(pagesize.A4).
			WithLeftMargin(60).WithRightMargin(60).
			WithTopMargin(15)
	}

	m := maroto.New(builder.Build())

	m.AddRows(headerRows(data)...)
	m.AddRows(line.NewRow(2, props.Line{Thickness: 0.3}))
	m.AddRows(metadataRows(data)...)
	m.AddRows(line.NewRow(2, props.Line{Thickness: 0.3}))
	for _, l := range data.Lines {
		m.AddRows(lineItemRows(l)...)
	}
	m.AddRows(line.NewRow(2, props.Line{Thickness: 0.3}))
	m.AddRows(totalsRows(data)...)
	m.AddRows(line.NewRow(2))
	m.AddRows(codeRows(data)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate receipt: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRows: shop identity and the document title.
func headerRows(data billing.ReceiptData) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New(data.ShopName, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 1,
			}),
		)),
		row.New(4).Add(col.New(12).Add(
			text.New("TRN: "+data.TRN, props.Text{Size: 7, Align: align.Center, Color: colorGray}),
		)),
	}
	if data.Address != "" {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(data.Address, props.Text{Size: 7, Align: align.Center, Color: colorGray}),
		)))
	}
	if data.Phone != "" {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New("Tel: "+data.Phone, props.Text{Size: 7, Align: align.Center, Color: colorGray}),
		)))
	}
	rows = append(rows, row.New(6).Add(col.New(12).Add(
		text.New("Simplified Tax Invoice", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 1,
		}),
	)))
	return rows
}

// metadataRows: invoice number, issue date, customer and the order
// reference handed to the customer at the counter.
func metadataRows(data billing.ReceiptData) []core.Row {
	meta := func(label, value string) core.Row {
		return row.New(4).Add(
			col.New(5).Add(text.New(label, props.Text{Size: 7, Color: colorGray})),
			col.New(7).Add(text.New(value, props.Text{Size: 7, Align: align.Right})),
		)
	}
	rows := []core.Row{
		meta("Invoice No.", fmt.Sprintf("%d", data.InvoiceNumber)),
		meta("Date", data.IssuedAt.Format("02/01/2006 15:04")),
	}
	if data.CustomerName != "" {
		rows = append(rows, meta("Customer", data.CustomerName))
	}
	if data.OrderRef != "" {
		rows = append(rows, meta("Order", data.OrderRef))
	}
	return rows
}

// lineItemRows: product name, then quantity × unit price against the line
// total, then the weight line for weight-based products.
func lineItemRows(l billing.ReceiptLine) []core.Row {
	rows := []core.Row{
		row.New(4).Add(col.New(12).Add(
			text.New(l.Name, props.Text{Style: fontstyle.Bold, Size: 8}),
		)),
		row.New(4).Add(
			col.New(6).Add(text.New(
				fmt.Sprintf("%d x %s", l.Quantity, l.UnitPrice.StringFixed(2)),
				props.Text{Size: 7, Color: colorGray},
			)),
			col.New(6).Add(text.New(
				l.Total.StringFixed(2),
				props.Text{Size: 8, Align: align.Right},
			)),
		),
	}
	if l.WeightGrams > 0 {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Weight: %d g", l.WeightGrams), props.Text{Size: 7, Color: colorGray}),
		)))
	}
	return rows
}

// totalsRows: the three stored monetary fields, printed as stored.
func totalsRows(data billing.ReceiptData) []core.Row {
	totals := func(label, value string, bold bool) core.Row {
		style := fontstyle.Normal
		size := 8.0
		if bold {
			style = fontstyle.Bold
			size = 10
		}
		return row.New(5).Add(
			col.New(6).Add(text.New(label, props.Text{Style: style, Size: size})),
			col.New(6).Add(text.New(value, props.Text{Style: style, Size: size, Align: align.Right})),
		)
	}
	return []core.Row{
		totals("Subtotal", data.Net.StringFixed(2), false),
		totals("VAT (15%)", data.VAT.StringFixed(2), false),
		totals("Total", data.Total.StringFixed(2), true),
		totals("Cash", data.Total.StringFixed(2), false),
	}
}

// codeRows: Code128 barcode of the invoice number, the number in clear text
// beneath it, and the compliance QR.
func codeRows(data billing.ReceiptData) []core.Row {
	number := fmt.Sprintf("%d", data.InvoiceNumber)
	rows := []core.Row{
		row.New(14).Add(col.New(12).Add(
			code.NewBar(number, props.Barcode{
				Type:    barcode.Code128,
				Percent: 80,
				Center:  true,
			}),
		)),
		row.New(4).Add(col.New(12).Add(
			text.New(number, props.Text{Size: 7, Align: align.Center}),
		)),
	}
	if data.QRPayload != "" {
		rows = append(rows,
			row.New(40).Add(
				col.New(12).Add(code.NewQr(data.QRPayload, props.Rect{
					Percent: 75,
					Center:  true,
				})),
			),
			row.New(5).Add(col.New(12).Add(
				text.New("Thank you", props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			)),
		)
	}
	return rows
}

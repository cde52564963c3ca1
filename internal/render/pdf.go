package render

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}

// SheetInfo is the plain text printed around the QR code.
type SheetInfo struct {
	InvoiceNumber string
	InvoiceDate   string
	InvoiceTime   string
	TerminalID    string
}

// PDF renders a one page A4 sheet with the QR code of record.
func PDF(ctx context.Context, record string, info SheetInfo) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+info.InvoiceNumber, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(info))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(90).Add(
		col.New(3),
		col.New(6).Add(code.NewQr(record, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(3),
	))
	m.AddRows(row.New(8).Add(
		col.New(12).Add(text.New(record, props.Text{
			Family: "courier", Size: 7, Align: align.Center, Top: 2,
		})),
	))
	if info.TerminalID != "" {
		m.AddRows(row.New(6).Add(
			col.New(12).Add(text.New("Terminal "+info.TerminalID, props.Text{
				Size: 6, Align: align.Center, Color: colorGray,
			})),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(info SheetInfo) core.Row {
	when := info.InvoiceDate
	if info.InvoiceTime != "" {
		when += " " + info.InvoiceTime
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New("INVOICE", props.Text{Style: fontstyle.Bold, Size: 13, Top: 1}),
			text.New(info.InvoiceNumber, props.Text{Size: 10, Top: 9}),
		),
		col.New(4).Add(
			text.New(when, props.Text{Size: 8, Align: align.Right, Top: 9, Color: colorGray}),
		),
	)
}

package presentation

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	mutedColor  = &props.Color{Red: 110, Green: 110, Blue: 110}
	headerColor = &props.Color{Red: 36, Green: 31, Blue: 33}
	white       = &props.Color{Red: 255, Green: 255, Blue: 255}
	summaryFill = &props.Color{Red: 242, Green: 240, Blue: 235}
)

// GeneratePDF renders the document on A4 and returns the PDF bytes.
func GeneratePDF(d Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "{current} / {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   mutedColor,
		}).
		Build()

	m := maroto.New(cfg)

	addPDFHeader(m, d)
	addPDFClient(m, d)
	addPDFTableHeader(m, d)
	for _, l := range d.Lines {
		addPDFLine(m, d, l)
	}
	addPDFTotal(m, d)
	addPDFNotes(m, d)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// leading is the alignment of text that starts a line in the document
// direction.
func leading(d Document) align.Type {
	if d.Direction == "rtl" {
		return align.Right
	}
	return align.Left
}

func trailing(d Document) align.Type {
	if d.Direction == "rtl" {
		return align.Left
	}
	return align.Right
}

func addPDFHeader(m core.Maroto, d Document) {
	m.AddRows(
		row.New(14).Add(
			col.New(12).Add(
				text.New(d.Labels.Title, props.Text{Size: 18, Style: fontstyle.Bold, Align: align.Center}),
			),
		),
		row.New(7).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("%s %s", d.Labels.QuoteNumber, d.QuoteNumber), props.Text{Size: 9, Align: leading(d), Color: mutedColor}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("%s: %s", d.Labels.Date, d.Date), props.Text{Size: 9, Align: trailing(d), Color: mutedColor}),
			),
		),
		row.New(7).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("%s: %s", d.Labels.ValidUntil, d.ValidUntil), props.Text{Size: 9, Align: trailing(d), Color: mutedColor}),
			),
		),
		row.New(4),
	)
}

func addPDFClient(m core.Maroto, d Document) {
	lines := []string{d.Client.Name}
	if d.Client.Company != "" {
		lines = append(lines, d.Client.Company)
	}
	lines = append(lines, d.Client.Email, d.Client.Phone)

	m.AddRows(row.New(7).Add(
		col.New(6).Add(text.New(d.Labels.PreparedFor, props.Text{Size: 10, Style: fontstyle.Bold, Align: leading(d)})),
		col.New(6).Add(text.New(d.Labels.Project, props.Text{Size: 10, Style: fontstyle.Bold, Align: trailing(d)})),
	))
	for i, l := range lines {
		project := ""
		if i == 0 {
			project = d.ProjectName
		}
		m.AddRows(row.New(5).Add(
			col.New(6).Add(text.New(l, props.Text{Size: 9, Align: leading(d)})),
			col.New(6).Add(text.New(project, props.Text{Size: 9, Align: trailing(d)})),
		))
	}
	m.AddRows(row.New(6))
}

func addPDFTableHeader(m core.Maroto, d Document) {
	cell := &props.Cell{BackgroundColor: headerColor}
	head := props.Text{Size: 9, Style: fontstyle.Bold, Color: white, Align: align.Center, Top: 1.5}
	headLead := head
	headLead.Align = leading(d)

	m.AddRows(row.New(8).Add(
		col.New(6).Add(text.New(d.Labels.Description, headLead)).WithStyle(cell),
		col.New(2).Add(text.New(d.Labels.Quantity, head)).WithStyle(cell),
		col.New(2).Add(text.New(d.Labels.Rate, head)).WithStyle(cell),
		col.New(2).Add(text.New(d.Labels.Total, head)).WithStyle(cell),
	))
}

func addPDFLine(m core.Maroto, d Document, l Line) {
	base := props.Text{Size: 8, Top: 1.5, Align: align.Center}
	lead := base
	lead.Align = leading(d)
	trail := base
	trail.Align = trailing(d)

	m.AddRows(row.New(7).Add(
		col.New(6).Add(text.New(l.Description, lead)),
		col.New(2).Add(text.New(l.QuantityText, base)),
		col.New(2).Add(text.New(l.RateText, trail)),
		col.New(2).Add(text.New(l.TotalText, trail)),
	))
}

func addPDFTotal(m core.Maroto, d Document) {
	cell := &props.Cell{BackgroundColor: summaryFill}
	style := props.Text{Size: 11, Style: fontstyle.Bold, Align: trailing(d), Top: 2}

	m.AddRows(
		row.New(4),
		row.New(10).Add(
			col.New(8).Add(text.New(d.Labels.GrandTotal, style)).WithStyle(cell),
			col.New(4).Add(text.New(d.GrandTotalText, style)).WithStyle(cell),
		),
	)
}

func addPDFNotes(m core.Maroto, d Document) {
	m.AddRows(
		row.New(8),
		row.New(6).Add(col.New(12).Add(text.New(d.Labels.Notes, props.Text{Size: 9, Style: fontstyle.Bold, Align: leading(d)}))),
		row.New(10).Add(col.New(12).Add(text.New(d.Notes, props.Text{Size: 8, Align: leading(d), Color: mutedColor}))),
	)
}

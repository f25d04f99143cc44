package presentation

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Quote"

type styleRange struct {
	from, to string
	style    int
}

// GenerateXLSX writes the document into a single sheet workbook. Amount
// cells hold numbers so the sheet can be recalculated.
func GenerateXLSX(d Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	if d.Direction == "rtl" {
		rtl := true
		if err := f.SetSheetView(sheetName, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
			return nil, fmt.Errorf("set sheet view: %w", err)
		}
	}

	widths := map[string]float64{"A": 48, "B": 10, "C": 18, "D": 18}
	for c, w := range widths {
		if err := f.SetColWidth(sheetName, c, c, w); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#241F21"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	moneyFmt := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt, Border: thinBorders()})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}
	cellStyle, err := f.NewStyle(&excelize.Style{Border: thinBorders()})
	if err != nil {
		return nil, fmt.Errorf("create cell style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	if err := f.MergeCell(sheetName, "A1", "D1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	header := [][2]string{
		{d.Labels.QuoteNumber, d.QuoteNumber},
		{d.Labels.Date, d.Date},
		{d.Labels.ValidUntil, d.ValidUntil},
		{d.Labels.PreparedFor, d.Client.Name},
		{"", d.Client.Company},
		{"", d.Client.Email},
		{"", d.Client.Phone},
		{d.Labels.Project, d.ProjectName},
	}

	cells := map[string]any{"A1": d.Labels.Title}
	r := 2
	for _, h := range header {
		if h[0] == "" && h[1] == "" {
			continue
		}
		cells[fmt.Sprintf("A%d", r)] = sanitizeCell(h[0])
		cells[fmt.Sprintf("B%d", r)] = sanitizeCell(h[1])
		r++
	}

	r++
	headRow := r
	for i, h := range []string{d.Labels.Description, d.Labels.Quantity, d.Labels.Rate, d.Labels.Total} {
		cells[fmt.Sprintf("%c%d", 'A'+i, r)] = h
	}
	r++
	firstLine := r
	for _, l := range d.Lines {
		cells[fmt.Sprintf("A%d", r)] = sanitizeCell(l.Description)
		cells[fmt.Sprintf("B%d", r)] = l.Quantity
		cells[fmt.Sprintf("C%d", r)] = l.Rate
		cells[fmt.Sprintf("D%d", r)] = l.Total
		r++
	}
	lastLine := r - 1
	r++
	totalRow := r
	cells[fmt.Sprintf("C%d", totalRow)] = fmt.Sprintf("%s (%s)", d.Labels.GrandTotal, d.Currency)
	cells[fmt.Sprintf("D%d", totalRow)] = d.GrandTotal
	r += 2
	cells[fmt.Sprintf("A%d", r)] = d.Labels.Notes
	cells[fmt.Sprintf("A%d", r+1)] = sanitizeCell(d.Notes)

	for ref, v := range cells {
		if err := f.SetCellValue(sheetName, ref, v); err != nil {
			return nil, fmt.Errorf("set cell %s: %w", ref, err)
		}
	}

	styles := []styleRange{
		{"A1", "D1", titleStyle},
		{fmt.Sprintf("A%d", headRow), fmt.Sprintf("D%d", headRow), headerStyle},
		{fmt.Sprintf("C%d", totalRow), fmt.Sprintf("D%d", totalRow), totalStyle},
	}
	if len(d.Lines) > 0 {
		styles = append(styles,
			styleRange{fmt.Sprintf("A%d", firstLine), fmt.Sprintf("B%d", lastLine), cellStyle},
			styleRange{fmt.Sprintf("C%d", firstLine), fmt.Sprintf("D%d", lastLine), moneyStyle},
		)
	}
	for _, s := range styles {
		if err := f.SetCellStyle(sheetName, s.from, s.to, s.style); err != nil {
			return nil, fmt.Errorf("set style %s:%s: %w", s.from, s.to, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeCell keeps visitor input from being evaluated as a formula.
func sanitizeCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}

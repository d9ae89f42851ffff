package service

import (
	"bytes"
	"fmt"
	_ "image/png" // register the PNG decoder for excelize's AddPicture
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/HFrancia/AlumnosTKD3/internal/model"
)

// Fixed report layout: the logo occupies rows 1-4 (A1:D4 merged so no
// data collides with it), headers sit on row 5, data starts at row 6.
const (
	logoAnchorCell = "A1"
	logoMergeUntil = "D4"
	headerRowNum   = 5
	dataRowNum     = 6
)

const headerFillColor = "1F4E78"

// renderXLSX turns a tabla into a styled workbook in memory.
func renderXLSX(t *tabla, logoPath string) (*bytes.Buffer, error) {
	if _, err := os.Stat(logoPath); err != nil {
		return nil, fmt.Errorf("logotipo %s: %w", logoPath, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := t.titulo
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// branding block
	if err := f.AddPicture(sheet, logoAnchorCell, logoPath, &excelize.GraphicOptions{
		ScaleX: 0.5,
		ScaleY: 0.5,
	}); err != nil {
		return nil, fmt.Errorf("insertar logotipo: %w", err)
	}
	if err := f.MergeCell(sheet, logoAnchorCell, logoMergeUntil); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	for i, h := range t.headers {
		cell := cellRef(i+1, headerRowNum)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(sheet, cellRef(1, headerRowNum), cellRef(len(t.headers), headerRowNum), headerStyle); err != nil {
		return nil, err
	}

	for r, row := range t.rows {
		for c, v := range row {
			cell := cellRef(c+1, dataRowNum+r)
			if err := f.SetCellValue(sheet, cell, xlsxValue(v)); err != nil {
				return nil, err
			}
		}
	}

	for i, w := range t.colWidths() {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return nil, err
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// xlsxValue keeps numbers numeric in the sheet while flattening dates
// and size lists to their display text.
func xlsxValue(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.Format(dateLayout)
	case []string, model.StringArray:
		s, _ := cellString(t)
		return s
	case *string:
		if t == nil {
			return ""
		}
		return *t
	case nil:
		return ""
	default:
		return v
	}
}

func cellRef(col, row int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return fmt.Sprintf("%s%d", name, row)
}

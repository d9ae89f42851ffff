package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/HFrancia/AlumnosTKD3/internal/model"
)

// columna pairs a header label with a value extractor. Every report is
// an ordered list of columnas over a homogeneous record slice.
type columna[T any] struct {
	header string
	value  func(T) any
}

// tabla is the intermediate form shared by the XLSX and PDF renderers.
type tabla struct {
	titulo  string
	headers []string
	rows    [][]any
}

// buildTabla evaluates the column extractors over every record.
func buildTabla[T any](titulo string, cols []columna[T], records []T) *tabla {
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.header
	}
	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		row := make([]any, len(cols))
		for i, c := range cols {
			row[i] = c.value(rec)
		}
		rows = append(rows, row)
	}
	return &tabla{titulo: titulo, headers: headers, rows: rows}
}

// cellString renders a cell value as text. A nil value cannot be
// rendered and reports ok=false; it then contributes nothing to the
// column width and leaves the cell empty.
func cellString(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case *string:
		if t == nil {
			return "", false
		}
		return *t, true
	case float64:
		return strconv.FormatFloat(t, 'f', 2, 64), true
	case int:
		return strconv.Itoa(t), true
	case uint:
		return strconv.FormatUint(uint64(t), 10), true
	case time.Time:
		return t.Format(dateLayout), true
	case []string:
		return strings.Join(t, ", "), true
	case model.StringArray:
		return strings.Join(t, ", "), true
	default:
		return fmt.Sprintf("%v", t), true
	}
}

// colWidths computes the spreadsheet width per column as
// (longest rendered text + 2) * 1.2, headers included.
func (t *tabla) colWidths() []float64 {
	widths := make([]float64, len(t.headers))
	for i, h := range t.headers {
		maxLen := len([]rune(h))
		for _, row := range t.rows {
			if s, ok := cellString(row[i]); ok {
				if n := len([]rune(s)); n > maxLen {
					maxLen = n
				}
			}
		}
		widths[i] = float64(maxLen+2) * 1.2
	}
	return widths
}

// textRows renders every row to display text for the PDF path.
func (t *tabla) textRows() [][]string {
	out := make([][]string, len(t.rows))
	for i, row := range t.rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j], _ = cellString(v)
		}
		out[i] = cells
	}
	return out
}

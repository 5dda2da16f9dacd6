package importer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// LoadDescriptorsFromXLSX reads a batch from the first sheet of an .xlsx
// file. The header row maps columns by name (case-insensitive); rows that
// are entirely blank are skipped. Malformed numeric cells are an error
// naming the row so the operator can fix the spreadsheet.
func LoadDescriptorsFromXLSX(path string) ([]ProductDescriptor, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, errors.New("sheet has no header row")
	}

	columns := make(map[string]int)
	for idx, header := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(header))] = idx
	}
	if _, ok := columnIndex(columns, "name"); !ok {
		return nil, errors.New("missing required column: name")
	}
	if _, ok := columnIndex(columns, "code"); !ok {
		return nil, errors.New("missing required column: code")
	}

	descriptors := make([]ProductDescriptor, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		rowNumber := i + 2 // 1-based, after the header

		d := ProductDescriptor{
			Name:        cell(columns, row, "name"),
			Code:        cell(columns, row, "code"),
			ImageUrl:    cell(columns, row, "image_url", "image"),
			Category:    cell(columns, row, "category"),
			Supplier:    cell(columns, row, "supplier"),
			Notes:       cell(columns, row, "notes"),
			Description: cell(columns, row, "description"),
		}

		if raw := cell(columns, row, "unit_price", "price"); raw != "" {
			price, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid unit price %q", rowNumber, raw)
			}
			d.UnitPrice = price
		}
		if raw := cell(columns, row, "quantity"); raw != "" {
			qty, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid quantity %q", rowNumber, raw)
			}
			d.Quantity = qty
		}

		descriptors = append(descriptors, d)
	}
	return descriptors, nil
}

func columnIndex(columns map[string]int, names ...string) (int, bool) {
	for _, name := range names {
		if idx, ok := columns[name]; ok {
			return idx, true
		}
	}
	return 0, false
}

// cell returns the trimmed value for the first matching column name, or ""
// when the column is absent or the row is short (excelize trims trailing
// empty cells).
func cell(columns map[string]int, row []string, names ...string) string {
	idx, ok := columnIndex(columns, names...)
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

package export

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// maxSheetName is the Excel limit on sheet name length
const maxSheetName = 31

// SaveXLSX writes each table to its own sheet of a new workbook. The header
// row is bold and frozen. Non-finite values are written as text.
func SaveXLSX(path string, tables ...Table) error {
	if len(tables) == 0 {
		return fmt.Errorf("export: no tables to write")
	}
	for _, t := range tables {
		if err := t.validate(); err != nil {
			return err
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(tables))
	for i, t := range tables {
		name := sheetName(t.Name, i, seen)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return err
		}
		if err := writeSheet(f, name, t, bold); err != nil {
			return fmt.Errorf("export: sheet %q: %w", name, err)
		}
	}
	f.SetActiveSheet(0)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func writeSheet(f *excelize.File, sheet string, t Table, headerStyle int) error {
	header := make([]interface{}, 0, len(t.Header)+1)
	for _, h := range t.Columns() {
		header = append(header, h)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return err
	}

	for i, row := range t.Rows {
		cells := make([]interface{}, 0, len(header))
		if t.Labels != nil {
			cells = append(cells, t.Labels[i])
		}
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				cells = append(cells, fmt.Sprint(v))
				continue
			}
			cells = append(cells, v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// sheetName truncates to the Excel limit and keeps names unique
func sheetName(name string, index int, seen map[string]bool) string {
	if name == "" {
		name = fmt.Sprintf("Sheet%d", index+1)
	}
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	base := name
	for n := 2; seen[name]; n++ {
		suffix := fmt.Sprintf("_%d", n)
		if len(base)+len(suffix) > maxSheetName {
			base = base[:maxSheetName-len(suffix)]
		}
		name = base + suffix
	}
	seen[name] = true
	return name
}

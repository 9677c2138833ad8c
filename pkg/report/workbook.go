package report

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/RithikaAnalyst/HR-Analytics-for-Employee-Retention-Engagement-Insights/pkg/data"
)

// WorkbookSheet names the sheet WriteWorkbook fills.
const WorkbookSheet = "Correlation"

// WriteWorkbook exports c to an .xlsx file: names along the first row and
// first column, coefficients in the body. Undefined coefficients are left blank.
func WriteWorkbook(c *Correlation, path string) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = data.IOError(stageReport, "", cerr)
		}
	}()

	if err := f.SetSheetName("Sheet1", WorkbookSheet); err != nil {
		return data.IOError(stageReport, "", errors.Wrap(err, "rename sheet"))
	}
	for i, name := range c.Names {
		if err := setCell(f, i+2, 1, name); err != nil {
			return err
		}
		if err := setCell(f, 1, i+2, name); err != nil {
			return err
		}
	}
	for i := range c.Names {
		for j, r := range c.Matrix.Row(i) {
			if math.IsNaN(r) {
				continue
			}
			if err := setCell(f, j+2, i+2, r); err != nil {
				return err
			}
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return data.IOError(stageReport, "", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return data.IOError(stageReport, "", err)
	}
	slog.Info("Saved correlation workbook", slog.String("path", path), slog.String("sheet", WorkbookSheet))
	return nil
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return data.IOError(stageReport, "", err)
	}
	if err := f.SetCellValue(WorkbookSheet, cell, v); err != nil {
		return data.IOError(stageReport, "", errors.Wrapf(err, "set %s", cell))
	}
	return nil
}

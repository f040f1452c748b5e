package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ErrStorage marks any failure of the backing xlsx files: unreadable
// workbook, missing sheet, header not matching the schema. Callers test
// with errors.Is. A missing file is NOT a storage error — it gets
// re-created with a header row on first access.
var ErrStorage = errors.New("storage error")

// Table describes one xlsx-backed dataset: a single sheet with a fixed
// header row and one row per entity.
type Table struct {
	Path    string
	Sheet   string
	Columns []string
}

// Ensure creates the data directory and a header-only workbook when the
// backing file does not exist yet. An existing file is left untouched,
// even if malformed - corruption surfaces on read, never as a silent
// re-initialization.
func (t Table) Ensure() error {
	if err := os.MkdirAll(filepath.Dir(t.Path), 0o755); err != nil {
		return fmt.Errorf("%w: create data dir: %v", ErrStorage, err)
	}

	if _, err := os.Stat(t.Path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: stat %s: %v", ErrStorage, t.Path, err)
	}

	return t.WriteRows(nil)
}

// ReadRows opens the workbook and returns all data rows (header
// excluded), each padded to the full column count. The header row is
// validated against the schema; any mismatch or parse failure is an
// ErrStorage.
func (t Table) ReadRows() ([][]string, error) {
	if err := t.Ensure(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(t.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrStorage, t.Path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(t.Sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q of %s: %v", ErrStorage, t.Sheet, t.Path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s: missing header row", ErrStorage, t.Path)
	}
	if !headerMatches(rows[0], t.Columns) {
		return nil, fmt.Errorf("%w: %s: unexpected header %v", ErrStorage, t.Path, rows[0])
	}

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		padded := make([]string, len(t.Columns))
		copy(padded, row)
		data = append(data, padded)
	}
	return data, nil
}

// WriteRows rewrites the whole table: a fresh workbook with the header
// row plus the given rows, saved to a temp path and renamed over the
// original so a crash mid-write cannot truncate the file.
func (t Table) WriteRows(rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", t.Sheet)

	for i, col := range t.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(t.Sheet, cell, col); err != nil {
			return fmt.Errorf("%w: write header: %v", ErrStorage, err)
		}
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		end, _ := excelize.CoordinatesToCellName(len(t.Columns), 1)
		f.SetCellStyle(t.Sheet, "A1", end, style)
	}

	for r, row := range rows {
		for c, value := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(t.Sheet, cell, value); err != nil {
				return fmt.Errorf("%w: write row %d: %v", ErrStorage, r+2, err)
			}
		}
	}

	tmp := fmt.Sprintf("%s.%s.tmp", t.Path, uuid.NewString())
	if err := f.SaveAs(tmp); err != nil {
		return fmt.Errorf("%w: save %s: %v", ErrStorage, tmp, err)
	}
	if err := os.Rename(tmp, t.Path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: replace %s: %v", ErrStorage, t.Path, err)
	}
	return nil
}

func headerMatches(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

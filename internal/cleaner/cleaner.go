package cleaner

import (
	"fmt"
	"os"
	"regexp"

	"github.com/xuri/excelize/v2"

	"github.com/xlsx-tools/xlsx-cleaner/internal/config"
)

// \s in Go matches ASCII whitespace only, so the class also names \p{Zs}
// to catch full-width (U+3000) spaces common in ID and name cells.
var whitespaceRun = regexp.MustCompile(`[\s\p{Zs}]+`)

// StripWhitespace deletes every whitespace run from s. Runs are removed
// entirely, not collapsed to a single space.
func StripWhitespace(s string) string {
	return whitespaceRun.ReplaceAllString(s, "")
}

// Result describes a finished clean run.
type Result struct {
	OutputPath     string
	RowCount       int64    // data rows written, header excluded
	CleanedColumns []string // configured columns actually present in the sheet
}

// Clean reads the first sheet of cfg.InputPath, strips whitespace runs
// from every cell of the configured columns and writes the result next to
// the input with the configured suffix. Columns missing from the header
// are skipped. The input file is never modified.
func Clean(cfg *config.CleanConfig) (*Result, error) {
	info, err := os.Stat(cfg.InputPath)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, cfg.InputPath)
	}

	f, err := excelize.OpenFile(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, fmt.Errorf("%w: 文件中没有工作表", ErrLoad)
	}
	sheet := sheetList[0]

	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer rows.Close()

	out := excelize.NewFile()
	defer out.Close()

	sw, err := out.NewStreamWriter(out.GetSheetList()[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}

	res := &Result{OutputPath: OutputPath(cfg.InputPath, cfg.Suffix)}

	// Header row decides which column indexes get cleaned.
	targets := make(map[int]bool)
	rowNum := 1
	if rows.Next() {
		header, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoad, err)
		}

		wanted := make(map[string]bool, len(cfg.Columns))
		for _, name := range cfg.Columns {
			wanted[name] = true
		}
		for i, name := range header {
			if wanted[name] {
				targets[i] = true
				res.CleanedColumns = append(res.CleanedColumns, name)
			}
		}

		if err := sw.SetRow(fmt.Sprintf("A%d", rowNum), toRow(header)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWrite, err)
		}
		rowNum++

		for rows.Next() {
			cells, err := rows.Columns()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrLoad, err)
			}
			for i := range cells {
				if targets[i] {
					cells[i] = StripWhitespace(cells[i])
				}
			}
			if err := sw.SetRow(fmt.Sprintf("A%d", rowNum), toRow(cells)); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrWrite, err)
			}
			rowNum++
			res.RowCount++
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := out.SaveAs(res.OutputPath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}

	return res, nil
}

func toRow(cells []string) []interface{} {
	row := make([]interface{}, len(cells))
	for i, v := range cells {
		row[i] = v
	}
	return row
}

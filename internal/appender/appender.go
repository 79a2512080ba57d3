// Package appender annotates every sheet of a workbook with a column
// holding its sheet name and adds a final summary sheet that merges all
// rows over the union of all columns.
package appender

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/xlsx-tools/xlsx-cleaner/internal/cleaner"
	"github.com/xlsx-tools/xlsx-cleaner/internal/config"
)

// Result describes a finished append run.
type Result struct {
	OutputPath string
	SheetCount int   // input sheets processed, summary excluded
	RowCount   int64 // data rows in the summary sheet
}

type sheetData struct {
	name    string
	headers []string
	rows    [][]string
}

// Append copies every sheet of cfg.InputPath into a new workbook, adding
// the sheet-name column, then writes the merged summary sheet last.
func Append(cfg *config.AppendConfig) (*Result, error) {
	info, err := os.Stat(cfg.InputPath)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", cleaner.ErrFileNotFound, cfg.InputPath)
	}

	f, err := excelize.OpenFile(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cleaner.ErrLoad, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, fmt.Errorf("%w: 文件中没有工作表", cleaner.ErrLoad)
	}
	logrus.Infof("检测到 %d 个工作表: %v", len(sheetList), sheetList)

	sheets := make([]*sheetData, 0, len(sheetList))
	for _, name := range sheetList {
		logrus.Infof("正在处理工作表: %s", name)
		sd, err := readSheet(f, name, cfg.SheetColumn)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sd)
	}

	out := excelize.NewFile()
	defer out.Close()

	for i, sd := range sheets {
		if i == 0 {
			if err := out.SetSheetName(out.GetSheetList()[0], sd.name); err != nil {
				return nil, fmt.Errorf("%w: %v", cleaner.ErrWrite, err)
			}
		} else {
			if _, err := out.NewSheet(sd.name); err != nil {
				return nil, fmt.Errorf("%w: %v", cleaner.ErrWrite, err)
			}
		}
		if err := writeSheet(out, sd.name, sd.headers, sd.rows); err != nil {
			return nil, err
		}
	}

	logrus.Info("正在合并所有工作表生成汇总...")
	headers, merged := mergeSheets(sheets)
	if _, err := out.NewSheet(cfg.SummarySheet); err != nil {
		return nil, fmt.Errorf("%w: %v", cleaner.ErrWrite, err)
	}
	if err := writeSheet(out, cfg.SummarySheet, headers, merged); err != nil {
		return nil, err
	}

	res := &Result{
		OutputPath: cleaner.OutputPath(cfg.InputPath, cfg.Suffix),
		SheetCount: len(sheets),
		RowCount:   int64(len(merged)),
	}
	if err := out.SaveAs(res.OutputPath); err != nil {
		return nil, fmt.Errorf("%w: %v", cleaner.ErrWrite, err)
	}
	return res, nil
}

// readSheet loads one sheet, treating the first row as headers, and adds
// the sheet-name column to headers and every data row. When the column
// already exists its values are overwritten in place.
func readSheet(f *excelize.File, sheet, sheetColumn string) (*sheetData, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cleaner.ErrLoad, err)
	}

	sd := &sheetData{name: sheet}
	if len(rows) == 0 {
		sd.headers = []string{sheetColumn}
		return sd, nil
	}

	sd.headers = append([]string(nil), rows[0]...)
	col := -1
	for i, h := range sd.headers {
		if h == sheetColumn {
			col = i
			break
		}
	}
	if col < 0 {
		sd.headers = append(sd.headers, sheetColumn)
		col = len(sd.headers) - 1
	}

	for _, row := range rows[1:] {
		padded := make([]string, len(sd.headers))
		copy(padded, row)
		padded[col] = sheet
		sd.rows = append(sd.rows, padded)
	}
	return sd, nil
}

// mergeSheets builds the summary table over the union of all headers, in
// first-seen order. Cells missing from a sheet stay empty.
func mergeSheets(sheets []*sheetData) ([]string, [][]string) {
	var headers []string
	index := make(map[string]int)
	for _, sd := range sheets {
		for _, h := range sd.headers {
			if _, ok := index[h]; !ok {
				index[h] = len(headers)
				headers = append(headers, h)
			}
		}
	}

	var merged [][]string
	for _, sd := range sheets {
		for _, row := range sd.rows {
			cells := make([]string, len(headers))
			for i, h := range sd.headers {
				if i < len(row) {
					cells[index[h]] = row[i]
				}
			}
			merged = append(merged, cells)
		}
	}
	return headers, merged
}

func writeSheet(out *excelize.File, sheet string, headers []string, rows [][]string) error {
	sw, err := out.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("%w: %v", cleaner.ErrWrite, err)
	}

	rowNum := 1
	write := func(cells []string) error {
		row := make([]interface{}, len(cells))
		for i, v := range cells {
			row[i] = v
		}
		if err := sw.SetRow(fmt.Sprintf("A%d", rowNum), row); err != nil {
			return fmt.Errorf("%w: %v", cleaner.ErrWrite, err)
		}
		rowNum++
		return nil
	}

	if err := write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := write(row); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", cleaner.ErrWrite, err)
	}
	return nil
}

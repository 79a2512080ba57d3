// Package collector walks a directory of workbooks, locates the header
// row of every sheet by a marker string, prunes empty rows and columns
// and merges everything into one result workbook with provenance columns.
package collector

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/xlsx-tools/xlsx-cleaner/internal/cleaner"
	"github.com/xlsx-tools/xlsx-cleaner/internal/config"
)

// Provenance columns appended to every collected sheet, always last.
var provenanceColumns = []string{"文件名", "工作表名", "文件夹名"}

const unnamedColumn = "未命名列"

// sheet processing outcomes, mirrored in the final report
const (
	statusProcessed = "成功处理"
	statusSkipped   = "跳过"
	statusEmpty     = "空表"
	statusError     = "错误"
)

// SheetRecord is the per-sheet entry of the processing report.
type SheetRecord struct {
	Folder string
	File   string
	Sheet  string
	Status string
	Reason string
	Rows   int
}

// Stats aggregates a whole collect run.
type Stats struct {
	FoldersProcessed int
	FilesProcessed   int
	SheetsSeen       int
	SheetsProcessed  int
	TotalRows        int64
	Records          []SheetRecord
	ColumnSources    map[string][]string // data column -> "file -> sheet" origins
}

// Result describes a finished collect run.
type Result struct {
	OutputPath string
	Stats      *Stats
	Scan       *ScanSummary
}

type table struct {
	headers []string
	rows    [][]string
}

// Collect runs the whole pipeline: scan, per-sheet extraction, column
// union merge, result workbook, report.
func Collect(cfg *config.CollectConfig) (*Result, error) {
	closeLog, err := setupLog(cfg.LogFile)
	if err != nil {
		return nil, err
	}
	defer closeLog()

	files, scan, err := scanSource(cfg)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: 未找到需要处理的 Excel 文件", cleaner.ErrFileNotFound)
	}

	stats := &Stats{ColumnSources: make(map[string][]string)}
	var tables []*table

	currentFolder := ""
	for _, ref := range files {
		if ref.Folder != currentFolder {
			currentFolder = ref.Folder
			stats.FoldersProcessed++
			logrus.Infof("正在处理文件夹: %s", ref.Folder)
		}
		fileTables := processFile(cfg, ref, stats)
		tables = append(tables, fileTables...)
	}

	if len(tables) == 0 {
		logReport(scan, stats, nil, nil)
		return nil, fmt.Errorf("%w: 没有工作表包含标记列 %q", cleaner.ErrLoad, cfg.HeaderMarker)
	}

	headers, rows := mergeTables(tables)
	logrus.Infof("合并完成, 总行数: %d, 总列数: %d", len(rows), len(headers))

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", cleaner.ErrWrite, err)
	}
	outputPath := filepath.Join(cfg.OutputDir, config.DefaultMergedName)
	if err := writeResult(outputPath, headers, rows); err != nil {
		return nil, err
	}
	logrus.Infof("结果已保存到: %s", outputPath)

	logReport(scan, stats, headers, rows)

	return &Result{OutputPath: outputPath, Stats: stats, Scan: scan}, nil
}

// processFile extracts every marker-bearing sheet of one workbook. Sheet
// failures are recorded, not fatal: the batch keeps going.
func processFile(cfg *config.CollectConfig, ref FileRef, stats *Stats) []*table {
	fileName := filepath.Base(ref.Path)
	logrus.Infof("  处理文件: %s", fileName)

	f, err := excelize.OpenFile(ref.Path)
	if err != nil {
		logrus.Errorf("  打开文件失败: %v", err)
		stats.Records = append(stats.Records, SheetRecord{
			Folder: ref.Folder, File: fileName, Status: statusError, Reason: err.Error(),
		})
		return nil
	}
	defer f.Close()

	var tables []*table
	for _, sheet := range f.GetSheetList() {
		stats.SheetsSeen++
		rec := SheetRecord{Folder: ref.Folder, File: fileName, Sheet: sheet}

		rows, err := f.GetRows(sheet)
		if err != nil {
			rec.Status, rec.Reason = statusError, err.Error()
			stats.Records = append(stats.Records, rec)
			logrus.Errorf("    工作表 %s 读取失败: %v", sheet, err)
			continue
		}

		tbl, reason := extractTable(cfg, rows)
		if tbl == nil {
			if len(rows) == 0 {
				rec.Status = statusEmpty
			} else {
				rec.Status = statusSkipped
			}
			rec.Reason = reason
			stats.Records = append(stats.Records, rec)
			logrus.Infof("    工作表 %s 跳过: %s", sheet, reason)
			continue
		}

		for _, h := range tbl.headers {
			stats.ColumnSources[h] = append(stats.ColumnSources[h],
				fmt.Sprintf("%s -> %s", fileName, sheet))
		}

		// provenance, always in the trailing position
		tbl.headers = append(tbl.headers, provenanceColumns...)
		for i := range tbl.rows {
			tbl.rows[i] = append(tbl.rows[i], fileName, sheet, ref.Folder)
		}

		rec.Status = statusProcessed
		rec.Rows = len(tbl.rows)
		rec.Reason = fmt.Sprintf("包含标记列, 处理 %d 行数据", len(tbl.rows))
		stats.Records = append(stats.Records, rec)
		stats.SheetsProcessed++
		stats.TotalRows += int64(len(tbl.rows))
		logrus.Infof("    工作表 %s 成功处理, 数据行数: %d, 列数: %d",
			sheet, len(tbl.rows), len(tbl.headers))

		tables = append(tables, tbl)
	}

	stats.FilesProcessed++
	return tables
}

// extractTable finds the header row by marker within the first ScanRows
// rows, uniques the header names and prunes empty rows and columns. The
// table is sized to the widest row of the sheet, so data cells beyond the
// header width end up under generated column names instead of being lost.
// A nil table means the sheet was skipped; the reason says why.
func extractTable(cfg *config.CollectConfig, rows [][]string) (*table, string) {
	if len(rows) == 0 {
		return nil, "工作表为空"
	}

	headerIdx := -1
	limit := cfg.ScanRows
	if limit > len(rows) {
		limit = len(rows)
	}
	for i := 0; i < limit; i++ {
		for _, cell := range rows[i] {
			if strings.Contains(cell, cfg.HeaderMarker) {
				headerIdx = i
				break
			}
		}
		if headerIdx >= 0 {
			break
		}
	}
	if headerIdx < 0 {
		return nil, fmt.Sprintf("前 %d 行未找到 %q", limit, cfg.HeaderMarker)
	}

	width := len(rows[headerIdx])
	for _, row := range rows[headerIdx+1:] {
		if len(row) > width {
			width = len(row)
		}
	}
	headerRow := make([]string, width)
	copy(headerRow, rows[headerIdx])

	headers := uniqueHeaders(headerRow)
	var data [][]string
	for _, row := range rows[headerIdx+1:] {
		padded := make([]string, len(headers))
		copy(padded, row)
		if !emptyRow(padded) {
			data = append(data, padded)
		}
	}
	if len(data) == 0 {
		return nil, "清洗后数据为空"
	}

	headers, data = dropEmptyColumns(headers, data)
	return &table{headers: headers, rows: data}, ""
}

// uniqueHeaders names blank headers and suffixes duplicates so every
// column has a distinct key for the union merge.
func uniqueHeaders(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	headers := make([]string, 0, len(raw))
	for _, h := range raw {
		name := strings.TrimSpace(h)
		if name == "" {
			name = unnamedColumn
		}
		candidate := name
		for n := 1; seen[candidate]; n++ {
			candidate = fmt.Sprintf("%s_%d", name, n)
		}
		seen[candidate] = true
		headers = append(headers, candidate)
	}
	return headers
}

func emptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// dropEmptyColumns removes columns whose every data cell is blank.
func dropEmptyColumns(headers []string, rows [][]string) ([]string, [][]string) {
	keep := make([]int, 0, len(headers))
	for i := range headers {
		for _, row := range rows {
			if strings.TrimSpace(row[i]) != "" {
				keep = append(keep, i)
				break
			}
		}
	}
	if len(keep) == len(headers) {
		return headers, rows
	}

	newHeaders := make([]string, len(keep))
	for n, i := range keep {
		newHeaders[n] = headers[i]
	}
	newRows := make([][]string, len(rows))
	for r, row := range rows {
		cells := make([]string, len(keep))
		for n, i := range keep {
			cells[n] = row[i]
		}
		newRows[r] = cells
	}
	return newHeaders, newRows
}

// mergeTables unifies all tables over the sorted union of their data
// columns; provenance columns stay last.
func mergeTables(tables []*table) ([]string, [][]string) {
	prov := make(map[string]bool, len(provenanceColumns))
	for _, p := range provenanceColumns {
		prov[p] = true
	}

	union := make(map[string]bool)
	for _, t := range tables {
		for _, h := range t.headers {
			if !prov[h] {
				union[h] = true
			}
		}
	}
	dataCols := make([]string, 0, len(union))
	for h := range union {
		dataCols = append(dataCols, h)
	}
	sort.Strings(dataCols)

	headers := append(dataCols, provenanceColumns...)
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[h] = i
	}

	var merged [][]string
	for _, t := range tables {
		for _, row := range t.rows {
			cells := make([]string, len(headers))
			for i, h := range t.headers {
				if i < len(row) {
					cells[index[h]] = row[i]
				}
			}
			merged = append(merged, cells)
		}
	}
	return headers, merged
}

func writeResult(path string, headers []string, rows [][]string) error {
	out := excelize.NewFile()
	defer out.Close()

	sw, err := out.NewStreamWriter(out.GetSheetList()[0])
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
	if err := out.SaveAs(path); err != nil {
		return fmt.Errorf("%w: %v", cleaner.ErrWrite, err)
	}
	return nil
}

// setupLog duplicates the log into a file when one is configured; the
// returned func restores the logger's previous output stream.
func setupLog(logFile string) (func(), error) {
	if logFile == "" {
		return func() {}, nil
	}
	f, err := os.Create(logFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cleaner.ErrWrite, err)
	}
	prev := logrus.StandardLogger().Out
	logrus.SetOutput(io.MultiWriter(prev, f))
	return func() {
		logrus.SetOutput(prev)
		f.Close()
	}, nil
}

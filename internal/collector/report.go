package collector

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// columnCompleteness is the fill rate of one data column in the merged
// result.
type columnCompleteness struct {
	column   string
	nonEmpty int
	rate     float64
}

// completeness counts non-empty cells per data column; provenance
// columns are excluded. Sorted by fill rate, fullest first.
func completeness(headers []string, rows [][]string) []columnCompleteness {
	prov := make(map[string]bool, len(provenanceColumns))
	for _, p := range provenanceColumns {
		prov[p] = true
	}

	var stats []columnCompleteness
	for i, h := range headers {
		if prov[h] {
			continue
		}
		nonEmpty := 0
		for _, row := range rows {
			if i < len(row) && strings.TrimSpace(row[i]) != "" {
				nonEmpty++
			}
		}
		rate := 0.0
		if len(rows) > 0 {
			rate = float64(nonEmpty) / float64(len(rows)) * 100
		}
		stats = append(stats, columnCompleteness{column: h, nonEmpty: nonEmpty, rate: rate})
	}

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].rate > stats[b].rate
	})
	return stats
}

// logReport writes the final processing summary, including every skipped
// or failed sheet with its reason, so a batch run leaves no silent gaps.
// headers/rows are the merged result; nil when nothing was collected.
func logReport(scan *ScanSummary, stats *Stats, headers []string, rows [][]string) {
	logrus.Info("================================================")
	logrus.Info("处理完成 - 统计报告")
	logrus.Infof("  处理文件夹: %d", stats.FoldersProcessed)
	logrus.Infof("  处理文件: %d", stats.FilesProcessed)
	logrus.Infof("  工作表总数: %d", stats.SheetsSeen)
	logrus.Infof("  成功处理: %d", stats.SheetsProcessed)
	logrus.Infof("  最终数据行: %d", stats.TotalRows)

	if stats.SheetsSeen > 0 {
		rate := float64(stats.SheetsProcessed) / float64(stats.SheetsSeen) * 100
		logrus.Infof("  成功率: %.1f%%", rate)
	}

	logColumnSources(stats.ColumnSources)
	if len(headers) > 0 {
		logrus.Info("数据完整性分析:")
		for _, c := range completeness(headers, rows) {
			logrus.Infof("  %s: 非空 %d 行, 完整率 %.1f%%", c.column, c.nonEmpty, c.rate)
		}
	}

	var skipped, failed []SheetRecord
	for _, rec := range stats.Records {
		switch rec.Status {
		case statusSkipped, statusEmpty:
			skipped = append(skipped, rec)
		case statusError:
			failed = append(failed, rec)
		}
	}

	if len(skipped) > 0 {
		logrus.Infof("跳过的工作表 (%d):", len(skipped))
		for _, rec := range skipped {
			logrus.Infof("  - %s/%s[%s]: %s", rec.Folder, rec.File, rec.Sheet, rec.Reason)
		}
	}
	if len(failed) > 0 {
		logrus.Warnf("处理出错的工作表 (%d):", len(failed))
		for _, rec := range failed {
			logrus.Warnf("  - %s/%s[%s]: %s", rec.Folder, rec.File, rec.Sheet, rec.Reason)
		}
	}

	if scan != nil && scan.Subfolders > len(scan.MatchedFolders) {
		logrus.Infof("提示: %d 个子文件夹不符合前缀条件, 未处理",
			scan.Subfolders-len(scan.MatchedFolders))
	}
}

func logColumnSources(sources map[string][]string) {
	if len(sources) == 0 {
		return
	}
	columns := make([]string, 0, len(sources))
	for col := range sources {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	logrus.Infof("发现 %d 个不同的数据列及其来源:", len(columns))
	for _, col := range columns {
		logrus.Infof("  - %s: %s", col, strings.Join(sources[col], ", "))
	}
}

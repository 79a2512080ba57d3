package collector

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/xlsx-tools/xlsx-cleaner/internal/cleaner"
	"github.com/xlsx-tools/xlsx-cleaner/internal/config"
)

// FileRef is one workbook found during the source scan.
type FileRef struct {
	Path   string
	Folder string // name of the subfolder the file lives in
}

// ScanSummary records what the directory walk saw.
type ScanSummary struct {
	Subfolders     int // all subfolders of the source dir
	MatchedFolders []string
	FilesPerFolder map[string]int
	TotalFiles     int
}

// scanSource lists the .xlsx files of every subfolder whose name carries
// the configured prefix. An empty prefix matches every subfolder.
func scanSource(cfg *config.CollectConfig) ([]FileRef, *ScanSummary, error) {
	entries, err := os.ReadDir(cfg.SourceDir)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", cleaner.ErrFileNotFound, cfg.SourceDir)
	}

	summary := &ScanSummary{FilesPerFolder: make(map[string]int)}
	var files []FileRef

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		summary.Subfolders++
		if cfg.FolderPrefix != "" && !strings.HasPrefix(entry.Name(), cfg.FolderPrefix) {
			continue
		}
		summary.MatchedFolders = append(summary.MatchedFolders, entry.Name())

		folderPath := filepath.Join(cfg.SourceDir, entry.Name())
		matches, err := filepath.Glob(filepath.Join(folderPath, "*.xlsx"))
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", cleaner.ErrLoad, err)
		}
		for _, m := range matches {
			files = append(files, FileRef{Path: m, Folder: entry.Name()})
		}
		summary.FilesPerFolder[entry.Name()] = len(matches)
	}
	summary.TotalFiles = len(files)

	logrus.Infof("目录扫描结果: 子文件夹 %d 个, 匹配 %d 个, Excel 文件 %d 个",
		summary.Subfolders, len(summary.MatchedFolders), summary.TotalFiles)
	for _, folder := range summary.MatchedFolders {
		logrus.Infof("  - %s: %d 个 Excel 文件", folder, summary.FilesPerFolder[folder])
	}

	return files, summary, nil
}

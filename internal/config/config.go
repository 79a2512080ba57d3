package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultColumns are the columns cleaned when the user does not override them.
var DefaultColumns = []string{"身份证号", "姓名"}

const (
	DefaultCleanSuffix  = "_clean"
	DefaultAppendSuffix = "_处理结果"
	DefaultSheetColumn  = "备注2"
	DefaultSummarySheet = "汇总"
	DefaultFolderPrefix = "优"
	DefaultHeaderMarker = "身份证号"
	DefaultScanRows     = 10
	DefaultMergedName   = "结果.xlsx"
)

// CleanConfig holds the parameters of the clean operation.
type CleanConfig struct {
	InputPath string
	Suffix    string   // inserted before the file extension
	Columns   []string // column names to clean, skipped silently when absent
}

func (c *CleanConfig) Validate() error {
	c.InputPath = strings.TrimSpace(c.InputPath)
	if c.InputPath == "" {
		return fmt.Errorf("未指定输入文件路径")
	}
	c.InputPath = filepath.Clean(c.InputPath)

	if c.Suffix == "" {
		c.Suffix = DefaultCleanSuffix
	}
	if len(c.Columns) == 0 {
		c.Columns = append([]string(nil), DefaultColumns...)
	}
	return nil
}

// AppendConfig holds the parameters of the append operation.
type AppendConfig struct {
	InputPath    string
	Suffix       string // inserted before the file extension
	SheetColumn  string // name of the added column carrying the sheet name
	SummarySheet string // name of the merged summary sheet
}

func (c *AppendConfig) Validate() error {
	c.InputPath = strings.TrimSpace(c.InputPath)
	if c.InputPath == "" {
		return fmt.Errorf("未指定输入文件路径")
	}
	c.InputPath = filepath.Clean(c.InputPath)

	if c.Suffix == "" {
		c.Suffix = DefaultAppendSuffix
	}
	if c.SheetColumn == "" {
		c.SheetColumn = DefaultSheetColumn
	}
	if c.SummarySheet == "" {
		c.SummarySheet = DefaultSummarySheet
	}
	return nil
}

// CollectConfig holds the parameters of the collect operation.
type CollectConfig struct {
	SourceDir    string
	OutputDir    string
	FolderPrefix string // only subfolders with this prefix are processed
	HeaderMarker string // substring that identifies the header row
	ScanRows     int    // how many leading rows are scanned for the header
	LogFile      string // duplicate the log into this file when set
}

func (c *CollectConfig) Validate() error {
	c.SourceDir = strings.TrimSpace(c.SourceDir)
	if c.SourceDir == "" {
		return fmt.Errorf("未指定源文件夹路径")
	}
	c.SourceDir = filepath.Clean(c.SourceDir)

	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	c.OutputDir = filepath.Clean(c.OutputDir)

	if c.HeaderMarker == "" {
		c.HeaderMarker = DefaultHeaderMarker
	}
	if c.ScanRows <= 0 {
		c.ScanRows = DefaultScanRows
	}
	return nil
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanConfigDefaults(t *testing.T) {
	cfg := &CleanConfig{InputPath: "  data/名单.xlsx  "}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "data/名单.xlsx", cfg.InputPath)
	assert.Equal(t, DefaultCleanSuffix, cfg.Suffix)
	assert.Equal(t, DefaultColumns, cfg.Columns)
}

func TestCleanConfigEmptyPath(t *testing.T) {
	cfg := &CleanConfig{InputPath: "   "}
	assert.Error(t, cfg.Validate())
}

func TestAppendConfigDefaults(t *testing.T) {
	cfg := &AppendConfig{InputPath: "月报.xlsx"}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultAppendSuffix, cfg.Suffix)
	assert.Equal(t, DefaultSheetColumn, cfg.SheetColumn)
	assert.Equal(t, DefaultSummarySheet, cfg.SummarySheet)
}

func TestCollectConfigDefaults(t *testing.T) {
	cfg := &CollectConfig{SourceDir: "./src", ScanRows: -1}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "src", cfg.SourceDir)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, DefaultHeaderMarker, cfg.HeaderMarker)
	assert.Equal(t, DefaultScanRows, cfg.ScanRows)
}

func TestCollectConfigEmptySource(t *testing.T) {
	cfg := &CollectConfig{}
	assert.Error(t, cfg.Validate())
}

package appender

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/xlsx-tools/xlsx-cleaner/internal/cleaner"
	"github.com/xlsx-tools/xlsx-cleaner/internal/config"
)

type sheet struct {
	name string
	rows [][]string
}

func createWorkbook(t *testing.T, path string, sheets []sheet) {
	t.Helper()
	f := excelize.NewFile()
	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for r, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(s.name, cell, &row))
		}
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
}

func TestAppendAnnotatesAndSummarizes(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "月报.xlsx")
	createWorkbook(t, input, []sheet{
		{"一月", [][]string{
			{"姓名", "金额"},
			{"张三", "100"},
			{"李四", "200"},
		}},
		{"二月", [][]string{
			{"姓名", "城市"},
			{"王五", "北京"},
		}},
	})

	cfg := &config.AppendConfig{InputPath: input}
	require.NoError(t, cfg.Validate())
	res, err := Append(cfg)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "月报_处理结果.xlsx"), res.OutputPath)
	assert.Equal(t, 2, res.SheetCount)
	assert.Equal(t, int64(3), res.RowCount)

	out, err := excelize.OpenFile(res.OutputPath)
	require.NoError(t, err)
	defer out.Close()

	assert.Equal(t, []string{"一月", "二月", "汇总"}, out.GetSheetList())

	jan, err := out.GetRows("一月")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"姓名", "金额", "备注2"},
		{"张三", "100", "一月"},
		{"李四", "200", "一月"},
	}, jan)

	// summary columns in first-seen order, missing cells left empty
	sum, err := out.GetRows("汇总")
	require.NoError(t, err)
	require.Len(t, sum, 4)
	assert.Equal(t, []string{"姓名", "金额", "备注2", "城市"}, sum[0])
	assert.Equal(t, []string{"张三", "100", "一月"}, sum[1])
	assert.Equal(t, []string{"王五", "", "二月", "北京"}, sum[3])
}

func TestAppendOverwritesExistingSheetColumn(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.xlsx")
	createWorkbook(t, input, []sheet{
		{"表一", [][]string{
			{"姓名", "备注2"},
			{"张三", "旧值"},
		}},
	})

	cfg := &config.AppendConfig{InputPath: input}
	require.NoError(t, cfg.Validate())
	res, err := Append(cfg)
	require.NoError(t, err)

	out, err := excelize.OpenFile(res.OutputPath)
	require.NoError(t, err)
	defer out.Close()

	rows, err := out.GetRows("表一")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"姓名", "备注2"},
		{"张三", "表一"},
	}, rows)

	sum, err := out.GetRows("汇总")
	require.NoError(t, err)
	assert.Equal(t, []string{"姓名", "备注2"}, sum[0], "no duplicate column in the summary")
}

func TestAppendMissingFile(t *testing.T) {
	cfg := &config.AppendConfig{InputPath: filepath.Join(t.TempDir(), "不存在.xlsx")}
	require.NoError(t, cfg.Validate())

	_, err := Append(cfg)
	assert.True(t, errors.Is(err, cleaner.ErrFileNotFound))
}

func TestAppendCustomNames(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.xlsx")
	createWorkbook(t, input, []sheet{
		{"表一", [][]string{{"编号"}, {"1"}}},
	})

	cfg := &config.AppendConfig{
		InputPath:    input,
		Suffix:       "_done",
		SheetColumn:  "来源",
		SummarySheet: "全部",
	}
	require.NoError(t, cfg.Validate())
	res, err := Append(cfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data_done.xlsx"), res.OutputPath)

	out, err := excelize.OpenFile(res.OutputPath)
	require.NoError(t, err)
	defer out.Close()

	assert.Equal(t, []string{"表一", "全部"}, out.GetSheetList())
	rows, err := out.GetRows("全部")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"编号", "来源"},
		{"1", "表一"},
	}, rows)
}

package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/xlsx-tools/xlsx-cleaner/internal/cleaner"
	"github.com/xlsx-tools/xlsx-cleaner/internal/config"
)

func newCleanCommand() *cobra.Command {
	cfg := &config.CleanConfig{}

	cmd := &cobra.Command{
		Use:   "clean [file]",
		Short: "清除指定列中的所有空白字符",
		Long: `读取 Excel 文件的第一个工作表, 删除指定列(默认 身份证号 和 姓名)
每个单元格中的所有空白字符, 并保存为 <文件名>_clean.xlsx。
不存在的列会被自动跳过, 原文件不会被修改。`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			path, err := pathArg(args, "请输入 Excel 文件路径（含文件名）：")
			if err != nil {
				emitError(start, err)
				return err
			}
			cfg.InputPath = path
			if err := cfg.Validate(); err != nil {
				emitError(start, err)
				return err
			}

			res, err := cleaner.Clean(cfg)
			if err != nil {
				emitError(start, err)
				return err
			}
			emitResult(start, []string{res.OutputPath}, res.RowCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.Suffix, "suffix", config.DefaultCleanSuffix, "输出文件名后缀")
	cmd.Flags().StringSliceVar(&cfg.Columns, "columns", config.DefaultColumns, "需要清洗的列名")

	return cmd
}

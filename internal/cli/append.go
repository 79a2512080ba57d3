package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/xlsx-tools/xlsx-cleaner/internal/appender"
	"github.com/xlsx-tools/xlsx-cleaner/internal/config"
)

func newAppendCommand() *cobra.Command {
	cfg := &config.AppendConfig{}

	cmd := &cobra.Command{
		Use:   "append [file]",
		Short: "为每个工作表追加工作表名列并生成汇总表",
		Long: `读取 Excel 文件的所有工作表, 为每个工作表追加一列(默认 备注2)
记录所在工作表名, 最后生成包含全部数据的汇总表(默认 汇总),
保存为 <文件名>_处理结果.xlsx。`,
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

			res, err := appender.Append(cfg)
			if err != nil {
				emitError(start, err)
				return err
			}
			emitResult(start, []string{res.OutputPath}, res.RowCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.Suffix, "suffix", config.DefaultAppendSuffix, "输出文件名后缀")
	cmd.Flags().StringVar(&cfg.SheetColumn, "sheet-column", config.DefaultSheetColumn, "记录工作表名的列名")
	cmd.Flags().StringVar(&cfg.SummarySheet, "summary-sheet", config.DefaultSummarySheet, "汇总表名称")

	return cmd
}

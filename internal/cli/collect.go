package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/xlsx-tools/xlsx-cleaner/internal/collector"
	"github.com/xlsx-tools/xlsx-cleaner/internal/config"
)

func newCollectCommand() *cobra.Command {
	cfg := &config.CollectConfig{}

	cmd := &cobra.Command{
		Use:   "collect [dir]",
		Short: "扫描文件夹并合并全部符合条件的数据",
		Long: `扫描源文件夹中带前缀(默认 优)的子文件夹, 打开其中的全部 .xlsx 文件,
在每个工作表的前若干行中查找标记列(默认 身份证号)以识别表头。
识别出的数据统一列结构后合并, 附加来源列(文件名/工作表名/文件夹名),
结果保存为输出目录下的 结果.xlsx。`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			dir, err := pathArg(args, "请输入要处理的文件夹路径：")
			if err != nil {
				emitError(start, err)
				return err
			}
			cfg.SourceDir = dir
			if err := cfg.Validate(); err != nil {
				emitError(start, err)
				return err
			}

			res, err := collector.Collect(cfg)
			if err != nil {
				emitError(start, err)
				return err
			}
			emitResult(start, []string{res.OutputPath}, res.Stats.TotalRows)
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.OutputDir, "out", ".", "输出目录")
	cmd.Flags().StringVar(&cfg.FolderPrefix, "prefix", config.DefaultFolderPrefix, "子文件夹名前缀, 为空则处理全部子文件夹")
	cmd.Flags().StringVar(&cfg.HeaderMarker, "marker", config.DefaultHeaderMarker, "识别表头行的标记字符串")
	cmd.Flags().IntVar(&cfg.ScanRows, "scan-rows", config.DefaultScanRows, "查找表头时扫描的行数")
	cmd.Flags().StringVar(&cfg.LogFile, "log-file", "", "将日志同时写入该文件")

	return cmd
}

// Package cli wires the clean, append and collect operations into one
// console binary.
package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:   "xlsx-cleaner",
	Short: "Excel 表格批量清洗工具",
	Long: `Excel 表格批量清洗工具。

Commands:
  clean    清除指定列中的所有空白字符, 输出 <文件名>_clean.xlsx
  append   为每个工作表追加工作表名列, 并生成汇总表
  collect  扫描文件夹, 按标记列识别表头并合并全部数据

Output:
  default  人类可读的结果摘要
  --json   JSON 格式结果, 便于脚本调用`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "以 JSON 格式输出结果")
	rootCmd.AddCommand(newCleanCommand())
	rootCmd.AddCommand(newAppendCommand())
	rootCmd.AddCommand(newCollectCommand())

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

// Execute runs the root command; the process exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

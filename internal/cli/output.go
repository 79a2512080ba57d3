package cli

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"
)

// Output is the machine-readable result envelope emitted with --json.
type Output struct {
	Success     bool     `json:"success"`
	OutputFiles []string `json:"output_files,omitempty"`
	Error       string   `json:"error,omitempty"`
	Duration    string   `json:"duration"`
	RowCount    int64    `json:"row_count,omitempty"`
}

func emitResult(start time.Time, outputFiles []string, rowCount int64) {
	if jsonOutput {
		emitJSON(Output{
			Success:     true,
			OutputFiles: outputFiles,
			RowCount:    rowCount,
			Duration:    time.Since(start).String(),
		})
		return
	}
	for _, f := range outputFiles {
		fmt.Printf("✅ 处理完成, 已保存为: %s\n", f)
	}
	fmt.Printf("共 %d 行数据, 耗时 %s\n", rowCount, time.Since(start).Round(time.Millisecond))
}

func emitError(start time.Time, err error) {
	if jsonOutput {
		emitJSON(Output{
			Success:  false,
			Error:    err.Error(),
			Duration: time.Since(start).String(),
		})
		return
	}
	fmt.Fprintf(os.Stderr, "❌ %v\n", err)
}

func emitJSON(out Output) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("JSON 输出失败: %v", err)
	}
}

package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputPath(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		suffix string
		want   string
	}{
		{"xlsx file", "data/原始.xlsx", "_clean", "data/原始_clean.xlsx"},
		{"no extension", "report", "_clean", "report_clean"},
		{"multiple dots", "a.b.c.xlsx", "_clean", "a.b.c_clean.xlsx"},
		{"dotfile", ".bashrc", "_clean", ".bashrc_clean"},
		{"custom suffix", "月报.xlsx", "_处理结果", "月报_处理结果.xlsx"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, OutputPath(tc.input, tc.suffix))
		})
	}
}

package cleaner

import (
	"path/filepath"
	"strings"
)

// OutputPath inserts suffix before the extension of inputPath:
// dir/report.xlsx -> dir/report_clean.xlsx. A path without an extension
// gets the suffix appended as-is; a leading dot alone (dotfiles) does not
// count as an extension.
func OutputPath(inputPath, suffix string) string {
	ext := filepath.Ext(inputPath)
	if ext == filepath.Base(inputPath) {
		ext = ""
	}
	return strings.TrimSuffix(inputPath, ext) + suffix + ext
}

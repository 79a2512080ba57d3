package cleaner

import "errors"

// The three failure classes every operation maps onto. Callers test them
// with errors.Is; the wrapped message carries the details.
var (
	ErrFileNotFound = errors.New("文件不存在")
	ErrLoad         = errors.New("文件读取失败")
	ErrWrite        = errors.New("文件写入失败")
)

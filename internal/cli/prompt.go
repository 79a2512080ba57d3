package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// promptPath asks for a file path on stdin when none was given on the
// command line. Surrounding whitespace is trimmed.
func promptPath(label string) (string, error) {
	fmt.Print(label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("读取输入失败: %v", err)
	}
	return strings.TrimSpace(line), nil
}

// pathArg resolves the input path from the positional argument or, when
// absent, from an interactive prompt.
func pathArg(args []string, label string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}
	return promptPath(label)
}

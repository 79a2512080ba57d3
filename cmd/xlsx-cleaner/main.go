package main

import "github.com/xlsx-tools/xlsx-cleaner/internal/cli"

func main() {
	cli.Execute()
}

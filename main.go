package main

import (
	"os"

	"github.com/file-quality/fqcheck/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}

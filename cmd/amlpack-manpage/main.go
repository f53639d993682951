package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/amlpack/cmd/amlpack"
	"github.com/arthur-debert/amlpack/internal/version"
)

func main() {
	rootCmd := amlpack.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "AMLPACK",
		Section: "1",
		Source:  "amlpack " + version.Version,
		Manual:  "amlpack manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/amlpack/cmd/amlpack"
	"github.com/arthur-debert/amlpack/pkg/style"
	"github.com/mattn/go-isatty"
)

func main() {
	rootCmd := amlpack.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		plain := !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd())
		sheet := style.Default(os.Stderr, plain)
		fmt.Fprintln(os.Stderr, sheet.Render("Error", fmt.Sprintf(amlpack.MsgErrFatalFormat, err)))
		os.Exit(1)
	}
}

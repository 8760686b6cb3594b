// Package main provides the CLI entry point for sheetpeek.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ukaji3/sheetpeek/pkg/sheetpeek"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/output"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr, nil))
}

// execute runs the CLI and returns the process exit code. Failures are
// reported on stdout as a single line, next to the report they replace.
func execute(args []string, stdout, stderr io.Writer, logger *slog.Logger) int {
	rootCmd := newRootCmd(logger)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stdout, reportLine(err))
		return 1
	}
	return 0
}

func reportLine(err error) string {
	var pathErr *fs.PathError
	if errors.Is(err, sheetpeek.ErrFileNotFound) && errors.As(err, &pathErr) {
		return output.NotFoundLine(pathErr.Path)
	}
	return output.ErrorLine(err)
}

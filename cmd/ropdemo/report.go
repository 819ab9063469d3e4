package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/ib-77/outcome/pkg/rop"
)

var (
	okLabel   = color.New(color.FgGreen, color.Bold)
	failLabel = color.New(color.FgRed, color.Bold)
)

// report prints one line for r and tells whether it was a success.
func report[T, E any](out io.Writer, label string, r rop.WithError[T, E]) bool {
	if r.IsSuccess() {
		fmt.Fprintf(out, "%s %s: %v\n", okLabel.Sprint("ok"), label, r.Result())
		return true
	}
	fmt.Fprintf(out, "%s %s: %v\n", failLabel.Sprint("failed"), label, r.Err())
	return false
}

func failed(n, total int) error {
	if n == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d failed", n, total)
}

// Package report renders a probe result as the lines a person reads on stdout.
package report

import (
	"fmt"
	"io"

	"github.com/hamed0406/statsprobe/internal/probe"
)

// Write prints the status line when a response arrived, then either the
// decoded body or the error detail.
func Write(w io.Writer, r probe.Result) error {
	if r.StatusCode != 0 {
		if _, err := fmt.Fprintf(w, "Status Code: %d\n", r.StatusCode); err != nil {
			return err
		}
	}

	var err error
	switch r.Kind() {
	case probe.KindSuccess:
		_, err = fmt.Fprintf(w, "Response: %s\n", r.Body)
	case probe.KindHTTPError:
		_, err = fmt.Fprintf(w, "Error: %s\n", r.ErrorText)
	default:
		_, err = fmt.Fprintf(w, "Error: %v\n", r.Err)
	}
	return err
}

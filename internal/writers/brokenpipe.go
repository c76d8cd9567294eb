// internal/writers/brokenpipe.go

// Package writers holds output-side helpers shared by the aligner CLIs.
package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means the reader went away, as when
// piping FASTA or report output into `head`. Both CLIs treat that as a
// clean exit rather than a write failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// core/fasta/write.go
package fasta

import (
	"fmt"
	"io"
)

// DefaultWrap is the residue line width used for output.
const DefaultWrap = 80

// Write renders records as FASTA with sequence lines wrapped at width
// characters. width <= 0 means DefaultWrap.
func Write(w io.Writer, records []Record, width int) error {
	if width <= 0 {
		width = DefaultWrap
	}
	for _, rec := range records {
		if _, err := fmt.Fprintf(w, ">%s\n", rec.Header); err != nil {
			return err
		}
		for off := 0; off < len(rec.Seq); off += width {
			end := off + width
			if end > len(rec.Seq) {
				end = len(rec.Seq)
			}
			if _, err := fmt.Fprintf(w, "%s\n", rec.Seq[off:end]); err != nil {
				return err
			}
		}
	}
	return nil
}

// internal/jsonutil/json.go

// Package jsonutil holds the one JSON encoding convention shared by the
// run-report and benchmark-report writers.
package jsonutil

import (
	"encoding/json"
	"io"
)

// EncodePretty writes v as two-space indented JSON followed by a newline.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

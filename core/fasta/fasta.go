// core/fasta/fasta.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// Record is one FASTA entry. Header is the full text after '>' (trimmed);
// Seq is the concatenation of all sequence lines with whitespace removed.
type Record struct {
	Header string
	Seq    []byte
}

// ErrNoRecords is returned when an input contains no valid sequences.
var ErrNoRecords = errors.New("fasta: no valid sequences found")

// ParseCtx scans FASTA from r and emits whole records.
// Cancellation via ctx is honored promptly between lines.
// emit may return a non-nil error (e.g. ctx.Err()) to stop early.
func ParseCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		header string
		seen   bool
		seq    = make([]byte, 0, 1<<20)
	)

	flush := func() error {
		if !seen {
			return nil
		}
		return emit(Record{Header: header, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			header = string(bytes.TrimSpace(line[1:]))
			seen = true
			seq = seq[:0]
			continue
		}
		if seen {
			seq = append(seq, line...)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// ReadCtx parses r and keeps only records that pass ValidSeq.
// The headers of skipped records are returned for caller-side warnings.
func ReadCtx(ctx context.Context, r io.Reader) (records []Record, skipped []string, err error) {
	err = ParseCtx(ctx, r, func(rec Record) error {
		if !ValidSeq(rec.Seq) {
			skipped = append(skipped, rec.Header)
			return nil
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, skipped, ErrNoRecords
	}
	return records, skipped, nil
}

// Read is ReadCtx with a background context.
func Read(r io.Reader) ([]Record, []string, error) {
	return ReadCtx(context.Background(), r)
}

// ReadPathCtx opens path (plain, .gz, .xz, or "-" for stdin) and calls ReadCtx.
func ReadPathCtx(ctx context.Context, path string) ([]Record, []string, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = rc.Close() }()
	return ReadCtx(ctx, rc)
}

// ReadPath is ReadPathCtx with a background context.
func ReadPath(path string) ([]Record, []string, error) {
	return ReadPathCtx(context.Background(), path)
}

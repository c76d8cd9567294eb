// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"msalign-core/fasta"
	"msalign-core/msa"
	"msalign/internal/cli"
	"msalign/internal/cmdutil"
	"msalign/internal/output"
	"msalign/internal/version"
	"msalign/internal/writers"
)

// RunContext is the full msalign CLI: parse args, read FASTA, align, write
// the alignment, and report. Exit codes: 0 ok, 1 validation/processing
// failure, 2 usage error, 3 write error.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("msalign")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "msalign version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	// When the alignment itself goes to stdout, reports move to stderr.
	report := io.Writer(outw)
	toStdout := opts.Output == "-"
	if toStdout {
		report = stderr
	}

	records, skipped, err := fasta.ReadPathCtx(ctx, opts.Input)
	for _, h := range skipped {
		cmdutil.Warnf(stderr, opts.Quiet, "skipping invalid sequence %q", h)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintf(stderr, "error: read %s: %v\n", opts.Input, err)
		return 1
	}
	if len(records) < 2 {
		_, _ = fmt.Fprintln(stderr, "error: at least 2 valid sequences are required")
		return 1
	}
	cmdutil.Progressf(stderr, opts.Quiet, "read %d sequences from %s", len(records), opts.Input)

	start := time.Now()
	res, err := msa.New(msa.Config{}).Align(records)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	elapsed := time.Since(start)

	if err := writeAlignment(outw, opts, res.Records); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "error: write %s: %v\n", opts.Output, err)
		return 3
	}
	if !toStdout {
		cmdutil.Progressf(stderr, opts.Quiet, "wrote %d aligned sequences to %s", len(res.Records), opts.Output)
	}

	if opts.Tree {
		if err := output.WriteTree(report, res.Tree); err != nil && !writers.IsBrokenPipe(err) {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}

	var rerr error
	if opts.JSON {
		rerr = output.WriteJSON(report, res, elapsed)
	} else if !opts.Quiet {
		rerr = output.WriteSummary(report, res, elapsed)
	}
	if rerr != nil && !writers.IsBrokenPipe(rerr) {
		_, _ = fmt.Fprintln(stderr, rerr)
		return 3
	}

	return flushCode(outw, stderr, 0)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func writeAlignment(stdout *bufio.Writer, opts cli.Options, records []fasta.Record) error {
	if opts.Output == "-" {
		return fasta.Write(stdout, records, opts.Wrap)
	}
	fh, err := os.Create(opts.Output)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(fh)
	if err := fasta.Write(w, records, opts.Wrap); err != nil {
		_ = fh.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}

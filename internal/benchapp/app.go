// internal/benchapp/app.go
package benchapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"msalign-core/fasta"
	"msalign-core/msa"
	"msalign/internal/bench"
	"msalign/internal/benchcli"
	"msalign/internal/cmdutil"
	"msalign/internal/jsonutil"
	"msalign/internal/version"
	"msalign/internal/writers"
)

// RunContext is the full msalign-bench CLI. Exit codes: 0 ok, 1 benchmark
// failure, 2 usage error, 3 write error.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := benchcli.NewFlagSet("msalign-bench")
	fs.SetOutput(io.Discard)

	opts, err := benchcli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "msalign-bench version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	if opts.Command == benchcli.CmdSynthetic {
		if err := bench.WriteSynthetic(opts.Output, opts.NumSeqs, opts.Length, opts.MutationRate, opts.Seed); err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			return 3
		}
		cmdutil.Progressf(stderr, opts.Quiet, "wrote %d synthetic sequences to %s", opts.NumSeqs, opts.Output)
		return flushCode(outw, stderr, 0)
	}

	runner := bench.NewRunner(msa.Config{})
	var results []bench.Result

	switch opts.Command {
	case benchcli.CmdSingle, benchcli.CmdMultiple:
		for _, path := range opts.Datasets {
			cmdutil.Progressf(stderr, opts.Quiet, "benchmarking %s", path)
			res, err := runner.RunFile(ctx, path)
			if err != nil {
				_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
				return 1
			}
			if opts.Reference != "" {
				if err := bench.WithReference(&res, opts.Reference); err != nil {
					_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
					return 1
				}
			}
			results = append(results, res)
		}

	case benchcli.CmdScalability:
		cmdutil.Progressf(stderr, opts.Quiet, "scalability run on %s (max %d, step %d)",
			opts.Datasets[0], opts.MaxSeqs, opts.Step)
		results, err = runner.RunScalability(ctx, opts.Datasets[0], opts.MaxSeqs, opts.Step)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}

	if opts.Command == benchcli.CmdSingle && opts.Output != "" {
		if err := writeAligned(opts.Output, results[0].Alignment); err != nil {
			_, _ = fmt.Fprintf(stderr, "error: write %s: %v\n", opts.Output, err)
			return 3
		}
	}

	if opts.JSON {
		if err := jsonutil.EncodePretty(outw, bench.ToAPIList(results)); err != nil && !writers.IsBrokenPipe(err) {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	} else {
		for _, res := range results {
			if err := bench.WriteReport(outw, res); err != nil && !writers.IsBrokenPipe(err) {
				_, _ = fmt.Fprintln(stderr, err)
				return 3
			}
		}
	}

	if opts.CSV != "" {
		if err := writeCSVFile(opts.CSV, results); err != nil {
			_, _ = fmt.Fprintf(stderr, "error: write %s: %v\n", opts.CSV, err)
			return 3
		}
		cmdutil.Progressf(stderr, opts.Quiet, "wrote %d result rows to %s", len(results), opts.CSV)
	}

	return flushCode(outw, stderr, 0)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func writeAligned(path string, records []fasta.Record) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(fh)
	if err := fasta.Write(w, records, fasta.DefaultWrap); err != nil {
		_ = fh.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

func writeCSVFile(path string, results []bench.Result) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bench.WriteCSV(fh, results); err != nil {
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

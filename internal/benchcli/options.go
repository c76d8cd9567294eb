// internal/benchcli/options.go
package benchcli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"msalign/internal/cliutil"
	"msalign/internal/version"
)

// Commands accepted by the benchmark tool.
const (
	CmdSingle      = "single"
	CmdMultiple    = "multiple"
	CmdScalability = "scalability"
	CmdSynthetic   = "synthetic"
)

// Options holds the benchmark command, its arguments, and shared flags.
type Options struct {
	Command  string
	Datasets []string // single: [dataset]; multiple: all datasets
	Output   string   // single: optional aligned output; synthetic: dataset path

	MaxSeqs int // scalability
	Step    int // scalability

	NumSeqs      int     // synthetic
	Length       int     // synthetic
	MutationRate float64 // synthetic

	CSV       string // write result rows to this CSV path
	JSON      bool   // machine-readable result report instead of text
	Reference string // reference alignment for accuracy scoring
	Seed      int64  // synthetic dataset seed
	Quiet     bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: alignment benchmark harness

Measures wall time, memory, and alignment statistics for full runs of
the progressive aligner, with optional accuracy against a reference.

Version: %s

Usage:
  %s [flags] single <dataset.fasta> [aligned-output.fasta]
  %s [flags] multiple <dataset1.fasta> <dataset2.fasta> ...
  %s [flags] scalability <dataset.fasta> [max-seqs] [step]
  %s [flags] synthetic <num-seqs> <length> <mutation-rate> <output.fasta>

Flags:
`, name, version.Version, name, name, name, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags plus the command and its
// positional arguments.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.CSV, "csv", "", "write result rows to this CSV file, replacing it []")
	fs.BoolVar(&opt.JSON, "json", false, "emit JSON result reports instead of text [false]")
	fs.StringVar(&opt.Reference, "reference", "", "reference alignment FASTA for accuracy scoring []")
	fs.Int64Var(&opt.Seed, "seed", 1, "random seed for synthetic datasets [1]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress output [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	posArgs = append(posArgs, fs.Args()...)
	if len(posArgs) == 0 {
		return opt, errors.New("expected a command: single, multiple, scalability, or synthetic")
	}
	opt.Command = posArgs[0]
	args := posArgs[1:]

	switch opt.Command {
	case CmdSingle:
		if len(args) < 1 || len(args) > 2 {
			return opt, errors.New("single expects <dataset.fasta> [aligned-output.fasta]")
		}
		opt.Datasets = args[:1]
		if len(args) == 2 {
			opt.Output = args[1]
		}

	case CmdMultiple:
		if len(args) == 0 {
			return opt, errors.New("multiple expects at least one dataset")
		}
		opt.Datasets = args

	case CmdScalability:
		if len(args) < 1 || len(args) > 3 {
			return opt, errors.New("scalability expects <dataset.fasta> [max-seqs] [step]")
		}
		opt.Datasets = args[:1]
		opt.MaxSeqs, opt.Step = 50, 10
		if len(args) >= 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 2 {
				return opt, fmt.Errorf("invalid max-seqs %q", args[1])
			}
			opt.MaxSeqs = n
		}
		if len(args) == 3 {
			n, err := strconv.Atoi(args[2])
			if err != nil || n < 1 {
				return opt, fmt.Errorf("invalid step %q", args[2])
			}
			opt.Step = n
		}

	case CmdSynthetic:
		if len(args) != 4 {
			return opt, errors.New("synthetic expects <num-seqs> <length> <mutation-rate> <output.fasta>")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return opt, fmt.Errorf("invalid num-seqs %q", args[0])
		}
		length, err := strconv.Atoi(args[1])
		if err != nil || length < 1 {
			return opt, fmt.Errorf("invalid length %q", args[1])
		}
		rate, err := strconv.ParseFloat(args[2], 64)
		if err != nil || rate < 0 || rate > 1 {
			return opt, fmt.Errorf("invalid mutation-rate %q (want 0..1)", args[2])
		}
		opt.NumSeqs, opt.Length, opt.MutationRate = n, length, rate
		opt.Output = args[3]

	default:
		return opt, fmt.Errorf("unknown command %q", opt.Command)
	}
	return opt, nil
}

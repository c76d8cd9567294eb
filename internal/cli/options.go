// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"msalign/internal/cliutil"
	"msalign/internal/version"
)

// Options holds all CLI flags and positional arguments.
type Options struct {
	Input  string // FASTA path, '-' for stdin, .gz/.xz accepted
	Output string // aligned FASTA path, '-' for stdout

	Tree  bool // print the UPGMA guide tree after the run
	JSON  bool // machine-readable run report instead of the text summary
	Wrap  int  // FASTA line width for output
	Quiet bool // suppress progress and warnings

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: progressive multiple sequence alignment

Aligns DNA sequences with a percent-identity distance matrix, a UPGMA
guide tree, and Needleman-Wunsch profile combination.

Version: %s

Usage:
  %s [flags] <input.fasta> <output.fasta>

Input may be plain, gzip (.gz) or xz (.xz) FASTA, or '-' for stdin.
Output is FASTA wrapped at --wrap columns; '-' writes to stdout.

Flags:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags plus the two positional paths.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.BoolVar(&opt.Tree, "tree", false, "print the guide tree after aligning [false]")
	fs.BoolVar(&opt.JSON, "json", false, "emit a JSON run report instead of the text summary [false]")
	fs.IntVar(&opt.Wrap, "wrap", 80, "output FASTA line width [80]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress output and warnings [false]")
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
	if len(posArgs) != 2 {
		return opt, errors.New("expected exactly two arguments: <input.fasta> <output.fasta>")
	}
	opt.Input, opt.Output = posArgs[0], posArgs[1]
	if opt.Wrap < 0 {
		return opt, errors.New("--wrap must be >= 0")
	}
	return opt, nil
}

package cliutil

import (
	"flag"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Bool("tree", false, "")
	fs.Int("wrap", 80, "")
	return fs
}

func TestSplitFlagsAndPositionals(t *testing.T) {
	cases := []struct {
		name string
		argv []string
		flg  []string
		pos  []string
	}{
		{
			name: "flags-after-positionals",
			argv: []string{"in.fa", "out.fa", "--tree"},
			flg:  []string{"--tree"},
			pos:  []string{"in.fa", "out.fa"},
		},
		{
			name: "value-flag-consumes-next",
			argv: []string{"--wrap", "60", "in.fa", "out.fa"},
			flg:  []string{"--wrap", "60"},
			pos:  []string{"in.fa", "out.fa"},
		},
		{
			name: "equals-form",
			argv: []string{"--wrap=60", "in.fa", "out.fa"},
			flg:  []string{"--wrap=60"},
			pos:  []string{"in.fa", "out.fa"},
		},
		{
			name: "stdin-dash-is-positional",
			argv: []string{"-", "out.fa", "--tree"},
			flg:  []string{"--tree"},
			pos:  []string{"-", "out.fa"},
		},
		{
			name: "double-dash-ends-flags",
			argv: []string{"--tree", "--", "--wrap", "out.fa"},
			flg:  []string{"--tree"},
			pos:  []string{"--wrap", "out.fa"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			flg, pos := SplitFlagsAndPositionals(newFS(), c.argv)
			if diff := cmp.Diff(c.flg, flg); diff != "" {
				t.Errorf("flags mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(c.pos, pos); diff != "" {
				t.Errorf("positionals mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

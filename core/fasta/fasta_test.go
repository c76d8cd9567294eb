package fasta

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ulikunitz/xz"
)

const plain = `>seq1 sample one
ACGT
ACGT
>seq2
TTTT
`

func TestReadRecords(t *testing.T) {
	recs, skipped, err := Read(strings.NewReader(plain))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(skipped) != 0 {
		t.Fatalf("unexpected skips: %v", skipped)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Header != "seq1 sample one" {
		t.Errorf("header not preserved: %q", recs[0].Header)
	}
	if string(recs[0].Seq) != "ACGTACGT" {
		t.Errorf("lines not concatenated: %q", recs[0].Seq)
	}
}

func TestReadSkipsInvalid(t *testing.T) {
	in := ">good\nACGT\n>bad\n0123456789\n"
	recs, skipped, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(recs) != 1 || recs[0].Header != "good" {
		t.Fatalf("expected only the valid record, got %+v", recs)
	}
	if len(skipped) != 1 || skipped[0] != "bad" {
		t.Fatalf("expected 'bad' to be skipped, got %v", skipped)
	}
}

func TestReadEmptyInput(t *testing.T) {
	if _, _, err := Read(strings.NewReader("")); err != ErrNoRecords {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}

func TestValidSeq(t *testing.T) {
	cases := []struct {
		seq  string
		want bool
	}{
		{"ACGT", true},
		{"acgt", true},
		{"ACGT-N*", true},
		{"MKVLA", true}, // protein codes pass the ratio too
		{"AC!!!!!!", false},
		{"UUUUUUUU", false}, // RNA uracil is not in the residue set
		{"", false},
	}
	for _, c := range cases {
		if got := ValidSeq([]byte(c.seq)); got != c.want {
			t.Errorf("ValidSeq(%q) = %v, want %v", c.seq, got, c.want)
		}
	}
}

// writeGz creates a gzipped FASTA file with provided data, returns the file path.
func writeGz(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(os.TempDir(), fmt.Sprintf("test-%d.fa.gz", time.Now().UnixNano()))
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func writeXz(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(os.TempDir(), fmt.Sprintf("test-%d.fa.xz", time.Now().UnixNano()))
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	xw, err := xz.NewWriter(fh)
	if err != nil {
		t.Fatalf("xz writer: %v", err)
	}
	if _, err := xw.Write([]byte(data)); err != nil {
		t.Fatalf("write xz: %v", err)
	}
	if err := xw.Close(); err != nil {
		t.Fatalf("close xz: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestReadPathCompressed(t *testing.T) {
	gzPath := writeGz(t, plain)
	defer func() { _ = os.Remove(gzPath) }()
	xzPath := writeXz(t, plain)
	defer func() { _ = os.Remove(xzPath) }()

	for _, path := range []string{gzPath, xzPath} {
		recs, _, err := ReadPath(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if len(recs) != 2 || recs[0].Header != "seq1 sample one" {
			t.Fatalf("compressed parse failed for %s: %+v", path, recs)
		}
	}
}

func TestReadPathStdin(t *testing.T) {
	orig := os.Stdin
	r, w, _ := os.Pipe()
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = io.WriteString(w, plain)
		_ = w.Close()
	}()

	recs, _, err := ReadPath("-")
	if err != nil {
		t.Fatalf("read stdin: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records from stdin, got %d", len(recs))
	}
}

func TestWriteWraps(t *testing.T) {
	long := strings.Repeat("ACGT", 30) // 120 residues
	var buf bytes.Buffer
	err := Write(&buf, []Record{{Header: "s", Seq: []byte(long)}}, 80)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 wrapped lines, got %d: %v", len(lines), lines)
	}
	if len(lines[1]) != 80 || len(lines[2]) != 40 {
		t.Fatalf("bad wrap lengths: %d, %d", len(lines[1]), len(lines[2]))
	}
}

func TestRoundTrip(t *testing.T) {
	orig := []Record{
		{Header: "a", Seq: []byte(strings.Repeat("ACGT", 25))},
		{Header: "b desc", Seq: []byte("TT-CG")},
	}
	var buf bytes.Buffer
	if err := Write(&buf, orig, 80); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, _, err := Read(&buf)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(got) != len(orig) {
		t.Fatalf("record count changed: %d != %d", len(got), len(orig))
	}
	for i := range got {
		if got[i].Header != orig[i].Header || string(got[i].Seq) != string(orig[i].Seq) {
			t.Errorf("record %d changed: %+v != %+v", i, got[i], orig[i])
		}
	}
}

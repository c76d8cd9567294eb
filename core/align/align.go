// core/align/align.go

// Package align implements global (Needleman-Wunsch) pairwise alignment
// with linear gap scoring.
package align

import (
	"github.com/andrew-torda/matrix"
)

// GapSym is the gap character inserted into aligned sequences.
const GapSym = '-'

// Scoring holds the pairwise scoring parameters. GapExtend is retained for
// interface compatibility with affine-gap configurations but never enters
// the recurrence: gaps cost Gap per position, flat.
type Scoring struct {
	Match     int
	Mismatch  int
	Gap       int
	GapExtend int
}

// DefaultScoring matches the classic +2/-1/-2 nucleotide scheme.
var DefaultScoring = Scoring{Match: 2, Mismatch: -1, Gap: -2, GapExtend: -1}

// Traceback directions.
const (
	diag byte = iota // consume one residue of each sequence
	up               // consume a, gap in b
	left             // consume b, gap in a
)

// Aligner performs global alignments under one Scoring. The zero value is
// not usable; call New.
type Aligner struct {
	scr Scoring
}

// New returns an Aligner with the given scoring.
func New(s Scoring) *Aligner { return &Aligner{scr: s} }

// Global aligns a against b and returns the two gapped strings. Both have
// equal length, at least max(len(a), len(b)). Comparison is
// case-insensitive; the input case is preserved in the output.
//
// Tie-breaking is fixed: a substitution step wins over either gap step, and
// consuming a wins over consuming b. This determines where gaps land when
// scores tie and must not change.
func (al *Aligner) Global(a, b []byte) (alignedA, alignedB []byte) {
	m, n := len(a), len(b)
	mch := float32(al.scr.Match)
	mis := float32(al.scr.Mismatch)
	gap := float32(al.scr.Gap)

	score := matrix.NewFMatrix2d(m+1, n+1).Mat
	dir := matrix.NewBMatrix2d(m+1, n+1).Mat

	for i := 1; i <= m; i++ {
		score[i][0] = float32(i) * gap
		dir[i][0] = up
	}
	for j := 1; j <= n; j++ {
		score[0][j] = float32(j) * gap
		dir[0][j] = left
	}

	for i := 1; i <= m; i++ {
		ca := upper(a[i-1])
		for j := 1; j <= n; j++ {
			sub := mis
			if ca == upper(b[j-1]) {
				sub = mch
			}
			d := score[i-1][j-1] + sub
			u := score[i-1][j] + gap
			l := score[i][j-1] + gap
			switch {
			case d >= u && d >= l:
				score[i][j] = d
				dir[i][j] = diag
			case u >= l:
				score[i][j] = u
				dir[i][j] = up
			default:
				score[i][j] = l
				dir[i][j] = left
			}
		}
	}

	// Worst case every position is gapped against the other sequence.
	outA := make([]byte, 0, m+n)
	outB := make([]byte, 0, m+n)
	for i, j := m, n; i > 0 || j > 0; {
		switch dir[i][j] {
		case diag:
			i--
			j--
			outA = append(outA, a[i])
			outB = append(outB, b[j])
		case up:
			i--
			outA = append(outA, a[i])
			outB = append(outB, GapSym)
		default:
			j--
			outA = append(outA, GapSym)
			outB = append(outB, b[j])
		}
	}
	reverse(outA)
	reverse(outB)
	return outA, outB
}

func reverse(s []byte) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

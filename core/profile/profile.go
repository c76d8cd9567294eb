// core/profile/profile.go

// Package profile implements per-column frequency profiles and their
// consensus-based combination during progressive alignment.
package profile

import (
	"msalign-core/align"
)

// Alphabet is the recognized residue alphabet, in consensus priority order.
const Alphabet = "ATCG"

// AlphabetSize is the number of frequency slots per column.
const AlphabetSize = len(Alphabet)

// Profile summarizes a group of aligned sequences as per-column residue and
// gap frequencies. Each column's slots plus its gap frequency sum to 1 for
// sequences over the recognized alphabet. Profiles are value-built and never
// mutated after creation; every combination allocates a fresh Profile.
type Profile struct {
	Freqs    [][AlphabetSize]float64
	GapFreqs []float64
	Seqs     int
}

// Columns returns the number of columns in the profile.
func (p *Profile) Columns() int { return len(p.Freqs) }

// FromSequence builds a one-sequence profile: one column per residue, one-hot
// for recognized residues, gap frequency 1 for gap characters. Unrecognized
// characters contribute nothing, absent rather than gapped.
func FromSequence(seq []byte) *Profile {
	p := &Profile{
		Freqs:    make([][AlphabetSize]float64, len(seq)),
		GapFreqs: make([]float64, len(seq)),
		Seqs:     1,
	}
	for i, c := range seq {
		if c == align.GapSym {
			p.GapFreqs[i] = 1.0
			continue
		}
		if k := alphaIndex(c); k >= 0 {
			p.Freqs[i][k] = 1.0
		}
	}
	return p
}

// Consensus returns the most frequent alphabet symbol per column. Ties and
// all-zero columns fall to the lowest alphabet index; gaps are never chosen,
// so the result has no gap characters and Columns() length.
func (p *Profile) Consensus() []byte {
	out := make([]byte, p.Columns())
	for i := range p.Freqs {
		best := 0
		for k := 1; k < AlphabetSize; k++ {
			if p.Freqs[i][k] > p.Freqs[i][best] {
				best = k
			}
		}
		out[i] = Alphabet[best]
	}
	return out
}

// Combine merges two profiles by aligning their consensus sequences and
// redistributing each profile's columns along its side of the alignment.
// This is deliberately consensus-based rather than true profile-profile
// alignment; minority variants at ambiguous columns can be lost.
func Combine(p1, p2 *Profile, al *align.Aligner) *Profile {
	c1, c2 := al.Global(p1.Consensus(), p2.Consensus())

	cols := len(c1)
	out := &Profile{
		Freqs:    make([][AlphabetSize]float64, cols),
		GapFreqs: make([]float64, cols),
		Seqs:     p1.Seqs + p2.Seqs,
	}

	total := float64(out.Seqs)
	cur1, cur2 := 0, 0
	for i := 0; i < cols; i++ {
		if c1[i] != align.GapSym && cur1 < p1.Columns() {
			addScaled(out, i, p1, cur1, float64(p1.Seqs))
			cur1++
		}
		if c2[i] != align.GapSym && cur2 < p2.Columns() {
			addScaled(out, i, p2, cur2, float64(p2.Seqs))
			cur2++
		}
		for k := 0; k < AlphabetSize; k++ {
			out.Freqs[i][k] /= total
		}
		out.GapFreqs[i] /= total
	}
	return out
}

// Add merges one new sequence into an existing profile: the profile's
// consensus is aligned against the sequence, the profile's columns follow
// the consensus side's gap pattern, and the sequence contributes 1 to its
// residue slot (or to the gap frequency) per column.
func Add(p *Profile, seq []byte, al *align.Aligner) *Profile {
	cons, gseq := al.Global(p.Consensus(), seq)

	cols := len(cons)
	out := &Profile{
		Freqs:    make([][AlphabetSize]float64, cols),
		GapFreqs: make([]float64, cols),
		Seqs:     p.Seqs + 1,
	}

	total := float64(out.Seqs)
	cur := 0
	for i := 0; i < cols; i++ {
		if cons[i] != align.GapSym && cur < p.Columns() {
			addScaled(out, i, p, cur, float64(p.Seqs))
			cur++
		}
		if gseq[i] == align.GapSym {
			out.GapFreqs[i] += 1.0
		} else if k := alphaIndex(gseq[i]); k >= 0 {
			out.Freqs[i][k] += 1.0
		}
		for k := 0; k < AlphabetSize; k++ {
			out.Freqs[i][k] /= total
		}
		out.GapFreqs[i] /= total
	}
	return out
}

// addScaled adds src column j times weight into dst column i.
func addScaled(dst *Profile, i int, src *Profile, j int, weight float64) {
	for k := 0; k < AlphabetSize; k++ {
		dst.Freqs[i][k] += src.Freqs[j][k] * weight
	}
	dst.GapFreqs[i] += src.GapFreqs[j] * weight
}

// alphaIndex maps a residue to its alphabet slot, case-insensitively.
// Unrecognized characters return -1.
func alphaIndex(c byte) int {
	if c >= 'a' && c <= 'z' {
		c = c - 'a' + 'A'
	}
	switch c {
	case 'A':
		return 0
	case 'T':
		return 1
	case 'C':
		return 2
	case 'G':
		return 3
	}
	return -1
}

// core/fasta/validate.go
package fasta

// Recognized residue codes: IUPAC nucleotides plus the amino-acid alphabet,
// with gap and stop symbols. Anything else counts against the validity ratio.
const validResidues = "ABCDEFGHIKLMNPQRSTVWXYZ*-RYSWKMBDHVN"

var validResidue [256]bool

func init() {
	for i := 0; i < len(validResidues); i++ {
		c := validResidues[i]
		validResidue[c] = true
		if c >= 'A' && c <= 'Z' {
			validResidue[c+'a'-'A'] = true
		}
	}
}

// ValidSeq reports whether at least 80% of seq consists of recognized
// residue codes. Empty sequences are invalid.
func ValidSeq(seq []byte) bool {
	if len(seq) == 0 {
		return false
	}
	valid := 0
	for _, c := range seq {
		if validResidue[c] {
			valid++
		}
	}
	return float64(valid)/float64(len(seq)) >= 0.8
}

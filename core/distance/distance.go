// core/distance/distance.go
package distance

// Distance returns a dissimilarity in [0,1] between two residue strings.
// Characters are compared positionally (case-insensitive) over the common
// prefix; identity is matches over the longer length, so sequences of
// different lengths never reach 0 even when one is a prefix of the other.
// Either sequence empty → 1.
func Distance(a, b []byte) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 1.0
	}
	minLen, maxLen := len(a), len(b)
	if minLen > maxLen {
		minLen, maxLen = maxLen, minLen
	}
	matches := 0
	for i := 0; i < minLen; i++ {
		if upper(a[i]) == upper(b[i]) {
			matches++
		}
	}
	identity := float64(matches) / float64(maxLen)
	return 1.0 - identity
}

// Matrix computes the symmetric all-pairs distance matrix with a zero
// diagonal. Built once per alignment run and read-only afterward.
func Matrix(seqs [][]byte) [][]float64 {
	n := len(seqs)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := Distance(seqs[i], seqs[j])
			m[i][j] = d
			m[j][i] = d
		}
	}
	return m
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

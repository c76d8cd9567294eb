// internal/output/summary.go
package output

import (
	"fmt"
	"io"
	"time"

	"msalign-core/msa"
)

// GapPercentage is total gaps over the full alignment area (rows × columns).
func GapPercentage(stats msa.Stats, sequences int) float64 {
	if stats.FinalLength == 0 || sequences == 0 {
		return 0
	}
	return float64(stats.TotalGaps) / float64(sequences*stats.FinalLength) * 100.0
}

// WriteSummary prints the human-readable run summary.
func WriteSummary(w io.Writer, res *msa.Result, elapsed time.Duration) error {
	n := len(res.Records)
	_, err := fmt.Fprintf(w,
		"sequences:      %d\nfinal length:   %d\ntotal gaps:     %d\ngap percentage: %.1f%%\nelapsed:        %.3fs\n",
		n, res.Stats.FinalLength, res.Stats.TotalGaps,
		GapPercentage(res.Stats, n), elapsed.Seconds(),
	)
	return err
}

// internal/bench/csv.go

package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var csvHeader = []string{
	"Dataset",
	"Timestamp",
	"NumSequences",
	"OriginalAvgLength",
	"FinalLength",
	"ExecutionTime_ms",
	"MemoryUsage_MB",
	"TotalGaps",
	"GapPercentage",
	"AccuracyScore",
	"HasReference",
}

// WriteCSV writes benchmark results as CSV, one row per run.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Dataset,
			r.Timestamp,
			strconv.Itoa(r.NumSequences),
			strconv.Itoa(r.OriginalAvgLength),
			strconv.Itoa(r.FinalLength),
			strconv.FormatFloat(r.ExecutionTimeMS, 'f', 2, 64),
			strconv.FormatUint(r.MemoryUsageMB, 10),
			strconv.Itoa(r.TotalGaps),
			strconv.FormatFloat(r.GapPercentage, 'f', 2, 64),
			strconv.FormatFloat(r.AccuracyScore, 'f', 4, 64),
			strconv.FormatBool(r.HasReference),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteReport writes a human-readable summary of one run.
func WriteReport(w io.Writer, r Result) error {
	_, err := fmt.Fprintf(w, `Benchmark: %s
  Run ID:           %s
  Sequences:        %d
  Avg input length: %d
  Final length:     %d
  Time:             %.2f ms
  Memory:           %d MB
  Gaps:             %d (%.2f%%)
`,
		r.Dataset, r.RunID, r.NumSequences, r.OriginalAvgLength,
		r.FinalLength, r.ExecutionTimeMS, r.MemoryUsageMB,
		r.TotalGaps, r.GapPercentage)
	if err != nil {
		return err
	}
	if r.HasReference {
		_, err = fmt.Fprintf(w, "  Accuracy:         %.4f\n", r.AccuracyScore)
	}
	return err
}

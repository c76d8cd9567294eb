// internal/bench/api.go

package bench

import "msalign/pkg/api"

// ToAPI converts a benchmark result to the stable wire schema (v1).
func ToAPI(r Result) api.BenchResultV1 {
	return api.BenchResultV1{
		RunID:             r.RunID,
		Dataset:           r.Dataset,
		Timestamp:         r.Timestamp,
		DatasetChecksum:   r.DatasetChecksum,
		NumSequences:      r.NumSequences,
		OriginalAvgLength: r.OriginalAvgLength,
		FinalLength:       r.FinalLength,
		ExecutionTimeMS:   r.ExecutionTimeMS,
		MemoryUsageMB:     r.MemoryUsageMB,
		TotalGaps:         r.TotalGaps,
		GapPercentage:     r.GapPercentage,
		AccuracyScore:     r.AccuracyScore,
		HasReference:      r.HasReference,
	}
}

// ToAPIList converts a slice of results to the wire schema.
func ToAPIList(results []Result) []api.BenchResultV1 {
	out := make([]api.BenchResultV1, 0, len(results))
	for _, r := range results {
		out = append(out, ToAPI(r))
	}
	return out
}

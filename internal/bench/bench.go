// internal/bench/bench.go

// Package bench runs and measures whole alignments: wall time, heap growth,
// alignment statistics, and optional accuracy against a reference alignment.
package bench

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"

	"msalign-core/fasta"
	"msalign-core/msa"
	"msalign/internal/output"
)

// Result is one measured benchmark run.
type Result struct {
	RunID             string
	Dataset           string
	Timestamp         string
	DatasetChecksum   string
	NumSequences      int
	OriginalAvgLength int
	FinalLength       int
	ExecutionTimeMS   float64
	MemoryUsageMB     uint64
	TotalGaps         int
	GapPercentage     float64
	AccuracyScore     float64
	HasReference      bool

	// Aligned rows, retained so callers can write or compare them.
	Alignment []fasta.Record
}

// Runner executes benchmarks with one aligner configuration.
type Runner struct {
	cfg msa.Config
}

// NewRunner returns a Runner; a zero Config uses default scoring.
func NewRunner(cfg msa.Config) *Runner { return &Runner{cfg: cfg} }

// RunFile reads one FASTA dataset and measures a full alignment run.
func (r *Runner) RunFile(ctx context.Context, path string) (Result, error) {
	records, _, err := fasta.ReadPathCtx(ctx, path)
	if err != nil {
		return Result{}, fmt.Errorf("bench: read %s: %w", path, err)
	}
	res, err := r.RunRecords(records, path)
	if err != nil {
		return Result{}, err
	}
	if sum, _, ferr := Fingerprint(path); ferr == nil {
		res.DatasetChecksum = sum
	}
	return res, nil
}

// RunRecords measures a full alignment of in-memory records.
func (r *Runner) RunRecords(records []fasta.Record, name string) (Result, error) {
	avg := 0
	if len(records) > 0 {
		total := 0
		for _, rec := range records {
			total += len(rec.Seq)
		}
		avg = total / len(records)
	}

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	start := time.Now()
	res, err := msa.New(r.cfg).Align(records)
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, fmt.Errorf("bench: align %s: %w", name, err)
	}

	runtime.ReadMemStats(&after)
	var heapMB uint64
	if after.HeapAlloc > before.HeapAlloc {
		heapMB = (after.HeapAlloc - before.HeapAlloc) / (1024 * 1024)
	}

	return Result{
		RunID:             uuid.NewString(),
		Dataset:           name,
		Timestamp:         time.Now().Format(time.RFC3339),
		NumSequences:      len(records),
		OriginalAvgLength: avg,
		FinalLength:       res.Stats.FinalLength,
		ExecutionTimeMS:   float64(elapsed.Microseconds()) / 1000.0,
		MemoryUsageMB:     heapMB,
		TotalGaps:         res.Stats.TotalGaps,
		GapPercentage:     output.GapPercentage(res.Stats, len(records)),
		Alignment:         res.Records,
	}, nil
}

// RunScalability aligns growing prefixes of one dataset: step, 2*step, ...
// up to maxSeqs (capped at the dataset size).
func (r *Runner) RunScalability(ctx context.Context, path string, maxSeqs, step int) ([]Result, error) {
	if step <= 0 {
		step = 10
	}
	records, _, err := fasta.ReadPathCtx(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("bench: read %s: %w", path, err)
	}
	if maxSeqs <= 0 || maxSeqs > len(records) {
		maxSeqs = len(records)
	}

	var results []Result
	for n := step; n <= maxSeqs; n += step {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}
		if n < 2 {
			continue
		}
		res, err := r.RunRecords(records[:n], fmt.Sprintf("%s[:%d]", path, n))
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Accuracy is the fraction of positions at which two alignments agree,
// compared row by row over each pair's common prefix. Identical alignments
// score 1; alignments with different row counts score 0.
func Accuracy(a, b []fasta.Record) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	total, matching := 0, 0
	for i := range a {
		sa, sb := a[i].Seq, b[i].Seq
		n := len(sa)
		if len(sb) < n {
			n = len(sb)
		}
		total += n
		for j := 0; j < n; j++ {
			if sa[j] == sb[j] {
				matching++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(matching) / float64(total)
}

// WithReference fills the accuracy fields of res from a reference
// alignment file.
func WithReference(res *Result, referencePath string) error {
	ref, _, err := fasta.ReadPath(referencePath)
	if err != nil {
		return fmt.Errorf("bench: reference %s: %w", referencePath, err)
	}
	res.AccuracyScore = Accuracy(res.Alignment, ref)
	res.HasReference = true
	return nil
}

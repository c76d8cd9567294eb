// pkg/api/alignment_v1.go
package api

// AlignedSequenceV1 is one aligned row of the output alignment.
type AlignedSequenceV1 struct {
	Header   string `json:"header"`
	Residues string `json:"residues"`
}

// TreeNodeV1 is the stable JSON shape of one guide-tree node. Leaves carry
// sequence_index; internal nodes carry merge_distance and two children.
type TreeNodeV1 struct {
	SequenceIndex *int        `json:"sequence_index,omitempty"`
	MergeDistance float64     `json:"merge_distance,omitempty"`
	Left          *TreeNodeV1 `json:"left,omitempty"`
	Right         *TreeNodeV1 `json:"right,omitempty"`
}

// AlignmentRunV1 is the stable JSON schema for one alignment run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type AlignmentRunV1 struct {
	Sequences     int                 `json:"sequences"`
	FinalLength   int                 `json:"final_length"`
	TotalGaps     int                 `json:"total_gaps"`
	GapPercentage float64             `json:"gap_percentage"`
	ElapsedMS     float64             `json:"elapsed_ms,omitempty"`
	Alignment     []AlignedSequenceV1 `json:"alignment"`
	GuideTree     *TreeNodeV1         `json:"guide_tree,omitempty"`
}

// BenchResultV1 is the stable JSON schema for one benchmark run.
type BenchResultV1 struct {
	RunID             string  `json:"run_id"`
	Dataset           string  `json:"dataset"`
	Timestamp         string  `json:"timestamp"`
	DatasetChecksum   string  `json:"dataset_checksum,omitempty"`
	NumSequences      int     `json:"num_sequences"`
	OriginalAvgLength int     `json:"original_avg_length"`
	FinalLength       int     `json:"final_length"`
	ExecutionTimeMS   float64 `json:"execution_time_ms"`
	MemoryUsageMB     uint64  `json:"memory_usage_mb"`
	TotalGaps         int     `json:"total_gaps"`
	GapPercentage     float64 `json:"gap_percentage"`
	AccuracyScore     float64 `json:"accuracy_score,omitempty"`
	HasReference      bool    `json:"has_reference,omitempty"`
}

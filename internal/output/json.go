// internal/output/json.go
package output

import (
	"io"
	"time"

	"msalign-core/msa"
	"msalign-core/tree"
	"msalign/internal/jsonutil"
	"msalign/pkg/api"
)

// ToAPIRun converts a run result to the stable wire schema (v1).
func ToAPIRun(res *msa.Result, elapsed time.Duration) api.AlignmentRunV1 {
	v := api.AlignmentRunV1{
		Sequences:     len(res.Records),
		FinalLength:   res.Stats.FinalLength,
		TotalGaps:     res.Stats.TotalGaps,
		GapPercentage: GapPercentage(res.Stats, len(res.Records)),
		ElapsedMS:     float64(elapsed.Milliseconds()),
	}
	for _, r := range res.Records {
		v.Alignment = append(v.Alignment, api.AlignedSequenceV1{
			Header:   r.Header,
			Residues: string(r.Seq),
		})
	}
	if res.Tree != nil {
		v.GuideTree = toAPINode(res.Tree, res.Tree.Root())
	}
	return v
}

func toAPINode(t *tree.Tree, idx int) *api.TreeNodeV1 {
	n := t.Node(idx)
	if n.Leaf() {
		i := n.SeqIndex
		return &api.TreeNodeV1{SequenceIndex: &i}
	}
	return &api.TreeNodeV1{
		MergeDistance: n.Dist,
		Left:          toAPINode(t, n.Left),
		Right:         toAPINode(t, n.Right),
	}
}

// WriteJSON writes the v1 run report as pretty-indented JSON.
func WriteJSON(w io.Writer, res *msa.Result, elapsed time.Duration) error {
	return jsonutil.EncodePretty(w, ToAPIRun(res, elapsed))
}

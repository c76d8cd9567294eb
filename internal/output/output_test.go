package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"msalign-core/fasta"
	"msalign-core/msa"
	"msalign/pkg/api"
)

func alignPair(t *testing.T) *msa.Result {
	t.Helper()
	res, err := msa.New(msa.Config{}).Align([]fasta.Record{
		{Header: "a", Seq: []byte("ATCG")},
		{Header: "b", Seq: []byte("AT")},
	})
	if err != nil {
		t.Fatalf("align: %v", err)
	}
	return res
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSummary(&buf, alignPair(t), 1500*time.Millisecond); err != nil {
		t.Fatalf("summary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"sequences:", "final length:", "total gaps:", "1.500s"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestGapPercentage(t *testing.T) {
	if got := GapPercentage(msa.Stats{FinalLength: 10, TotalGaps: 5}, 5); got != 10.0 {
		t.Fatalf("gap percentage = %v, want 10.0", got)
	}
	if got := GapPercentage(msa.Stats{}, 0); got != 0 {
		t.Fatalf("empty stats should yield 0, got %v", got)
	}
}

func TestWriteTree(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTree(&buf, alignPair(t).Tree); err != nil {
		t.Fatalf("tree: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "sequence 0") || !strings.Contains(out, "sequence 1") {
		t.Errorf("tree output missing leaves:\n%s", out)
	}
	if !strings.Contains(out, "merge (dist:") {
		t.Errorf("tree output missing the merge node:\n%s", out)
	}
}

func TestWriteJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, alignPair(t), time.Second); err != nil {
		t.Fatalf("json: %v", err)
	}
	var run api.AlignmentRunV1
	if err := json.Unmarshal(buf.Bytes(), &run); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if run.Sequences != 2 || len(run.Alignment) != 2 {
		t.Fatalf("unexpected run: %+v", run)
	}
	if run.GuideTree == nil || run.GuideTree.Left == nil || run.GuideTree.Right == nil {
		t.Fatalf("guide tree not serialized: %+v", run.GuideTree)
	}
	if run.Alignment[0].Header != "a" {
		t.Errorf("header lost: %+v", run.Alignment[0])
	}
}

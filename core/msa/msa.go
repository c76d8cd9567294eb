// core/msa/msa.go

// Package msa drives the progressive multiple-sequence-alignment pipeline:
// distance matrix → UPGMA guide tree → post-order profile combination →
// per-sequence realignment against the final consensus.
package msa

import (
	"errors"

	"msalign-core/align"
	"msalign-core/distance"
	"msalign-core/fasta"
	"msalign-core/profile"
	"msalign-core/tree"
)

// ErrTooFewSequences is returned when fewer than 2 sequences are given.
var ErrTooFewSequences = errors.New("msa: at least 2 sequences are required")

// Config holds alignment parameters.
type Config struct {
	Scoring align.Scoring
}

// Stats summarizes one completed run.
type Stats struct {
	FinalLength int
	TotalGaps   int
}

// Result is the outcome of a single run. It owns its guide tree and stats;
// nothing is carried over between runs.
type Result struct {
	Records []fasta.Record // aligned rows, input order, equal lengths
	Stats   Stats
	Tree    *tree.Tree
}

// Aligner computes multiple sequence alignments. Safe to reuse across runs;
// it keeps no state between calls.
type Aligner struct {
	scr align.Scoring
}

// New creates an Aligner. A zero-value Scoring falls back to the default
// +2/-1/-2 scheme.
func New(c Config) *Aligner {
	if c.Scoring == (align.Scoring{}) {
		c.Scoring = align.DefaultScoring
	}
	return &Aligner{scr: c.Scoring}
}

// Align aligns records and returns the gapped rows plus run statistics and
// the guide tree. The input is never modified.
//
// The final step realigns every original sequence independently against the
// root profile's consensus. Column correspondence across rows is therefore
// only as consistent as each row's own alignment to that shared consensus.
func (a *Aligner) Align(records []fasta.Record) (*Result, error) {
	if len(records) < 2 {
		return nil, ErrTooFewSequences
	}

	seqs := make([][]byte, len(records))
	for i, r := range records {
		seqs[i] = r.Seq
	}

	dist := distance.Matrix(seqs)
	tr, err := tree.Build(len(seqs), dist)
	if err != nil {
		return nil, err
	}

	al := align.New(a.scr)

	// One profile per node, children before parents. Child profiles are
	// released as soon as their parent has consumed them.
	profs := make([]*profile.Profile, tr.Len())
	for _, idx := range tr.PostOrder() {
		n := tr.Node(idx)
		if n.Leaf() {
			profs[idx] = profile.FromSequence(seqs[n.SeqIndex])
			continue
		}
		profs[idx] = profile.Combine(profs[n.Left], profs[n.Right], al)
		profs[n.Left], profs[n.Right] = nil, nil
	}

	cons := profs[tr.Root()].Consensus()

	out := make([]fasta.Record, len(records))
	stats := Stats{}
	for i, r := range records {
		row, _ := al.Global(r.Seq, cons)
		out[i] = fasta.Record{Header: r.Header, Seq: row}
		for _, c := range row {
			if c == align.GapSym {
				stats.TotalGaps++
			}
		}
	}
	stats.FinalLength = len(out[0].Seq)

	return &Result{Records: out, Stats: stats, Tree: tr}, nil
}

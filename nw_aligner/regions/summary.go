package regions

import (
	"NW-Sequence-Alignments/nw_aligner/aligner"
	"NW-Sequence-Alignments/nw_aligner/common"
)

// Summary describes the columns of one alignment.
type Summary struct {
	Columns    int     `json:"columns" yaml:"columns"`
	Matches    int     `json:"matches" yaml:"matches"`
	Mismatches int     `json:"mismatches" yaml:"mismatches"`
	Insertions int     `json:"insertions" yaml:"insertions"` // query symbols against a gap
	Deletions  int     `json:"deletions" yaml:"deletions"`   // ref symbols against a gap
	GapOpens   int     `json:"gap_opens" yaml:"gap_opens"`
	Identity   float64 `json:"identity" yaml:"identity"` // matches / columns
	Coverage   float64 `json:"coverage" yaml:"coverage"` // query fraction inside segments
	CIGAR      string  `json:"cigar" yaml:"cigar"`

	Segments  []common.Segment `json:"segments" yaml:"segments"`
	Uncovered [][2]int         `json:"uncovered" yaml:"uncovered"`
}

// Summarize counts the column types of res and locates its ungapped
// segments.
func Summarize[S comparable](res aligner.Result[S]) Summary {
	s := Summary{Columns: len(res.Moves), CIGAR: CIGAR(res.Moves)}
	queryLen := 0
	for k, m := range res.Moves {
		switch m {
		case common.Diag:
			queryLen++
			if res.A[k] == res.B[k] {
				s.Matches++
			} else {
				s.Mismatches++
			}
		case common.Left:
			queryLen++
			s.Insertions++
		case common.Up:
			s.Deletions++
		}
		if m != common.Diag && (k == 0 || res.Moves[k-1] != m) {
			s.GapOpens++
		}
	}
	if s.Columns > 0 {
		s.Identity = float64(s.Matches) / float64(s.Columns)
	}
	s.Segments = Segments(res.Moves)
	s.Uncovered = FindUncoveredRegions(queryLen, s.Segments)
	if queryLen > 0 {
		covered := 0
		for _, seg := range s.Segments {
			covered += seg.Len()
		}
		s.Coverage = float64(covered) / float64(queryLen)
	}
	return s
}

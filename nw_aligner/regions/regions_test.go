package regions

import (
	"math"
	"reflect"
	"testing"

	"NW-Sequence-Alignments/nw_aligner/aligner"
	"NW-Sequence-Alignments/nw_aligner/common"
)

func moves(s string) []common.Move {
	out := make([]common.Move, len(s))
	for i := range s {
		out[i] = common.Move(s[i])
	}
	return out
}

func TestSegments(t *testing.T) {
	for _, tc := range []struct {
		moves string
		want  []common.Segment
	}{
		{"", []common.Segment{}},
		{"UUL", []common.Segment{}},
		{"DDD", []common.Segment{{QueryStart: 0, QueryEnd: 2, RefStart: 0, RefEnd: 2}}},
		{"DLDD", []common.Segment{{QueryStart: 0, QueryEnd: 0, RefStart: 0, RefEnd: 0}, {QueryStart: 2, QueryEnd: 3, RefStart: 1, RefEnd: 2}}},
		{"UDDLLD", []common.Segment{{QueryStart: 0, QueryEnd: 1, RefStart: 1, RefEnd: 2}, {QueryStart: 4, QueryEnd: 4, RefStart: 3, RefEnd: 3}}},
	} {
		if got := Segments(moves(tc.moves)); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.moves, got, tc.want)
		}
	}
}

func TestFindUncoveredRegions(t *testing.T) {
	for _, tc := range []struct {
		queryLen int
		segs     []common.Segment
		want     [][2]int
	}{
		{0, nil, [][2]int{}},
		{5, nil, [][2]int{{0, 4}}},
		{5, []common.Segment{{QueryStart: 0, QueryEnd: 4, RefStart: 0, RefEnd: 4}}, [][2]int{}},
		{6, []common.Segment{{QueryStart: 4, QueryEnd: 4, RefStart: 3, RefEnd: 3}, {QueryStart: 0, QueryEnd: 1, RefStart: 1, RefEnd: 2}}, [][2]int{{2, 3}, {5, 5}}},
	} {
		if got := FindUncoveredRegions(tc.queryLen, tc.segs); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%d %v: got %v, want %v", tc.queryLen, tc.segs, got, tc.want)
		}
	}
}

func TestCIGAR(t *testing.T) {
	for _, tc := range []struct{ moves, want string }{
		{"", ""},
		{"DDDD", "4M"},
		{"DLDD", "1M1I2M"},
		{"UUDLL", "2D1M2I"},
	} {
		if got := CIGAR(moves(tc.moves)); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.moves, got, tc.want)
		}
	}
}

func TestFormatSegments(t *testing.T) {
	got := FormatSegments([]common.Segment{{QueryStart: 0, QueryEnd: 0, RefStart: 0, RefEnd: 0}, {QueryStart: 2, QueryEnd: 3, RefStart: 1, RefEnd: 2}})
	if want := "[(0, 1, 0, 1), (2, 4, 1, 3)]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := FormatSegments(nil); got != "[]" {
		t.Errorf("got %q", got)
	}
}

func TestSummarize(t *testing.T) {
	res, err := aligner.NeedlemanWunsch("ACCGTT", "AGGTTA", 1, -1)
	if err != nil {
		t.Fatalf("align: %v", err)
	}
	s := Summarize(res)
	if s.Columns != res.Len() || s.Matches+s.Mismatches+s.Insertions+s.Deletions != s.Columns {
		t.Errorf("column counts do not add up: %+v", s)
	}
	if s.Insertions-s.Deletions != 0 {
		t.Errorf("equal lengths need balanced gaps: %+v", s)
	}
	if got := s.Matches - s.Mismatches - s.Insertions - s.Deletions; got != res.Score {
		t.Errorf("summary implies score %d, alignment has %d", got, res.Score)
	}

	id, err := aligner.NeedlemanWunsch("ACGT", "AGT", 1, -1)
	if err != nil {
		t.Fatalf("align: %v", err)
	}
	s = Summarize(id)
	want := Summary{
		Columns: 4, Matches: 3, Insertions: 1, GapOpens: 1,
		Identity: 0.75, Coverage: 0.75, CIGAR: "1M1I2M",
		Segments:  []common.Segment{{QueryStart: 0, QueryEnd: 0, RefStart: 0, RefEnd: 0}, {QueryStart: 2, QueryEnd: 3, RefStart: 1, RefEnd: 2}},
		Uncovered: [][2]int{{1, 1}},
	}
	if !reflect.DeepEqual(s, want) {
		t.Errorf("got %+v, want %+v", s, want)
	}

	empty := Summarize(aligner.Result[byte]{})
	if empty.Identity != 0 || math.IsNaN(empty.Coverage) || len(empty.Segments) != 0 {
		t.Errorf("got %+v", empty)
	}
}

package merging

import (
	"reflect"
	"testing"

	"NW-Sequence-Alignments/nw_aligner/common"
)

func TestMergeAdjacentSegments(t *testing.T) {
	segs := []common.Segment{
		{QueryStart: 0, QueryEnd: 9, RefStart: 0, RefEnd: 9},
		{QueryStart: 11, QueryEnd: 20, RefStart: 10, RefEnd: 19}, // 1bp insertion
		{QueryStart: 40, QueryEnd: 50, RefStart: 39, RefEnd: 49}, // 19bp gap on both
		{QueryStart: 51, QueryEnd: 60, RefStart: 62, RefEnd: 71}, // 12bp deletion
	}
	for _, tc := range []struct {
		name   string
		maxGap int
		want   []common.Segment
	}{
		{"disabled", 0, segs},
		{"short indels only", 5, []common.Segment{
			{QueryStart: 0, QueryEnd: 20, RefStart: 0, RefEnd: 19},
			segs[2],
			segs[3],
		}},
		{"equal gaps merge, unbalanced do not", 20, []common.Segment{
			{QueryStart: 0, QueryEnd: 50, RefStart: 0, RefEnd: 49},
			segs[3],
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := MergeAdjacentSegments(segs, tc.maxGap)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
	if segs[0].QueryEnd != 9 {
		t.Errorf("input was modified")
	}
}

func TestMergeEmpty(t *testing.T) {
	if got := MergeAdjacentSegments(nil, 10); len(got) != 0 {
		t.Errorf("got %v", got)
	}
}

package merging

import (
	"math"

	"NW-Sequence-Alignments/nw_aligner/common"
	"NW-Sequence-Alignments/nw_aligner/config"
)

// MergeAdjacentSegments merges consecutive segments whose query and ref gaps
// are both at most maxGap and roughly the same size, turning an alignment
// broken up by short indels into fewer, longer matched regions.
// Input segments MUST be sorted by QueryStart. A maxGap of 0 or less
// returns a copy of the input.
func MergeAdjacentSegments(segments []common.Segment, maxGap int) []common.Segment {
	if len(segments) <= 1 || maxGap <= 0 {
		result := make([]common.Segment, len(segments))
		copy(result, segments)
		return result
	}

	merged := []common.Segment{segments[0]}
	for _, next := range segments[1:] {
		last := &merged[len(merged)-1]

		qGap := next.QueryStart - last.QueryEnd - 1
		rGap := next.RefStart - last.RefEnd - 1

		if canMerge(qGap, rGap, maxGap) {
			last.QueryEnd = next.QueryEnd
			last.RefEnd = next.RefEnd
			continue
		}
		merged = append(merged, next)
	}
	return merged
}

// canMerge allows the gap sizes to differ by at most 5, or by a fraction of
// the smaller gap when that is larger.
func canMerge(qGap, rGap, maxGap int) bool {
	if qGap > maxGap || rGap > maxGap {
		return false
	}
	maxDiffAllowed := math.Max(5.0, math.Min(float64(qGap), float64(rGap))*config.MaxGapRatioDifference)
	return math.Abs(float64(qGap-rGap)) <= maxDiffAllowed
}

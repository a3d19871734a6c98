package regions

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"NW-Sequence-Alignments/nw_aligner/common"
)

// Segments returns the maximal runs of diagonal columns of an alignment as
// segments in query (a) and ref (b) coordinates, sorted by QueryStart.
func Segments(moves []common.Move) []common.Segment {
	var segments []common.Segment
	q, r := 0, 0 // next query / ref position
	open := false
	for _, m := range moves {
		switch m {
		case common.Diag:
			if !open {
				segments = append(segments, common.Segment{QueryStart: q, RefStart: r})
				open = true
			}
			last := &segments[len(segments)-1]
			last.QueryEnd, last.RefEnd = q, r
			q++
			r++
		case common.Up:
			open = false
			r++
		case common.Left:
			open = false
			q++
		}
	}
	if segments == nil {
		return []common.Segment{}
	}
	return segments
}

// FindUncoveredRegions returns the query positions not covered by any
// segment as [start, end] inclusive pairs.
func FindUncoveredRegions(queryLen int, segments []common.Segment) [][2]int {
	if len(segments) == 0 {
		if queryLen > 0 {
			return [][2]int{{0, queryLen - 1}}
		}
		return [][2]int{}
	}

	sortedSegments := make([]common.Segment, len(segments))
	copy(sortedSegments, segments)
	sort.Slice(sortedSegments, func(i, j int) bool {
		return sortedSegments[i].QueryStart < sortedSegments[j].QueryStart
	})

	uncovered := [][2]int{}
	currentPos := 0 // Marks the end of the last covered region + 1

	for _, seg := range sortedSegments {
		qStart, qEnd := seg.QueryStart, seg.QueryEnd // inclusive
		if qStart > currentPos {
			uncovered = append(uncovered, [2]int{currentPos, qStart - 1})
		}
		currentPos = int(math.Max(float64(currentPos), float64(qEnd+1)))
	}

	if currentPos < queryLen {
		uncovered = append(uncovered, [2]int{currentPos, queryLen - 1})
	}
	return uncovered
}

// CIGAR encodes the moves as run-length operations: M for diagonal columns,
// I for query symbols against a gap (left) and D for ref symbols against a
// gap (up).
func CIGAR(moves []common.Move) string {
	var sb strings.Builder
	var op byte
	n := 0
	flush := func() {
		if n > 0 {
			sb.WriteString(strconv.Itoa(n))
			sb.WriteByte(op)
		}
	}
	for _, m := range moves {
		var c byte
		switch m {
		case common.Diag:
			c = 'M'
		case common.Left:
			c = 'I'
		case common.Up:
			c = 'D'
		}
		if c != op {
			flush()
			op, n = c, 0
		}
		n++
	}
	flush()
	return sb.String()
}

// FormatSegments renders segments as a list of
// (query_start, query_end, ref_start, ref_end) tuples with exclusive ends.
func FormatSegments(segments []common.Segment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		parts = append(parts, "("+strconv.Itoa(seg.QueryStart)+", "+strconv.Itoa(seg.QueryEnd+1)+", "+
			strconv.Itoa(seg.RefStart)+", "+strconv.Itoa(seg.RefEnd+1)+")")
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

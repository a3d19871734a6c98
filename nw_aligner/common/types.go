package common

// Move is one traceback step, i.e. one column of an alignment.
type Move byte

const (
	Diag Move = 'D' // a[i-1] aligned with b[j-1], match or mismatch
	Up   Move = 'U' // gap in a, consumes b[j-1]
	Left Move = 'L' // gap in b, consumes a[i-1]
)

func (m Move) String() string {
	switch m {
	case Diag:
		return "diag"
	case Up:
		return "up"
	case Left:
		return "left"
	}
	return "unknown"
}

// Segment represents an ungapped region shared by query (a) and reference (b).
// QueryStart, QueryEnd, RefStart, RefEnd are 0-based inclusive.
type Segment struct {
	QueryStart int `json:"query_start" yaml:"query_start"`
	QueryEnd   int `json:"query_end" yaml:"query_end"`
	RefStart   int `json:"ref_start" yaml:"ref_start"`
	RefEnd     int `json:"ref_end" yaml:"ref_end"`
}

// Len is the number of query positions covered by the segment.
func (s Segment) Len() int { return s.QueryEnd - s.QueryStart + 1 }

// Pair is a named pair of sequences to be aligned against each other.
type Pair struct {
	ID    string
	Query []byte
	Ref   []byte
}

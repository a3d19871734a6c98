// Package aligner implements Needleman-Wunsch global alignment: a dense DP
// matrix fill followed by a traceback that recovers one optimal alignment.
//
// The engine is alphabet agnostic, any comparable symbol type can be aligned.
// An Aligner is immutable once created and may be shared between goroutines;
// every call allocates and owns its own matrix.
//
// Align keeps the full (m+1)x(n+1) matrix, so memory is O(m*n). Callers that
// only need the score should use Score, which keeps two rows and runs in
// O(min(m,n)) memory.
package aligner

import (
	"slices"

	"NW-Sequence-Alignments/nw_aligner/common"
	"NW-Sequence-Alignments/nw_aligner/config"
)

// Scheme is the scoring scheme. In the linear model Mismatch doubles as the
// per-position gap penalty. With Affine set a gap run of length k costs
// GapOpen + (k-1)*GapExtend instead.
type Scheme struct {
	Match     int
	Mismatch  int
	Affine    bool
	GapOpen   int
	GapExtend int
}

// DefaultScheme returns the linear scheme shared by all compared implementations.
func DefaultScheme() Scheme {
	return Scheme{Match: config.DefaultMatchScore, Mismatch: config.DefaultMismatchScore}
}

func (s Scheme) substitution(equal bool) int {
	if equal {
		return s.Match
	}
	return s.Mismatch
}

// gapRun is the cost of n consecutive gap positions.
func (s Scheme) gapRun(n int) int {
	if n == 0 {
		return 0
	}
	if !s.Affine {
		return n * s.Mismatch
	}
	return s.GapOpen + (n-1)*s.GapExtend
}

// Result is one optimal global alignment. A and B have equal length; gap
// columns hold the aligner's gap marker. Moves has one entry per column.
type Result[S comparable] struct {
	Score int
	A     []S
	B     []S
	Moves []common.Move
}

// Len is the number of alignment columns.
func (r Result[S]) Len() int { return len(r.Moves) }

// Gaps counts the gap columns on either side.
func (r Result[S]) Gaps() int {
	n := 0
	for _, m := range r.Moves {
		if m != common.Diag {
			n++
		}
	}
	return n
}

// Aligner aligns pairs of sequences under a fixed scheme.
type Aligner[S comparable] struct {
	scheme   Scheme
	gap      S
	alphabet map[S]struct{} // nil disables validation
}

// Option configures an Aligner.
type Option[S comparable] func(*Aligner[S])

// WithAlphabet enables validation: every input symbol must be one of symbols.
func WithAlphabet[S comparable](symbols ...S) Option[S] {
	return func(al *Aligner[S]) {
		al.alphabet = make(map[S]struct{}, len(symbols))
		for _, s := range symbols {
			al.alphabet[s] = struct{}{}
		}
	}
}

// New returns an Aligner that uses gap as the gap marker in its output.
// The marker must never occur in the sequences passed to it.
func New[S comparable](scheme Scheme, gap S, opts ...Option[S]) *Aligner[S] {
	al := &Aligner[S]{scheme: scheme, gap: gap}
	for _, fn := range opts {
		fn(al)
	}
	return al
}

// NewDNA returns a byte Aligner that accepts only A, C, G and T and writes
// config.GapMarker into gap columns.
func NewDNA(scheme Scheme) *Aligner[byte] {
	return New(scheme, config.GapMarker, WithAlphabet([]byte(config.DNAAlphabet)...))
}

// Scheme returns the scoring scheme.
func (al *Aligner[S]) Scheme() Scheme { return al.scheme }

// Gap returns the gap marker.
func (al *Aligner[S]) Gap() S { return al.gap }

// Align returns one optimal global alignment of a and b. Ties in the
// traceback are broken diagonal first, then up (gap in a), then left (gap
// in b), so repeated calls always produce the same alignment.
func (al *Aligner[S]) Align(a, b []S) (Result[S], error) {
	if err := al.validate(a, b); err != nil {
		return Result[S]{}, err
	}
	if al.scheme.Affine {
		return al.alignAffine(a, b), nil
	}
	m := al.fill(a, b)
	return al.traceback(m, a, b), nil
}

// NeedlemanWunsch aligns two strings byte by byte with the linear scheme
// given by match and mismatch and '-' as the gap marker. No alphabet is
// enforced but neither string may contain '-'.
func NeedlemanWunsch(a, b string, match, mismatch int) (Result[byte], error) {
	al := New(Scheme{Match: match, Mismatch: mismatch}, config.GapMarker)
	return al.Align([]byte(a), []byte(b))
}

// Strings returns the two gapped rows of a byte alignment.
func Strings(r Result[byte]) (string, string) {
	return string(r.A), string(r.B)
}

// column accumulates a traceback walking from (m,n) back to the origin.
type column[S comparable] struct {
	res Result[S]
}

func newColumns[S comparable](score, capacity int) *column[S] {
	return &column[S]{res: Result[S]{
		Score: score,
		A:     make([]S, 0, capacity),
		B:     make([]S, 0, capacity),
		Moves: make([]common.Move, 0, capacity),
	}}
}

func (c *column[S]) emit(x, y S, m common.Move) {
	c.res.A = append(c.res.A, x)
	c.res.B = append(c.res.B, y)
	c.res.Moves = append(c.res.Moves, m)
}

func (c *column[S]) done() Result[S] {
	slices.Reverse(c.res.A)
	slices.Reverse(c.res.B)
	slices.Reverse(c.res.Moves)
	return c.res
}

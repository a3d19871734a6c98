package aligner

import (
	"math"

	"NW-Sequence-Alignments/nw_aligner/common"
)

// negInf marks unreachable Gotoh states. It is far enough from math.MinInt
// that adding a few penalties cannot wrap around.
const negInf = math.MinInt / 4

type gotohState int

const (
	stateM gotohState = iota // ends in a diagonal column
	stateY                   // ends in a gap in a (up)
	stateX                   // ends in a gap in b (left)
)

// gotoh holds the three state matrices of the affine recurrence.
type gotoh struct {
	m, x, y *Matrix
}

// pick returns the state whose value is best, M before Y before X.
func pick(m, y, x int) (gotohState, int) {
	st, v := stateM, m
	if y > v {
		st, v = stateY, y
	}
	if x > v {
		st, v = stateX, x
	}
	return st, v
}

func (g gotoh) at(st gotohState, i, j int) int {
	switch st {
	case stateY:
		return g.y.At(i, j)
	case stateX:
		return g.x.At(i, j)
	}
	return g.m.At(i, j)
}

// best collapses the three states into a single matrix.
func (g gotoh) best() *Matrix {
	out := newMatrix(g.m.rows, g.m.cols)
	for k := range out.data {
		out.data[k] = max(g.m.data[k], g.y.data[k], g.x.data[k])
	}
	return out
}

func (al *Aligner[S]) fillAffine(a, b []S) gotoh {
	rows, cols := len(a)+1, len(b)+1
	g := gotoh{m: newMatrix(rows, cols), x: newMatrix(rows, cols), y: newMatrix(rows, cols)}
	open, ext := al.scheme.GapOpen, al.scheme.GapExtend

	g.x.set(0, 0, negInf)
	g.y.set(0, 0, negInf)
	for i := 1; i < rows; i++ {
		g.m.set(i, 0, negInf)
		g.x.set(i, 0, al.scheme.gapRun(i))
		g.y.set(i, 0, negInf)
	}
	for j := 1; j < cols; j++ {
		g.m.set(0, j, negInf)
		g.x.set(0, j, negInf)
		g.y.set(0, j, al.scheme.gapRun(j))
	}
	for i := 1; i < rows; i++ {
		ai := a[i-1]
		for j := 1; j < cols; j++ {
			sub := al.scheme.substitution(ai == b[j-1])
			g.m.set(i, j, max(g.m.At(i-1, j-1), g.y.At(i-1, j-1), g.x.At(i-1, j-1))+sub)
			g.x.set(i, j, max(g.m.At(i-1, j)+open, g.y.At(i-1, j)+open, g.x.At(i-1, j)+ext))
			g.y.set(i, j, max(g.m.At(i, j-1)+open, g.y.At(i, j-1)+ext, g.x.At(i, j-1)+open))
		}
	}
	return g
}

func (al *Aligner[S]) alignAffine(a, b []S) Result[S] {
	g := al.fillAffine(a, b)
	i, j := len(a), len(b)
	open, ext := al.scheme.GapOpen, al.scheme.GapExtend

	st, score := pick(g.m.At(i, j), g.y.At(i, j), g.x.At(i, j))
	out := newColumns[S](score, i+j)
	for i > 0 || j > 0 {
		cur := g.at(st, i, j)
		switch st {
		case stateM:
			prev := cur - al.scheme.substitution(a[i-1] == b[j-1])
			out.emit(a[i-1], b[j-1], common.Diag)
			i--
			j--
			st = predecessor(prev, g.m.At(i, j), g.y.At(i, j))
		case stateY:
			out.emit(al.gap, b[j-1], common.Up)
			j--
			st = predecessor(cur, g.m.At(i, j)+open, g.y.At(i, j)+ext)
		case stateX:
			out.emit(a[i-1], al.gap, common.Left)
			i--
			st = predecessor(cur, g.m.At(i, j)+open, g.y.At(i, j)+open)
		}
	}
	return out.done()
}

// predecessor returns the first state, in M, Y, X order, that explains want.
// X is the fallback since one of the three candidates always matches.
func predecessor(want, m, y int) gotohState {
	switch want {
	case m:
		return stateM
	case y:
		return stateY
	}
	return stateX
}

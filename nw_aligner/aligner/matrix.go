package aligner

import (
	"fmt"
	"strconv"
	"strings"

	"NW-Sequence-Alignments/nw_aligner/common"
)

// Matrix is a dense, row-major grid of DP scores. Cell (i, j) is the best
// score aligning the first i symbols of a with the first j symbols of b.
type Matrix struct {
	rows, cols int
	data       []int
}

func newMatrix(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([]int, rows*cols)}
}

// Rows is len(a)+1.
func (m *Matrix) Rows() int { return m.rows }

// Cols is len(b)+1.
func (m *Matrix) Cols() int { return m.cols }

// At returns cell (i, j).
func (m *Matrix) At(i, j int) int { return m.data[i*m.cols+j] }

func (m *Matrix) set(i, j, v int) { m.data[i*m.cols+j] = v }

func (m *Matrix) row(i int) []int { return m.data[i*m.cols : (i+1)*m.cols] }

// String renders the matrix under a "Matrix RxC" header with every number
// right-aligned to the widest cell.
func (m *Matrix) String() string {
	width := 0
	for _, v := range m.data {
		width = max(width, len(strconv.Itoa(v)))
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Matrix %d×%d\n", m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j, v := range m.row(i) {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%*d", width, v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Matrix returns the filled DP matrix for a and b. For affine schemes each
// cell holds the best of the three Gotoh states.
func (al *Aligner[S]) Matrix(a, b []S) (*Matrix, error) {
	if err := al.validate(a, b); err != nil {
		return nil, err
	}
	if al.scheme.Affine {
		return al.fillAffine(a, b).best(), nil
	}
	return al.fill(a, b), nil
}

// fill builds the linear-gap matrix. Row 0 and column 0 hold cumulative gap
// penalties; every other cell depends only on its upper, left and upper-left
// neighbours, so a row-major sweep is sufficient.
func (al *Aligner[S]) fill(a, b []S) *Matrix {
	rows, cols := len(a)+1, len(b)+1
	m := newMatrix(rows, cols)
	gap := al.scheme.Mismatch

	first := m.row(0)
	for j := range first {
		first[j] = al.scheme.gapRun(j)
	}
	for i := 1; i < rows; i++ {
		prev, cur := m.row(i-1), m.row(i)
		cur[0] = al.scheme.gapRun(i)
		ai := a[i-1]
		for j := 1; j < cols; j++ {
			left := prev[j] + gap
			up := cur[j-1] + gap
			diag := prev[j-1] + al.scheme.substitution(ai == b[j-1])
			cur[j] = max(left, up, diag)
		}
	}
	return m
}

// traceback walks from (m, n) to (0, 0) preferring diag, then up, then left.
func (al *Aligner[S]) traceback(m *Matrix, a, b []S) Result[S] {
	i, j := len(a), len(b)
	gap := al.scheme.Mismatch
	out := newColumns[S](m.At(i, j), i+j)
	for i > 0 || j > 0 {
		cur := m.At(i, j)
		switch {
		case i > 0 && j > 0 && cur == m.At(i-1, j-1)+al.scheme.substitution(a[i-1] == b[j-1]):
			out.emit(a[i-1], b[j-1], common.Diag)
			i--
			j--
		case j > 0 && (i == 0 || cur == m.At(i, j-1)+gap):
			out.emit(al.gap, b[j-1], common.Up)
			j--
		default:
			out.emit(a[i-1], al.gap, common.Left)
			i--
		}
	}
	return out.done()
}

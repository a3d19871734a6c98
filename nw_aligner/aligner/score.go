package aligner

// Score returns the optimal global alignment score of a and b without
// recovering the alignment. Only two rows are kept and the shorter sequence
// is laid along them, so memory is O(min(m,n)). The scheme is symmetric in
// its arguments, which makes the swap safe.
func (al *Aligner[S]) Score(a, b []S) (int, error) {
	if err := al.validate(a, b); err != nil {
		return 0, err
	}
	if len(b) > len(a) {
		a, b = b, a
	}
	if al.scheme.Affine {
		return al.scoreAffine(a, b), nil
	}
	gap := al.scheme.Mismatch
	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = al.scheme.gapRun(j)
	}
	for i := 1; i <= len(a); i++ {
		diag := row[0]
		row[0] = al.scheme.gapRun(i)
		ai := a[i-1]
		for j := 1; j < len(row); j++ {
			// row[j] still holds (i-1, j); row[j-1] already holds (i, j-1).
			above := row[j]
			row[j] = max(above+gap, row[j-1]+gap, diag+al.scheme.substitution(ai == b[j-1]))
			diag = above
		}
	}
	return row[len(b)], nil
}

func (al *Aligner[S]) scoreAffine(a, b []S) int {
	open, ext := al.scheme.GapOpen, al.scheme.GapExtend
	n := len(b) + 1
	mRow, xRow, yRow := make([]int, n), make([]int, n), make([]int, n)
	xRow[0], yRow[0] = negInf, negInf
	for j := 1; j < n; j++ {
		mRow[j], xRow[j], yRow[j] = negInf, negInf, al.scheme.gapRun(j)
	}
	for i := 1; i <= len(a); i++ {
		dm, dx, dy := mRow[0], xRow[0], yRow[0]
		mRow[0], xRow[0], yRow[0] = negInf, al.scheme.gapRun(i), negInf
		ai := a[i-1]
		for j := 1; j < n; j++ {
			um, ux, uy := mRow[j], xRow[j], yRow[j]
			mRow[j] = max(dm, dx, dy) + al.scheme.substitution(ai == b[j-1])
			xRow[j] = max(um+open, uy+open, ux+ext)
			yRow[j] = max(mRow[j-1]+open, yRow[j-1]+ext, xRow[j-1]+open)
			dm, dx, dy = um, ux, uy
		}
	}
	return max(mRow[n-1], xRow[n-1], yRow[n-1])
}

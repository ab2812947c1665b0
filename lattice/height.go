package lattice

// The height function lives on the (N+1)×(N+1) lattice corners. With
// h(0,0)=0, stepping east across an up-pointing arrow raises the height by
// one (down lowers it), and stepping south across a right-pointing arrow
// raises it by one (left lowers it). On ice-rule configurations the walk is
// path-independent, so the grid below is well-defined.

// HeightGrid computes the full corner height surface. Row i, column j of the
// result is the height of corner (i,j); the surface is used by rendering
// collaborators and by validation, never by the hot loop.
func (l *Lattice) HeightGrid() [][]int {
	n := l.n
	h := make([][]int, n+1)
	for i := range h {
		h[i] = make([]int, n+1)
	}
	// First column: walk south across the left boundary edges.
	for i := 0; i < n; i++ {
		h[i+1][0] = h[i][0] + hstep(ArrowsOf(l.At(i, 0)).L)
	}
	// Each corner row: walk east. Corner row i crosses the top edges of
	// vertex row i, except the last corner row which crosses the bottom
	// edges of vertex row n-1.
	for i := 0; i <= n; i++ {
		for j := 0; j < n; j++ {
			var d VDir
			if i < n {
				d = ArrowsOf(l.At(i, j)).T
			} else {
				d = ArrowsOf(l.At(n-1, j)).B
			}
			h[i][j+1] = h[i][j] + vstep(d)
		}
	}
	return h
}

// HeightSum returns the sum of the corner height surface. It equals exactly
// twice the tracked Volume on every reachable state.
func (l *Lattice) HeightSum() int {
	sum := 0
	for _, row := range l.HeightGrid() {
		for _, v := range row {
			sum += v
		}
	}
	return sum
}

func hstep(d HDir) int {
	if d == Right {
		return 1
	}
	return -1
}

func vstep(d VDir) int {
	if d == Up {
		return 1
	}
	return -1
}

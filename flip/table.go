package flip

import "github.com/DavidAllison/sixvertex/lattice"

// Each plaquette flip touches four cells playing fixed roles. Role order is
// stable across the package: base, horizontal side partner, diagonal
// partner, vertical side partner.
const (
	roleBase = iota
	roleSide // (r,c+1) for UP, (r,c−1) for DOWN
	roleDiag // (r−1,c+1) for UP, (r+1,c−1) for DOWN
	roleVert // (r−1,c) for UP, (r+1,c) for DOWN
	numRoles
)

// roleOffsets gives the (dr,dc) of each role relative to the anchor, per
// direction. UP acts above-right of the anchor, DOWN below-left.
var roleOffsets = [2][numRoles][2]int{
	Up:   {{0, 0}, {0, 1}, {-1, 1}, {-1, 0}},
	Down: {{0, 0}, {0, -1}, {1, -1}, {1, 0}},
}

// noSub marks a vertex type that is not an admissible source for a role.
const noSub = lattice.VertexType(0xFF)

// subTable is the full transformation table, exhaustively enumerated:
// subTable[dir][role][sourceType] is the image type, or noSub when the
// source pattern is inadmissible. Every admissible image reverses the four
// arrows of the oriented plaquette loop and leaves the block's outer edges
// unchanged; the table is its own inverse under the conjugate anchor
// (UP at (r,c) undoes DOWN at (r−1,c+1) and vice versa).
var subTable = [2][numRoles][lattice.NumTypes]lattice.VertexType{
	Up: {
		roleBase: sub(lattice.A1, lattice.C1, lattice.C2, lattice.A2),
		roleSide: sub(lattice.B2, lattice.C2, lattice.C1, lattice.B1),
		roleDiag: sub(lattice.A2, lattice.C1, lattice.C2, lattice.A1),
		roleVert: sub(lattice.B1, lattice.C2, lattice.C1, lattice.B2),
	},
	Down: {
		roleBase: sub(lattice.C1, lattice.A2, lattice.A1, lattice.C2),
		roleSide: sub(lattice.C2, lattice.B1, lattice.B2, lattice.C1),
		roleDiag: sub(lattice.C1, lattice.A1, lattice.A2, lattice.C2),
		roleVert: sub(lattice.C2, lattice.B2, lattice.B1, lattice.C1),
	},
}

// sub builds one role row mapping s1→i1 and s2→i2, everything else noSub.
func sub(s1, i1, s2, i2 lattice.VertexType) [lattice.NumTypes]lattice.VertexType {
	row := [lattice.NumTypes]lattice.VertexType{noSub, noSub, noSub, noSub, noSub, noSub}
	row[s1] = i1
	row[s2] = i2
	return row
}

// volumeDelta is the fixed height change of an accepted flip: UP lowers the
// tracked volume by one, DOWN raises it by one.
var volumeDelta = [2]int{Up: -1, Down: +1}

// inBlockBounds reports whether a flip in direction dir anchored at (r,c)
// keeps its whole 2×2 block inside an n×n grid. UP is never admissible at
// r=0 or c=n−1, DOWN never at r=n−1 or c=0.
func inBlockBounds(n, r, c int, dir Direction) bool {
	if r < 0 || r >= n || c < 0 || c >= n {
		return false
	}
	if dir == Up {
		return r > 0 && c < n-1
	}
	return r < n-1 && c > 0
}

// sourceRoles enumerates, for rho calibration, the two admissible source
// types of each role.
func sourceRoles(dir Direction) [numRoles][2]lattice.VertexType {
	var out [numRoles][2]lattice.VertexType
	for role := 0; role < numRoles; role++ {
		k := 0
		for t := lattice.VertexType(0); t < lattice.NumTypes; t++ {
			if subTable[dir][role][t] != noSub {
				out[role][k] = t
				k++
			}
		}
	}
	return out
}

package flip

import "github.com/DavidAllison/sixvertex/lattice"

// calibrateRho returns the maximum image weight product over the admissible
// transition table, including biflip sums for anchors where both directions
// are simultaneously admissible (base a1). Dividing every image product by
// this value keeps each acceptance probability — and each biflip pair sum —
// inside [0,1] for every non-negative weight vector.
//
// The enumeration is exhaustive but tiny: 2³ side combinations per single
// direction; the biflip maximum over the 2³·2³ pairs is the sum of the two
// independent 2³ maxima, so 32 products are evaluated in all.
func calibrateRho(w Weights) float64 {
	upRoles := sourceRoles(Up)
	downRoles := sourceRoles(Down)

	// Single-direction anchors: UP with base c2, DOWN with base c1.
	rho := maxImageProduct(w, Up, upRoles, lattice.C2)
	if v := maxImageProduct(w, Down, downRoles, lattice.C1); v > rho {
		rho = v
	}

	// Biflip anchors (base a1): the two blocks share only the base cell,
	// so the worst pair sum is the worst UP product plus the worst DOWN
	// product over their independent side combinations.
	biflip := maxImageProduct(w, Up, upRoles, lattice.A1) +
		maxImageProduct(w, Down, downRoles, lattice.A1)
	if biflip > rho {
		rho = biflip
	}
	return rho
}

// maxImageProduct maximizes the image weight product of dir flips whose
// base is fixed to baseSrc, over the admissible sources of the other three
// roles.
func maxImageProduct(w Weights, dir Direction, roles [numRoles][2]lattice.VertexType, baseSrc lattice.VertexType) float64 {
	base := w[subTable[dir][roleBase][baseSrc]]
	best := 0.0
	for _, side := range roles[roleSide] {
		for _, diag := range roles[roleDiag] {
			for _, vert := range roles[roleVert] {
				p := base *
					w[subTable[dir][roleSide][side]] *
					w[subTable[dir][roleDiag][diag]] *
					w[subTable[dir][roleVert][vert]]
				if p > best {
					best = p
				}
			}
		}
	}
	return best
}

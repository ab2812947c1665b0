package lattice

import "fmt"

// CheckIce verifies the whole configuration: every shared edge between
// adjacent vertices carries one consistent arrow, and the boundary arrows
// honor the DWBC contract (horizontal boundary arrows point into the
// lattice, vertical boundary arrows point out). O(N²).
func (l *Lattice) CheckIce() error {
	n := l.n
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			a := ArrowsOf(l.At(r, c))
			if c+1 < n {
				if right := ArrowsOf(l.At(r, c+1)); a.R != right.L {
					return fmt.Errorf("lattice: horizontal edge between (%d,%d) and (%d,%d) disagrees: %w",
						r, c, r, c+1, ErrIceRuleViolated)
				}
			}
			if r+1 < n {
				if below := ArrowsOf(l.At(r+1, c)); a.B != below.T {
					return fmt.Errorf("lattice: vertical edge between (%d,%d) and (%d,%d) disagrees: %w",
						r, c, r+1, c, ErrIceRuleViolated)
				}
			}
		}
	}
	return l.checkBoundary()
}

// CheckIceBlock verifies edge agreement on the 2×2 block whose upper-left
// vertex is (r,c), including the block's twelve incident edges against its
// surrounding vertices. O(1); the chain runs it after every accepted flip.
func (l *Lattice) CheckIceBlock(r, c int) error {
	for dr := 0; dr < 2; dr++ {
		for dc := 0; dc < 2; dc++ {
			rr, cc := r+dr, c+dc
			if !l.InBounds(rr, cc) {
				return fmt.Errorf("lattice: block anchor (%d,%d) out of bounds: %w", r, c, ErrIceRuleViolated)
			}
			a := ArrowsOf(l.At(rr, cc))
			// Right edge against the neighbor, when it exists.
			if cc+1 < l.n {
				if a.R != ArrowsOf(l.At(rr, cc+1)).L {
					return fmt.Errorf("lattice: block edge (%d,%d)-(%d,%d) disagrees: %w",
						rr, cc, rr, cc+1, ErrIceRuleViolated)
				}
			}
			if cc-1 >= 0 {
				if a.L != ArrowsOf(l.At(rr, cc-1)).R {
					return fmt.Errorf("lattice: block edge (%d,%d)-(%d,%d) disagrees: %w",
						rr, cc, rr, cc-1, ErrIceRuleViolated)
				}
			}
			if rr+1 < l.n {
				if a.B != ArrowsOf(l.At(rr+1, cc)).T {
					return fmt.Errorf("lattice: block edge (%d,%d)-(%d,%d) disagrees: %w",
						rr, cc, rr+1, cc, ErrIceRuleViolated)
				}
			}
			if rr-1 >= 0 {
				if a.T != ArrowsOf(l.At(rr-1, cc)).B {
					return fmt.Errorf("lattice: block edge (%d,%d)-(%d,%d) disagrees: %w",
						rr, cc, rr-1, cc, ErrIceRuleViolated)
				}
			}
		}
	}
	return nil
}

// checkBoundary enforces the DWBC contract shared by every reachable state:
// left and right boundary arrows point into the lattice, top and bottom
// boundary arrows point out.
func (l *Lattice) checkBoundary() error {
	n := l.n
	for r := 0; r < n; r++ {
		if ArrowsOf(l.At(r, 0)).L != Right {
			return fmt.Errorf("lattice: left boundary arrow at row %d points out: %w", r, ErrIceRuleViolated)
		}
		if ArrowsOf(l.At(r, n-1)).R != Left {
			return fmt.Errorf("lattice: right boundary arrow at row %d points out: %w", r, ErrIceRuleViolated)
		}
	}
	for c := 0; c < n; c++ {
		if ArrowsOf(l.At(0, c)).T != Up {
			return fmt.Errorf("lattice: top boundary arrow at column %d points in: %w", c, ErrIceRuleViolated)
		}
		if ArrowsOf(l.At(n-1, c)).B != Down {
			return fmt.Errorf("lattice: bottom boundary arrow at column %d points in: %w", c, ErrIceRuleViolated)
		}
	}
	return nil
}

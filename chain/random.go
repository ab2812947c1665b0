package chain

import "github.com/DavidAllison/sixvertex/lattice"

// RandomFill returns a DWBC-compatible random configuration for side n:
// a unit-weight chain is burned in from the high state for sweeps·n² steps
// and its lattice handed back. Every returned configuration satisfies the
// ice rule and the DWBC boundary contract; the distribution approaches the
// uniform DWBC ensemble as sweeps grows.
func RandomFill(n int, seed uint64, sweeps int) (*lattice.Lattice, error) {
	if sweeps < 1 {
		sweeps = 1
	}
	cfg := DefaultConfig(n)
	cfg.Seed = seed
	ch, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err := ch.Run(sweeps * n * n); err != nil {
		return nil, err
	}
	return ch.LatticeCopy(), nil
}

package store

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"

	"github.com/DavidAllison/sixvertex/chain"
	"github.com/DavidAllison/sixvertex/flip"
	"github.com/DavidAllison/sixvertex/lattice"
	"github.com/DavidAllison/sixvertex/observe"
)

// Sentinel errors for codec and store lookups.
var (
	// ErrNotFound indicates no snapshot is stored under the name.
	ErrNotFound = errors.New("store: snapshot not found")

	// ErrCorrupt indicates a record that fails structural or fingerprint
	// validation.
	ErrCorrupt = errors.New("store: corrupt snapshot record")
)

// Record layout, all integers big-endian:
//
//	magic   uint32  "SVXS"
//	version uint16
//	initial uint8   0=dwbc_high 1=dwbc_low
//	side    uint32
//	cells   uint32 length + bytes (stable vertex codes)
//	seed    uint64
//	batch   uint32
//	beta    float64 bits
//	weights 6 × float64 bits
//	step, proposals, accepts uint64
//	volume  int64
const (
	recordMagic   = uint32(0x53565853) // "SVXS"
	recordVersion = uint16(1)
)

// Marshal encodes a snapshot into the stable record format.
func Marshal(snap chain.Snapshot) []byte {
	var buf bytes.Buffer
	be := func(v any) { _ = binary.Write(&buf, binary.BigEndian, v) }

	be(recordMagic)
	be(recordVersion)
	be(uint8(snap.Config.Initial))
	be(uint32(snap.N))
	be(uint32(len(snap.Cells)))
	buf.Write(snap.Cells)
	be(snap.Config.Seed)
	be(uint32(snap.Config.StepsPerBatch))
	be(snap.Config.Beta)
	for _, w := range snap.Config.Weights {
		be(w)
	}
	be(snap.Stats.Step)
	be(snap.Stats.Proposals)
	be(snap.Stats.Accepts)
	be(int64(snap.Stats.Volume))
	return buf.Bytes()
}

// Unmarshal decodes and validates a record: structure, magic, version, cell
// codes, ice rule. Derived stats are recomputed from the decoded buffer.
func Unmarshal(data []byte) (chain.Snapshot, error) {
	var snap chain.Snapshot
	r := bytes.NewReader(data)
	be := func(v any) error { return binary.Read(r, binary.BigEndian, v) }

	var (
		magic   uint32
		version uint16
		initial uint8
		side    uint32
		cellLen uint32
	)
	if err := be(&magic); err != nil || magic != recordMagic {
		return snap, fmt.Errorf("store: bad magic: %w", ErrCorrupt)
	}
	if err := be(&version); err != nil || version != recordVersion {
		return snap, fmt.Errorf("store: unsupported record version: %w", ErrCorrupt)
	}
	if err := be(&initial); err != nil {
		return snap, truncated(err)
	}
	if err := be(&side); err != nil {
		return snap, truncated(err)
	}
	if err := be(&cellLen); err != nil {
		return snap, truncated(err)
	}
	if uint64(cellLen) != uint64(side)*uint64(side) || uint64(r.Len()) < uint64(cellLen) {
		return snap, fmt.Errorf("store: cell buffer length mismatch: %w", ErrCorrupt)
	}
	cells := make([]byte, cellLen)
	if _, err := io.ReadFull(r, cells); err != nil {
		return snap, truncated(err)
	}

	cfg := chain.Config{
		N:       int(side),
		Initial: chain.InitialState(initial),
	}
	if err := be(&cfg.Seed); err != nil {
		return snap, truncated(err)
	}
	var batch uint32
	if err := be(&batch); err != nil {
		return snap, truncated(err)
	}
	cfg.StepsPerBatch = int(batch)
	if err := be(&cfg.Beta); err != nil {
		return snap, truncated(err)
	}
	var weights flip.Weights
	for i := range weights {
		if err := be(&weights[i]); err != nil {
			return snap, truncated(err)
		}
	}
	cfg.Weights = weights

	var stats chain.Stats
	if err := be(&stats.Step); err != nil {
		return snap, truncated(err)
	}
	if err := be(&stats.Proposals); err != nil {
		return snap, truncated(err)
	}
	if err := be(&stats.Accepts); err != nil {
		return snap, truncated(err)
	}
	var volume int64
	if err := be(&volume); err != nil {
		return snap, truncated(err)
	}

	// Revalidate the configuration and buffer, and recompute every
	// derived quantity instead of trusting the record.
	if err := cfg.Validate(); err != nil {
		return snap, fmt.Errorf("store: decoded configuration rejected (%v): %w", err, ErrCorrupt)
	}
	lat, err := lattice.FromBuffer(int(side), cells)
	if err != nil {
		return snap, fmt.Errorf("store: decoded buffer rejected (%v): %w", err, ErrCorrupt)
	}
	if lat.Volume() != int(volume) {
		return snap, fmt.Errorf("store: recorded volume %d does not match buffer: %w", volume, ErrCorrupt)
	}
	counts := observe.VertexCounts(lat)
	stats.VertexCounts = counts
	stats.AcceptanceRate = observe.AcceptanceRate(stats.Accepts, stats.Proposals)
	stats.Energy = observe.Energy(counts, weights)
	stats.Volume = int(volume)
	stats.HeightSum = 2 * int(volume)
	stats.Beta = cfg.Beta

	snap = chain.Snapshot{Config: cfg, N: int(side), Cells: cells, Stats: stats}
	return snap, nil
}

// Fingerprint returns the SHA3-256 digest of an encoded record.
func Fingerprint(record []byte) [32]byte {
	return sha3.Sum256(record)
}

func truncated(err error) error {
	return fmt.Errorf("store: truncated record (%v): %w", err, ErrCorrupt)
}

package store

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/DavidAllison/sixvertex/chain"
)

var (
	bucketChains = []byte("chain_snapshots")
	bucketDuals  = []byte("dual_snapshots")
	bucketSums   = []byte("snapshot_sums")
)

// Store keeps named snapshots in an embedded bbolt database.
type Store struct {
	db  *bolt.DB
	log *zap.Logger
}

// Option tunes a Store at construction.
type Option func(*Store)

// WithLogger attaches a logger for save/load reporting. The default is a
// no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// Open creates or opens the snapshot database at path and ensures the
// bucket layout exists.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("store: opening %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketChains, bucketDuals, bucketSums} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("store: creating buckets: %w", err)
	}
	s.db = db
	return s, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveChain stores one chain snapshot under name, overwriting any previous
// record, together with its fingerprint.
func (s *Store) SaveChain(name string, snap chain.Snapshot) error {
	record := Marshal(snap)
	sum := Fingerprint(record)
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(bucketChains).Put([]byte(name), record); err != nil {
			return err
		}
		return tx.Bucket(bucketSums).Put(chainSumKey(name), sum[:])
	})
	if err != nil {
		return fmt.Errorf("store: saving chain %q: %w", name, err)
	}
	s.log.Info("chain snapshot saved",
		zap.String("name", name),
		zap.Int("side", snap.N),
		zap.Uint64("step", snap.Stats.Step),
	)
	return nil
}

// LoadChain fetches and validates the chain snapshot under name.
func (s *Store) LoadChain(name string) (chain.Snapshot, error) {
	var record, sum []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		record = cloneBytes(tx.Bucket(bucketChains).Get([]byte(name)))
		sum = cloneBytes(tx.Bucket(bucketSums).Get(chainSumKey(name)))
		return nil
	})
	if err != nil {
		return chain.Snapshot{}, err
	}
	if record == nil {
		return chain.Snapshot{}, fmt.Errorf("store: chain %q: %w", name, ErrNotFound)
	}
	if err := verifySum(record, sum); err != nil {
		return chain.Snapshot{}, fmt.Errorf("store: chain %q: %w", name, err)
	}
	return Unmarshal(record)
}

// SaveDual stores the two snapshots of a dual driver (A then B) under one
// name.
func (s *Store) SaveDual(name string, a, b chain.Snapshot) error {
	var buf bytes.Buffer
	for _, snap := range []chain.Snapshot{a, b} {
		record := Marshal(snap)
		var lenPrefix [4]byte
		binary.BigEndian.PutUint32(lenPrefix[:], uint32(len(record)))
		buf.Write(lenPrefix[:])
		buf.Write(record)
	}
	record := buf.Bytes()
	sum := Fingerprint(record)
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(bucketDuals).Put([]byte(name), record); err != nil {
			return err
		}
		return tx.Bucket(bucketSums).Put(dualSumKey(name), sum[:])
	})
	if err != nil {
		return fmt.Errorf("store: saving dual %q: %w", name, err)
	}
	s.log.Info("dual snapshot saved", zap.String("name", name), zap.Int("side", a.N))
	return nil
}

// LoadDual fetches and validates the snapshot pair under name.
func (s *Store) LoadDual(name string) (a, b chain.Snapshot, err error) {
	var record, sum []byte
	err = s.db.View(func(tx *bolt.Tx) error {
		record = cloneBytes(tx.Bucket(bucketDuals).Get([]byte(name)))
		sum = cloneBytes(tx.Bucket(bucketSums).Get(dualSumKey(name)))
		return nil
	})
	if err != nil {
		return a, b, err
	}
	if record == nil {
		return a, b, fmt.Errorf("store: dual %q: %w", name, ErrNotFound)
	}
	if err := verifySum(record, sum); err != nil {
		return a, b, fmt.Errorf("store: dual %q: %w", name, err)
	}
	first, rest, err := splitRecord(record)
	if err != nil {
		return a, b, err
	}
	second, _, err := splitRecord(rest)
	if err != nil {
		return a, b, err
	}
	if a, err = Unmarshal(first); err != nil {
		return a, b, err
	}
	b, err = Unmarshal(second)
	return a, b, err
}

// ListChains returns the stored chain snapshot names in key order.
func (s *Store) ListChains() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketChains).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}

// DeleteChain removes the chain snapshot under name. Deleting a missing
// name is a no-op.
func (s *Store) DeleteChain(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(bucketChains).Delete([]byte(name)); err != nil {
			return err
		}
		return tx.Bucket(bucketSums).Delete(chainSumKey(name))
	})
}

func chainSumKey(name string) []byte { return []byte("chain/" + name) }
func dualSumKey(name string) []byte  { return []byte("dual/" + name) }

func verifySum(record, sum []byte) error {
	want := Fingerprint(record)
	if sum == nil || !bytes.Equal(sum, want[:]) {
		return fmt.Errorf("fingerprint mismatch: %w", ErrCorrupt)
	}
	return nil
}

func splitRecord(data []byte) (record, rest []byte, err error) {
	if len(data) < 4 {
		return nil, nil, fmt.Errorf("store: truncated dual record: %w", ErrCorrupt)
	}
	n := binary.BigEndian.Uint32(data[:4])
	if uint64(len(data)-4) < uint64(n) {
		return nil, nil, fmt.Errorf("store: truncated dual record: %w", ErrCorrupt)
	}
	return data[4 : 4+n], data[4+n:], nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

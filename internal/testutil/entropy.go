package testutil

import (
	"crypto/sha256"
	"encoding/binary"
	"io"
	"sync"
)

// DeterministicEntropy is a reproducible byte stream for key generation
// tests. Two readers built from the same label produce the same bytes.
// It is SHA-256 in counter mode and has no security properties.
type DeterministicEntropy struct {
	mu      sync.Mutex
	label   []byte
	counter uint64
	buf     []byte
}

// NewDeterministicEntropy returns a reader seeded with label.
func NewDeterministicEntropy(label string) *DeterministicEntropy {
	return &DeterministicEntropy{label: []byte(label)}
}

// Read implements io.Reader. It never fails.
func (d *DeterministicEntropy) Read(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := 0
	for n < len(p) {
		if len(d.buf) == 0 {
			var ctr [8]byte
			binary.BigEndian.PutUint64(ctr[:], d.counter)
			d.counter++
			block := sha256.Sum256(append(append([]byte{}, d.label...), ctr[:]...))
			d.buf = block[:]
		}
		c := copy(p[n:], d.buf)
		d.buf = d.buf[c:]
		n += c
	}
	return n, nil
}

// FixedEntropy returns a reader that yields b once and then io.EOF.
func FixedEntropy(b []byte) io.Reader {
	return &fixedReader{b: append([]byte{}, b...)}
}

type fixedReader struct {
	b []byte
}

func (r *fixedReader) Read(p []byte) (int, error) {
	if len(r.b) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.b)
	r.b = r.b[n:]
	return n, nil
}

// FailingEntropy is a random source that always fails with Err.
type FailingEntropy struct {
	Err error
}

// Read implements io.Reader.
func (f FailingEntropy) Read(_ []byte) (int, error) {
	return 0, f.Err
}

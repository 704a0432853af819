package permpack

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/shuffle_bias/internal/bitconv"
)

var (
	ErrNotPermutation = errors.New("values do not form a permutation of their indexes")
	ErrCorruptedData  = errors.New("packed permutation is corrupted")
)

// Pack encodes perm, a permutation of 0..len(perm)-1, as a uvarint length
// header followed by the indexes bit-packed at the fixed width needed for
// the largest index. The payload is stored as whole little-endian words.
// A 52-value deck packs into 41 bytes instead of the hundreds a naive
// integer encoding takes.
func Pack(perm []int) ([]byte, error) {
	n := len(perm)
	seen := make([]bool, n)
	for _, v := range perm {
		if v < 0 || v >= n || seen[v] {
			return nil, ErrNotPermutation
		}
		seen[v] = true
	}
	buf := binary.AppendUvarint(nil, uint64(n))
	width := indexWidth(n)
	if width == 0 {
		// zero or one value: the header alone identifies the permutation
		return buf, nil
	}
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range perm {
		for k := range width {
			w.WriteBool(v>>k&1 == 1)
		}
	}
	words := w.Data()[:packedBytes(n, width)/8]
	return append(buf, bitconv.WordsToBytes(words)...), nil
}

// Unpack decodes data produced by Pack and validates that the decoded values
// form a permutation.
func Unpack(data []byte) ([]int, error) {
	size, read := binary.Uvarint(data)
	if read <= 0 || size > math.MaxInt32 {
		return nil, ErrCorruptedData
	}
	n := int(size)
	width := indexWidth(n)
	if len(data)-read != packedBytes(n, width) {
		return nil, ErrCorruptedData
	}
	perm := make([]int, n)
	if width == 0 {
		return perm, nil
	}
	r := bitstream.NewBitReader(bitconv.BytesToWords(data[read:]), 0, 0)
	r.SetBits(n * width)
	seen := make([]bool, n)
	for i := range n {
		var v int
		for k := range width {
			bit, err := r.ReadBitAt(i*width + k)
			if err != nil {
				return nil, fmt.Errorf("%w:%w", ErrCorruptedData, err)
			}
			if bit {
				v |= 1 << k
			}
		}
		if v >= n || seen[v] {
			return nil, ErrCorruptedData
		}
		seen[v] = true
		perm[i] = v
	}
	return perm, nil
}

// PackedLen returns the encoded size in bytes of a permutation of length n.
func PackedLen(n int) int {
	if n < 0 {
		return 0
	}
	var tmp [binary.MaxVarintLen64]byte
	header := binary.PutUvarint(tmp[:], uint64(n))
	return header + packedBytes(n, indexWidth(n))
}

func indexWidth(n int) int {
	if n < 2 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

func packedBytes(n, width int) int {
	words := (n*width + 63) / 64
	return words * 8
}

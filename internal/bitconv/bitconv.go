package bitconv

import "encoding/binary"

func BytesToWords(b []byte) []uint64 {
	words := make([]uint64, (len(b)+7)/8)
	for i, bb := range b {
		words[i/8] |= uint64(bb) << uint((i%8)*8)
	}
	return words
}

func WordsToBytes(words []uint64) []byte {
	out := make([]byte, len(words)*8)
	for i, w := range words {
		binary.LittleEndian.PutUint64(out[i*8:], w)
	}
	return out
}

package permpack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpack(t *testing.T) {
	test := []struct {
		name string
		perm []int
	}{
		{"empty", []int{}},
		{"single", []int{0}},
		{"pair", []int{1, 0}},
		{"one word of payload", []int{3, 1, 0, 2}},
		{"width boundary", []int{8, 7, 6, 5, 4, 3, 2, 1, 0}},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Pack(tt.perm)
			require.NoError(t, err)
			assert.Len(t, data, PackedLen(len(tt.perm)))

			out, err := Unpack(data)
			require.NoError(t, err)
			assert.Equal(t, tt.perm, out)
		})
	}
}

func TestPackUnpack_Random(t *testing.T) {
	rd := rand.New(rand.NewSource(1))
	for _, n := range []int{2, 5, 31, 32, 33, 52, 128, 1000} {
		perm := rd.Perm(n)
		data, err := Pack(perm)
		require.NoError(t, err)
		assert.Len(t, data, PackedLen(n))

		out, err := Unpack(data)
		require.NoError(t, err)
		assert.Equal(t, perm, out, "length %d", n)
	}
}

func TestPack_NotPermutation(t *testing.T) {
	test := []struct {
		name string
		perm []int
	}{
		{"duplicate", []int{0, 0}},
		{"out of range", []int{0, 2}},
		{"negative", []int{0, -1}},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Pack(tt.perm)
			assert.ErrorIs(t, err, ErrNotPermutation)
			assert.Nil(t, data)
		})
	}
}

func TestUnpack_Corrupted(t *testing.T) {
	valid, err := Pack([]int{3, 1, 0, 2})
	require.NoError(t, err)

	test := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"unterminated header", []byte{0x80}},
		{"truncated payload", valid[:len(valid)-1]},
		{"trailing bytes", append(append([]byte{}, valid...), 0x00)},
		{"duplicate values", append([]byte{0x02}, make([]byte, 8)...)},
		{"values beyond range", append([]byte{0x03}, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Unpack(tt.data)
			assert.ErrorIs(t, err, ErrCorruptedData)
			assert.Nil(t, out)
		})
	}
}

func TestPackedLen(t *testing.T) {
	test := []struct {
		n   int
		exp int
	}{
		{0, 1},
		{1, 1},
		{2, 9},
		{52, 41},
		{300, 346},
	}
	for _, tt := range test {
		assert.Equal(t, tt.exp, PackedLen(tt.n), "n=%d", tt.n)
	}
}

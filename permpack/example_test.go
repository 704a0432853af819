package permpack_test

import (
	"fmt"

	"github.com/yyyoichi/shuffle_bias/permpack"
)

func Example() {
	perm := []int{3, 1, 4, 2, 0}

	data, err := permpack.Pack(perm)
	if err != nil {
		fmt.Printf("Error packing permutation: %v\n", err)
		return
	}
	fmt.Printf("%d values in %d bytes\n", len(perm), len(data))

	out, err := permpack.Unpack(data)
	if err != nil {
		fmt.Printf("Error unpacking permutation: %v\n", err)
		return
	}
	fmt.Println(out)

	// Output:
	// 5 values in 9 bytes
	// [3 1 4 2 0]
}

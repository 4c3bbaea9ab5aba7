package bitvec_test

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bitvec"
)

func Example() {
	v, err := bitvec.NewSized(8, 0xAA)
	if err != nil {
		panic(err)
	}

	_ = v.ShiftRight(1)
	fmt.Println(v, v.Count())
	// Output: 01010101 4
}

func ExampleXor() {
	a, _ := bitvec.Parse("1100")
	b, _ := bitvec.Parse("1010")

	c, err := bitvec.Xor(a, b)
	if err != nil {
		panic(err)
	}
	fmt.Println(c)
	// Output: 0110
}

func ExampleBitVector_PushBack() {
	v := bitvec.New()
	for _, bit := range []bool{true, false, true, true} {
		v.PushBack(bit)
	}
	fmt.Println(v, v.Len())
	// Output: 1101 4
}

func ExampleBitVector_Test() {
	v, _ := bitvec.NewSized(4, 0b0101)

	_, err := v.Test(7)
	fmt.Println(errors.Is(err, bitvec.ErrOutOfRange))
	fmt.Println(err)
	// Output:
	// true
	// index 7 out of range [0, 4)
}

func ExampleBitVector_Ones() {
	v, _ := bitvec.Parse("100110")
	for i := range v.Ones() {
		fmt.Print(i, " ")
	}
	fmt.Println()
	// Output: 1 2 5
}

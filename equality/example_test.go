package equality_test

import (
	"fmt"

	"github.com/hasbyte1/go-underscore/equality"
)

func ExampleIsEqual() {
	a := map[string]any{"name": "moe", "luckyNumbers": []int{13, 27, 34}}
	b := map[string]any{"name": "moe", "luckyNumbers": []int{13, 27, 34}}
	fmt.Println(equality.StrictEqual(a, b))
	fmt.Println(equality.IsEqual(a, b))
	// Output:
	// false
	// true
}

func ExampleLooseEqual() {
	fmt.Println(equality.LooseEqual("1", 1))
	fmt.Println(equality.LooseEqual(int8(3), 3.0))
	fmt.Println(equality.StrictEqual(int8(3), 3))
	// Output:
	// true
	// true
	// false
}

// File: example_test.go
// Title: Example Tests for stringx
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package stringx_test

import (
	"fmt"

	mdwstringx "github.com/msto63/calword/foundation/utils/stringx"
)

func ExampleToOrdinalWords() {
	for _, n := range []int64{1, 21, 100, 2000, 1000001} {
		words, _ := mdwstringx.ToOrdinalWords(n)
		fmt.Println(words)
	}
	// Output:
	// first
	// twenty-first
	// one-hundredth
	// two thousandth
	// one million first
}

func ExampleMatchDigitOrdinal() {
	fmt.Printf("%+v\n", mdwstringx.MatchDigitOrdinal("45th"))
	fmt.Printf("%+v\n", mdwstringx.MatchDigitOrdinal("first"))
	// Output:
	// {Matched:true Numeral:45}
	// {Matched:false Numeral:}
}

func ExampleIsNotSet() {
	empty, name := "", "calword"
	fmt.Println(mdwstringx.IsNotSet(nil))
	fmt.Println(mdwstringx.IsNotSet(&empty))
	fmt.Println(mdwstringx.IsNotSet(&name))
	// Output:
	// true
	// true
	// false
}

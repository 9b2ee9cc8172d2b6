// File: ordinal.go
// Title: English Ordinal Words
// Description: Converts non-negative integers to English ordinal words by
//              recursive decomposition over magnitude bands, and recognizes
//              digit ordinals such as "21st".
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import (
	"regexp"
	"strconv"
	"strings"

	mdwerrors "github.com/msto63/calword/foundation/core/errors"
)

var (
	cardinalWords = [20]string{
		"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
		"seventeen", "eighteen", "nineteen",
	}

	ordinalWords = [20]string{
		"zeroth", "first", "second", "third", "fourth", "fifth", "sixth", "seventh",
		"eighth", "ninth", "tenth", "eleventh", "twelfth", "thirteenth", "fourteenth",
		"fifteenth", "sixteenth", "seventeenth", "eighteenth", "nineteenth",
	}

	// indexed by the tens digit; "ieth" or "y" completes the word
	tensStems = [10]string{
		"", "", "twent", "thirt", "fort", "fift", "sixt", "sevent", "eight", "ninet",
	}

	// indexed by the power of one thousand
	magnitudeWords = [7]string{
		"", "thousand", "million", "billion", "trillion", "quadrillion", "quintillion",
	}

	magnitudeScales = [7]int64{
		1, 1e3, 1e6, 1e9, 1e12, 1e15, 1e18,
	}

	digitOrdinalPattern = regexp.MustCompile(`^([0-9]+)(?:st|nd|rd|th)$`)
)

// ToOrdinalWords returns the English ordinal spelling of n, e.g. 42 is
// "forty-second". Negative n fails with an InvalidArgument error.
func ToOrdinalWords(n int64) (string, error) {
	if n < 0 {
		return "", mdwerrors.InvalidArgument(mdwerrors.ModuleStringx, "ToOrdinalWords",
			"ordinal words are defined for non-negative integers only").
			WithDetail("n", n)
	}
	return strings.Replace(ordinal(n), " zeroth", "th", 1), nil
}

// MustOrdinalWords is like ToOrdinalWords but panics on negative n
func MustOrdinalWords(n int64) string {
	words, err := ToOrdinalWords(n)
	if err != nil {
		panic(err)
	}
	return words
}

// ordinal renders n with a trailing "zeroth" placeholder when the last
// component is zero; ToOrdinalWords folds " zeroth" into the suffix "th".
func ordinal(n int64) string {
	switch {
	case n < 20:
		return ordinalWords[n]
	case n < 100:
		if n%10 == 0 {
			return tensStems[n/10] + "ieth"
		}
		return tensStems[n/10] + "y-" + ordinalWords[n%10]
	case n < 1000:
		return cardinalWords[n/100] + "-hundred " + ordinal(n%100)
	default:
		tier := (digitCount(n) - 1) / 3
		scale := magnitudeScales[tier]
		return cardinal(n/scale) + " " + magnitudeWords[tier] + " " + ordinal(n%scale)
	}
}

// cardinal renders a leading group, 1 <= n < 1000
func cardinal(n int64) string {
	switch {
	case n < 20:
		return cardinalWords[n]
	case n < 100:
		words := tensStems[n/10] + "y"
		if n%10 != 0 {
			words += "-" + cardinalWords[n%10]
		}
		return words
	default:
		words := cardinalWords[n/100] + " hundred"
		if n%100 != 0 {
			words += " " + cardinal(n%100)
		}
		return words
	}
}

func digitCount(n int64) int {
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}
	return count
}

// OrdinalMatch is the result of MatchDigitOrdinal. Numeral is empty when
// Matched is false.
type OrdinalMatch struct {
	Matched bool   `json:"matched"`
	Numeral string `json:"numeral,omitempty"`
}

// MatchDigitOrdinal recognizes a whole word made of digits followed by
// st, nd, rd or th and returns the digits.
func MatchDigitOrdinal(word string) OrdinalMatch {
	m := digitOrdinalPattern.FindStringSubmatch(word)
	if m == nil {
		return OrdinalMatch{}
	}
	return OrdinalMatch{Matched: true, Numeral: m[1]}
}

// OrdinalSuffix returns the English suffix for n: "st", "nd", "rd" or "th",
// with 11, 12 and 13 (and 111, 112, ...) taking "th".
func OrdinalSuffix(n int) string {
	if n < 0 {
		n = -n
	}
	if tens := n % 100; tens >= 11 && tens <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// OrdinalNumeral returns n followed by its suffix, e.g. "17th"
func OrdinalNumeral(n int) string {
	return strconv.Itoa(n) + OrdinalSuffix(n)
}

// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides string helpers and the English
//              ordinal-word converter.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package stringx provides string helpers and English ordinal words.
//
// Package: stringx
// Title: String Utilities and Ordinal Words
// Description: Emptiness predicates for values and optional pointers, Unicode
//              aware first-letter capitalization, random UUIDs, and conversion
//              between numbers and their English ordinal forms.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// # Ordinal words
//
// ToOrdinalWords spells a non-negative integer as an English ordinal. Only the
// last spoken component is ordinal, every other component is cardinal:
//
//	ToOrdinalWords(21)      // "twenty-first"
//	ToOrdinalWords(100)     // "one-hundredth"
//	ToOrdinalWords(2000)    // "two thousandth"
//	ToOrdinalWords(1000001) // "one million first"
//
// Groups below one thousand join the hundreds with a hyphen ("one-hundred
// first"); leading groups of larger magnitudes are written as cardinal phrases
// with spaces ("one hundred twenty-three million ..."). The full int64 range is
// supported, up to the quintillions. Negative input fails with an
// InvalidArgument error.
//
// MatchDigitOrdinal recognizes digit ordinals such as "3rd" and returns the
// numeral. The suffix is not checked against the number, "1th" matches too.
//
// # Emptiness
//
// IsEmpty and IsBlank test string values; IsNotSet and IsSet test optional
// *string values, where nil and "" both count as not set.
//
// All functions are safe for concurrent use. Lookup tables are package-level
// values that are never modified.
package stringx

// Package text provides small text helpers shared by the domain and report layers.
package text

import "unicode/utf8"

// CountRunes counts the number of Unicode characters (runes) in s.
// Field length limits are expressed in characters, so a title such as
// "Café Culture" counts as 12 even though it is 13 bytes long.
//
// Examples:
//
//	CountRunes("Vogue")  // returns 5
//	CountRunes("日本語")    // returns 3
//	CountRunes("")       // returns 0
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}

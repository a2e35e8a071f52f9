// Package similarity provides a sequence similarity ratio for fuzzy name matching.
package similarity

import "strings"

// Ratio returns a similarity score in [0, 1] for two strings, case-insensitive.
// The score is 2*M/T where M is the total length of matching blocks (found by
// recursively taking the longest common substring) and T is the combined length
// of both strings. Identical strings score 1.0; strings with no characters in
// common score 0.0.
func Ratio(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	total := len(a) + len(b)
	if total == 0 {
		return 1.0
	}

	matched := matchingTotal(a, b)
	return 2.0 * float64(matched) / float64(total)
}

// matchingTotal sums the lengths of matching blocks: the longest common
// substring, plus matching blocks to its left and right.
func matchingTotal(a, b string) int {
	ai, bi, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingTotal(a[:ai], b[:bi]) +
		matchingTotal(a[ai+size:], b[bi+size:])
}

// longestMatch finds the longest common substring of a and b, returning its
// start offsets and length. Earliest match in a wins ties.
func longestMatch(a, b string) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}

	// lengths[j] is the length of the common suffix ending at a[i], b[j]
	// for the current row i.
	lengths := make([]int, len(b)+1)
	for i := range len(a) {
		prev := 0
		for j := range len(b) {
			cur := lengths[j+1]
			if a[i] == b[j] {
				lengths[j+1] = prev + 1
				if lengths[j+1] > size {
					size = lengths[j+1]
					ai = i - size + 1
					bi = j - size + 1
				}
			} else {
				lengths[j+1] = 0
			}
			prev = cur
		}
	}
	return ai, bi, size
}

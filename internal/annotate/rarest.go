package annotate

import "strings"

// RarestWord returns the first token, in original order, whose frequency
// within the text equals the minimum observed frequency. Tokens are split on
// Unicode whitespace and compared exactly (case and punctuation intact).
// Blank input yields "".
//
// Frequency scope is the single text, not the whole table: two records with
// identical content always get identical rarest words.
func RarestWord(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}

	minFreq := len(words) + 1
	for _, n := range counts {
		if n < minFreq {
			minFreq = n
		}
	}

	// First occurrence wins the tie-break, not lexicographic order.
	for _, w := range words {
		if counts[w] == minFreq {
			return w
		}
	}

	return ""
}

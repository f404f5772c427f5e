package annotate

import "strings"

// DetectWeapon scans the text's whitespace tokens in order and returns the
// first lexicon term matched, or "" when nothing matches. Matching is
// case-insensitive and whole-token: "gun" matches "Gun" but not "gunship".
// Empty text or an empty lexicon yields "".
func DetectWeapon(text string, lexicon *Lexicon) string {
	if lexicon == nil || lexicon.Len() == 0 {
		return ""
	}

	for _, word := range strings.Fields(text) {
		term := strings.ToLower(word)
		if lexicon.Contains(term) {
			return term
		}
	}

	return ""
}

package refdata

import "strings"

var validTitles = []string{
	"Mr", "Mrs", "Ms", "Miss", "Mx", "Sir", "Dame", "Lord", "Lady",
	"Dr", "Rev", "Prof", "Capt", "Cllr", "Judge",
}

var titlePunctuation = strings.NewReplacer("-", "", "+", "", ".", "", "^", "", ":", "", ",", "", "'", "", "_", "")

// ValidTitle reports whether the value, ignoring punctuation and case,
// is a recognised name title.
func ValidTitle(title string) bool {
	stripped := titlePunctuation.Replace(strings.TrimSpace(title))
	for _, t := range validTitles {
		if strings.EqualFold(t, stripped) {
			return true
		}
	}
	return false
}

package opencc

import (
	"strings"
)

// Quotation marks are the one punctuation difference the conversion
// profiles care about: Simplified text uses curly quotes, Traditional
// text corner brackets. The mapping is a fixed bijection, so it runs
// as a plain replacement pass after the dictionary rounds instead of
// through the matching engine.
var (
	punctToTraditional = strings.NewReplacer(
		"“", "「", // “
		"”", "」", // ”
		"‘", "『", // ‘
		"’", "』", // ’
	)
	punctToSimplified = strings.NewReplacer(
		"「", "“",
		"」", "”",
		"『", "‘",
		"』", "’",
	)
)

// convertPunctuation rewrites quotation marks for a profile name. A
// profile starting from Simplified script maps towards corner
// brackets, every other direction maps back to curly quotes.
func convertPunctuation(text, profile string) string {
	if strings.HasPrefix(profile, "s") {
		return punctToTraditional.Replace(text)
	}
	return punctToSimplified.Replace(text)
}

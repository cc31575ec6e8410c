package opencc

import (
	"regexp"

	"golang.org/x/text/language"

	"github.com/laisuk/opencc-fmmseg-sub000/dicts"
)

// Script is the outcome of script detection.
type Script int

const (
	// ScriptNeutral means the sample is empty or matches neither
	// variant distinctly.
	ScriptNeutral Script = iota
	// ScriptTraditional means the sample reads as Traditional Chinese.
	ScriptTraditional
	// ScriptSimplified means the sample reads as Simplified Chinese.
	ScriptSimplified
)

func (sc Script) String() string {
	switch sc {
	case ScriptTraditional:
		return "Traditional"
	case ScriptSimplified:
		return "Simplified"
	}
	return "Neutral"
}

// Tag returns the ISO 15924 script identifier: Hant, Hans, or Zyyy for
// the neutral case.
func (sc Script) Tag() language.Script {
	switch sc {
	case ScriptTraditional:
		return language.MustParseScript("Hant")
	case ScriptSimplified:
		return language.MustParseScript("Hans")
	}
	return language.MustParseScript("Zyyy")
}

// stripPattern removes characters that carry no script signal before
// detection: ASCII punctuation, digits, Latin letters, whitespace, and
// 著, which exists in both variants with high frequency.
var stripPattern = regexp.MustCompile("[!-/:-@\\[-`{-~\t\n\v\f\r 0-9A-Za-z_著]")

// st maps each character through the Simplified-to-Traditional
// single-character table only. Fast single-pass helper for detection.
func (cc *Converter) st(input string) string {
	round := []*dicts.DictMaxLen{cc.store.STCharacters}
	return convertPlain([]rune(input), round, 1)
}

// ts maps each character through the Traditional-to-Simplified
// single-character table only.
func (cc *Converter) ts(input string) string {
	round := []*dicts.DictMaxLen{cc.store.TSCharacters}
	return convertPlain([]rune(input), round, 1)
}

// ZhoCheck detects the likely Chinese script variant of input. It
// strips non-signal characters from a bounded prefix, then round-trips
// the remainder through the single-character tables in both
// directions: text the t2s table changes is Traditional, text the s2t
// table changes is Simplified, anything else is neutral.
func (cc *Converter) ZhoCheck(input string) Script {
	if input == "" {
		return ScriptNeutral
	}
	checkLen := findMaxUTF8Len(input, 1000)
	stripped := stripPattern.ReplaceAllString(input[:checkLen], "")
	sample := stripped[:findMaxUTF8Len(stripped, 200)]

	switch {
	case sample != cc.ts(sample):
		return ScriptTraditional
	case sample != cc.st(sample):
		return ScriptSimplified
	}
	return ScriptNeutral
}

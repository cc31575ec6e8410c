package opencc

import (
	"strings"

	"github.com/laisuk/opencc-fmmseg-sub000/dicts"
)

// Converter performs profile-based conversion between Chinese script
// variants. All profile methods are safe for concurrent use; only
// SetParallel mutates the converter.
type Converter struct {
	store    *dicts.Store
	parallel bool
}

// New wraps a dictionary store in a converter. Parallel chunk
// conversion is enabled by default.
func New(store *dicts.Store) *Converter {
	return &Converter{store: store, parallel: true}
}

// NewFromLexicons loads the lexicon text files in dir and returns a
// ready converter.
func NewFromLexicons(dir string) (*Converter, error) {
	store, err := dicts.FromLexicons(dir)
	if err != nil {
		return nil, err
	}
	return New(store), nil
}

// NewFromSnapshot loads a compressed dictionary snapshot and returns a
// ready converter.
func NewFromSnapshot(path string) (*Converter, error) {
	store, err := dicts.LoadSnapshot(path)
	if err != nil {
		return nil, err
	}
	return New(store), nil
}

// Store exposes the underlying dictionary store.
func (cc *Converter) Store() *dicts.Store {
	return cc.store
}

// Parallel reports whether chunk conversion runs on the worker pool.
func (cc *Converter) Parallel() bool {
	return cc.parallel
}

// SetParallel enables or disables parallel chunk conversion. Disabling
// it can make sense for many small inputs, where fan-out overhead
// outweighs the work per chunk. Output is identical either way.
func (cc *Converter) SetParallel(parallel bool) {
	cc.parallel = parallel
}

// replace is the round driver handed to DictRefs.Apply.
func (cc *Converter) replace(input string, round []*dicts.DictMaxLen, maxLen int, union *dicts.StarterUnion) string {
	return segmentReplace(input, round, maxLen, union, cc.parallel)
}

// roundFor fetches a union key's dictionaries and cached union in one
// step.
func (cc *Converter) roundFor(key dicts.UnionKey) ([]*dicts.DictMaxLen, *dicts.StarterUnion) {
	return cc.store.DictsFor(key), cc.store.Union(key)
}

// S2T converts Simplified Chinese to Traditional Chinese.
func (cc *Converter) S2T(input string, punct bool) string {
	r1, u1 := cc.roundFor(dicts.UnionS2T)
	out := NewDictRefs(r1, u1).Apply(input, cc.replace)
	if punct {
		out = convertPunctuation(out, "s2t")
	}
	return out
}

// T2S converts Traditional Chinese to Simplified Chinese.
func (cc *Converter) T2S(input string, punct bool) string {
	r1, u1 := cc.roundFor(dicts.UnionT2S)
	out := NewDictRefs(r1, u1).Apply(input, cc.replace)
	if punct {
		out = convertPunctuation(out, "t2s")
	}
	return out
}

// S2TW converts Simplified Chinese to Traditional Chinese (Taiwan).
func (cc *Converter) S2TW(input string, punct bool) string {
	r1, u1 := cc.roundFor(dicts.UnionS2T)
	r2, u2 := cc.roundFor(dicts.UnionTWVariants)
	out := NewDictRefs(r1, u1).
		WithRound2(r2, u2).
		Apply(input, cc.replace)
	if punct {
		out = convertPunctuation(out, "s2tw")
	}
	return out
}

// TW2S converts Traditional Chinese (Taiwan) to Simplified Chinese.
func (cc *Converter) TW2S(input string, punct bool) string {
	r1, u1 := cc.roundFor(dicts.UnionTWRevPair)
	r2, u2 := cc.roundFor(dicts.UnionT2S)
	out := NewDictRefs(r1, u1).
		WithRound2(r2, u2).
		Apply(input, cc.replace)
	if punct {
		out = convertPunctuation(out, "tw2s")
	}
	return out
}

// S2TWP converts Simplified Chinese to Traditional Chinese (Taiwan)
// including Taiwanese idiom substitution.
func (cc *Converter) S2TWP(input string, punct bool) string {
	r1, u1 := cc.roundFor(dicts.UnionS2T)
	r2, u2 := cc.roundFor(dicts.UnionTWPhrases)
	r3, u3 := cc.roundFor(dicts.UnionTWVariants)
	out := NewDictRefs(r1, u1).
		WithRound2(r2, u2).
		WithRound3(r3, u3).
		Apply(input, cc.replace)
	if punct {
		out = convertPunctuation(out, "s2twp")
	}
	return out
}

// TW2SP converts Traditional Chinese (Taiwan) to Simplified Chinese
// including Taiwanese idiom substitution.
func (cc *Converter) TW2SP(input string, punct bool) string {
	r1, u1 := cc.roundFor(dicts.UnionTWRevTriple)
	r2, u2 := cc.roundFor(dicts.UnionT2S)
	out := NewDictRefs(r1, u1).
		WithRound2(r2, u2).
		Apply(input, cc.replace)
	if punct {
		out = convertPunctuation(out, "tw2sp")
	}
	return out
}

// S2HK converts Simplified Chinese to Traditional Chinese (Hong Kong).
func (cc *Converter) S2HK(input string, punct bool) string {
	r1, u1 := cc.roundFor(dicts.UnionS2T)
	r2, u2 := cc.roundFor(dicts.UnionHKVariants)
	out := NewDictRefs(r1, u1).
		WithRound2(r2, u2).
		Apply(input, cc.replace)
	if punct {
		out = convertPunctuation(out, "s2hk")
	}
	return out
}

// HK2S converts Traditional Chinese (Hong Kong) to Simplified Chinese.
func (cc *Converter) HK2S(input string, punct bool) string {
	r1, u1 := cc.roundFor(dicts.UnionHKRevPair)
	r2, u2 := cc.roundFor(dicts.UnionT2S)
	out := NewDictRefs(r1, u1).
		WithRound2(r2, u2).
		Apply(input, cc.replace)
	if punct {
		out = convertPunctuation(out, "hk2s")
	}
	return out
}

// T2TW converts Traditional Chinese to Traditional Chinese (Taiwan).
func (cc *Converter) T2TW(input string) string {
	r1, u1 := cc.roundFor(dicts.UnionTWVariants)
	return NewDictRefs(r1, u1).Apply(input, cc.replace)
}

// T2TWP converts Traditional Chinese to Traditional Chinese (Taiwan)
// including Taiwanese idiom substitution.
func (cc *Converter) T2TWP(input string) string {
	r1, u1 := cc.roundFor(dicts.UnionTWPhrases)
	r2, u2 := cc.roundFor(dicts.UnionTWVariants)
	return NewDictRefs(r1, u1).
		WithRound2(r2, u2).
		Apply(input, cc.replace)
}

// TW2T converts Traditional Chinese (Taiwan) to Traditional Chinese.
func (cc *Converter) TW2T(input string) string {
	r1, u1 := cc.roundFor(dicts.UnionTWRevPair)
	return NewDictRefs(r1, u1).Apply(input, cc.replace)
}

// TW2TP converts Traditional Chinese (Taiwan) to Traditional Chinese
// including reversed Taiwanese idiom substitution.
func (cc *Converter) TW2TP(input string) string {
	r1, u1 := cc.roundFor(dicts.UnionTWRevPair)
	r2, u2 := cc.roundFor(dicts.UnionTWPhrasesRev)
	return NewDictRefs(r1, u1).
		WithRound2(r2, u2).
		Apply(input, cc.replace)
}

// T2HK converts Traditional Chinese to Traditional Chinese (Hong Kong).
func (cc *Converter) T2HK(input string) string {
	r1, u1 := cc.roundFor(dicts.UnionHKVariants)
	return NewDictRefs(r1, u1).Apply(input, cc.replace)
}

// HK2T converts Traditional Chinese (Hong Kong) to Traditional Chinese.
func (cc *Converter) HK2T(input string) string {
	r1, u1 := cc.roundFor(dicts.UnionHKRevPair)
	return NewDictRefs(r1, u1).Apply(input, cc.replace)
}

// T2JP converts Chinese Kyujitai characters to Japanese Shinjitai.
func (cc *Converter) T2JP(input string) string {
	r1, u1 := cc.roundFor(dicts.UnionJPVariants)
	return NewDictRefs(r1, u1).Apply(input, cc.replace)
}

// JP2T converts Japanese Shinjitai characters to Chinese Kyujitai.
func (cc *Converter) JP2T(input string) string {
	r1, u1 := cc.roundFor(dicts.UnionJPRevTriple)
	return NewDictRefs(r1, u1).Apply(input, cc.replace)
}

// InvalidProfileError reports an unknown conversion profile name
// passed to Convert.
type InvalidProfileError struct {
	Profile string
}

func (e *InvalidProfileError) Error() string {
	return "invalid conversion profile: " + e.Profile
}

// Convert runs the conversion named by profile (case-insensitive) on
// input. The punct flag requests the punctuation pass; profiles that
// never convert punctuation ignore it. An unknown profile yields an
// InvalidProfileError, which is also recorded in the last-error slot.
func (cc *Converter) Convert(input, profile string, punct bool) (string, error) {
	switch strings.ToLower(profile) {
	case "s2t":
		return cc.S2T(input, punct), nil
	case "s2tw":
		return cc.S2TW(input, punct), nil
	case "s2twp":
		return cc.S2TWP(input, punct), nil
	case "s2hk":
		return cc.S2HK(input, punct), nil
	case "t2s":
		return cc.T2S(input, punct), nil
	case "t2tw":
		return cc.T2TW(input), nil
	case "t2twp":
		return cc.T2TWP(input), nil
	case "t2hk":
		return cc.T2HK(input), nil
	case "tw2s":
		return cc.TW2S(input, punct), nil
	case "tw2sp":
		return cc.TW2SP(input, punct), nil
	case "tw2t":
		return cc.TW2T(input), nil
	case "tw2tp":
		return cc.TW2TP(input), nil
	case "hk2s":
		return cc.HK2S(input, punct), nil
	case "hk2t":
		return cc.HK2T(input), nil
	case "jp2t":
		return cc.JP2T(input), nil
	case "t2jp":
		return cc.T2JP(input), nil
	}
	err := &InvalidProfileError{Profile: profile}
	dicts.SetLastError(err.Error())
	tracer().Errorf("%v", err)
	return "", err
}

// Profiles lists the conversion profile names Convert accepts.
func Profiles() []string {
	return []string{
		"s2t", "s2tw", "s2twp", "s2hk",
		"t2s", "t2tw", "t2twp", "t2hk",
		"tw2s", "tw2sp", "tw2t", "tw2tp",
		"hk2s", "hk2t", "jp2t", "t2jp",
	}
}

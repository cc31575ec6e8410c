package opencc

import (
	"github.com/laisuk/opencc-fmmseg-sub000/dicts"
)

// DictRound is one conversion round: the dictionaries to probe (probe
// order = precedence), the maximum key length across them, and the
// StarterUnion built from exactly these dictionaries.
type DictRound struct {
	Dicts  []*dicts.DictMaxLen
	MaxLen int
	Union  *dicts.StarterUnion
}

func newRound(ds []*dicts.DictMaxLen, union *dicts.StarterUnion) DictRound {
	maxLen := 1
	for _, d := range ds {
		if d.MaxLen > maxLen {
			maxLen = d.MaxLen
		}
	}
	return DictRound{Dicts: ds, MaxLen: maxLen, Union: union}
}

// DictRefs holds up to three conversion rounds. Round 1 is required,
// rounds 2 and 3 optional. Apply feeds the full output of each round
// into the next.
type DictRefs struct {
	round1 DictRound
	round2 *DictRound
	round3 *DictRound
}

// NewDictRefs creates a DictRefs with the required round 1. The union
// must be prebuilt from exactly ds (profiles take it from the store's
// union cache).
func NewDictRefs(ds []*dicts.DictMaxLen, union *dicts.StarterUnion) *DictRefs {
	return &DictRefs{round1: newRound(ds, union)}
}

// WithRound2 adds an optional second round.
func (refs *DictRefs) WithRound2(ds []*dicts.DictMaxLen, union *dicts.StarterUnion) *DictRefs {
	r := newRound(ds, union)
	refs.round2 = &r
	return refs
}

// WithRound3 adds an optional third round.
func (refs *DictRefs) WithRound3(ds []*dicts.DictMaxLen, union *dicts.StarterUnion) *DictRefs {
	r := newRound(ds, union)
	refs.round3 = &r
	return refs
}

// Apply runs the rounds in order over input, each round transforming
// the complete intermediate string produced by the previous one.
func (refs *DictRefs) Apply(input string, replace func(string, []*dicts.DictMaxLen, int, *dicts.StarterUnion) string) string {
	out := replace(input, refs.round1.Dicts, refs.round1.MaxLen, refs.round1.Union)
	if refs.round2 != nil {
		out = replace(out, refs.round2.Dicts, refs.round2.MaxLen, refs.round2.Union)
	}
	if refs.round3 != nil {
		out = replace(out, refs.round3.Dicts, refs.round3.MaxLen, refs.round3.Union)
	}
	return out
}

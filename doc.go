/*
Package opencc converts text between Chinese script variants using
OpenCC lexicons and forward-maximum-matching segmentation.

# Description

Conversion is dictionary driven. Every profile (s2t, t2s, s2tw, …)
assembles one to three rounds of dictionaries; each round rewrites the
whole intermediate string by scanning it left to right and, at every
position, substituting the longest phrase any of the round's
dictionaries knows. Delimiters (whitespace, ASCII punctuation, CJK
punctuation) split the text into independent chunks that are never
transformed themselves, which also makes chunks the natural unit for
parallel conversion.

The matching loop is pruned by per-starter metadata: each dictionary
records, for every code point that starts one of its keys, a bitmask of
the key lengths present and the exact maximum length. Before a round
runs, the masks and caps of its dictionaries are merged into a
StarterUnion, so the hot loop enumerates only lengths that some
dictionary can actually match, longest first.

The dictionary data model lives in the dicts subpackage: building
tables from pairs, loading them from lexicon text files or from a
compressed snapshot, and the per-profile union cache.

Typical use:

	store, err := dicts.FromLexicons("./lexicons")
	if err != nil { … }
	cc := opencc.New(store)
	out, err := cc.Convert("汉字转换测试", "s2t", false)

The package emits diagnostics through the tracing facility of
npillmayer/schuko. Clients configure tracing globally; nothing here
writes to stderr on its own.
*/
package opencc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to a trace with key 'opencc'.
func tracer() tracing.Trace {
	return tracing.Select("opencc")
}

/*
Package dicts holds the dictionary data model for OpenCC-style script
conversion: per-table phrase maps with length metadata (DictMaxLen),
merged starter accelerators (StarterUnion), and the Store owning all
category dictionaries together with a lazily built union cache.

Dictionaries are immutable once built. They come either from plain-text
lexicon files ("key value" per line) or from a zstd-compressed CBOR
snapshot; after loading, dense per-starter accelerators are rebuilt and
the tables are shared freely across goroutines without locking.
*/
package dicts

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'opencc.dicts'
func tracer() tracing.Trace {
	return tracing.Select("opencc.dicts")
}

package dicts

import (
	"sync"
)

// Store owns all category dictionaries used by the public conversion
// profiles, plus a cache of the StarterUnions those profiles need.
//
// The tables are immutable after loading. The union cache is the only
// mutable state: each logical union is built at most once, on first
// request, and shared afterwards.
type Store struct {
	STCharacters *DictMaxLen `cbor:"st_characters"`
	STPhrases    *DictMaxLen `cbor:"st_phrases"`
	TSCharacters *DictMaxLen `cbor:"ts_characters"`
	TSPhrases    *DictMaxLen `cbor:"ts_phrases"`

	TWPhrases            *DictMaxLen `cbor:"tw_phrases"`
	TWPhrasesRev         *DictMaxLen `cbor:"tw_phrases_rev"`
	TWVariants           *DictMaxLen `cbor:"tw_variants"`
	TWVariantsRev        *DictMaxLen `cbor:"tw_variants_rev"`
	TWVariantsRevPhrases *DictMaxLen `cbor:"tw_variants_rev_phrases"`

	HKVariants           *DictMaxLen `cbor:"hk_variants"`
	HKVariantsRev        *DictMaxLen `cbor:"hk_variants_rev"`
	HKVariantsRevPhrases *DictMaxLen `cbor:"hk_variants_rev_phrases"`

	JPSCharacters *DictMaxLen `cbor:"jps_characters"`
	JPSPhrases    *DictMaxLen `cbor:"jps_phrases"`
	JPVariants    *DictMaxLen `cbor:"jp_variants"`
	JPVariantsRev *DictMaxLen `cbor:"jp_variants_rev"`

	unions unionCache // runtime-only
}

// UnionKey identifies one of the dictionary combinations the public
// conversion profiles use. The set is closed: every profile round maps
// to exactly one key.
type UnionKey int

const (
	UnionS2T UnionKey = iota // st_phrases + st_characters
	UnionT2S                 // ts_phrases + ts_characters

	UnionTWPhrases    // tw_phrases
	UnionTWPhrasesRev // tw_phrases_rev
	UnionTWVariants   // tw_variants
	UnionTWRevPair    // tw_variants_rev_phrases + tw_variants_rev
	UnionTWRevTriple  // tw_phrases_rev + tw_variants_rev_phrases + tw_variants_rev

	UnionHKVariants // hk_variants
	UnionHKRevPair  // hk_variants_rev_phrases + hk_variants_rev

	UnionJPVariants  // jp_variants
	UnionJPRevTriple // jps_phrases + jps_characters + jp_variants_rev
)

// unionCache maps logical keys to built unions. Each slot is
// single-assignment: the build runs under the mutex, so concurrent
// first requests agree on one instance and no goroutine ever sees a
// partially built union.
type unionCache struct {
	mu    sync.Mutex
	slots map[UnionKey]*StarterUnion
}

// DictsFor returns the dictionary list a union key stands for, in
// probe-priority order.
func (s *Store) DictsFor(key UnionKey) []*DictMaxLen {
	switch key {
	case UnionS2T:
		return []*DictMaxLen{s.STPhrases, s.STCharacters}
	case UnionT2S:
		return []*DictMaxLen{s.TSPhrases, s.TSCharacters}
	case UnionTWPhrases:
		return []*DictMaxLen{s.TWPhrases}
	case UnionTWPhrasesRev:
		return []*DictMaxLen{s.TWPhrasesRev}
	case UnionTWVariants:
		return []*DictMaxLen{s.TWVariants}
	case UnionTWRevPair:
		return []*DictMaxLen{s.TWVariantsRevPhrases, s.TWVariantsRev}
	case UnionTWRevTriple:
		return []*DictMaxLen{s.TWPhrasesRev, s.TWVariantsRevPhrases, s.TWVariantsRev}
	case UnionHKVariants:
		return []*DictMaxLen{s.HKVariants}
	case UnionHKRevPair:
		return []*DictMaxLen{s.HKVariantsRevPhrases, s.HKVariantsRev}
	case UnionJPVariants:
		return []*DictMaxLen{s.JPVariants}
	case UnionJPRevTriple:
		return []*DictMaxLen{s.JPSPhrases, s.JPSCharacters, s.JPVariantsRev}
	}
	return nil
}

// Union returns the cached StarterUnion for key, building it on first
// use. Later calls return the same instance.
func (s *Store) Union(key UnionKey) *StarterUnion {
	s.unions.mu.Lock()
	defer s.unions.mu.Unlock()
	if u, ok := s.unions.slots[key]; ok {
		return u
	}
	if s.unions.slots == nil {
		s.unions.slots = make(map[UnionKey]*StarterUnion)
	}
	u := BuildUnion(s.DictsFor(key))
	s.unions.slots[key] = u
	return u
}

// ResetUnions drops all cached unions, forcing rebuilds on next use.
// For tests and hot-reload scenarios only; normal operation never
// invalidates the cache.
func (s *Store) ResetUnions() {
	s.unions.mu.Lock()
	s.unions.slots = nil
	s.unions.mu.Unlock()
}

// NewStore returns a store with all tables empty. Useful as a fallback
// when loading fails and in tests.
func NewStore() *Store {
	s := &Store{}
	for _, t := range s.tables() {
		*t.dict = FromPairs(nil)
	}
	return s
}

// finish rebuilds the runtime accelerators of every table. Required
// after deserialization; returns the store for chaining.
func (s *Store) finish() *Store {
	for _, t := range s.tables() {
		if *t.dict == nil {
			*t.dict = FromPairs(nil)
			continue
		}
		(*t.dict).populateStarterIndexes()
	}
	return s
}

// table pairs a store field with its canonical lexicon file name.
type table struct {
	dict **DictMaxLen
	file string
}

// tables lists every category dictionary with its lexicon file name,
// in load order.
func (s *Store) tables() []table {
	return []table{
		{&s.STCharacters, "STCharacters.txt"},
		{&s.STPhrases, "STPhrases.txt"},
		{&s.TSCharacters, "TSCharacters.txt"},
		{&s.TSPhrases, "TSPhrases.txt"},
		{&s.TWPhrases, "TWPhrases.txt"},
		{&s.TWPhrasesRev, "TWPhrasesRev.txt"},
		{&s.TWVariants, "TWVariants.txt"},
		{&s.TWVariantsRev, "TWVariantsRev.txt"},
		{&s.TWVariantsRevPhrases, "TWVariantsRevPhrases.txt"},
		{&s.HKVariants, "HKVariants.txt"},
		{&s.HKVariantsRev, "HKVariantsRev.txt"},
		{&s.HKVariantsRevPhrases, "HKVariantsRevPhrases.txt"},
		{&s.JPSCharacters, "JPShinjitaiCharacters.txt"},
		{&s.JPSPhrases, "JPShinjitaiPhrases.txt"},
		{&s.JPVariants, "JPVariants.txt"},
		{&s.JPVariantsRev, "JPVariantsRev.txt"},
	}
}

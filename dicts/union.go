package dicts

// StarterUnion merges the per-starter length masks and caps of the
// dictionaries active in one conversion round, so the matching engine
// performs a single starter check instead of one per dictionary. It
// owns no phrase data.
//
// BMP starters are stored densely; astral starters sparsely. A union
// must be rebuilt, never patched, when its defining dictionary set
// changes; after building it is read-only and safe to share.
type StarterUnion struct {
	bmpMask []uint64 // 0x10000 entries
	bmpCap  []uint8  // 0x10000 entries

	astralMask map[rune]uint64
	astralCap  map[rune]uint8
}

// BuildUnion computes the union of starter metadata across the given
// dictionaries: masks are OR-ed, caps take the maximum. It iterates
// each dictionary's own sparse starter map, so the cost is O(S) in the
// number of distinct starters, not O(D * 65536).
func BuildUnion(ds []*DictMaxLen) *StarterUnion {
	u := &StarterUnion{
		bmpMask:    make([]uint64, bmpSize),
		bmpCap:     make([]uint8, bmpSize),
		astralMask: make(map[rune]uint64),
		astralCap:  make(map[rune]uint8),
	}
	for _, d := range ds {
		for r, mask := range d.StarterMask {
			if mask == 0 {
				continue
			}
			cap := d.StarterCap[r]
			if r >= 0 && r < bmpSize {
				u.bmpMask[r] |= mask
				if cap > u.bmpCap[r] {
					u.bmpCap[r] = cap
				}
			} else {
				u.astralMask[r] |= mask
				if cap > u.astralCap[r] {
					u.astralCap[r] = cap
				}
			}
		}
	}
	return u
}

// Starter returns the merged length mask and cap for keys starting
// with r across all source dictionaries. Both are zero when no source
// dictionary has a key starting with r.
func (u *StarterUnion) Starter(r rune) (mask uint64, cap uint8) {
	if r >= 0 && r < bmpSize {
		return u.bmpMask[r], u.bmpCap[r]
	}
	return u.astralMask[r], u.astralCap[r]
}

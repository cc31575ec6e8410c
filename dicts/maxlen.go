package dicts

import (
	"math/bits"
	"unicode/utf8"
)

// bmpSize is the number of code points in the Basic Multilingual Plane.
// The dense starter accelerators cover exactly this range.
const bmpSize = 0x10000

// capBit is the saturating bit of a length mask: bit 63 means "at least
// one key of length >= 64 exists for this starter". Exact lengths above
// 64 are recoverable from the per-starter cap only.
const capBit = 63

// Pair is one dictionary entry before building: a phrase key and its
// replacement.
type Pair struct {
	Key   string
	Value string
}

// DictMaxLen is one conversion dictionary: a phrase table plus global
// and per-starter length metadata, optimized for forward maximum
// matching. Keys and values are UTF-8 strings; all lengths are counted
// in code points, never bytes.
//
// The sparse maps StarterMask and StarterCap are the authoritative
// per-starter metadata and are what gets serialized. The dense BMP
// arrays are runtime-only accelerators, rebuilt from the sparse maps
// after every load (see populateStarterIndexes).
//
// A DictMaxLen is immutable once built and may be shared across
// goroutines without locking.
type DictMaxLen struct {
	// Entries maps a phrase to its replacement. Replacement length may
	// differ from the key's length.
	Entries map[string]string `cbor:"entries"`

	// MinLen and MaxLen are the global key-length bounds in code
	// points. Both are 0 for an empty dictionary.
	MinLen int `cbor:"min_len"`
	MaxLen int `cbor:"max_len"`

	// KeyLenMask has bit n-1 set iff some key of length n exists,
	// for n in 1..=64. Bit 63 saturates (length >= 64).
	KeyLenMask uint64 `cbor:"key_len_mask"`

	// StarterMask records, per first code point of a key, which key
	// lengths exist, with the same bit layout as KeyLenMask.
	StarterMask map[rune]uint64 `cbor:"starter_mask"`

	// StarterCap records the exact maximum key length per starter,
	// clamped to 255. Unlike the mask it is not saturating at 64, so
	// length probes above 64 remain exact.
	StarterCap map[rune]uint8 `cbor:"starter_cap"`

	// Dense BMP accelerators, indexed by code point. Not serialized.
	bmpMask []uint64
	bmpCap  []uint8
}

// FromPairs builds a dictionary from key/value pairs and eagerly
// populates the dense starter accelerators.
//
// Duplicate keys are resolved first-wins: an identical duplicate is
// ignored silently, a conflicting duplicate keeps the first value and
// emits a trace diagnostic. Building never fails on duplicates.
// An empty key is stored in Entries but contributes nothing to the
// length metadata.
func FromPairs(pairs []Pair) *DictMaxLen {
	d := &DictMaxLen{
		Entries:     make(map[string]string, len(pairs)),
		StarterMask: make(map[rune]uint64),
		StarterCap:  make(map[rune]uint8),
	}
	minLen := -1
	for _, p := range pairs {
		if prev, ok := d.Entries[p.Key]; ok {
			if prev != p.Value {
				tracer().Debugf("duplicate key ignored (first wins): key=%q kept=%q ignored=%q",
					p.Key, prev, p.Value)
			}
			continue
		}
		d.Entries[p.Key] = p.Value
		n := utf8.RuneCountInString(p.Key)
		if n == 0 {
			continue
		}
		starter, _ := utf8.DecodeRuneInString(p.Key)
		setLenBit(&d.KeyLenMask, n)
		mask := d.StarterMask[starter]
		setLenBit(&mask, n)
		d.StarterMask[starter] = mask
		if c := clampCap(n); c > d.StarterCap[starter] {
			d.StarterCap[starter] = c
		}
		if n > d.MaxLen {
			d.MaxLen = n
		}
		if minLen < 0 || n < minLen {
			minLen = n
		}
	}
	if minLen > 0 {
		d.MinLen = minLen
	}
	d.populateStarterIndexes()
	return d
}

// Lookup returns the replacement for the exact phrase key.
func (d *DictMaxLen) Lookup(key string) (string, bool) {
	v, ok := d.Entries[key]
	return v, ok
}

// Len returns the number of entries.
func (d *DictMaxLen) Len() int {
	return len(d.Entries)
}

// HasKeyLen reports whether any key of the given length exists.
// For lengths 1..=64 this is a single bit test; longer lengths fall
// back to the global range gate.
func (d *DictMaxLen) HasKeyLen(length int) bool {
	if length <= 0 {
		return false
	}
	if d.KeyLenMask != 0 && length <= 64 {
		return d.KeyLenMask>>uint(length-1)&1 != 0
	}
	return length >= d.MinLen && length <= d.MaxLen
}

// StarterMaskFor returns the length mask for keys starting with r, or
// 0 if no such key exists. BMP starters hit the dense table when it is
// populated.
func (d *DictMaxLen) StarterMaskFor(r rune) uint64 {
	if r >= 0 && r < bmpSize && len(d.bmpMask) == bmpSize {
		return d.bmpMask[r]
	}
	return d.StarterMask[r]
}

// StarterCapFor returns the exact per-starter maximum key length
// (clamped to 255), or 0 if no key starts with r.
func (d *DictMaxLen) StarterCapFor(r rune) uint8 {
	if r >= 0 && r < bmpSize && len(d.bmpCap) == bmpSize {
		return d.bmpCap[r]
	}
	return d.StarterCap[r]
}

// StarterAllows reports whether some key of exactly the given length
// starts with r. Lengths 1..=64 are answered by the mask alone; longer
// lengths need the saturating bit plus the exact cap.
func (d *DictMaxLen) StarterAllows(r rune, length int) bool {
	if length <= 0 {
		return false
	}
	m := d.StarterMaskFor(r)
	if m == 0 {
		return false
	}
	if length <= 64 {
		return m>>uint(length-1)&1 != 0
	}
	if m>>capBit&1 == 0 {
		return false
	}
	return int(d.StarterCapFor(r)) >= length
}

// populated reports whether the dense BMP accelerators exist.
func (d *DictMaxLen) populated() bool {
	return len(d.bmpMask) == bmpSize && len(d.bmpCap) == bmpSize
}

// populateStarterIndexes (re)builds the dense BMP accelerators from the
// sparse per-starter maps. When the sparse maps are absent (legacy
// snapshots), it falls back to a single scan over Entries, rebuilding
// the sparse maps as well. Must be called after deserialization; called
// automatically by FromPairs.
func (d *DictMaxLen) populateStarterIndexes() {
	if len(d.bmpMask) != bmpSize {
		d.bmpMask = make([]uint64, bmpSize)
	} else {
		for i := range d.bmpMask {
			d.bmpMask[i] = 0
		}
	}
	if len(d.bmpCap) != bmpSize {
		d.bmpCap = make([]uint8, bmpSize)
	} else {
		for i := range d.bmpCap {
			d.bmpCap[i] = 0
		}
	}
	if len(d.StarterMask) > 0 {
		for r, mask := range d.StarterMask {
			if r < 0 || r >= bmpSize {
				continue // astral starters stay sparse-only
			}
			d.bmpMask[r] = mask
			d.bmpCap[r] = d.StarterCap[r]
		}
		return
	}
	// Fallback: derive everything from the entry table.
	if d.StarterMask == nil {
		d.StarterMask = make(map[rune]uint64)
	}
	if d.StarterCap == nil {
		d.StarterCap = make(map[rune]uint8)
	}
	for k := range d.Entries {
		n := utf8.RuneCountInString(k)
		if n == 0 {
			continue
		}
		starter, _ := utf8.DecodeRuneInString(k)
		mask := d.StarterMask[starter]
		setLenBit(&mask, n)
		d.StarterMask[starter] = mask
		if c := clampCap(n); c > d.StarterCap[starter] {
			d.StarterCap[starter] = c
		}
		if starter >= 0 && starter < bmpSize {
			d.bmpMask[starter] = mask
			if c := clampCap(n); c > d.bmpCap[starter] {
				d.bmpCap[starter] = c
			}
		}
	}
}

// --- Length-mask helpers ----------------------------------------------

// setLenBit sets the bit for key length n (1-based) in mask, saturating
// at bit 63 for lengths >= 64.
func setLenBit(mask *uint64, n int) {
	if n <= 0 {
		return
	}
	b := n - 1
	if b > capBit {
		b = capBit
	}
	*mask |= 1 << uint(b)
}

// MaxLenFromMask returns the largest length encoded in mask (1..=64),
// or 0 for an empty mask.
func MaxLenFromMask(mask uint64) int {
	if mask == 0 {
		return 0
	}
	return 64 - bits.LeadingZeros64(mask)
}

// MinLenFromMask returns the smallest length encoded in mask (1..=64),
// or 0 for an empty mask.
func MinLenFromMask(mask uint64) int {
	if mask == 0 {
		return 0
	}
	return bits.TrailingZeros64(mask) + 1
}

func clampCap(n int) uint8 {
	if n > 0xFF {
		return 0xFF
	}
	return uint8(n)
}

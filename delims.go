package opencc

// fullDelimiters is every code point the segmenter treats as a chunk
// boundary: whitespace, ASCII punctuation, and the common fullwidth and
// vertical-form CJK punctuation marks.
const fullDelimiters = " \t\n\r!\"#$%&'()*+,-./:;<=>?@[\\]^_{}|~＝、。﹁﹂—－（）《》〈〉？！…／＼︒︑︔︓︿﹀︹︺︙︐［﹇］﹈︕︖︰︳︴︽︾︵︶｛︷｝︸﹃﹄【︻】︼　～．，；："

// DelimiterSet answers per-code-point delimiter membership in constant
// time. ASCII lives in a 128-bit mask (two words), the rest of the BMP
// in a 65,536-bit table. Astral code points are never delimiters.
//
// A HashSet would work too, but this sits in the innermost scanning
// loop and the table form is branch-predictable and allocation-free.
type DelimiterSet struct {
	asciiLo uint64 // bits for U+0000..U+003F
	asciiHi uint64 // bits for U+0040..U+007F
	bmpBits [1024]uint64
}

// NewDelimiterSet builds a set from the code points of s.
func NewDelimiterSet(s string) *DelimiterSet {
	ds := &DelimiterSet{}
	for _, r := range s {
		u := uint32(r)
		switch {
		case u < 0x40:
			ds.asciiLo |= 1 << u
		case u < 0x80:
			ds.asciiHi |= 1 << (u - 0x40)
		}
		if u <= 0xFFFF {
			ds.bmpBits[u>>6] |= 1 << (u & 63)
		}
	}
	return ds
}

// Contains reports whether r is a delimiter in this set.
func (ds *DelimiterSet) Contains(r rune) bool {
	u := uint32(r)
	if u < 0x40 {
		return ds.asciiLo>>u&1 == 1
	}
	if u < 0x80 {
		return ds.asciiHi>>(u-0x40)&1 == 1
	}
	if u <= 0xFFFF {
		return ds.bmpBits[u>>6]>>(u&63)&1 == 1
	}
	return false
}

var defaultDelimiters = NewDelimiterSet(fullDelimiters)

// IsDelimiter tests r against the default delimiter set.
func IsDelimiter(r rune) bool {
	return defaultDelimiters.Contains(r)
}

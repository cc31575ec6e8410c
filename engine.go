package opencc

import (
	"math/bits"

	"github.com/laisuk/opencc-fmmseg-sub000/dicts"
)

const capBit = 63

// forEachLenDec enumerates candidate match lengths in descending order,
// driven by a per-starter length bitmask, and stops as soon as f
// returns true.
//
// Mask layout: bit n-1 stands for length n, for n in 1..=63; bit 63 is
// the CAP bit and saturates, meaning "some length >= 64 exists". The
// exact lengths above 64 are not recoverable from the mask, so when
// capHere > 64 and the CAP bit is set, every length from capHere down
// to 65 is probed explicitly, then 64 once. After that (or when
// capHere <= 64) the set bits within 1..=min(64, capHere) are walked
// from highest to lowest. With capHere < 64 the CAP bit is ignored.
func forEachLenDec(mask uint64, capHere int, f func(length int) bool) {
	if mask == 0 || capHere == 0 {
		return
	}
	if capHere > 64 && mask&(1<<capBit) != 0 {
		for length := capHere; length >= 65; length-- {
			if f(length) {
				return
			}
		}
		if f(64) {
			return
		}
		mask &^= 1 << capBit // consumed via the >64 path
	}
	limit := capHere
	if limit > 64 {
		limit = 64
	}
	var rangeMask uint64
	if limit == 64 {
		rangeMask = ^uint64(0)
	} else {
		rangeMask = 1<<uint(limit) - 1
	}
	m := mask & rangeMask
	for m != 0 {
		bit := 63 - bits.LeadingZeros64(m)
		if f(bit + 1) {
			return
		}
		m &^= 1 << uint(bit)
	}
}

// convertSegment rewrites one delimiter-free chunk by forward maximum
// matching. At each position the union's per-starter mask and cap prune
// the candidate lengths; viable lengths are probed longest first, and
// within a length the round's dictionaries are probed in order, first
// hit wins. Unmatched code points pass through unchanged.
//
// The union must have been built from exactly the dictionaries in
// round, or pruning is unsound.
func convertSegment(chars []rune, round []*dicts.DictMaxLen, maxWordLen int, union *dicts.StarterUnion) string {
	if len(chars) == 0 {
		return ""
	}
	if len(chars) == 1 && IsDelimiter(chars[0]) {
		return string(chars[0])
	}

	multiDict := len(round) > 1
	out := borrowBuilder()
	out.Grow(len(chars) * 4)

	pos := 0
	for pos < len(chars) {
		c0 := chars[pos]
		mask, cap8 := union.Starter(c0)
		if mask == 0 || cap8 == 0 {
			out.WriteRune(c0)
			pos++
			continue
		}

		capHere := minInt(maxWordLen, len(chars)-pos)
		capHere = minInt(capHere, int(cap8))

		matched := false
		forEachLenDec(mask, capHere, func(length int) bool {
			key := "" // built lazily, once per length
			for _, d := range round {
				if !d.HasKeyLen(length) {
					continue
				}
				if multiDict && !d.StarterAllows(c0, length) {
					continue
				}
				if key == "" {
					key = string(chars[pos : pos+length])
				}
				if val, ok := d.Lookup(key); ok {
					out.WriteString(val)
					pos += length
					matched = true
					return true
				}
			}
			return false
		})

		if !matched {
			out.WriteRune(c0)
			pos++
		}
	}

	s := out.String()
	releaseBuilder(out)
	return s
}

// convertPlain is the unpruned fallback: greedy longest-first matching
// without a StarterUnion. Every length from maxWordLen down to 1 is
// tried at each position. The single-character detection passes use it,
// where building a union would cost more than it saves.
func convertPlain(chars []rune, round []*dicts.DictMaxLen, maxWordLen int) string {
	if len(chars) == 0 {
		return ""
	}
	if len(chars) == 1 && IsDelimiter(chars[0]) {
		return string(chars[0])
	}

	out := borrowBuilder()
	out.Grow(len(chars) * 4)

	pos := 0
	for pos < len(chars) {
		limit := minInt(maxWordLen, len(chars)-pos)
		matchLen := 0
		match := ""

		for length := limit; length >= 1 && matchLen == 0; length-- {
			for _, d := range round {
				if !d.HasKeyLen(length) {
					continue
				}
				if val, ok := d.Lookup(string(chars[pos : pos+length])); ok {
					matchLen = length
					match = val
					break
				}
			}
		}

		if matchLen == 0 {
			out.WriteRune(chars[pos])
			pos++
			continue
		}
		out.WriteString(match)
		pos += matchLen
	}

	s := out.String()
	releaseBuilder(out)
	return s
}

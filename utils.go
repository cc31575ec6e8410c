package opencc

// findMaxUTF8Len returns the largest byte index <= maxBytes that falls
// on a UTF-8 code-point boundary of s, so s[:n] is always valid UTF-8.
func findMaxUTF8Len(s string, maxBytes int) int {
	if len(s) <= maxBytes {
		return len(s)
	}
	n := maxBytes
	for n > 0 && s[n]&0xC0 == 0x80 {
		n--
	}
	return n
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

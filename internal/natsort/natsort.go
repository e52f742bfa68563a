// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package natsort compares strings in natural alphanumeric order: maximal
// digit runs compare by numeric value instead of character by character, so
// "genome.9" sorts before "genome.10".
package natsort

// Compare returns a negative number, zero, or a positive number as a orders
// before, equal to, or after b in natural order.
//
// Digit runs of equal numeric value but different spellings ("007" vs "7")
// fall back to a byte comparison of the runs so the order stays total:
// distinct strings never compare equal.
func Compare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigit(ca) && isDigit(cb) {
			// Compare the full digit runs numerically.
			ia, ra := digitRun(a, i)
			jb, rb := digitRun(b, j)
			if c := compareRuns(ra, rb); c != 0 {
				return c
			}
			i, j = ia, jb
			continue
		}
		if ca != cb {
			return int(ca) - int(cb)
		}
		i++
		j++
	}
	return (len(a) - i) - (len(b) - j)
}

// Less reports whether a orders before b, for use with sort.Slice.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// digitRun returns the index just past the digit run starting at i, and the
// run itself.
func digitRun(s string, i int) (int, string) {
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i, s[start:i]
}

// compareRuns compares two digit runs by numeric value. Leading zeros are
// ignored for the value comparison; if the values are equal, the shorter
// spelling (fewer leading zeros) orders first, then a plain byte compare
// settles anything left.
func compareRuns(a, b string) int {
	ta, tb := trimZeros(a), trimZeros(b)
	if len(ta) != len(tb) {
		return len(ta) - len(tb)
	}
	for i := 0; i < len(ta); i++ {
		if ta[i] != tb[i] {
			return int(ta[i]) - int(tb[i])
		}
	}
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return 0
}

func trimZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

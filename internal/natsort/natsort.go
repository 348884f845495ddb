// Package natsort implements natural-order string comparison, the page
// ordering convention of comic archives: runs of digits compare as
// numbers, so "page2" sorts before "page10".
package natsort

// Less reports whether a sorts before b in natural order. Leading zeros
// are ignored for the numeric comparison; when two runs are numerically
// equal, fewer leading zeros sorts first so the order stays total.
func Less(a, b string) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigit(ca) && isDigit(cb) {
			// Compare the full digit runs numerically.
			ia, ja := i, j
			for ia < len(a) && isDigit(a[ia]) {
				ia++
			}
			for ja < len(b) && isDigit(b[ja]) {
				ja++
			}
			ra, rb := a[i:ia], b[j:ja]
			na, nb := trimZeros(ra), trimZeros(rb)
			if len(na) != len(nb) {
				return len(na) < len(nb)
			}
			if na != nb {
				return na < nb
			}
			if len(ra) != len(rb) {
				return len(ra) < len(rb)
			}
			i, j = ia, ja
			continue
		}
		if ca != cb {
			return ca < cb
		}
		i++
		j++
	}
	return len(a)-i < len(b)-j
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func trimZeros(s string) string {
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	return s
}

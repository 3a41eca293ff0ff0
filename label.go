package sheet

// ColumnLabel returns the spreadsheet letter label for a zero-based column
// index using bijective base-26: 0 -> "A", 25 -> "Z", 26 -> "AA", 701 -> "ZZ",
// 702 -> "AAA". Negative indices yield "".
func ColumnLabel(index int) string {
	if index < 0 {
		return ""
	}
	var buf [16]byte
	i := len(buf)
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		i--
		buf[i] = byte('A' + (n-1)%26)
	}
	return string(buf[i:])
}

// ParseColumnLabel is the inverse of ColumnLabel. It accepts upper- or
// lower-case letters and reports false for anything else.
func ParseColumnLabel(label string) (int, bool) {
	if label == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(label); i++ {
		ch := label[i]
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		if ch < 'A' || ch > 'Z' {
			return 0, false
		}
		n = n*26 + int(ch-'A') + 1
		if n > 1<<40 {
			return 0, false
		}
	}
	return n - 1, true
}

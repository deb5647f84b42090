package utils

import "strconv"

// FormatPrice renders an integer price with thousand separators for log
// and CLI output, e.g. 12345 -> "12 345".
func FormatPrice(amount int) string {
	digits := strconv.Itoa(amount)
	neg := false
	if len(digits) > 0 && digits[0] == '-' {
		neg = true
		digits = digits[1:]
	}

	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, d)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// Package numeric converts the free-form text found in calculator inputs into
// numbers. Inputs carry currency glyphs, thousands separators and percent
// signs; everything but digits, '-' and '.' is discarded before parsing.
package numeric

import (
	"strconv"
	"strings"
)

// Normalize strips every character except digits, '-' and '.', then drops a
// single leading '.'.
//
// The leading-dot rule means ".56" becomes "56", not "0.56". Saved pages
// depend on that behaviour, so it is kept.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if (c >= '0' && c <= '9') || c == '-' || c == '.' {
			b.WriteByte(c)
		}
	}
	return strings.TrimPrefix(b.String(), ".")
}

// IsBlank reports whether a normalized value holds nothing once a single
// minus sign is removed. Blank values are read as zero.
func IsBlank(normalized string) bool {
	return strings.Replace(normalized, "-", "", 1) == ""
}

// ParseFloat normalizes raw and parses the longest numeric prefix, the way a
// browser's parseFloat does ("12-3" is 12, "1.2.3" is 1.2). Blank or
// unparseable input yields 0.
func ParseFloat(raw string) float64 {
	s := Normalize(raw)
	if IsBlank(s) {
		return 0
	}
	prefix := floatPrefix(s)
	if prefix == "" {
		return 0
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseInt parses the leading integer of raw after trimming surrounding
// whitespace ("30 years" is 30, "7.9" is 7). Unparseable input yields 0.
func ParseInt(raw string) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return v
}

// floatPrefix returns the longest prefix of s that forms a decimal number:
// an optional '-', digits, and at most one '.' followed by digits.
func floatPrefix(s string) string {
	end := 0
	if end < len(s) && s[end] == '-' {
		end++
	}
	intStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	intDigits := end - intStart
	fracDigits := 0
	if end < len(s) && s[end] == '.' {
		fracEnd := end + 1
		for fracEnd < len(s) && s[fracEnd] >= '0' && s[fracEnd] <= '9' {
			fracEnd++
		}
		fracDigits = fracEnd - end - 1
		if fracDigits > 0 || intDigits > 0 {
			end = fracEnd
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return ""
	}
	return strings.TrimSuffix(s[:end], ".")
}

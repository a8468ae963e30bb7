package breakpoint

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseLeadingFloat returns the longest floating point literal at the start of
// s, after leading white space, the way browsers parse a length like "40rem"
// or "1.5e2px". It returns NaN when s does not start with a number.
//
// Accepted: an optional sign, then either "Infinity" or digits with an
// optional fraction (".5" and "5." both count) and an optional exponent. An
// exponent with no digits is not part of the literal, so "1e" is 1.
func ParseLeadingFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, isLeadingSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	if strings.HasPrefix(s[end:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	intDigits := countDigits(s[end:])
	end += intDigits

	fracDigits := 0
	if end < len(s) && s[end] == '.' {
		fracDigits = countDigits(s[end+1:])
		if intDigits > 0 || fracDigits > 0 {
			end += 1 + fracDigits
		}
	}

	if intDigits == 0 && fracDigits == 0 {
		return math.NaN()
	}

	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		if n := countDigits(s[exp:]); n > 0 {
			end = exp + n
		}
	}

	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		// Out of range literals still carry a value: ±Inf or ±0.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

// isLeadingSpace matches the white space and line terminators skipped before a
// number: tab, vertical tab, form feed, the byte order mark, space separators,
// line feed, carriage return and the Unicode line and paragraph separators.
// NEL (U+0085) is not one of them.
func isLeadingSpace(r rune) bool {
	switch r {
	case '\t', '\v', '\f', '\n', '\r', '\uFEFF', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

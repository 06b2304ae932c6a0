package controls

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseFloat reads the longest numeric prefix of s, the way a browser's parseFloat does:
// "1.5abc" is 1.5, "  -2e3" is -2000, "Infinity" is +Inf, and anything without a leading
// number (including "") is NaN. Number fields rely on this so bad input becomes NaN
// instead of being rejected.
func ParseFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	n := numericPrefix(s)
	if n == 0 {
		return math.NaN()
	}
	p := s[:n]
	switch strings.TrimLeft(p, "+-") {
	case "Infinity":
		if p[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	v, err := strconv.ParseFloat(p, 64)
	if err != nil {
		// Overflow still yields ±Inf from ParseFloat; anything else is not a number.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v
		}
		return math.NaN()
	}
	return v
}

// numericPrefix returns the length of the longest prefix of s that is a decimal literal.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return i + len("Infinity")
	}
	intDigits := digits(s[i:])
	i += intDigits
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = digits(s[i+1:])
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if d := digits(s[j:]); d > 0 {
			i = j + d
		}
	}
	return i
}

func digits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

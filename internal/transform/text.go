package transform

import (
	"math"
	"strconv"
	"strings"
)

// Text serializes the 16 components in storage order, one per line.
func (m Mat4) Text() string {
	var b strings.Builder
	for i, v := range m {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(FormatNumber(v))
	}
	return b.String()
}

// FormatNumber renders v the way a JavaScript number prints: shortest round-trip digits,
// exponent form below 1e-6 and from 1e21, "NaN", "Infinity", and no negative zero.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		n, err := strconv.Atoi(exp)
		if err != nil {
			return s
		}
		if n < 0 {
			return mant + "e-" + strconv.Itoa(-n)
		}
		return mant + "e+" + strconv.Itoa(n)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package plot

import (
	"math"
	"strconv"
)

// SI prefixes by base-1000 exponent, exa down to atto.
var siPrefixes = map[int]string{
	18:  "E",
	15:  "P",
	12:  "T",
	9:   "G",
	6:   "M",
	3:   "k",
	0:   "",
	-3:  "m",
	-6:  "u",
	-9:  "n",
	-12: "p",
	-15: "f",
	-18: "a",
}

// Supported base-1000 exponent range. Values outside it are clamped to
// the nearest prefix, trading precision for a printable result.
const (
	maxSIExponent = 18
	minSIExponent = -18
)

// Format renders v with a base-1000 SI prefix and the given unit symbol
// using three significant digits, e.g. Format(1500, "B") == "1.5kB".
// Zero is returned verbatim as "0"+unit with no prefix.
func Format(v float64, unit string) string {
	return formatUnit(v, unit, 3)
}

// FormatWidth renders v like Format but budgets the result to width
// characters by reducing precision: one column for a leading minus, two
// for the mantissa/prefix overhead, and len(unit) for the unit symbol.
// At least one significant digit is always kept.
func FormatWidth(v float64, unit string, width int) string {
	prec := width - 2 - len(unit)
	if v < 0 {
		prec--
	}
	if prec < 1 {
		prec = 1
	}
	return formatUnit(v, unit, prec)
}

func formatUnit(v float64, unit string, prec int) string {
	if v == 0 {
		return "0" + unit
	}

	// Round to the requested significant digits before deriving the
	// exponent, so a carry across a power of ten (999.6 -> 1000) also
	// shifts the prefix (-> "1k").
	v = roundSig(v, prec)

	exp := 3 * int(math.Floor(math.Log10(math.Abs(v))/3))
	if exp > maxSIExponent {
		exp = maxSIExponent
	}
	if exp < minSIExponent {
		exp = minSIExponent
	}

	mant := v / math.Pow(10, float64(exp))
	return strconv.FormatFloat(mant, 'g', prec, 64) + siPrefixes[exp] + unit
}

// roundSig rounds v to prec significant digits by round-tripping through
// the shortest 'g' representation at that precision.
func roundSig(v float64, prec int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', prec, 64), 64)
	if err != nil {
		return v
	}
	return r
}

package components

import (
	"strconv"
	"strings"
)

// FormatNumber formats an integer with comma separators (e.g. 1,234,567).
func FormatNumber(n int) string {
	negative := n < 0
	if negative {
		n = -n
	}
	s := groupDigits(strconv.Itoa(n))
	if negative {
		return "-" + s
	}
	return s
}

// FormatFloat formats v with the given number of decimals and grouped
// thousands (e.g. 12,345.60).
func FormatFloat(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	out := sign + groupDigits(intPart)
	if hasFrac {
		out += "." + frac
	}
	return out
}

// FormatMoney formats an amount in yuan with two decimals.
func FormatMoney(v float64) string {
	if v < 0 {
		return "-¥" + FormatFloat(-v, 2)
	}
	return "¥" + FormatFloat(v, 2)
}

// FormatOdometer drops the fraction for whole kilometres.
func FormatOdometer(v float64) string {
	if v == float64(int64(v)) {
		return FormatFloat(v, 0)
	}
	return FormatFloat(v, 1)
}

func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}
	var result []byte
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, s[i])
	}
	return string(result)
}

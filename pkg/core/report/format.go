package report

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCurrency renders a figure in millions, e.g. "$4,200.0M".
func FormatCurrency(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 1, 64)
	dot := strings.IndexByte(s, '.')
	return sign + "$" + groupThousands(s[:dot]) + s[dot:] + "M"
}

// FormatPercentFromDecimal renders a decimal fraction as a percentage,
// e.g. 0.205 -> "20.5%".
func FormatPercentFromDecimal(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100.0)
}

// FormatPoints renders a percentage-point delta with an explicit sign,
// e.g. "+0.50 p.p.".
func FormatPoints(v float64) string {
	sign := "+"
	if v < 0 {
		sign = ""
	}
	return fmt.Sprintf("%s%.2f p.p.", sign, v)
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

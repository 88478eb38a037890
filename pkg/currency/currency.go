// Package currency formats monetary amounts for display. The same formatter
// is injected into the interactive page and the PDF export, so the two
// render paths cannot drift apart.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Symbol is the single currency this system renders.
const Symbol = "₹"

// Format renders an amount as "₹ #,##0.00", e.g. "₹ 1,234.50".
func Format(d decimal.Decimal) string {
	s := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	b.WriteString(Symbol)
	b.WriteByte(' ')
	b.WriteString(sign)
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteString(fracPart)
	return b.String()
}

package service

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ItemInput is one normalized line-item row, before tax calculation.
type ItemInput struct {
	Description string
	HSN         string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal
}

// FlexList accepts a JSON scalar or a JSON list for the same field, so a
// single-row and a multi-row submission share one field name. A scalar
// becomes a list of length 1 before any downstream logic runs.
type FlexList []string

func (f *FlexList) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*f = nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, e := range v {
			out = append(out, scalarString(e))
		}
		*f = out
	default:
		*f = []string{scalarString(v)}
	}
	return nil
}

func scalarString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	case nil:
		return ""
	default:
		b, _ := json.Marshal(s)
		return string(b)
	}
}

// --- Interface ---

type ItemService interface {
	NormalizeItems(fields url.Values) []ItemInput
}

type itemService struct{}

func NewItemService() ItemService {
	return &itemService{}
}

// --- Implementation ---

// NormalizeItems converts raw submitted fields into an ordered sequence of
// line-item rows. The description field drives the row count; hsn, qty,
// price and taxRate are read as parallel lists indexed identically, with
// missing entries defaulting to empty text or zero. A submission with no
// description values yields exactly one row from the scalar reads. The
// result preserves submission order and the call never fails.
func (s *itemService) NormalizeItems(fields url.Values) []ItemInput {
	n := len(fields["description"])
	if n == 0 {
		n = 1
	}

	items := make([]ItemInput, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, ItemInput{
			Description: valueAt(fields["description"], i),
			HSN:         valueAt(fields["hsn"], i),
			Quantity:    parseDecimal(valueAt(fields["qty"], i)),
			UnitPrice:   parseDecimal(valueAt(fields["price"], i)),
			TaxRate:     parseDecimal(valueAt(fields["taxRate"], i)),
		})
	}
	return items
}

// --- Helpers ---

func valueAt(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

// parseDecimal is permissive on purpose: non-numeric or missing input
// coerces to zero and must never fail the request.
func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

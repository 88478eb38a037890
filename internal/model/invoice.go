package model

import "github.com/shopspring/decimal"

// LineItem is one row of the invoice. Taxable, TaxAmount and Total are
// derived from Quantity/UnitPrice/TaxRate by the tax service and are never
// accepted from the submission directly.
type LineItem struct {
	Description string          `json:"description"`
	HSN         string          `json:"hsn"` // tax classification code, carried as opaque text
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"` // percentage, e.g. 18
	Taxable     decimal.Decimal `json:"taxable"`  // quantity * unit_price, full precision
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	Total       decimal.Decimal `json:"total"`
}

// Company is the issuing party shown in the invoice header.
type Company struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	GSTIN        string `json:"gstin"`
	Phone        string `json:"phone"`
}

// Customer is the billed party.
type Customer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin"`
}

// Bank holds the payment details printed in the invoice footer.
type Bank struct {
	Name    string `json:"name"`
	Account string `json:"account"`
	IFSC    string `json:"ifsc"`
}

// Invoice is the assembled record consumed by both the interactive page and
// the PDF export. It is built once per submission and never mutated after
// assembly. Date and DueDate are stored as already-formatted text.
type Invoice struct {
	InvoiceNo string `json:"invoice_no"`
	Date      string `json:"date"`
	DueDate   string `json:"due_date"`

	Company  Company  `json:"company"`
	Customer Customer `json:"customer"`

	// Items keep submission order; the order is significant for display.
	Items []LineItem `json:"items"`

	SubTotal   decimal.Decimal `json:"sub_total"`   // sum of unrounded taxable values
	TotalTax   decimal.Decimal `json:"total_tax"`   // sum of per-item rounded tax amounts
	GrandTotal decimal.Decimal `json:"grand_total"` // round2(sub_total + total_tax)

	Bank Bank `json:"bank"`
}

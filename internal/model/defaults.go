package model

// Defaults applied by the invoice service when a submitted field is missing.
// Kept in one table so the fallback behavior stays auditable.
const (
	DefaultCompanyName  = "AK ENTERPRISES"
	DefaultAddressLine1 = "Plot No. ..."

	// InvoiceNoPrefix prefixes the generated invoice number; the suffix is
	// the current unix-millisecond timestamp.
	InvoiceNoPrefix = "INV-"

	// DateLayout renders dates as DD-MMM-YYYY, e.g. 15-Jan-2025.
	DateLayout = "02-Jan-2006"

	// DueDateOffsetDays is added to today when no due date is submitted.
	DueDateOffsetDays = 15

	// DefaultPDFName names the download when no invoice number was submitted.
	DefaultPDFName = "invoice"
)

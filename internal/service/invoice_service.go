package service

import (
	"net/url"
	"strconv"
	"time"

	"invoicegen/internal/model"
)

// --- DTOs ---

// InvoiceRequest is the JSON shape of the preview API. The line-item fields
// accept a scalar or a list; the HTML form posts the same field names as
// repeated values. Both surfaces flatten into one url.Values pipeline.
type InvoiceRequest struct {
	Description FlexList `json:"description"`
	HSN         FlexList `json:"hsn"`
	Qty         FlexList `json:"qty"`
	Price       FlexList `json:"price"`
	TaxRate     FlexList `json:"taxRate"`

	// InvoiceNo is a pointer so that an absent field and an explicit empty
	// string stay distinguishable; only absence triggers the generated id.
	InvoiceNo *string `json:"invoiceNo"`
	Date      string  `json:"date"`
	DueDate   string  `json:"dueDate"`

	CompanyName  string `json:"companyName"`
	Address1     string `json:"address1"`
	Address2     string `json:"address2"`
	GSTIN        string `json:"gstin"`
	CompanyPhone string `json:"companyPhone"`

	CustomerName    string `json:"customerName"`
	CustomerAddress string `json:"customerAddress"`
	CustomerGSTIN   string `json:"customerGstin"`

	BankName    string `json:"bankName"`
	BankAccount string `json:"bankAccount"`
	BankIFSC    string `json:"bankIfsc"`
}

// Values flattens the request into the form-field shape consumed by
// BuildInvoice.
func (r InvoiceRequest) Values() url.Values {
	v := url.Values{}

	addList := func(key string, list FlexList) {
		for _, e := range list {
			v.Add(key, e)
		}
	}
	addList("description", r.Description)
	addList("hsn", r.HSN)
	addList("qty", r.Qty)
	addList("price", r.Price)
	addList("taxRate", r.TaxRate)

	if r.InvoiceNo != nil {
		v.Set("invoiceNo", *r.InvoiceNo)
	}

	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	set("date", r.Date)
	set("dueDate", r.DueDate)
	set("companyName", r.CompanyName)
	set("address1", r.Address1)
	set("address2", r.Address2)
	set("gstin", r.GSTIN)
	set("companyPhone", r.CompanyPhone)
	set("customerName", r.CustomerName)
	set("customerAddress", r.CustomerAddress)
	set("customerGstin", r.CustomerGSTIN)
	set("bankName", r.BankName)
	set("bankAccount", r.BankAccount)
	set("bankIfsc", r.BankIFSC)

	return v
}

// --- Interface ---

type InvoiceService interface {
	BuildInvoice(fields url.Values) model.Invoice
}

type invoiceService struct {
	items ItemService
	tax   TaxService
	now   func() time.Time
}

func NewInvoiceService(items ItemService, tax TaxService) InvoiceService {
	return &invoiceService{items: items, tax: tax, now: time.Now}
}

// NewInvoiceServiceWithClock pins the clock, the only source of
// non-determinism in assembly, so tests get stable invoice numbers and dates.
func NewInvoiceServiceWithClock(items ItemService, tax TaxService, now func() time.Time) InvoiceService {
	return &invoiceService{items: items, tax: tax, now: now}
}

// --- Implementation ---

// BuildInvoice normalizes, calculates and assembles one immutable invoice
// record. It is total over its input domain: malformed fields degrade to
// defaults, never to an error. The invoice number falls back to a generated
// timestamp id only when the field is absent from the submission; a
// present-but-empty value passes through as given. All other textual fields
// take their default whenever the submitted value is empty.
func (s *invoiceService) BuildInvoice(fields url.Values) model.Invoice {
	items, totals := s.tax.CalculateItems(s.items.NormalizeItems(fields))
	now := s.now()

	invoiceNo := fields.Get("invoiceNo")
	if !fields.Has("invoiceNo") {
		invoiceNo = model.InvoiceNoPrefix + strconv.FormatInt(now.UnixMilli(), 10)
	}

	return model.Invoice{
		InvoiceNo: invoiceNo,
		Date:      defaultIfEmpty(fields.Get("date"), now.Format(model.DateLayout)),
		DueDate:   defaultIfEmpty(fields.Get("dueDate"), now.AddDate(0, 0, model.DueDateOffsetDays).Format(model.DateLayout)),
		Company: model.Company{
			Name:         defaultIfEmpty(fields.Get("companyName"), model.DefaultCompanyName),
			AddressLine1: defaultIfEmpty(fields.Get("address1"), model.DefaultAddressLine1),
			AddressLine2: fields.Get("address2"),
			GSTIN:        fields.Get("gstin"),
			Phone:        fields.Get("companyPhone"),
		},
		Customer: model.Customer{
			Name:    fields.Get("customerName"),
			Address: fields.Get("customerAddress"),
			GSTIN:   fields.Get("customerGstin"),
		},
		Items:      items,
		SubTotal:   totals.SubTotal,
		TotalTax:   totals.TotalTax,
		GrandTotal: totals.GrandTotal,
		Bank: model.Bank{
			Name:    fields.Get("bankName"),
			Account: fields.Get("bankAccount"),
			IFSC:    fields.Get("bankIfsc"),
		},
	}
}

func defaultIfEmpty(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

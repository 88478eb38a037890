package handler

import (
	"log"
	"net/http"
	"strconv"

	"invoicegen/internal/model"
	"invoicegen/internal/pdf"
	"invoicegen/internal/render"
	"invoicegen/internal/service"
	"invoicegen/pkg/response"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
	renderer       render.Renderer
	exporter       pdf.Exporter
}

func NewInvoiceHandler(invoiceService service.InvoiceService, renderer render.Renderer, exporter pdf.Exporter) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		renderer:       renderer,
		exporter:       exporter,
	}
}

func (h *InvoiceHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", h.ShowForm)
	router.POST("/invoice", h.RenderInvoice)
	router.POST("/invoice/pdf", h.DownloadPDF)

	api := router.Group("/api/invoices")
	{
		api.POST("/preview", h.PreviewInvoice)
	}
}

// ShowForm serves the invoice entry form
func (h *InvoiceHandler) ShowForm(c *gin.Context) {
	html, err := h.renderer.RenderForm()
	if err != nil {
		log.Printf("form render failed: %v", err)
		c.String(http.StatusInternalServerError, "Error rendering form")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// RenderInvoice builds the invoice from the submitted form and renders it
// as a viewable page
func (h *InvoiceHandler) RenderInvoice(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "Invalid form submission")
		return
	}

	inv := h.invoiceService.BuildInvoice(c.Request.PostForm)

	html, err := h.renderer.RenderInvoice(inv)
	if err != nil {
		log.Printf("invoice render failed: %v", err)
		c.String(http.StatusInternalServerError, "Error rendering invoice")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// DownloadPDF builds the invoice, renders the same HTML as the interactive
// page and serializes it through the export pipeline. Every failure past
// form parsing collapses into one generic 500 with no partial output; the
// cause is only logged server-side.
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "Invalid form submission")
		return
	}
	fields := c.Request.PostForm

	inv := h.invoiceService.BuildInvoice(fields)

	html, err := h.renderer.RenderInvoice(inv)
	if err != nil {
		log.Printf("pdf render failed: %v", err)
		c.String(http.StatusInternalServerError, "Error generating PDF")
		return
	}

	data, err := h.exporter.Export(c.Request.Context(), html)
	if err != nil {
		log.Printf("pdf export failed: %v", err)
		c.String(http.StatusInternalServerError, "Error generating PDF")
		return
	}

	// The download is named from the submitted invoice number, not the
	// generated one.
	name := fields.Get("invoiceNo")
	if name == "" {
		name = model.DefaultPDFName
	}

	c.Header("Content-Disposition", "attachment; filename="+name+".pdf")
	c.Header("Content-Length", strconv.Itoa(len(data)))
	c.Data(http.StatusOK, "application/pdf", data)
}

// PreviewInvoice computes an invoice without rendering it
// @Summary      Preview invoice
// @Description  Normalizes line items, computes taxes and totals, and returns the assembled invoice record
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        payload  body      service.InvoiceRequest  true  "Invoice fields; line-item fields accept a scalar or a list"
// @Success      200      {object}  response.Response{data=model.Invoice}
// @Failure      400      {object}  response.Response
// @Router       /api/invoices/preview [post]
func (h *InvoiceHandler) PreviewInvoice(c *gin.Context) {
	var req service.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	inv := h.invoiceService.BuildInvoice(req.Values())

	c.JSON(http.StatusOK, response.Success(http.StatusOK, inv))
}

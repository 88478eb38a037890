package main

import (
	_ "invoicegen/api/swagger" // swagger docs
	"invoicegen/internal/handler"
	"invoicegen/internal/middleware"
	"invoicegen/internal/pdf"
	"invoicegen/internal/render"
	"invoicegen/internal/service"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Invoice Generator API
// @version         1.0
// @description     Computes tax invoices from form submissions and exports them as A4 PDF documents.
// @host            localhost:8080
// @BasePath        /
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	templatesDir := os.Getenv("TEMPLATES_DIR")
	if templatesDir == "" {
		templatesDir = "templates"
	}
	publicDir := os.Getenv("PUBLIC_DIR")
	if publicDir == "" {
		publicDir = "public"
	}

	pdfTimeout := pdf.DefaultTimeout
	if v := os.Getenv("PDF_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			pdfTimeout = time.Duration(secs) * time.Second
		}
	}

	renderer, err := render.New(templatesDir)
	if err != nil {
		log.Fatalf("Template parsing failed: %v", err)
	}

	// Set up dependencies (Service -> Handler)
	itemService := service.NewItemService()
	taxService := service.NewTaxService()
	invoiceService := service.NewInvoiceService(itemService, taxService)
	exporter := pdf.NewChromeExporter(pdfTimeout)

	// Initialize Handlers
	invoiceHandler := handler.NewInvoiceHandler(invoiceService, renderer, exporter)

	// Set up Gin Router
	router := gin.Default()
	router.Use(middleware.RequestID())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Static assets used by the invoice templates
	router.Static("/public", publicDir)

	// Register API Routes
	invoiceHandler.RegisterRoutes(router.Group(""))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

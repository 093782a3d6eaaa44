package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vojniknikola-ui/strojopromet-api/gateway"
	"github.com/vojniknikola-ui/strojopromet-api/invoice"
	"github.com/vojniknikola-ui/strojopromet-api/mailer"
	"github.com/vojniknikola-ui/strojopromet-api/models"
	"github.com/vojniknikola-ui/strojopromet-api/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Part{},
		&models.Category{},
		&models.CartRecord{},
		&models.Invoice{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Blob tier is optional: when it is down the gateway falls back to the
	// relational tier, so startup continues without it.
	var blob gateway.BlobTier
	if store, err := gateway.NewBlobStore(
		os.Getenv("REDIS_ADDR"),
		os.Getenv("REDIS_PASSWORD"),
		"blob",
	); err != nil {
		log.Printf("⚠️ Blob store unavailable, carts persist to the relational tier only: %v", err)
	} else {
		blob = store
	}

	gw := gateway.NewGateway(blob, gateway.NewCartTable(db))

	operatorEmail := os.Getenv("OPERATOR_EMAIL")
	var invoiceMailer invoice.Mailer
	if m := mailer.NewFromEnv(); m != nil {
		invoiceMailer = m
	} else {
		log.Println("⚠️ SMTP not configured, invoice email delivery disabled")
	}
	invoices := invoice.NewService(db, invoiceMailer, operatorEmail)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		DB:         db,
		Gateway:    gw,
		Invoices:   invoices,
		StorePhone: os.Getenv("STORE_PHONE"),
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

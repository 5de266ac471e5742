package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"

	"katalog/internal/handlers"
	"katalog/internal/intake"
	"katalog/internal/repositories"
	"katalog/internal/services"
	"katalog/pkg/rabbitmq"
)

// Config holds the startup configuration of the mock backend.
type Config struct {
	StoreFile   string // path of the JSON document store file
	StoreDriver string // "json" (default) or "gorm"
	DatabaseDSN string // GORM DSN, only used when StoreDriver is "gorm"
	UploadDir   string // where product images are written
	PublicDir   string // static file root, uploads live beneath it
}

// NewApp wires the store, services and handlers into a Fiber app. The event
// publisher may be nil, which disables catalog eventing.
func NewApp(cfg Config, publisher services.EventPublisher) (*fiber.App, error) {
	// The document store always exists; it backs the generic collection
	// routes even when products are kept in a GORM database.
	store, err := repositories.NewDocumentStore(cfg.StoreFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}

	var productRepo repositories.ProductRepository
	switch cfg.StoreDriver {
	case "", "json":
		productRepo = repositories.NewDocumentProductRepository(store)
	case "gorm":
		db, err := repositories.OpenGORM(cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		productRepo = repositories.NewGORMProductRepository(db)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	productService := services.NewProductService(productRepo, publisher)
	productHandler := handlers.NewProductHandler(productService, cfg.UploadDir)
	resourceHandler := handlers.NewResourceHandler(store)

	app := fiber.New()

	// Default middlewares: request logger, CORS, no-cache, static files.
	// Same set json-server ships with.
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-cache")
		return c.Next()
	})
	if cfg.PublicDir != "" {
		app.Static("/", cfg.PublicDir)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Product routes first so POST /products keeps its intake pipeline; the
	// generic collection routes catch everything else.
	productHandler.RegisterRoutes(app)
	resourceHandler.RegisterRoutes(app)

	return app, nil
}

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("STORE_FILE", "db.json")
	viper.SetDefault("STORE_DRIVER", "json")
	viper.SetDefault("DATABASE_DSN", "katalog.db")
	viper.SetDefault("UPLOAD_DIR", intake.DefaultUploadDir)
	viper.SetDefault("PUBLIC_DIR", "public")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	cfg := Config{
		StoreFile:   viper.GetString("STORE_FILE"),
		StoreDriver: viper.GetString("STORE_DRIVER"),
		DatabaseDSN: viper.GetString("DATABASE_DSN"),
		UploadDir:   viper.GetString("UPLOAD_DIR"),
		PublicDir:   viper.GetString("PUBLIC_DIR"),
	}

	// The upload directory must exist before the first request; failing to
	// create it means the server must not start.
	if err := intake.EnsureDir(cfg.UploadDir); err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	// --- Initialize RabbitMQ Client (optional) ---
	var publisher services.EventPublisher
	var mqClient *rabbitmq.Client
	if rabbitMQURL := viper.GetString("RABBITMQ_URL"); rabbitMQURL != "" {
		var err error
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		log.Println("RABBITMQ_URL not set, catalog eventing disabled.")
	}

	app, err := NewApp(cfg, publisher)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	// --- Start RabbitMQ Consumer in a Goroutine ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for catalog events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received Catalog Event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeCatalogEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	appPort := viper.GetString("APP_PORT")
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

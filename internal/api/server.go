package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/tmapay/escrow_service/config"
	"github.com/tmapay/escrow_service/infra/queue"
	"github.com/tmapay/escrow_service/internal/api/rest/handlers"
	"github.com/tmapay/escrow_service/internal/interfaces"
	"github.com/tmapay/escrow_service/internal/repository"
	"github.com/tmapay/escrow_service/internal/services"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	// ---------- DB ----------
	db, err := OpenDatabase(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Infra ----------
	producer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)
	if cfg.KafkaBroker != "" {
		log.Printf("kafka producer ready, topic %q", cfg.KafkaTopic)
	}

	app := NewApp(db, producer)
	app.Static("/", cfg.StaticDir)

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("escrow prototype listening on", addr)
	log.Fatal(app.Listen(addr))
}

// NewApp wires repositories, services, and routes onto a Fiber app. Split
// from StartServer so tests can run the full HTTP surface in-process.
func NewApp(db *gorm.DB, producer interfaces.ProducerHandler) *fiber.App {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	txRepo := repository.NewTransactionRepository(db)
	flaggedRepo := repository.NewFlaggedBVNRepository(db)
	supportRepo := repository.NewSupportRepository(db)

	// ---------- Services ----------
	accountSvc := services.NewAccountService(userRepo, flaggedRepo, producer)
	escrowSvc := services.NewEscrowService(txRepo, userRepo, flaggedRepo, producer)
	supportSvc := services.NewSupportService(supportRepo, producer)

	// ---------- Handlers ----------
	handlers.NewUserHandler(accountSvc).SetupRoutes(app)
	handlers.NewTransactionHandler(escrowSvc).SetupRoutes(app)
	handlers.NewSupportHandler(supportSvc).SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return app
}

// OpenDatabase picks the store from the DSN. Empty means the in-memory
// SQLite database: all state lives and dies with the process.
func OpenDatabase(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	}

	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
}

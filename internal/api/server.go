package api

import (
	"log"

	"github.com/bepp-pmpa/sigpen-backend/config"
	"github.com/bepp-pmpa/sigpen-backend/infra/queue"
	"github.com/bepp-pmpa/sigpen-backend/internal/api/rest/handlers"
	"github.com/bepp-pmpa/sigpen-backend/internal/domain"
	"github.com/bepp-pmpa/sigpen-backend/internal/helper"
	"github.com/bepp-pmpa/sigpen-backend/internal/interfaces"
	"github.com/bepp-pmpa/sigpen-backend/internal/repository"
	"github.com/bepp-pmpa/sigpen-backend/internal/services"
	"github.com/bepp-pmpa/sigpen-backend/pkg/cloudinary"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.BaseURL,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260815

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.Presidiario{},
		&domain.Transferencia{},
		&domain.Ocorrencia{},
		&domain.SaudePsicologia{},
		&domain.Visita{},
		&domain.Profile{},
		&domain.UserRole{},
		&domain.LogSistema{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)

	var up interfaces.Uploader
	if cfg.CloudinaryURL != "" {
		cld, err := cloudinary.New()
		if err != nil {
			log.Fatalf("cloudinary init error: %v", err)
		}
		up = cloudinary.NewCloudinaryUploader(cld)
	} else {
		log.Println("CLOUDINARY_URL not set - foto upload disabled")
	}

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	presidiarioRepo := repository.NewPresidiarioRepository(db)
	transferenciaRepo := repository.NewTransferenciaRepository(db)
	ocorrenciaRepo := repository.NewOcorrenciaRepository(db)
	saudeRepo := repository.NewSaudeRepository(db)
	visitaRepo := repository.NewVisitaRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	logRepo := repository.NewLogRepository(db)

	// ---------- Services ----------
	audit := services.NewAuditTrail(logRepo, kafkaProducer)
	userSvc := services.NewUserService(profileRepo, authHelper, cfg.SuperAdminEmail, audit)
	presidiarioSvc := services.NewPresidiarioService(
		presidiarioRepo,
		transferenciaRepo,
		ocorrenciaRepo,
		saudeRepo,
		visitaRepo,
		up,
		audit,
	)
	registroSvc := services.NewRegistroService(
		presidiarioRepo,
		transferenciaRepo,
		ocorrenciaRepo,
		saudeRepo,
		visitaRepo,
		audit,
	)
	statsSvc := services.NewStatsService(presidiarioRepo, ocorrenciaRepo, saudeRepo)
	relatorioSvc := services.NewRelatorioService(presidiarioRepo, audit)

	// ---------- Handlers ----------
	handlers.NewUserHandler(userSvc, authHelper).SetupRoutes(app)
	handlers.NewPresidiarioHandler(presidiarioSvc, userSvc, authHelper).SetupRoutes(app)
	handlers.NewRegistrosHandler(registroSvc, userSvc, authHelper).SetupRoutes(app)
	handlers.NewDashboardHandler(statsSvc, authHelper).SetupRoutes(app)
	handlers.NewRelatorioHandler(relatorioSvc, authHelper).SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}

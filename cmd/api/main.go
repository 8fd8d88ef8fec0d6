package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"greenfood-api/internal/config"
	"greenfood-api/internal/handler"
	"greenfood-api/internal/logger"
	"greenfood-api/internal/middleware"
	"greenfood-api/internal/model"
	"greenfood-api/internal/repository"
	"greenfood-api/internal/service"
	"greenfood-api/internal/ws"
	"greenfood-api/pkg/database"
	"greenfood-api/pkg/token"
	"greenfood-api/pkg/upload"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

func main() {
	// 1. Load Config
	cfg := config.Load()
	log := logger.New()

	// 2. Setup Database
	client, db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := database.EnsureIndexes(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("failed to create indexes")
		}
		cancel()
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	tokens := token.NewManager(cfg.JWTSecret)
	uploads, err := upload.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare upload directory")
	}

	userRepo := repository.NewUserRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	topupRepo := repository.NewTopupRepo(db)
	settingRepo := repository.NewSettingRepo(db)

	authService := service.NewAuthService(userRepo, tokens, log)
	catalogService := service.NewCatalogService(categoryRepo, productRepo, log)
	orderService := service.NewOrderService(orderRepo, userRepo, wsHub, log)
	walletService := service.NewWalletService(topupRepo, userRepo, wsHub, log)
	settingsService := service.NewSettingsService(settingRepo, log)

	authHandler := handler.NewAuthHandler(authService, log)
	catalogHandler := handler.NewCatalogHandler(catalogService, uploads, log)
	orderHandler := handler.NewOrderHandler(orderService, log)
	walletHandler := handler.NewWalletHandler(walletService, uploads, log)
	settingsHandler := handler.NewSettingsHandler(settingsService, uploads, log)
	systemHandler := handler.NewSystemHandler(cfg.AppName, db)

	// 5. Seed default admin
	seedAdmin(cfg, userRepo, log)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: cfg.AppName,
	})

	app.Use(fiberlogger.New()) // Request logging
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS

	requireAuth := middleware.RequireAuth(tokens, authService)
	optionalAuth := middleware.OptionalAuth(tokens, authService)
	requireAdmin := middleware.RequireAdmin()

	// 7. Routes
	app.Get("/", systemHandler.Root)
	app.Get("/schema", systemHandler.Schema)
	app.Get("/test", systemHandler.Test)

	app.Post("/auth/register", authHandler.Register)
	app.Post("/auth/login", middleware.RateLimit(rate.Every(time.Second), 5), authHandler.Login)
	app.Get("/me", requireAuth, authHandler.Me)

	app.Get("/categories", catalogHandler.GetCategories)
	app.Post("/categories", requireAuth, requireAdmin, catalogHandler.CreateCategory)
	app.Get("/products", catalogHandler.GetProducts)
	app.Post("/products", requireAuth, requireAdmin, catalogHandler.CreateProduct)

	app.Post("/orders", optionalAuth, orderHandler.CreateOrder)
	app.Get("/orders/:id", orderHandler.GetOrder)
	app.Get("/orders/:id/invoice", orderHandler.GetInvoice)

	app.Post("/wallet/topup-request", requireAuth, walletHandler.RequestTopup)
	app.Get("/wallet", requireAuth, walletHandler.GetWallet)
	app.Get("/admin/topup-requests", requireAuth, requireAdmin, walletHandler.ListTopups)
	app.Post("/admin/topup-requests/:id/approve", requireAuth, requireAdmin, walletHandler.ApproveTopup)
	app.Post("/admin/topup-requests/:id/reject", requireAuth, requireAdmin, walletHandler.RejectTopup)

	app.Get("/settings/qris", settingsHandler.GetQris)
	app.Post("/settings/qris", requireAuth, requireAdmin, settingsHandler.SetQris)

	// Uploaded content served back by relative URL
	app.Static("/"+cfg.UploadDir, cfg.UploadDir)

	// WebSocket admin event feed
	app.Use("/ws/admin", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws/admin", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}

// seedAdmin creates the default admin account if it doesn't exist. Role
// escalation has no API surface, so the seed (or the promote-admin CLI)
// is the only way an admin comes to exist.
func seedAdmin(cfg config.Config, userRepo repository.UserRepository, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admin := &model.User{
		Name:     "Administrator",
		Email:    cfg.AdminEmail,
		Role:     model.RoleAdmin,
		Balance:  0,
		IsActive: true,
	}
	if err := admin.SetPassword(cfg.AdminPassword); err != nil {
		log.Warn().Err(err).Msg("failed to hash admin password")
		return
	}

	if _, err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return
		}
		log.Warn().Err(err).Msg("failed to seed admin user")
		return
	}
	log.Info().Str("email", cfg.AdminEmail).Msg("admin user created")
}

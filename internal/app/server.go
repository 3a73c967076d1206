package app

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"casino-platform/internal/admin"
	"casino-platform/internal/audit"
	"casino-platform/internal/casino"
	"casino-platform/internal/config"
	"casino-platform/internal/db"
	"casino-platform/internal/event"
	"casino-platform/internal/games"
	"casino-platform/internal/jobs"
	"casino-platform/internal/ledger"
	"casino-platform/internal/logger"
	"casino-platform/internal/monitoring"
	"casino-platform/internal/ratelimit"
	"casino-platform/internal/security"
	"casino-platform/internal/wallet"
	"casino-platform/internal/ws"
)

type Server struct {
	app  *fiber.App
	jobs *jobs.Manager
	port string
}

func NewServer() (*Server, error) {
	cfg := config.Load()
	logger.Init()
	monitoring.Init()

	database, err := db.Init(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	bus := event.NewBus()
	hub := ws.NewHub()

	walletService := wallet.New(database)
	ledgerService := ledger.New(database)
	auditService := audit.New(database)
	engine := games.New(nil)

	casinoService := casino.NewService(database, engine, walletService, ledgerService, bus)
	adminService := admin.NewService(database, walletService, ledgerService, casinoService, auditService, bus)

	casino.RegisterConsumers(bus, hub)
	admin.RegisterConsumers(bus, hub)

	window := ratelimit.Window{Limit: cfg.BetRateLimit, Period: time.Minute}
	var limiter ratelimit.Limiter
	if cfg.RedisAddr != "" {
		limiter = ratelimit.NewRedis(cfg.RedisAddr, window)
	} else {
		limiter = ratelimit.NewMemory(window)
	}
	betGuard := ratelimit.Middleware(limiter, func(c *fiber.Ctx) string {
		if uid, ok := c.Locals("uid").(string); ok {
			return uid
		}
		return c.IP()
	})

	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/ws", websocket.New(hub.Handler))

	api := app.Group("/api", security.APIKeyGuard(cfg.APIKey))
	wallet.RegisterRoutes(api, walletService)

	user := api.Group("", security.UserGuard())
	casino.RegisterRoutes(user, casinoService, betGuard)

	adminGroup := app.Group("/api/admin", security.AdminGuard(cfg.AdminToken))
	admin.RegisterRoutes(adminGroup, adminService)

	manager := jobs.New()
	manager.Register(jobs.NewDailyStats(casinoService.Stats(), walletService))

	return &Server{app: app, jobs: manager, port: cfg.Port}, nil
}

func (s *Server) Start(ctx context.Context) error {
	go s.jobs.Start(ctx)

	go func() {
		<-ctx.Done()
		s.app.Shutdown()
	}()

	return s.app.Listen(":" + s.port)
}

package main

import (
	"context"
	"log"
	"os"
	"runtime"

	"backend-enrollment/internal/config"
	"backend-enrollment/internal/http/handler"
	"backend-enrollment/internal/http/middleware"
	"backend-enrollment/internal/metrics"
	"backend-enrollment/internal/notify"
	"backend-enrollment/internal/queue"
	"backend-enrollment/internal/realtime"
	"backend-enrollment/internal/registry"
	"backend-enrollment/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	app := fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
	})

	config.LoadEnv()
	if err := config.CheckRequiredEnv(); err != nil {
		log.Fatal("Konfigurasi tidak lengkap: ", err)
	}
	config.InitRedis()
	config.InitDB()
	defer config.CloseDB()

	adminRepo := repository.NewAdminRepo(config.DB)
	ticketRepo := repository.NewTicketRepo(config.DB)

	// Skema dibuat idempoten setiap startup
	ctx := context.Background()
	if err := adminRepo.InitTable(ctx); err != nil {
		log.Fatal("Gagal init tabel admins:", err)
	}
	if err := ticketRepo.InitTable(ctx); err != nil {
		log.Fatal("Gagal init tabel tickets:", err)
	}

	enrolleeQueue := queue.New(ticketRepo)
	adminRegistry := registry.New(adminRepo, config.OwnerID())
	notifier := notify.NewRedisNotifier(config.Redis)

	h := handler.New(enrolleeQueue, adminRegistry, notifier, ticketRepo)

	metrics.Init()
	go realtime.RunQueueBroadcaster()

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Enrollment queue API jalan",
		})
	})

	app.Post("/auth/session", h.CreateSession)
	app.Get("/api/queue/status", h.QueueStatus)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// WebSocket display
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/queue", websocket.New(handler.QueueWebSocket))

	// Base API (semua wajib punya token)
	api := app.Group("/api", middleware.JWTAuth())

	api.Get("/me", h.Me)

	// Pendaftar
	api.Post("/tickets", h.TakeTicket)
	api.Get("/tickets/me", h.MyTicket)

	// Admin
	api.Post("/queue/next", h.CallNext)
	api.Get("/admins/me", h.MyAdmin)

	// Owner
	api.Post("/admins", h.AddAdmin)

	addr := os.Getenv("APP_HOST") + ":" + os.Getenv("APP_PORT")
	log.Println("Server jalan di", addr)
	log.Fatal(app.Listen(addr))
}

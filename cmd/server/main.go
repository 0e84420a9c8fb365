package main

import (
	"log"

	"asada-api/config"
	"asada-api/internal/database"
	"asada-api/internal/handler"
	"asada-api/internal/middleware"
	"asada-api/internal/repository"
	"asada-api/internal/service"
	"asada-api/internal/storage"
	"asada-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.LoadConfig()

	if err := database.RunMigrations(&cfg.Database); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	store, err := storage.NewDiskReceiptStore(cfg.Upload.Dir, cfg.Upload.BaseURL, cfg.Upload.MaxBytes)
	if err != nil {
		log.Fatalf("Failed to initialize receipt store: %v", err)
	}

	eventRepo := repository.NewEventRepository(pool)
	attendeeRepo := repository.NewAttendeeRepository(pool)
	expenseRepo := repository.NewExpenseRepository(pool)
	receiptRepo := repository.NewReceiptRepository(pool)
	shoppingRepo := repository.NewShoppingRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	bankInfoRepo := repository.NewBankInfoRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)

	eventService := service.NewEventService(eventRepo, attendeeRepo, expenseRepo, shoppingRepo)
	attendeeService := service.NewAttendeeService(attendeeRepo, eventRepo)
	expenseService := service.NewExpenseService(pool, expenseRepo, receiptRepo, attendeeRepo, eventRepo, store)
	shoppingService := service.NewShoppingService(shoppingRepo, eventRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	bankInfoService := service.NewBankInfoService(bankInfoRepo, attendeeRepo)
	paymentService := service.NewPaymentService(paymentRepo, eventRepo, attendeeRepo)
	balanceService := service.NewBalanceService(eventRepo, attendeeRepo, expenseRepo, paymentRepo)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Metrics())

	if cfg.RateLimit.Enabled {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to initialize redis: %v", err)
		}
		defer rdb.Close()
		router.Use(middleware.RateLimit(rdb, cfg.RateLimit.RequestsPerMinute))
	}

	handler.NewEventHandler(eventService).RegisterRoutes(router)
	handler.NewAttendeeHandler(attendeeService).RegisterRoutes(router)
	handler.NewExpenseHandler(expenseService, cfg.Upload.MaxBytes).RegisterRoutes(router)
	handler.NewShoppingHandler(shoppingService).RegisterRoutes(router)
	handler.NewCategoryHandler(categoryService).RegisterRoutes(router)
	handler.NewBankInfoHandler(bankInfoService).RegisterRoutes(router)
	handler.NewPaymentHandler(paymentService).RegisterRoutes(router)
	handler.NewBalanceHandler(balanceService).RegisterRoutes(router)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.Static(cfg.Upload.BaseURL, cfg.Upload.Dir)

	logger.WithComponent("server").Info("Starting server on :" + cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

package main

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"yachtbooking/internal/config"
	"yachtbooking/internal/database"
	"yachtbooking/internal/middleware"
	"yachtbooking/internal/modules/auth"
	"yachtbooking/internal/modules/booking"
	"yachtbooking/internal/modules/events"
	"yachtbooking/internal/modules/saveduser"
	"yachtbooking/internal/modules/yacht"
	jwtsvc "yachtbooking/internal/pkg/jwt"
	"yachtbooking/internal/pkg/logger"
	"yachtbooking/internal/repository"
	"yachtbooking/internal/seed"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zl.Fatal("database connection failed", zap.Error(err))
	}
	if err := repository.AutoMigrate(db); err != nil {
		zl.Fatal("migration failed", zap.Error(err))
	}

	if cfg.SeedOnStart {
		if err := seed.Run(context.Background(), db, zl); err != nil {
			zl.Fatal("seeding failed", zap.Error(err))
		}
	}

	yachtRepo := repository.NewYachtRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	userRepo := repository.NewSavedUserRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := events.NewHub(zl)
	eventsHandler := events.NewHandler(hub, zl)

	authService, err := auth.NewService(cfg.AdminEmail, cfg.AdminPassword, j)
	if err != nil {
		zl.Fatal("auth setup failed", zap.Error(err))
	}
	authHandler := auth.NewHandler(authService)

	yachtService := yacht.NewService(yachtRepo, hub)
	yachtHandler := yacht.NewHandler(yachtService)

	bookingService := booking.NewService(bookingRepo, yachtRepo, hub, zl)
	bookingHandler := booking.NewHandler(bookingService)

	userService := saveduser.NewService(userRepo, hub)
	userHandler := saveduser.NewHandler(userService)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestLogger(zl))
	r.Use(middleware.CORS())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// protected (dashboard endpoints)
		protected := v1.Group("/")
		protected.Use(authMiddleware(j))
		{
			yachtHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			userHandler.RegisterRoutes(protected)
			eventsHandler.RegisterRoutes(protected)
		}
	}

	zl.Info("starting api", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func authMiddleware(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			// browsers cannot set headers on websocket dials, so the
			// events endpoint also accepts ?token=
			if t := c.Query("token"); t != "" {
				h = "Bearer " + t
			}
		}

		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Missing or invalid Authorization header",
				},
			})
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid token",
				},
			})
			return
		}

		c.Set("email", claims.Email)
		c.Set("role", claims.Role)

		c.Next()
	}
}

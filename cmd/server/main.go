package main

import (
	"context"                         // context package is needed for Redis operations
	"log"                             // log package is needed for logging
	"payment_api/internal/api"        // Custom package for API handlers
	"payment_api/internal/config"     // Custom package for configuration
	"payment_api/internal/middleware" // Custom package for middleware
	"payment_api/internal/service"    // Custom package for business logic
	"payment_api/internal/signature"  // Custom package for payment signatures
	"payment_api/internal/store"      // Custom package for persistence
	"time"                            // Token lifetimes

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	gormDB, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup stores
	users := store.NewUsers(gormDB)       // User store
	accounts := store.NewAccounts(gormDB) // Account store
	payments := store.NewPayments(gormDB) // Payment store
	ledger := store.NewLedger(gormDB)     // Transaction boundary

	// Setup services
	verifier := signature.New(cfg.PaymentSecret) // Payment signature verifier
	authService := service.NewAuthService(
		users,
		cfg.JWTSecret,
		time.Duration(cfg.AccessTokenTTLMin)*time.Minute,    // Access token lifetime
		time.Duration(cfg.RefreshTokenTTLDays)*24*time.Hour, // Refresh token lifetime
	)
	userService := service.NewUserService(users)                                             // User management
	accountService := service.NewAccountService(users, accounts)                             // Account queries
	paymentService := service.NewPaymentService(users, accounts, payments, ledger, verifier) // Payment pipeline

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	authRequired := middleware.JWTAuthMiddleware(cfg.JWTSecret, users) // JWT guard
	adminOnly := middleware.AdminOnlyMiddleware()                      // Admin guard

	apiGroup := r.Group("/api") // All routes live under /api

	// Auth routes
	apiGroup.POST("/auth/login", api.LoginHandler(authService))                              // Login endpoint
	apiGroup.POST("/auth/refresh-token", authRequired, api.RefreshTokenHandler(authService)) // Token refresh endpoint

	// User routes
	userGroup := apiGroup.Group("/user")
	userGroup.GET("/current-user", authRequired, api.GetCurrentUserHandler())                   // Own profile endpoint
	userGroup.GET("", authRequired, adminOnly, api.GetUserHandler(userService))                 // Get user endpoint
	userGroup.GET("/list-of-users", authRequired, adminOnly, api.ListUsersHandler(userService)) // List users endpoint
	userGroup.POST("", authRequired, adminOnly, api.CreateUserHandler(userService))             // Create user endpoint
	userGroup.PATCH("", authRequired, adminOnly, api.UpdateUserHandler(userService))            // Update user endpoint
	userGroup.DELETE("", authRequired, adminOnly, api.DeleteUserHandler(userService))           // Delete user endpoint

	// Account routes
	accountGroup := apiGroup.Group("/account")
	accountGroup.GET("/current-user", authRequired, api.GetCurrentUserAccountsHandler(accountService, redisClient)) // Own accounts endpoint
	accountGroup.GET("", authRequired, adminOnly, api.GetAccountsByUserIDHandler(accountService))                   // Accounts by user endpoint

	// Payment routes; the webhook is unauthenticated, the signature is the proof
	paymentGroup := apiGroup.Group("/payment")
	paymentGroup.POST("", api.ProcessPaymentHandler(paymentService, redisClient))           // Payment webhook endpoint
	paymentGroup.GET("", authRequired, api.GetPaymentsHandler(paymentService, redisClient)) // Own payments endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}

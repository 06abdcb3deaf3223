package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"webstore-portal/cart"
	"webstore-portal/catalog"
	"webstore-portal/config"
	"webstore-portal/database"
	"webstore-portal/middleware"
	"webstore-portal/routes"
	"webstore-portal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load environment variables
	if err := config.LoadEnv(); err != nil {
		log.Fatal("Error loading .env file:", err)
	}

	// Validate critical environment variables
	if err := config.ValidateEnv(); err != nil {
		log.Fatal("Environment validation failed: ", err)
	}

	cartCfg, err := config.LoadCartConfig()
	if err != nil {
		log.Fatal("Invalid cart configuration: ", err)
	}

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Cart backends
	shared := store.NewKVStore(db, cartCfg.KVTTL)
	items := catalog.NewCachedItemClient(
		catalog.NewHTTPItemClient(cartCfg.ItemBaseURL, cartCfg.ItemLookupTimeout),
		cartCfg.ItemCacheSize,
		cartCfg.ItemCacheTTL,
	)
	carts := cart.NewManager(cart.Options{
		CookieKey:    cartCfg.CookieKey,
		CookieMaxAge: cartCfg.CookieMaxAge,
		CookieSecure: cartCfg.CookieSecure,
		KeyPrefix:    cartCfg.KeyPrefix,
	}, shared, items)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	if cartCfg.KVTTL > 0 {
		go purgeExpiredCarts(ctx, shared, cartCfg.KVTTL/2)
	}

	// Setup Gin router
	r := gin.Default()

	origins := []string{os.Getenv("FRONTEND_URL")}
	if origins[0] == "" {
		origins = []string{"http://localhost:3000"}
		log.Println("WARNING: No CORS origins configured, defaulting to http://localhost:3000")
	}

	// Credentials are required for the cart cookie to travel cross-origin
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	limiter := middleware.NewRateLimiter(20, time.Minute)
	defer limiter.Stop()

	// Setup routes
	routes.SetupRoutes(r, db, carts, limiter)

	// Start server with graceful shutdown
	port := config.GetEnv("PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// Run server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	stop()

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
		} else {
			log.Println("Database connection closed")
		}
	}

	log.Println("Server exited gracefully")
}

// purgeExpiredCarts deletes expired shared carts until ctx is cancelled.
func purgeExpiredCarts(ctx context.Context, shared *store.KVStore, every time.Duration) {
	if every < time.Minute {
		every = time.Minute
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := shared.PurgeExpired(ctx)
			if err != nil {
				log.Printf("WARNING: Failed to purge expired carts: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("Purged %d expired carts", n)
			}
		}
	}
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/spacial-to-fxa/any-outlet/config"
	"github.com/spacial-to-fxa/any-outlet/controllers"
	"github.com/spacial-to-fxa/any-outlet/middleware"
	"github.com/spacial-to-fxa/any-outlet/store"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET not set in env")
	}

	// Connect to MongoDB
	config.ConnectDB(cfg.MongoURI, cfg.MongoDB)

	users := store.NewUsers(config.DB)
	products := store.NewProducts(config.DB)
	siteConfigs := store.NewSiteConfigs(config.DB)

	// The settings singleton exists before the first request comes in.
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if _, err := siteConfigs.Ensure(ctx); err != nil {
			cancel()
			log.Fatalf("failed to ensure site config: %v", err)
		}
		cancel()
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("failed to create upload dir: %v", err)
	}

	auth := controllers.NewAuthController(users)
	shop := controllers.NewShopController(products)
	admin := controllers.NewAdminController(users, products, siteConfigs, cfg.UploadDir)

	// Initialize Gin router
	router := gin.Default()
	router.LoadHTMLGlob("templates/*.html")
	router.Static("/uploads", cfg.UploadDir)

	router.Use(sessions.Sessions("any_outlet_session", cookie.NewStore([]byte(cfg.SessionSecret))))
	router.Use(middleware.CurrentUser(users))
	router.Use(middleware.SiteConfig(siteConfigs))

	// Public storefront
	router.GET("/", shop.Home)
	router.GET("/contact", shop.Contact)
	router.GET("/login", auth.ShowLogin)
	router.POST("/login", auth.Login)
	router.GET("/signup", auth.ShowSignup)
	router.POST("/signup", auth.Signup)
	router.GET("/verify-otp", auth.ShowVerifyOTP)
	router.POST("/verify-otp", auth.VerifyOTP)
	router.GET("/logout", auth.Logout)

	// Checkout requires a logged-in user
	buy := router.Group("/", middleware.RequireLogin())
	{
		buy.GET("/checkout/:id", shop.ShowCheckout)
		buy.POST("/process-checkout", shop.ProcessCheckout)
	}

	// Admin console
	adm := router.Group("/admin", middleware.RequireLogin(), middleware.RequireAdmin())
	{
		adm.GET("", admin.Dashboard)
		adm.POST("/product", admin.CreateProduct)
		adm.POST("/promote/:id", admin.PromoteUser)
		adm.POST("/settings", admin.UpdateSettings)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine for graceful shutdown
	go func() {
		log.Printf("Server started on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt (Ctrl+C)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Println("Server forced to shutdown:", err)
	}

	if err := config.Client.Disconnect(ctx); err != nil {
		log.Println("Error disconnecting MongoDB:", err)
	}

	log.Println("Server exited properly")
}

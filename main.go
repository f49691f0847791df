package main

import (
	"log"
	"net/http"
	"os"

	"news-portal/config"
	"news-portal/handlers"
	"news-portal/middleware"
	"news-portal/models"
	"news-portal/notify"
	"news-portal/repositories"
	"news-portal/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	publisherRepo := repositories.NewPublisherRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	newsletterRepo := repositories.NewNewsletterRepository(db)
	subscriptionRepo := repositories.NewSubscriptionRepository(db)

	// Initialize notification side effects
	socialCfg := config.LoadSocialConfig()
	mailer := notify.NewSMTPMailer(config.LoadMailConfig())
	poster := notify.NewXPoster(socialCfg)
	dispatcher := notify.NewDispatcher(subscriptionRepo, mailer, poster, socialCfg)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	publisherService := services.NewPublisherService(publisherRepo, userRepo)
	articleService := services.NewArticleService(articleRepo, publisherRepo, dispatcher)
	newsletterService := services.NewNewsletterService(newsletterRepo, articleRepo)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, userRepo, publisherRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	publisherHandler := handlers.NewPublisherHandler(publisherService)
	articleHandler := handlers.NewArticleHandler(articleService)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterService)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, articleService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public routes (approved content and the publisher catalogue)
		public := v1.Group("/public")
		{
			public.GET("/articles", articleHandler.GetPublicArticles)
			public.GET("/articles/:id", articleHandler.GetPublicArticle)
			public.GET("/publishers", publisherHandler.GetPublishers)
			public.GET("/publishers/:id", publisherHandler.GetPublisher)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Articles
			articles := protected.Group("/articles")
			{
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("", articleHandler.GetMyArticles)
				articles.GET("/pending", articleHandler.GetPendingArticles)
				articles.GET("/publishing", articleHandler.GetPublisherArticles)
				articles.PUT("/:id", articleHandler.UpdateArticle)
				articles.DELETE("/:id", articleHandler.DeleteArticle)
				articles.POST("/:id/approve", articleHandler.ApproveArticle)
			}

			// Publishers
			protected.POST("/publishers", publisherHandler.RegisterPublisher)

			// Newsletters
			newsletters := protected.Group("/newsletters")
			{
				newsletters.POST("", newsletterHandler.CreateNewsletter)
				newsletters.GET("", newsletterHandler.GetNewsletters)
				newsletters.GET("/:id", newsletterHandler.GetNewsletter)
				newsletters.PUT("/:id", newsletterHandler.UpdateNewsletter)
				newsletters.DELETE("/:id", newsletterHandler.DeleteNewsletter)
			}

			// Subscriptions (reader only)
			subscriptions := protected.Group("/subscriptions")
			subscriptions.Use(middleware.RequireRole(string(models.RoleReader)))
			{
				subscriptions.GET("", subscriptionHandler.GetSubscriptions)
				subscriptions.POST("/publishers/:id", subscriptionHandler.SubscribePublisher)
				subscriptions.DELETE("/publishers/:id", subscriptionHandler.UnsubscribePublisher)
				subscriptions.POST("/journalists/:id", subscriptionHandler.SubscribeJournalist)
				subscriptions.DELETE("/journalists/:id", subscriptionHandler.UnsubscribeJournalist)
			}
		}
	}

	// Machine-readable subscribed articles feed
	router.GET("/api/subscribed-articles/", middleware.AuthMiddleware(), subscriptionHandler.GetSubscribedArticles)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

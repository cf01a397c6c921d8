package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripscout/cmd/fx/admin_fx"
	"tripscout/cmd/fx/ai_fx"
	"tripscout/cmd/fx/catalog_fx"
	"tripscout/cmd/fx/db_fx"
	"tripscout/cmd/fx/index_fx"
	"tripscout/cmd/fx/session_fx"
	"tripscout/cmd/fx/trip_fx"
	"tripscout/internal/api/controllers"
	"tripscout/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		catalog_fx.Module,
		ai_fx.Module,
		session_fx.Module,
		trip_fx.Module,
		index_fx.Module,
		admin_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	extractController *controllers.ExtractController,
	chatController *controllers.ChatController,
	packagesController *controllers.PackagesController,
	indexController *controllers.IndexController,
	conversationController *controllers.ConversationController,
	destinationsController *controllers.DestinationsController,
	adminController *controllers.AdminController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		extractController,
		chatController,
		packagesController,
		indexController,
		conversationController,
		destinationsController,
		adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	extractController *controllers.ExtractController,
	chatController *controllers.ChatController,
	packagesController *controllers.PackagesController,
	indexController *controllers.IndexController,
	conversationController *controllers.ConversationController,
	destinationsController *controllers.DestinationsController,
	adminController *controllers.AdminController) {

	r.POST("/extract", extractController.Extract)
	r.POST("/chat", chatController.Chat)
	r.POST("/analyze-image", chatController.AnalyzeImage)
	r.POST("/tts", chatController.Speak)
	r.POST("/find-packages", packagesController.FindPackages)
	r.POST("/semantic-search", packagesController.SemanticSearch)
	r.GET("/destinations", destinationsController.List)

	conversationGroup := r.Group("/conversation")
	conversationGroup.POST("/start", conversationController.Start)
	conversationGroup.POST("/answer", conversationController.Answer)

	r.POST("/admin/login", adminController.Login)

	adminGroup := r.Group("/")
	adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	adminGroup.POST("/embed-packages", indexController.EmbedPackages)
	adminGroup.GET("/embed-packages", indexController.IndexStats)
	adminGroup.POST("/admin/refresh-destinations", destinationsController.RefreshSlugs)
}

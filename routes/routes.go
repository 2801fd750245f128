package routes

import (
	"github.com/Nikhilesh-cheepu/kiik69-sub000/configs"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/controllers"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/middlewares"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/repository"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/services"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware(cfg.FrontendURL))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Controllers
	authCtl := controllers.NewAuthController(db, cfg.JWTSecret, cfg.JWTTTL)
	menuCtl := controllers.NewMenuController(db, cfg.UploadDir)
	eventCtl := controllers.NewEventController(db, cfg.UploadDir)
	galleryCtl := controllers.NewGalleryController(db, cfg.UploadDir)
	gameCtl := controllers.NewGameController(db, cfg.UploadDir)
	packageCtl := controllers.NewPartyPackageController(db, cfg.UploadDir)
	assetCtl := controllers.NewAssetController(db, cfg.UploadDir)
	contactCtl := controllers.NewContactController(db)

	chatRepo := repository.NewChatRepository(db)
	hub := ws.NewChatHub(chatRepo)
	go hub.Run()
	chatAuthCtl := controllers.NewChatAuthController(
		services.NewChatAuthService(chatRepo, nil), chatRepo, hub)

	admin := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")

	api := r.Group("/api")

	// Auth
	auth := api.Group("/auth")
	{
		auth.POST("/login", authCtl.Login)
		auth.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtl.Me)
	}

	// Menu
	menu := api.Group("/menu")
	{
		menu.GET("", menuCtl.List)
		menu.GET("/:id", menuCtl.Get)
		menu.GET("/categories/list", menuCtl.Categories)
		menu.POST("", admin, menuCtl.Create)
		menu.PUT("/:id", admin, menuCtl.Update)
		menu.DELETE("/:id", admin, menuCtl.Delete)
	}

	// Events
	events := api.Group("/events")
	{
		events.GET("", eventCtl.List)
		events.GET("/:id", eventCtl.Get)
		events.POST("", admin, eventCtl.Create)
		events.PUT("/:id", admin, eventCtl.Update)
		events.DELETE("/:id", admin, eventCtl.Delete)
	}

	// Gallery
	gallery := api.Group("/gallery")
	{
		gallery.GET("", galleryCtl.List)
		gallery.GET("/:id", galleryCtl.Get)
		gallery.GET("/categories/list", galleryCtl.Categories)
		gallery.POST("", admin, galleryCtl.Create)
		gallery.PUT("/:id", admin, galleryCtl.Update)
		gallery.DELETE("/:id", admin, galleryCtl.Delete)
	}

	// Games
	games := api.Group("/games")
	{
		games.GET("", gameCtl.List)
		games.GET("/:id", gameCtl.Get)
		games.GET("/types/list", gameCtl.Types)
		games.POST("", admin, gameCtl.Create)
		games.PUT("/:id", admin, gameCtl.Update)
		games.DELETE("/:id", admin, gameCtl.Delete)
	}

	// Party packages
	packages := api.Group("/party-packages")
	{
		packages.GET("", packageCtl.List)
		packages.GET("/:id", packageCtl.Get)
		packages.POST("", admin, packageCtl.Create)
		packages.PUT("/:id", admin, packageCtl.Update)
		packages.DELETE("/:id", admin, packageCtl.Delete)
	}

	// Asset registry
	assets := api.Group("/assets")
	{
		assets.GET("", assetCtl.List)
		assets.GET("/:id", assetCtl.Get)
		assets.GET("/stats/overview", admin, assetCtl.Stats)
		assets.POST("", admin, assetCtl.Create)
		assets.POST("/import-existing", admin, assetCtl.ImportExisting)
		assets.PUT("/:id", admin, assetCtl.Update)
		assets.DELETE("/:id", admin, assetCtl.Delete)
	}

	// Contact messages
	contact := api.Group("/contact")
	{
		contact.POST("", contactCtl.Create)
		contact.GET("", admin, contactCtl.List)
		contact.GET("/stats/overview", admin, contactCtl.Stats)
		contact.GET("/:id", admin, contactCtl.Get)
		contact.PATCH("/:id/status", admin, contactCtl.UpdateStatus)
		contact.DELETE("/:id", admin, contactCtl.Delete)
	}

	// Chat widget identity + history
	chatAuth := api.Group("/chat-auth")
	{
		chatAuth.POST("/request-otp", chatAuthCtl.RequestOTP)
		chatAuth.POST("/verify-otp", chatAuthCtl.VerifyOTP)
		chatAuth.GET("/history/:sessionId", chatAuthCtl.History)
		chatAuth.POST("/message", chatAuthCtl.PostMessage)
	}

	// Live chat stream
	r.GET("/ws/chat/:sessionId", hub.HandleWebSocket)
}

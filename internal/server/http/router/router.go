package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/lodgemart/lodgemart/internal/server/http/handlers"
	"github.com/lodgemart/lodgemart/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	productHandler := handlers.NewProductHandler(facade)

	authRequired := middleware.AuthRequired(facade)

	user := engine.Group("/user")
	user.POST("/signup", authHandler.SignUp)
	user.POST("/login", authHandler.Login)
	user.GET("/verify-email", authHandler.VerifyEmail)
	user.POST("/resend-verification", authHandler.ResendVerification)
	user.POST("/logout", authHandler.Logout)

	profile := user.Group("")
	profile.Use(authRequired)
	profile.GET("/profile", authHandler.Profile)
	profile.PUT("/profile", authHandler.UpdateProfile)
	profile.PUT("/profile/password", authHandler.ChangePassword)

	order := engine.Group("/order")
	order.Use(authRequired)
	order.POST("/request-otp", orderHandler.RequestOTP)
	order.POST("", orderHandler.Place)
	order.GET("", orderHandler.List)
	order.DELETE("/:orderId", orderHandler.Delete)

	product := engine.Group("/product")
	product.GET("", productHandler.List)
	product.GET("/:productId", productHandler.Get)
	product.GET("/category/:category", productHandler.ListByCategory)

	productAdmin := product.Group("")
	productAdmin.Use(authRequired)
	productAdmin.POST("", productHandler.Create)
	productAdmin.PUT("/:productId", productHandler.Update)
	productAdmin.DELETE("/:productId", productHandler.Delete)

	return engine
}

package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/stellar-client/controllers"
	"github.com/yeremiapane/stellar-client/middlewares"
)

// SetupRouter wires the stub API. The surface mirrors the remote burger
// service the client core talks to in production.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())

	userCtrl := controllers.NewUserController(db)
	ingredientCtrl := controllers.NewIngredientController(db)
	orderCtrl := controllers.NewOrderController(db)

	api := r.Group("/api")

	api.GET("/ingredients", ingredientCtrl.GetAllIngredients)
	api.GET("/orders/all", orderCtrl.GetFeed)
	api.GET("/orders/:number", orderCtrl.GetOrderByNumber)
	api.GET("/live", controllers.LiveHandler)

	auth := api.Group("/auth")
	limited := auth.Group("")
	limited.Use(middlewares.NewAuthRateLimiter(time.Second, 20).Limit())
	{
		limited.POST("/register", userCtrl.Register)
		limited.POST("/login", userCtrl.Login)
	}
	auth.POST("/token", userCtrl.Refresh)
	auth.POST("/logout", userCtrl.Logout)

	private := api.Group("")
	private.Use(middlewares.AuthRequired())
	{
		private.POST("/orders", orderCtrl.CreateOrder)
		private.GET("/orders", orderCtrl.GetUserOrders)
		private.GET("/auth/user", userCtrl.GetProfile)
		private.PATCH("/auth/user", userCtrl.UpdateProfile)
	}

	return r
}

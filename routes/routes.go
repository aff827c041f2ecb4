package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dhruvahir777/billoza-backend/controllers"
	"github.com/dhruvahir777/billoza-backend/middleware"
	"github.com/dhruvahir777/billoza-backend/repository"
	"github.com/dhruvahir777/billoza-backend/services"
)

// Controllers bundles everything RegisterRoutes wires up.
type Controllers struct {
	Auth    *controllers.AuthController
	Users   *controllers.UserController
	Menu    *controllers.MenuController
	Orders  *controllers.OrderController
	Reports *controllers.ReportController
}

// RegisterRoutes mounts all API routes. Tenant-scoped groups run the access
// guard before any handler; the db gate is installed by main on the engine.
func RegisterRoutes(r *gin.Engine, ctrl Controllers, tokens *services.TokenManager, users repository.UserRepo, authLimiter gin.HandlerFunc) {
	auth := r.Group("/auth", authLimiter)
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
	}

	authed := middleware.AuthMiddleware(tokens, users)

	profile := r.Group("/profile", authed)
	{
		profile.GET("", ctrl.Users.GetProfile)
		profile.PUT("", ctrl.Users.UpdateProfile)
		profile.PUT("/image", ctrl.Users.UpdateProfileImage)
	}

	tenant := r.Group("/users/:user_id", authed, middleware.AccessGuard())
	{
		tenant.GET("/menu", ctrl.Menu.ListMenuItems)
		tenant.POST("/menu", ctrl.Menu.CreateMenuItem)
		tenant.GET("/menu/:item_id", ctrl.Menu.GetMenuItem)
		tenant.PUT("/menu/:item_id", ctrl.Menu.UpdateMenuItem)
		tenant.DELETE("/menu/:item_id", ctrl.Menu.DeleteMenuItem)
		tenant.PUT("/menu/:item_id/image", ctrl.Menu.UpdateMenuItemImage)

		tenant.GET("/orders", ctrl.Orders.ListOrders)
		tenant.POST("/orders", ctrl.Orders.CreateOrder)
		tenant.GET("/orders/:order_id", ctrl.Orders.GetOrder)
		tenant.PUT("/orders/:order_id", ctrl.Orders.UpdateOrder)
		tenant.DELETE("/orders/:order_id", ctrl.Orders.DeleteOrder)

		tenant.GET("/reports/sales", ctrl.Reports.GetSalesReport)
		tenant.GET("/reports/revenue", ctrl.Reports.GetRevenueReport)
	}
}

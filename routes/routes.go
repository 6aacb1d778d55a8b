package routes

import (
	"github.com/kunalgupta016/street-clean-eats/controllers"
	"github.com/kunalgupta016/street-clean-eats/logger"
	"github.com/kunalgupta016/street-clean-eats/metrics"
	"github.com/kunalgupta016/street-clean-eats/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.RequestLogger(), metrics.Middleware())

	r.GET("/metrics", metrics.Handler())
	r.GET("/meta/enums", controllers.GetEnums)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register/customer", controllers.RegisterCustomer)
		auth.POST("/register/vendor", controllers.RegisterVendor)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Public marketplace reads
	vendors := r.Group("/vendors")
	{
		vendors.GET("", controllers.ListVendors)
		vendors.GET("/:id", controllers.GetVendorCard)
	}

	// Customer actions on a vendor
	customer := r.Group("/vendors")
	customer.Use(middlewares.AuthMiddleware())
	{
		customer.POST("/:id/orders", controllers.PlaceOrder)
		customer.POST("/:id/reviews", controllers.CreateReview)
	}

	// Own account
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	// Vendor dashboard, gated on a vendor-type profile
	vendor := r.Group("/vendor")
	vendor.Use(middlewares.AuthMiddleware(), middlewares.VendorGate())
	{
		vendor.GET("/dashboard", controllers.GetDashboard)

		vendor.GET("/profile", controllers.GetVendorProfile)
		vendor.PUT("/profile", controllers.UpdateVendorProfile)
		vendor.POST("/profile/images", controllers.UploadStallImage)

		vendor.GET("/menu", controllers.ListMenu)
		vendor.POST("/menu", controllers.CreateMenuItem)
		vendor.PUT("/menu/:id", controllers.UpdateMenuItem)
		vendor.DELETE("/menu/:id", controllers.DeleteMenuItem)

		vendor.GET("/orders", controllers.ListOrders)
		vendor.PUT("/orders/:id/status", controllers.UpdateOrderStatus)
		vendor.GET("/orders/ws", controllers.OrdersWS)

		vendor.GET("/reviews", controllers.ListReviews)
		vendor.PUT("/reviews/:id/reply", controllers.ReplyToReview)

		vendor.GET("/hygiene", controllers.GetHygiene)
		vendor.PUT("/hygiene", controllers.UpdateHygiene)
		vendor.POST("/hygiene/photos", controllers.UploadHygienePhoto)

		vendor.GET("/sustainability", controllers.GetSustainability)
		vendor.PUT("/sustainability", controllers.UpdateSustainability)
	}

	// Account settings
	settings := r.Group("/settings")
	settings.Use(middlewares.AuthMiddleware())
	{
		settings.PUT("/password", controllers.ChangePassword)
		settings.PUT("/marketing", controllers.UpdateMarketingOptIn)
		settings.DELETE("/account", controllers.DeleteAccount)
	}

	return r
}

package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Reserve(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
	SubmitScreenshot(c *ginext.Context)
	SubmitManualDetails(c *ginext.Context)
	SessionMessages(c *ginext.Context)
	VerifyPayment(c *ginext.Context)
	RejectPayment(c *ginext.Context)
	RunSweep(c *ginext.Context)
	SweeperStatus(c *ginext.Context)
}

// InitRouter builds the route table. adminAuth guards /api/admin; mw runs on every route.
func InitRouter(mode string, h Handler, adminAuth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Bookings
		api.POST("/bookings", h.Reserve)
		api.GET("/bookings/:id", h.GetBooking)
		api.GET("/availability", h.CheckAvailability)
		api.GET("/users/:id/bookings", h.GetUserBookings)

		// Payments
		api.POST("/bookings/:id/payment/screenshot", h.SubmitScreenshot)
		api.POST("/bookings/:id/payment/manual", h.SubmitManualDetails)

		// Web channel
		api.GET("/sessions/:id/messages", h.SessionMessages)
	}

	admin := router.Group("/api/admin", adminAuth)
	{
		admin.POST("/bookings/:id/verify", h.VerifyPayment)
		admin.POST("/bookings/:id/reject", h.RejectPayment)
		admin.POST("/sweeper/run", h.RunSweep)
		admin.GET("/sweeper/status", h.SweeperStatus)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}

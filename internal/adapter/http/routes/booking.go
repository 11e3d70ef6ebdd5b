package routes

import (
	"servicehub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBookings = "/bookings"
	PathPayments = "/payments"
	PathServices = "/services"
)

func addBookingRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler, paymentHandler *handlers.PaymentHandler, packageHandler *handlers.PackageHandler) {
	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("/:id", bookingHandler.GetBooking)
		bookings.PATCH("/:id/status", bookingHandler.UpdateBookingStatus)
		bookings.POST("/:id/pay", paymentHandler.InitiateCharge)
	}

	payments := rg.Group(PathPayments)
	{
		// Trusted provider webhook; authentication happens upstream.
		payments.POST("/callback", paymentHandler.ProviderCallback)
	}

	services := rg.Group(PathServices)
	{
		services.GET("/:service_id/packages", packageHandler.ListPackages)
		services.POST("/:service_id/packages", packageHandler.PublishPackage)
	}
}

package routes

import (
	"apnaghar/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects      = "/projects"
	PathDevelopers    = "/developers"
	PathBookings      = "/bookings"
	PathPayments      = "/payments"
	PathRefunds       = "/refunds"
	PathMilestones    = "/milestones"
	PathProperties    = "/properties"
	PathWebhooks      = "/webhooks"
	PathNotifications = "/notifications"
)

func addMarketplaceRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, bookingHandler *handlers.BookingHandler, paymentHandler *handlers.PaymentHandler, webhookHandler *handlers.WebhookHandler, evidenceHandler *handlers.EvidenceHandler, notificationHandler *handlers.NotificationHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", catalogHandler.CreateProject)
		projects.GET("", catalogHandler.ListProjects)
		projects.GET("/:id", catalogHandler.GetProject)
		projects.POST("/:id/properties", catalogHandler.CreateProperty)
		projects.GET("/:id/properties", catalogHandler.ListProperties)
		projects.POST("/:id/milestones", catalogHandler.CreateMilestone)
		projects.GET("/:id/milestones", catalogHandler.ListMilestones)
		projects.GET("/:id/updates", catalogHandler.ListUpdates)
	}

	developers := rg.Group(PathDevelopers)
	{
		developers.GET("/:id", catalogHandler.GetDeveloper)
	}

	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("", bookingHandler.ListBookings)
		bookings.GET("/:id", bookingHandler.GetBooking)
		bookings.POST("/:id/confirm", bookingHandler.ConfirmBooking)
		bookings.POST("/:id/request-agreement", bookingHandler.RequestAgreement)
		bookings.POST("/:id/sign-agreement", bookingHandler.SignAgreement)
		bookings.POST("/:id/cancel", bookingHandler.CancelBooking)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/:id", paymentHandler.GetPayment)
		payments.POST("/:id/verify", paymentHandler.VerifyPayment)
	}

	refunds := rg.Group(PathRefunds)
	{
		refunds.POST("", paymentHandler.CreateRefund)
	}

	milestones := rg.Group(PathMilestones)
	{
		milestones.POST("/verify-qr", evidenceHandler.VerifyQR)
		milestones.POST("/:id/secure-upload", evidenceHandler.SecureUploadMilestone)
	}

	properties := rg.Group(PathProperties)
	{
		properties.POST("/verify-qr", evidenceHandler.VerifyQR)
		properties.POST("/:id/secure-upload", evidenceHandler.SecureUploadProperty)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/razorpay", webhookHandler.HandleRazorpay)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", notificationHandler.ListNotifications)
		notifications.GET("/preferences", notificationHandler.GetPreferences)
		notifications.PUT("/preferences", notificationHandler.PutPreferences)
	}
}

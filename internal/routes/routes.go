package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cleankart/marketplace-api/internal/cache"
	"github.com/cleankart/marketplace-api/internal/config"
	"github.com/cleankart/marketplace-api/internal/handlers"
	infraRepo "github.com/cleankart/marketplace-api/internal/infra/repository"
	"github.com/cleankart/marketplace-api/internal/middleware"
	"github.com/cleankart/marketplace-api/internal/models"
	"github.com/cleankart/marketplace-api/internal/notify"
	"github.com/cleankart/marketplace-api/internal/payment"
	"github.com/cleankart/marketplace-api/internal/storage"
	ucBooking "github.com/cleankart/marketplace-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	catalogCache := cache.NewCatalog(cfg)
	uploader := storage.NewUploader(cfg)

	dispatcher := notify.NewDispatcher(
		db,
		emailSender(cfg),
		smsSender(cfg),
	)

	var gateway payment.Gateway
	if cfg.PaymentsEnabled {
		mp, err := payment.NewMercadoPagoGateway(cfg.MPAccessToken)
		if err != nil {
			log.Fatalf("failed to init payment gateway: %v", err)
		}
		gateway = mp
	}

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	updateStatusUC := ucBooking.NewUpdateStatus(bookingRepo)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	catalogHandler := handlers.NewCatalogHandler(db, catalogCache)
	vendorHandler := handlers.NewVendorHandler(db, uploader)
	paymentHandler := handlers.NewPaymentHandler(db, gateway)
	notificationHandler := handlers.NewNotificationHandler(db, dispatcher)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		getBookingUC,
		listBookingsUC,
		updateStatusUC,
		cancelBookingUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")

	auth := middleware.AuthMiddleware(cfg)

	// ------------------------------
	// AUTH
	// ------------------------------
	authAPI := api.Group("/auth")
	{
		authAPI.POST("/register/user", authHandler.RegisterUser)
		authAPI.POST("/register/vendor", authHandler.RegisterVendor)
		authAPI.POST("/login/user", authHandler.LoginUser)
		authAPI.POST("/login/vendor", authHandler.LoginVendor)
		authAPI.GET("/profile/user", auth, authHandler.UserProfile)
		authAPI.GET("/profile/vendor", auth, authHandler.VendorProfile)
	}

	// ------------------------------
	// BOOKINGS (catalog reads are public)
	// ------------------------------
	bookings := api.Group("/bookings")
	{
		bookings.GET("/services", catalogHandler.ListServices)
		bookings.GET("/services/category/:category", catalogHandler.ListServicesByCategory)

		bookings.POST("", auth, middleware.RequireRole(models.RoleUser), bookingHandler.Create)
		bookings.GET("/my-bookings", auth, middleware.RequireRole(models.RoleUser), bookingHandler.MyBookings)
		bookings.GET("/vendor-bookings", auth, middleware.RequireRole(models.RoleVendor), bookingHandler.VendorBookings)
		bookings.GET("/:id", auth, bookingHandler.GetByID)
		bookings.PATCH("/:id/status", auth, middleware.RequireRole(models.RoleVendor), bookingHandler.UpdateStatus)
		bookings.PATCH("/:id/cancel", auth, middleware.RequireRole(models.RoleUser), bookingHandler.Cancel)
	}

	// ------------------------------
	// VENDORS
	// ------------------------------
	vendors := api.Group("/vendors")
	{
		vendors.GET("", vendorHandler.List)
		vendors.GET("/by-service/:serviceId", vendorHandler.ListByService)
		vendors.PUT("/profile", auth, middleware.RequireRole(models.RoleVendor), vendorHandler.UpdateProfile)
		vendors.POST("/profile/photo", auth, middleware.RequireRole(models.RoleVendor), vendorHandler.UploadPhoto)
		vendors.GET("/:id", vendorHandler.GetByID)
		vendors.PATCH("/:id/approve", auth, middleware.RequireRole(models.RoleAdmin), vendorHandler.Approve)
		vendors.DELETE("/:id/reject", auth, middleware.RequireRole(models.RoleAdmin), vendorHandler.Reject)
	}

	// ------------------------------
	// PAYMENTS
	// ------------------------------
	payments := api.Group("/payments")
	{
		payments.POST("/create-order/:bookingId", auth, middleware.RequireRole(models.RoleUser), paymentHandler.CreateOrder)
		payments.POST("/verify", auth, middleware.RequireRole(models.RoleUser), paymentHandler.Verify)
		payments.GET("/booking/:bookingId", auth, paymentHandler.GetByBooking)
		payments.GET("", auth, middleware.RequireRole(models.RoleAdmin), paymentHandler.ListAll)
	}

	// ------------------------------
	// NOTIFICATIONS
	// ------------------------------
	notifications := api.Group("/notifications")
	{
		notifications.GET("", auth, middleware.RequireRole(models.RoleUser), notificationHandler.List)
		notifications.POST("/booking/:bookingId", auth, notificationHandler.SendForBooking)
	}
}

// The senders come back as typed nils; convert to nil interfaces so the
// dispatcher's channel checks work.
func emailSender(cfg *config.Config) notify.EmailSender {
	if s := notify.NewResendSender(cfg); s != nil {
		return s
	}
	return nil
}

func smsSender(cfg *config.Config) notify.SMSSender {
	if s := notify.NewTwilioSender(cfg); s != nil {
		return s
	}
	return nil
}

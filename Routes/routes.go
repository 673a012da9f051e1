package Routes

import (
	"DentaDesk/Controllers"
	"DentaDesk/Middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	// Public routes
	public := router.Group("/api")
	{
		public.POST("/login", Controllers.Login)
		public.POST("/register", Controllers.Register)
	}

	// Authorized routes, available regardless of entitlement: dashboard,
	// patient intake, settings, backup and the subscription flow itself.
	authorized := router.Group("/api/protected")
	authorized.Use(Middleware.JwtAuthMiddleware())
	{
		authorized.GET("/user", Controllers.CurrentUser)
		authorized.POST("/Logout", Controllers.Logout)

		authorized.GET("/FetchDashboard", Controllers.FetchDashboard)

		authorized.POST("/CreatePatient", Controllers.CreatePatient)
		authorized.GET("/FetchPatients", Controllers.FetchPatients)
		authorized.GET("/ExportPatientsTable", Controllers.ExportPatientsTable)

		authorized.GET("/FetchSettings", Controllers.FetchSettings)
		authorized.POST("/UpdateSettings", Controllers.UpdateSettings)

		authorized.GET("/ExportBackup", Controllers.ExportBackup)
		authorized.POST("/ImportBackup", Controllers.ImportBackup)
		authorized.POST("/ResetApp", Controllers.ResetApp)

		authorized.GET("/FetchSubscription", Controllers.FetchSubscription)
		authorized.POST("/PurchaseSubscription", Controllers.PurchaseSubscription)
	}

	// Premium routes, locked outside the trial window without an active
	// subscription.
	premium := router.Group("/api/protected")
	premium.Use(Middleware.JwtAuthMiddleware())
	premium.Use(Middleware.RequireUnlocked())
	{
		premium.POST("/RegisterAppointment", Controllers.RegisterAppointment)
		premium.GET("/FetchAppointments", Controllers.FetchAppointments)
		premium.POST("/SendReminder", Controllers.SendReminder)

		premium.POST("/CreateInvoice", Controllers.CreateInvoice)
		premium.GET("/FetchInvoices", Controllers.FetchInvoices)
		premium.POST("/MarkInvoicePaid", Controllers.MarkInvoicePaid)
		premium.POST("/PrintInvoice", Controllers.PrintInvoice)
		premium.POST("/SendInvoice", Controllers.SendInvoice)

		premium.POST("/AddStaff", Controllers.AddStaff)
		premium.POST("/UpdateStaff", Controllers.UpdateStaff)
		premium.POST("/DeleteStaff", Controllers.DeleteStaff)
		premium.GET("/FetchStaff", Controllers.FetchStaff)

		premium.GET("/FetchTreatmentCounts", Controllers.FetchTreatmentCounts)
	}
}

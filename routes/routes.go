package routes

import (
	"database/sql"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/mouvement-citoyen/adhesion-api/handlers"
	"github.com/mouvement-citoyen/adhesion-api/middleware"
	"github.com/mouvement-citoyen/adhesion-api/services"
)

// SetupAuthRoutes sets up public registration and authentication routes.
func SetupAuthRoutes(rg *gin.RouterGroup, db *sql.DB, ws *handlers.WSHandler) {
	emailService := services.NewEmailService(
		os.Getenv("RESEND_API_KEY"),
		os.Getenv("FROM_EMAIL"),
		os.Getenv("FRONTEND_URL"),
	)
	authHandler := &handlers.AuthHandler{DB: db, WS: ws, Email: emailService}

	auth := rg.Group("/auth")
	auth.Use(middleware.AuthRateLimiter())
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// Hors du groupe limité : le front interroge /auth/me à chaque
	// chargement de page.
	memberHandler := &handlers.MemberHandler{DB: db}
	rg.GET("/auth/me", middleware.AuthMiddleware(), memberHandler.GetProfile)
}

// SetupGeoRoutes sets up the public reference-data routes consumed by
// the registration form selectors.
func SetupGeoRoutes(rg *gin.RouterGroup) {
	geoHandler := &handlers.GeoHandler{}

	rg.GET("/geo/countries", geoHandler.SearchCountries)
	rg.GET("/geo/departments", geoHandler.ListDepartments)
	rg.GET("/geo/departments/:name/communes", geoHandler.ListCommunes)
	rg.GET("/geo/phone-code", geoHandler.PhoneCode)
}

// SetupMemberRoutes sets up protected member-card routes.
func SetupMemberRoutes(rg *gin.RouterGroup, db *sql.DB) {
	memberHandler := &handlers.MemberHandler{DB: db}

	rg.GET("/member/profile", memberHandler.GetProfile)
	rg.PUT("/member/profile", memberHandler.UpdateProfile)
	rg.POST("/member/photo", memberHandler.UploadPhoto)
	rg.POST("/member/password", memberHandler.ChangePassword)
	rg.POST("/member/2fa/setup", memberHandler.SetupTOTP)
	rg.POST("/member/2fa/verify", memberHandler.VerifyTOTP)
	rg.POST("/member/2fa/disable", memberHandler.DisableTOTP)
}

// SetupAdminRoutes sets up the admin dashboard routes.
func SetupAdminRoutes(rg *gin.RouterGroup, db *sql.DB) {
	adminHandler := &handlers.AdminHandler{DB: db}

	admin := rg.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/members", adminHandler.ListMembers)
		admin.GET("/members/:id", adminHandler.GetMember)
		admin.PUT("/members/:id/role", adminHandler.UpdateRole)
		admin.DELETE("/members/:id", adminHandler.DeleteMember)
		admin.GET("/stats", adminHandler.Stats)
	}
}

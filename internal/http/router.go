package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/Grelo-LLC/Grelo-Corporate-API/internal/http/handlers"
)

func BuildRouter(ah *handlers.AuthHandlers, rh *handlers.ResetHandlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	r.POST("/register", ah.Register)
	r.POST("/login", ah.Login)
	r.POST("/token/refresh", ah.Refresh)
	r.POST("/token/revoke", ah.Revoke)
	r.POST("/token/check", ah.Check)

	r.POST("/otp/create", rh.CreateOTP)
	r.POST("/otp/validate", rh.ValidateOTP)
	r.POST("/password-reset", rh.ResetPassword)

	return r
}

package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Grelo-LLC/Grelo-Corporate-API/domain"
	"github.com/Grelo-LLC/Grelo-Corporate-API/internal/config"
)

// ResetHandlers handles the three phases of the OTP password-reset flow
type ResetHandlers struct {
	resetSvc domain.ResetService
	messages *config.Messages
}

// NewResetHandlers creates new reset handlers
func NewResetHandlers(resetSvc domain.ResetService, messages *config.Messages) *ResetHandlers {
	return &ResetHandlers{
		resetSvc: resetSvc,
		messages: messages,
	}
}

// OTPCreateRequest represents the OTP issuance request
type OTPCreateRequest struct {
	Email string `json:"email"`
}

// OTPValidateRequest represents the OTP validation request
type OTPValidateRequest struct {
	BusinessEmail string `json:"business_email"`
	OTP           string `json:"otp"`
}

// PasswordResetRequest represents the final reset request
type PasswordResetRequest struct {
	BusinessEmail   string `json:"business_email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	OTP             string `json:"otp"`
}

// CreateOTP issues a fresh OTP for the account and emails it
func (h *ResetHandlers) CreateOTP(c *gin.Context) {
	var req OTPCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	if err := h.resetSvc.CreateOTP(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.internalError(c, "otp_create", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "An OTP code has been successfully sent to your email address",
	})
}

// ValidateOTP approves a pending OTP. Wrong and expired codes share one
// response body.
func (h *ResetHandlers) ValidateOTP(c *gin.Context) {
	var req OTPValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.resetSvc.ValidateOTP(c.Request.Context(), req.BusinessEmail, req.OTP); err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, domain.ErrOTPInvalidOrExpired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "OTP is invalid or expired"})
		default:
			h.internalError(c, "otp_validate", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OTP verification successful",
	})
}

// ResetPassword consumes an approved OTP while changing the credential
func (h *ResetHandlers) ResetPassword(c *gin.Context) {
	var req PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.BusinessEmail == "" || req.Password == "" || req.ConfirmPassword == "" || req.OTP == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	err := h.resetSvc.ResetPassword(c.Request.Context(), req.BusinessEmail, req.Password, req.ConfirmPassword, req.OTP)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
		case errors.Is(err, domain.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, domain.ErrOTPInvalidOrExpired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "OTP is invalid or has expired"})
		default:
			h.internalError(c, "password_reset", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password has been successfully updated",
	})
}

func (h *ResetHandlers) internalError(c *gin.Context, op string, err error) {
	log.Printf("INTERNAL_ERROR: op=%s error=%v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": h.messages.For("internal_server_error")})
}

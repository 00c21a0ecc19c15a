package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Grelo-LLC/Grelo-Corporate-API/domain"
	"github.com/Grelo-LLC/Grelo-Corporate-API/internal/config"
)

// AuthHandlers handles registration and token lifecycle HTTP requests
type AuthHandlers struct {
	accountSvc domain.AccountService
	messages   *config.Messages
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(accountSvc domain.AccountService, messages *config.Messages) *AuthHandlers {
	return &AuthHandlers{
		accountSvc: accountSvc,
		messages:   messages,
	}
}

// RegisterRequest represents the registration request
type RegisterRequest struct {
	BusinessEmail   string `json:"business_email"`
	BusinessName    string `json:"business_name"`
	TaxID           string `json:"tax_id"`
	Country         string `json:"country"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest represents the token issuance request
type LoginRequest struct {
	TaxID    string `json:"tax_id"`
	Password string `json:"password"`
}

// RefreshRequest represents the token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RevokeRequest represents the token revocation request
type RevokeRequest struct {
	Token string `json:"token"`
}

// Register handles business account registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"alert": "All fields are required"})
		return
	}
	if req.BusinessEmail == "" || req.BusinessName == "" || req.TaxID == "" ||
		req.Country == "" || req.Password == "" || req.ConfirmPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"alert": "All fields are required"})
		return
	}

	_, err := h.accountSvc.Register(c.Request.Context(), domain.RegisterInput{
		BusinessEmail:   req.BusinessEmail,
		BusinessName:    req.BusinessName,
		TaxID:           req.TaxID,
		Country:         req.Country,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		var vErr *domain.ValidationError
		var cErr *domain.ConflictError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"alert": vErr.Message})
		case errors.As(err, &cErr):
			c.JSON(http.StatusBadRequest, gin.H{"alert": cErr.Message})
		default:
			h.internalError(c, "register", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Business account registered successfully",
	})
}

// Login handles token issuance through the OAuth2 provider
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.accountSvc.Login(c.Request.Context(), req.TaxID, req.Password)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
		case errors.Is(err, domain.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "TAX ID not found."})
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password."})
		default:
			h.gatewayOrInternalError(c, "login", err)
		}
		return
	}

	h.passthrough(c, reply)
}

// Refresh handles token refresh through the OAuth2 provider
func (h *AuthHandlers) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.accountSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.gatewayOrInternalError(c, "refresh", err)
		return
	}

	h.passthrough(c, reply)
}

// Revoke handles token revocation. A remote 400 is the one reply this
// handler normalizes; everything else passes through.
func (h *AuthHandlers) Revoke(c *gin.Context) {
	var req RevokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.accountSvc.Revoke(c.Request.Context(), req.Token)
	if err != nil {
		h.gatewayOrInternalError(c, "revoke", err)
		return
	}

	switch reply.StatusCode {
	case http.StatusOK:
		c.JSON(http.StatusOK, gin.H{"success": true})
	case http.StatusBadRequest:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid token"})
	default:
		h.passthrough(c, reply)
	}
}

// Check reports whether the account still has an unexpired access token
func (h *AuthHandlers) Check(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.TaxID == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "TAX ID and password are required"})
		return
	}

	token, err := h.accountSvc.Check(c.Request.Context(), req.TaxID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		case errors.Is(err, domain.ErrNoActiveToken):
			c.JSON(http.StatusUnauthorized, gin.H{"active": false, "error": "No valid token found"})
		default:
			h.internalError(c, "check", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"active":       true,
		"access_token": token.AccessToken,
		"expires":      token.Expires,
	})
}

// passthrough forwards the provider's status and body unmodified
func (h *AuthHandlers) passthrough(c *gin.Context, reply *domain.TokenReply) {
	c.Data(reply.StatusCode, "application/json", reply.Body)
}

func (h *AuthHandlers) gatewayOrInternalError(c *gin.Context, op string, err error) {
	var gErr *domain.GatewayError
	if errors.As(err, &gErr) {
		log.Printf("GATEWAY_UNREACHABLE: op=%s error=%v", op, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": h.messages.For("timeout")})
		return
	}
	h.internalError(c, op, err)
}

func (h *AuthHandlers) internalError(c *gin.Context, op string, err error) {
	log.Printf("INTERNAL_ERROR: op=%s error=%v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": h.messages.For("internal_server_error")})
}

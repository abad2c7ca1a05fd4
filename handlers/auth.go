package handlers

import (
	"errors"
	"net/http"

	"strikersyard/services/user"
	"strikersyard/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes OTP login and profile endpoints.
type AuthHandler struct {
	Users user.UserService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(users user.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

// RequestOTP handles POST /api/auth/otp/request.
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req struct {
		PhoneNumber string `json:"phone_number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number is required"})
		return
	}

	if err := h.Users.RequestOTP(c.Request.Context(), req.PhoneNumber); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully"})
}

// VerifyOTP handles POST /api/auth/otp/verify.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req struct {
		PhoneNumber string `json:"phone_number" binding:"required"`
		OTP         string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone and OTP required"})
		return
	}

	result, err := h.Users.VerifyOTP(c.Request.Context(), req.PhoneNumber, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrOTPNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No OTP found or it has expired"})
		case errors.Is(err, utils.ErrOTPMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP"})
		default:
			respondError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateProfile handles POST /api/users/profile.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString("userID")

	var req struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
		return
	}

	usr, err := h.Users.UpdateProfile(c.Request.Context(), userID, req.Name, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": usr})
}

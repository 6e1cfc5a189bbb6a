package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/profiled/internal/models"
	"github.com/joshua-takyi/profiled/internal/services"
)

// Signup creates an account and returns a session token. Every missing
// required field is named in the error, not just the first one.
func Signup(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var profile models.Profile
		if err := c.ShouldBindJSON(&profile); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if missing := profile.MissingSignupFields(); len(missing) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Missing required fields: " + strings.Join(missing, ", "),
			})
			return
		}

		token, err := u.Signup(c.Request.Context(), &profile)
		if err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"token": token})
	}
}

func Login(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		token, err := u.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// Logout is a stateless acknowledgement. There is no revocation list, so the
// presented token stays valid until its natural expiry.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
	}
}

package handlers

import (
	"net/http"
	"time"

	"tubtime/config"
	"tubtime/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const staffTokenTTL = 12 * time.Hour

// StaffLoginHandler handles POST /api/auth/login. Staff credentials come from
// configuration; a successful login issues a short-lived JWT.
func StaffLoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cfg := config.AppConfig
	if cfg.StaffEmail == "" || cfg.StaffPasswordHash == "" {
		utils.GetLogger().Error("staff login attempted but STAFF_EMAIL/STAFF_PASSWORD_HASH not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	if req.Email != cfg.StaffEmail ||
		bcrypt.CompareHashAndPassword([]byte(cfg.StaffPasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateStaffToken(req.Email, staffTokenTTL)
	if err != nil {
		utils.GetLogger().Error("failed to issue staff token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": int(staffTokenTTL.Seconds())})
}

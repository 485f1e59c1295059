// File: handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"careport/apiclient"
	"careport/middleware"
	"careport/models"
	"careport/session"
	"careport/utils"
)

// LoginHandler exchanges credentials for a gateway session. The backend
// token and role are persisted server-side under the session ID; the client
// only ever holds the gateway session token.
func (hb *HandlerBundle) LoginHandler(c *gin.Context) {
	logger := getLogger()

	var form models.LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if fieldErrs := models.ValidateForm(form); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all required fields", "fields": fieldErrs})
		return
	}

	result, err := hb.API.Login(c.Request.Context(), form)
	if err != nil {
		if apiclient.IsAuthError(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		logger.Error("login failed", zap.String("username", form.Username), zap.Error(err))
		respondServiceError(c, err)
		return
	}

	sessionID := uuid.New().String()
	sess := session.Session{
		Token:    result.Token,
		Role:     result.Role,
		Username: result.Username,
	}
	if err := hb.Sessions.Save(c.Request.Context(), sessionID, sess); err != nil {
		logger.Error("failed to persist session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	gatewayToken, err := utils.GenerateSessionToken(sessionID, hb.SessionTTL)
	if err != nil {
		logger.Error("failed to mint session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	logger.Info("user logged in", zap.String("username", result.Username), zap.String("role", result.Role))
	c.JSON(http.StatusOK, gin.H{
		"token":     gatewayToken,
		"role":      result.Role,
		"username":  result.Username,
		"firstName": result.FirstName,
		"lastName":  result.LastName,
	})
}

// LogoutHandler clears the login session.
func (hb *HandlerBundle) LogoutHandler(c *gin.Context) {
	sessionID := c.GetString(middleware.ContextSessionID)
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	if err := hb.Sessions.Clear(c.Request.Context(), sessionID); err != nil {
		getLogger().Error("failed to clear session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// RegisterHandler creates a doctor, staff or admin account.
func (hb *HandlerBundle) RegisterHandler(c *gin.Context) {
	var form models.StaffRegistrationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if fieldErrs := models.ValidateForm(form); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please correct the highlighted fields", "fields": fieldErrs})
		return
	}

	result, err := hb.API.RegisterStaff(c.Request.Context(), form)
	if err != nil {
		getLogger().Warn("registration failed", zap.String("username", form.Username), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// RegisterPatientHandler creates a patient account.
func (hb *HandlerBundle) RegisterPatientHandler(c *gin.Context) {
	var form models.PatientRegistrationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if fieldErrs := models.ValidateForm(form); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please correct the highlighted fields", "fields": fieldErrs})
		return
	}

	result, err := hb.API.RegisterPatient(c.Request.Context(), form)
	if err != nil {
		getLogger().Warn("patient registration failed", zap.String("username", form.Username), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

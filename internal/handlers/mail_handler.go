package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fitledger/internal/errors"
	"fitledger/internal/services"
)

// MailHandler handles mail sync configuration and sync runs.
type MailHandler struct {
	settingsService services.MailSettingsServicer
	syncService     services.MailSyncServicer
}

// NewMailHandler creates a new MailHandler.
func NewMailHandler(settingsService services.MailSettingsServicer, syncService services.MailSyncServicer) *MailHandler {
	return &MailHandler{settingsService: settingsService, syncService: syncService}
}

// SaveMailSettingsRequest represents the request payload for configuring
// mail sync. The password is an IMAP app-password, stored encrypted.
type SaveMailSettingsRequest struct {
	Address  string `json:"address" binding:"required,email"`
	Password string `json:"password" binding:"required,min=1"`
	IMAPHost string `json:"imap_host" binding:"required,hostname"`
	IMAPPort int    `json:"imap_port" binding:"omitempty,min=1,max=65535"`
}

// SaveSettings creates or replaces the mail sync configuration.
func (h *MailHandler) SaveSettings(c *gin.Context) {
	var req SaveMailSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if req.IMAPPort == 0 {
		req.IMAPPort = 993
	}

	settings, err := h.settingsService.Save(req.Address, req.Password, req.IMAPHost, req.IMAPPort)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"settings": settings})
}

// GetSettings returns the mail sync configuration without the password.
func (h *MailHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.Get()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// DeleteSettings removes the mail sync configuration.
func (h *MailHandler) DeleteSettings(c *gin.Context) {
	if err := h.settingsService.Delete(); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mail settings deleted"})
}

// Sync runs one mail import pass and reports the result.
func (h *MailHandler) Sync(c *gin.Context) {
	result, err := h.syncService.Sync(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitledger/internal/services"
)

// SuggestionHandler serves AI-generated advice.
type SuggestionHandler struct {
	suggestionService services.SuggestionServicer
}

// NewSuggestionHandler creates a new SuggestionHandler.
func NewSuggestionHandler(suggestionService services.SuggestionServicer) *SuggestionHandler {
	return &SuggestionHandler{suggestionService: suggestionService}
}

// GetSuggestion returns a suggestion of the given kind, serving a cached
// one when it is still fresh.
func (h *SuggestionHandler) GetSuggestion(c *gin.Context) {
	suggestion, err := h.suggestionService.GetSuggestion(c.Request.Context(), c.Param("kind"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
}

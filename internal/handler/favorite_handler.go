package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lejebolig/lejebolig-backend/internal/common"
	"github.com/lejebolig/lejebolig-backend/internal/middleware"
	"github.com/lejebolig/lejebolig-backend/internal/service"
)

// FavoriteHandler handles saved-property endpoints
type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler
func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// List handles GET /api/v1/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Invalid user credentials", nil)
		return
	}

	properties, err := h.favoriteService.List(userID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load favorites", err)
		return
	}
	common.SuccessResponse(c, properties)
}

// Add handles POST /api/v1/favorites/:propertyId
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID := middleware.GetUserID(c)
	propertyID, ok := parseID(c, "propertyId")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid property ID", nil)
		return
	}

	if err := h.favoriteService.Add(userID, propertyID); err != nil {
		if errors.Is(err, common.ErrPropertyNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Property not found", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to add favorite", err)
		return
	}
	common.CreatedResponse(c, gin.H{"property_id": propertyID})
}

// Remove handles DELETE /api/v1/favorites/:propertyId
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID := middleware.GetUserID(c)
	propertyID, ok := parseID(c, "propertyId")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid property ID", nil)
		return
	}

	if err := h.favoriteService.Remove(userID, propertyID); err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to remove favorite", err)
		return
	}
	common.SuccessResponse(c, gin.H{"message": "Favorite removed"})
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lejebolig/lejebolig-backend/internal/common"
	"github.com/lejebolig/lejebolig-backend/internal/domain"
	"github.com/lejebolig/lejebolig-backend/internal/middleware"
	"github.com/lejebolig/lejebolig-backend/internal/service"
	"github.com/lejebolig/lejebolig-backend/pkg/cache"
	"github.com/lejebolig/lejebolig-backend/pkg/logger"
)

// PropertyHandler handles property listing endpoints
type PropertyHandler struct {
	propertyService *service.PropertyService
	favoriteService *service.FavoriteService
	cache           cache.Service
}

// NewPropertyHandler creates a new PropertyHandler. cache may be nil.
func NewPropertyHandler(
	propertyService *service.PropertyService,
	favoriteService *service.FavoriteService,
	cacheService cache.Service,
) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		favoriteService: favoriteService,
		cache:           cacheService,
	}
}

// List handles GET /api/v1/properties
func (h *PropertyHandler) List(c *gin.Context) {
	page, perPage := parsePagination(c)

	filter := domain.PropertyFilter{
		City:         c.Query("city"),
		PropertyType: c.Query("property_type"),
		Page:         page,
		PerPage:      perPage,
	}
	if v, err := strconv.Atoi(c.Query("min_price")); err == nil && v > 0 {
		filter.MinPrice = v
	}
	if v, err := strconv.Atoi(c.Query("max_price")); err == nil && v > 0 {
		filter.MaxPrice = v
	}
	if v, err := strconv.Atoi(c.Query("min_rooms")); err == nil && v > 0 {
		filter.MinRooms = v
	}
	if c.Query("available") == "true" {
		filter.AvailableOnly = true
	}

	cacheKey := c.Request.URL.RawQuery
	if cacheKey == "" {
		cacheKey = "all"
	}
	if h.cache != nil {
		var cached cachedPropertyList
		if data, err := h.cache.GetPropertyList(c.Request.Context(), cacheKey); err == nil {
			if err := json.Unmarshal(data, &cached); err == nil {
				common.SuccessWithMeta(c, cached.Properties, common.NewMeta(page, perPage, cached.Total))
				return
			}
		}
	}

	properties, total, err := h.propertyService.Search(filter)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to search properties", err)
		return
	}

	if h.cache != nil {
		payload := cachedPropertyList{Properties: properties, Total: total}
		if err := h.cache.SetPropertyList(c.Request.Context(), cacheKey, payload); err != nil {
			logger.Warn("property list cache write failed: %v", err)
		}
	}
	common.SuccessWithMeta(c, properties, common.NewMeta(page, perPage, total))
}

type cachedPropertyList struct {
	Properties []*domain.Property `json:"properties"`
	Total      int64              `json:"total"`
}

// Get handles GET /api/v1/properties/:id. The cached response is only
// served for anonymous requests because the body is personalized with
// is_favorite for authenticated viewers.
func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid property ID", nil)
		return
	}

	userID := middleware.GetUserID(c)
	if h.cache != nil && userID == 0 {
		if cached, err := h.cache.GetProperty(c.Request.Context(), id); err == nil {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json", cached)
			return
		}
	}

	property, err := h.propertyService.Get(id)
	if err != nil {
		if errors.Is(err, common.ErrPropertyNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Property not found", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load property", err)
		return
	}

	if userID != 0 {
		fav, err := h.favoriteService.IsFavorite(userID, id)
		if err != nil {
			logger.Warn("favorite lookup failed for property %d: %v", id, err)
		} else {
			property.IsFavorite = &fav
		}
		common.SuccessResponse(c, property)
		return
	}

	if h.cache != nil {
		response := gin.H{"success": true, "data": property}
		if err := h.cache.SetProperty(c.Request.Context(), id, response); err != nil {
			logger.Warn("property cache write failed: %v", err)
		}
		c.Header("X-Cache", "MISS")
	}
	common.SuccessResponse(c, property)
}

// Create handles POST /api/v1/properties (landlord only)
func (h *PropertyHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Invalid user credentials", nil)
		return
	}

	var req domain.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	property, err := h.propertyService.Create(userID, req)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to create property", err)
		return
	}

	h.invalidateListCache(c)
	common.CreatedResponse(c, property)
}

// Update handles PUT /api/v1/properties/:id (owner only)
func (h *PropertyHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, ok := parseID(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid property ID", nil)
		return
	}

	var req domain.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	property, err := h.propertyService.Update(id, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrPropertyNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Property not found", nil)
		case errors.Is(err, common.ErrForbidden):
			common.ErrorResponse(c, http.StatusForbidden, "You do not own this property", nil)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update property", err)
		}
		return
	}

	if h.cache != nil {
		if err := h.cache.InvalidateProperty(c.Request.Context(), id); err != nil {
			logger.Warn("property cache invalidation failed: %v", err)
		}
	}
	h.invalidateListCache(c)
	common.SuccessResponse(c, property)
}

// Delete handles DELETE /api/v1/properties/:id (owner only)
func (h *PropertyHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, ok := parseID(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid property ID", nil)
		return
	}

	if err := h.propertyService.Delete(id, userID); err != nil {
		switch {
		case errors.Is(err, common.ErrPropertyNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Property not found", nil)
		case errors.Is(err, common.ErrForbidden):
			common.ErrorResponse(c, http.StatusForbidden, "You do not own this property", nil)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete property", err)
		}
		return
	}

	if h.cache != nil {
		if err := h.cache.InvalidateProperty(c.Request.Context(), id); err != nil {
			logger.Warn("property cache invalidation failed: %v", err)
		}
	}
	h.invalidateListCache(c)
	common.SuccessResponse(c, gin.H{"message": "Property deleted"})
}

// ListMine handles GET /api/v1/my/properties (landlord only)
func (h *PropertyHandler) ListMine(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Invalid user credentials", nil)
		return
	}

	properties, err := h.propertyService.ListByLandlord(userID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load properties", err)
		return
	}
	common.SuccessResponse(c, properties)
}

func (h *PropertyHandler) invalidateListCache(c *gin.Context) {
	if h.cache == nil {
		return
	}
	if err := h.cache.InvalidatePropertyLists(c.Request.Context()); err != nil {
		logger.Warn("property list cache invalidation failed: %v", err)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lejebolig/lejebolig-backend/internal/handler"
	"github.com/lejebolig/lejebolig-backend/internal/middleware"
	"github.com/lejebolig/lejebolig-backend/pkg/jwt"
)

// Handlers bundles the handler set wired into the router
type Handlers struct {
	Auth     *handler.AuthHandler
	Property *handler.PropertyHandler
	Favorite *handler.FavoriteHandler
	Message  *handler.MessageHandler
}

// Setup configures the v1 API routes. authLimiter guards the
// credential endpoints with a stricter rate limit; pass nil to skip.
func Setup(router *gin.Engine, h Handlers, jwtManager *jwt.Manager, authLimiter gin.HandlerFunc) {
	api := router.Group("/api/v1")
	auth := middleware.JWTAuth(jwtManager)
	optionalAuth := middleware.OptionalJWTAuth(jwtManager)

	// Auth
	authGroup := api.Group("/auth")
	if authLimiter != nil {
		authGroup.Use(authLimiter)
	}
	authGroup.POST("/register", h.Auth.Register)
	authGroup.POST("/login", h.Auth.Login)
	authGroup.POST("/refresh", h.Auth.RefreshToken)
	authGroup.POST("/logout", h.Auth.Logout)
	authGroup.GET("/me", auth, h.Auth.GetMe)

	// Properties (public browse, landlord-only mutation; optional auth
	// lets the detail view flag the viewer's favorites)
	properties := api.Group("/properties")
	properties.GET("", optionalAuth, h.Property.List)
	properties.GET("/:id", optionalAuth, h.Property.Get)
	properties.POST("", auth, middleware.RequireLandlord(), h.Property.Create)
	properties.PUT("/:id", auth, middleware.RequireLandlord(), h.Property.Update)
	properties.DELETE("/:id", auth, middleware.RequireLandlord(), h.Property.Delete)

	api.GET("/my/properties", auth, middleware.RequireLandlord(), h.Property.ListMine)

	// Favorites
	favorites := api.Group("/favorites")
	favorites.Use(auth)
	favorites.GET("", h.Favorite.List)
	favorites.POST("/:propertyId", h.Favorite.Add)
	favorites.DELETE("/:propertyId", h.Favorite.Remove)

	// Messages
	messages := api.Group("/messages")
	messages.Use(auth)
	messages.GET("", h.Message.List)
	messages.POST("", h.Message.Send)
	messages.GET("/conversations", h.Message.Conversations)
	messages.PATCH("/:id/read", h.Message.MarkRead)
}

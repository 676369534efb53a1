package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mesto-be/internal/controllers"
	"mesto-be/internal/middleware"
	"mesto-be/internal/validation"
)

// Handlers groups the controllers mounted by NewRouter.
type Handlers struct {
	Auth   *controllers.AuthController
	Users  *controllers.UserController
	Cards  *controllers.CardController
	QRCode *controllers.QRCodeController
}

// NewRouter builds the HTTP router. Every route except sign-up, sign-in and
// the health check requires a valid token.
func NewRouter(h Handlers, tokens middleware.TokenValidator) (*gin.Engine, error) {
	if err := validation.RegisterBinding(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
		middleware.Recovery(),
	)
	router.NoRoute(middleware.NotFoundHandler)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// Public auth routes
	router.POST("/users", h.Auth.Register)
	router.POST("/signup", h.Auth.Register)
	router.POST("/signin", h.Auth.Login)

	// Protected routes - require JWT authentication
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		users := protected.Group("/users")
		users.GET("", h.Users.GetUsers)
		users.GET("/me", h.Users.GetMe)
		users.PATCH("/me", h.Users.UpdateProfile)
		users.PATCH("/me/avatar", h.Users.UpdateAvatar)
		users.GET("/:id", h.Users.GetUser)

		cards := protected.Group("/cards")
		cards.GET("", h.Cards.GetCards)
		cards.POST("", h.Cards.CreateCard)
		cards.DELETE("/:id", h.Cards.DeleteCard)
		cards.PUT("/:id/likes", h.Cards.LikeCard)
		cards.DELETE("/:id/likes", h.Cards.DislikeCard)
		cards.GET("/:id/qrcode", h.QRCode.GenerateQRCode)
	}

	return router, nil
}

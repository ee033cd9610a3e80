package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotelhub/internal/handler/api"
	"hotelhub/internal/handler/middleware"
	"hotelhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	hotelHandler *api.HotelHandler,
	bookingHandler *api.BookingHandler,
	reviewHandler *api.ReviewHandler,
	profileHandler *api.ProfileHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, hotelHandler, bookingHandler, reviewHandler, profileHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	hotelHandler *api.HotelHandler,
	bookingHandler *api.BookingHandler,
	reviewHandler *api.ReviewHandler,
	profileHandler *api.ProfileHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: authHandler.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		// Browsing is public; OptionalAuth carries user context into logs
		// when a token is present.
		hotels := apiGroup.Group("/hotels")
		hotels.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(hotels, []route{
				{Method: http.MethodGet, Path: "", Handler: hotelHandler.Search},
				{Method: http.MethodGet, Path: "/:id", Handler: hotelHandler.GetDetail},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: reviewHandler.ListByHotel},
				{Method: http.MethodGet, Path: "/:id/rating-summary", Handler: reviewHandler.RatingSummary},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: reviewHandler.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: reviewHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: reviewHandler.Delete},
			})
		}

		profile := apiGroup.Group("/profile")
		profile.Use(authMiddleware.RequireAuth())
		{
			addRoutes(profile, []route{
				{Method: http.MethodPut, Path: "", Handler: profileHandler.Update},
				{Method: http.MethodPost, Path: "/onboarding", Handler: profileHandler.CompleteOnboarding},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

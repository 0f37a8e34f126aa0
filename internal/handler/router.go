package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"turfbook/internal/domain/user"
	"turfbook/internal/handler/api"
	"turfbook/internal/handler/middleware"
	"turfbook/internal/handler/ws"
	"turfbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Ground  *api.GroundHandler
	Booking *api.BookingHandler
	Admin   *api.AdminHandler
	Review  *api.ReviewHandler
	Chat    *ws.ChatHub
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.NewRateLimiter(cfg.Rate).Middleware())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.Static(cfg.Media.BaseURL, cfg.Media.Dir)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: handlers.Auth.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: handlers.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: handlers.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: handlers.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: handlers.Auth.Me},
			})
		}

		grounds := apiGroup.Group("/grounds")
		{
			addRoutes(grounds, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.Ground.List},
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.Ground.Get},
				{Method: http.MethodGet, Path: "/:id/slots", Handler: handlers.Ground.DaySchedule},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: handlers.Ground.Reviews},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: handlers.Booking.ListMine},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/grounds", Handler: handlers.Admin.CreateGround},
				{Method: http.MethodGet, Path: "/bookings/pending", Handler: handlers.Admin.ListPending},
				{Method: http.MethodGet, Path: "/bookings/confirmed", Handler: handlers.Admin.ListConfirmed},
				{Method: http.MethodPost, Path: "/bookings/:id/confirm", Handler: handlers.Admin.Confirm},
				{Method: http.MethodPost, Path: "/bookings/:id/reject", Handler: handlers.Admin.Reject},
				{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: handlers.Admin.Cancel},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Review.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: handlers.Review.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: handlers.Review.Delete},
			})
		}
	}

	wsGroup := engine.Group("/ws")
	wsGroup.Use(authMiddleware.RequireAuth())
	{
		wsGroup.GET("/chat", handlers.Chat.Handle)
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

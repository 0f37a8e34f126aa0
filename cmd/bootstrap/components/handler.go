package components

import (
	"turfbook/internal/handler"
	"turfbook/internal/handler/api"
	"turfbook/internal/handler/middleware"
	"turfbook/internal/handler/ws"
	"turfbook/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewGroundHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
		api.NewReviewHandler,
		ws.NewChatHub,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(SetupRouter),
)

func SetupRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	groundHandler *api.GroundHandler,
	bookingHandler *api.BookingHandler,
	adminHandler *api.AdminHandler,
	reviewHandler *api.ReviewHandler,
	chatHub *ws.ChatHub,
	authMiddleware *middleware.AuthMiddleware,
) {
	handler.NewRouter(engine, cfg, handler.Handlers{
		Auth:    authHandler,
		Ground:  groundHandler,
		Booking: bookingHandler,
		Admin:   adminHandler,
		Review:  reviewHandler,
		Chat:    chatHub,
	}, authMiddleware)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"
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
	roomHandler *api.RoomHandler,
	bookingHandler *api.BookingHandler,
	paymentHandler *api.PaymentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, roomHandler, bookingHandler, paymentHandler, authMiddleware)
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
	roomHandler *api.RoomHandler,
	bookingHandler *api.BookingHandler,
	paymentHandler *api.PaymentHandler,
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
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: roomHandler.ListRooms},
				{Method: http.MethodGet, Path: "/available", Handler: roomHandler.AvailableRooms},
				{Method: http.MethodGet, Path: "/:id", Handler: roomHandler.GetRoom},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListOwnBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.CancelBooking},
				{Method: http.MethodPost, Path: "/:id/pay", Handler: paymentHandler.PayBooking},
				{Method: http.MethodGet, Path: "/:id/payment", Handler: paymentHandler.GetBookingPayment},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			staff := admin.Group("")
			staff.Use(authMiddleware.RequireRoleAtLeast(user.RoleReception))
			addRoutes(staff, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: bookingHandler.ListAllBookings},
			})

			managers := admin.Group("")
			managers.Use(authMiddleware.RequireRoleAtLeast(user.RoleManager))
			addRoutes(managers, []route{
				{Method: http.MethodPost, Path: "/rooms", Handler: roomHandler.CreateRoom},
				{Method: http.MethodPut, Path: "/rooms/:id", Handler: roomHandler.UpdateRoom},
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

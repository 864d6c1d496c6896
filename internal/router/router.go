package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"lavajato/internal/auth"
	"lavajato/internal/config"
	"lavajato/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	vehicleHandler *handler.VehicleHandler,
	appointmentHandler *handler.AppointmentHandler,
	notificationHandler *handler.NotificationHandler,
	weatherHandler *handler.WeatherHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/me", authHandler.Me)
	api.GET("/weather/current", weatherHandler.GetCurrent)

	// Secured routes: requests without a valid token are rejected here,
	// before any ownership logic runs.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	// Vehicle routes
	secured.GET("/vehicles", vehicleHandler.List)
	secured.POST("/vehicles", vehicleHandler.Create)
	secured.GET("/vehicles/:id", vehicleHandler.GetByID)
	secured.PUT("/vehicles/:id", vehicleHandler.Update)
	secured.DELETE("/vehicles/:id", vehicleHandler.Delete)

	// Appointment routes
	secured.GET("/appointments", appointmentHandler.List)
	secured.POST("/appointments", appointmentHandler.Create)
	secured.GET("/appointments/:id", appointmentHandler.GetByID)
	secured.PUT("/appointments/:id", appointmentHandler.Update)
	secured.DELETE("/appointments/:id", appointmentHandler.Delete)

	// Notification routes
	secured.GET("/notifications", notificationHandler.List)
	secured.GET("/notifications/unread-count", notificationHandler.UnreadCount)
	secured.POST("/notifications/:id/read", notificationHandler.MarkAsRead)
	secured.POST("/notifications/read-all", notificationHandler.MarkAllAsRead)
	secured.DELETE("/notifications/:id", notificationHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

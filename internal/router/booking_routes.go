package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/handler"
	"github.com/iliyamo/hotel-room-booking/internal/middleware"
)

// RegisterBooking registers the attendee booking endpoints. All routes
// require a valid access token with the ATTENDEE role; the optional
// rate limiter is applied after authentication so buckets key on the
// user id.
func RegisterBooking(e *echo.Echo, h *handler.BookingHandler, jwtSecret string, ratelimit echo.MiddlewareFunc) {
	mw := []echo.MiddlewareFunc{
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ATTENDEE"),
	}
	if ratelimit != nil {
		mw = append(mw, ratelimit)
	}
	g := e.Group("/booking", mw...)

	g.GET("", h.GetBooking)
	g.POST("", h.CreateBooking)
	// The path id is accepted for API compatibility; the handler moves
	// the caller's own booking.
	g.PUT("/:bookingId", h.ChangeBooking)
}

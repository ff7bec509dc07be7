package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/queue"
	"github.com/iliyamo/hotel-room-booking/internal/service"
)

// BookingService is the slice of the eligibility service the booking
// endpoints need. Declared here so handler tests can substitute a fake.
type BookingService interface {
	GetBooking(ctx context.Context, userID uint64) (model.Booking, error)
	CreateBooking(ctx context.Context, userID, roomID uint64) (model.Booking, error)
	UpdateBooking(ctx context.Context, userID, roomID uint64) (model.Booking, error)
}

// BookingHandler exposes the attendee-facing booking endpoints. All
// methods assume JWT authentication already ran; they read the user id
// from the request context. Events is optional — a nil publisher drops
// confirmation events.
type BookingHandler struct {
	Service BookingService
	Events  *queue.Publisher
}

// NewBookingHandler constructs a BookingHandler. The service must be
// non-nil; the publisher may be nil when no broker is configured.
func NewBookingHandler(svc BookingService, events *queue.Publisher) *BookingHandler {
	if svc == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Service: svc, Events: events}
}

type bookingReq struct {
	RoomID uint64 `json:"roomId"`
}

// GetBooking handles GET /booking. It returns the user's current
// booking together with its room, 404 when none exists.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	b, err := h.Service.GetBooking(c.Request().Context(), userID)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":   b.ID,
		"Room": b.Room,
	})
}

// CreateBooking handles POST /booking. The body must carry a non-zero
// roomId; eligibility and capacity rules live in the service.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req bookingReq
	if err := c.Bind(&req); err != nil || req.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "roomId is required"})
	}
	b, err := h.Service.CreateBooking(c.Request().Context(), userID, req.RoomID)
	if err != nil {
		return bookingError(c, err)
	}
	h.publishConfirmed(c.Request().Context(), b)
	return c.JSON(http.StatusOK, echo.Map{"bookingId": b.ID})
}

// ChangeBooking handles PUT /booking/:bookingId, moving the user's
// booking to another room. The path id is validated but the update
// targets the user's current booking regardless of which id was
// supplied — kept for compatibility with the original API, where the
// path id is effectively cosmetic.
func (h *BookingHandler) ChangeBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req bookingReq
	if err := c.Bind(&req); err != nil || req.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "roomId is required"})
	}
	bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil || bookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	b, err := h.Service.UpdateBooking(c.Request().Context(), userID, req.RoomID)
	if err != nil {
		return bookingError(c, err)
	}
	h.publishConfirmed(c.Request().Context(), b)
	return c.JSON(http.StatusOK, echo.Map{"bookingId": b.ID})
}

// bookingError maps service errors onto HTTP statuses: business rule
// violations are 403, absent resources 404, anything else is an
// infrastructure failure and reported as 500.
func bookingError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrCannotBook):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "cannot book"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}

// publishConfirmed emits a booking.confirmed event. Publishing is best
// effort: a broker failure is logged, never surfaced to the client.
func (h *BookingHandler) publishConfirmed(ctx context.Context, b model.Booking) {
	ev := queue.BookingConfirmedEvent{
		BookingID:   b.ID,
		UserID:      b.UserID,
		RoomID:      b.RoomID,
		ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if b.Room != nil {
		ev.HotelID = b.Room.HotelID
		ev.RoomName = b.Room.Name
	}
	if err := h.Events.PublishBookingConfirmed(ctx, ev); err != nil {
		log.Printf("booking: publish confirmed event failed: %v", err)
	}
}

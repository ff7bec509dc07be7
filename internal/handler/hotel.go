// This file defines handlers for the public hotel browsing API. These
// routes let unauthenticated users discover hotels and their rooms so a
// client can pick a roomId to book.
package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/repository"
)

// HotelHandler aggregates repositories needed for unauthenticated
// browsing of the pre-seeded hotel inventory.
type HotelHandler struct {
	HotelRepo *repository.HotelRepo
	RoomRepo  *repository.RoomRepo
}

// NewHotelHandler constructs a HotelHandler; both repositories are required.
func NewHotelHandler(hotels *repository.HotelRepo, rooms *repository.RoomRepo) *HotelHandler {
	if hotels == nil || rooms == nil {
		panic("nil repository passed to NewHotelHandler")
	}
	return &HotelHandler{HotelRepo: hotels, RoomRepo: rooms}
}

// GetHotels handles GET /hotels, returning every hotel.
func (h *HotelHandler) GetHotels(c echo.Context) error {
	hotels, err := h.HotelRepo.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": hotels})
}

// GetHotelRooms handles GET /hotels/:id/rooms. It validates the hotel
// exists, then lists its rooms.
func (h *HotelHandler) GetHotelRooms(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}
	ctx := c.Request().Context()
	if _, err := h.HotelRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	rooms, err := h.RoomRepo.ListByHotelID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": rooms})
}

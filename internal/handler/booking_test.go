package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/middleware"
	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/service"
	"github.com/iliyamo/hotel-room-booking/internal/utils"
)

const testSecret = "test-secret"

// fakeBookingService returns canned results and records how often it
// was called, so tests can assert that invalid requests never reach the
// service layer.
type fakeBookingService struct {
	booking model.Booking
	err     error
	calls   int
}

func (f *fakeBookingService) GetBooking(context.Context, uint64) (model.Booking, error) {
	f.calls++
	return f.booking, f.err
}

func (f *fakeBookingService) CreateBooking(context.Context, uint64, uint64) (model.Booking, error) {
	f.calls++
	return f.booking, f.err
}

func (f *fakeBookingService) UpdateBooking(context.Context, uint64, uint64) (model.Booking, error) {
	f.calls++
	return f.booking, f.err
}

func newTestServer(svc BookingService) *echo.Echo {
	e := echo.New()
	g := e.Group("/booking",
		middleware.JWTAuth(testSecret),
		middleware.RequireRole("ATTENDEE"),
	)
	h := NewBookingHandler(svc, nil)
	g.GET("", h.GetBooking)
	g.POST("", h.CreateBooking)
	g.PUT("/:bookingId", h.ChangeBooking)
	return e
}

func attendeeToken(t *testing.T) string {
	t.Helper()
	tok, err := utils.NewAccessToken(testSecret, 42, "ATTENDEE", 15)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok.Token
}

func doRequest(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestBookingAuth(t *testing.T) {
	t.Parallel()

	e := newTestServer(&fakeBookingService{})

	t.Run("no token", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/booking", "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/booking", "not-a-jwt", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("wrong role", func(t *testing.T) {
		tok, err := utils.NewAccessToken(testSecret, 42, "ADMIN", 15)
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}
		rec := doRequest(e, http.MethodGet, "/booking", tok.Token, "")
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})
}

func TestGetBookingEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("returns booking with room", func(t *testing.T) {
		room := model.Room{ID: 3, HotelID: 1, Name: "101", Capacity: 2}
		svc := &fakeBookingService{booking: model.Booking{ID: 7, UserID: 42, RoomID: 3, Room: &room}}
		rec := doRequest(newTestServer(svc), http.MethodGet, "/booking", attendeeToken(t), "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
		}
		var body struct {
			ID   uint64      `json:"id"`
			Room *model.Room `json:"Room"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.ID != 7 {
			t.Fatalf("expected id 7, got %d", body.ID)
		}
		if body.Room == nil || body.Room.ID != 3 {
			t.Fatalf("expected Room 3, got %+v", body.Room)
		}
	})

	t.Run("404 when user has no booking", func(t *testing.T) {
		svc := &fakeBookingService{err: service.ErrNotFound}
		rec := doRequest(newTestServer(svc), http.MethodGet, "/booking", attendeeToken(t), "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("500 on infrastructure failure", func(t *testing.T) {
		svc := &fakeBookingService{err: errors.New("connection refused")}
		rec := doRequest(newTestServer(svc), http.MethodGet, "/booking", attendeeToken(t), "")
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}

func TestCreateBookingEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("missing roomId is rejected before the service runs", func(t *testing.T) {
		svc := &fakeBookingService{}
		rec := doRequest(newTestServer(svc), http.MethodPost, "/booking", attendeeToken(t), `{}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if svc.calls != 0 {
			t.Fatalf("expected no service calls, got %d", svc.calls)
		}
	})

	t.Run("forbidden when a booking rule blocks", func(t *testing.T) {
		svc := &fakeBookingService{err: service.ErrCannotBook}
		rec := doRequest(newTestServer(svc), http.MethodPost, "/booking", attendeeToken(t), `{"roomId":3}`)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("404 when room does not exist", func(t *testing.T) {
		svc := &fakeBookingService{err: service.ErrNotFound}
		rec := doRequest(newTestServer(svc), http.MethodPost, "/booking", attendeeToken(t), `{"roomId":99}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("returns the new booking id", func(t *testing.T) {
		svc := &fakeBookingService{booking: model.Booking{ID: 11, UserID: 42, RoomID: 3}}
		rec := doRequest(newTestServer(svc), http.MethodPost, "/booking", attendeeToken(t), `{"roomId":3}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
		}
		var body struct {
			BookingID uint64 `json:"bookingId"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.BookingID != 11 {
			t.Fatalf("expected bookingId 11, got %d", body.BookingID)
		}
	})
}

func TestChangeBookingEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("missing roomId is rejected", func(t *testing.T) {
		svc := &fakeBookingService{}
		rec := doRequest(newTestServer(svc), http.MethodPut, "/booking/7", attendeeToken(t), `{}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if svc.calls != 0 {
			t.Fatalf("expected no service calls, got %d", svc.calls)
		}
	})

	t.Run("non-numeric booking id is rejected", func(t *testing.T) {
		svc := &fakeBookingService{}
		rec := doRequest(newTestServer(svc), http.MethodPut, "/booking/abc", attendeeToken(t), `{"roomId":3}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if svc.calls != 0 {
			t.Fatalf("expected no service calls, got %d", svc.calls)
		}
	})

	t.Run("moves the booking and returns its id", func(t *testing.T) {
		svc := &fakeBookingService{booking: model.Booking{ID: 7, UserID: 42, RoomID: 5}}
		rec := doRequest(newTestServer(svc), http.MethodPut, "/booking/7", attendeeToken(t), `{"roomId":5}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
		}
		var body struct {
			BookingID uint64 `json:"bookingId"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.BookingID != 7 {
			t.Fatalf("expected bookingId 7, got %d", body.BookingID)
		}
	})

	t.Run("forbidden when the target room is full", func(t *testing.T) {
		svc := &fakeBookingService{err: service.ErrCannotBook}
		rec := doRequest(newTestServer(svc), http.MethodPut, "/booking/7", attendeeToken(t), `{"roomId":5}`)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})
}

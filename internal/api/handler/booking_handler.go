package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mutreserve/reservation-system/internal/core/domain"
	"github.com/mutreserve/reservation-system/internal/core/ports"
)

// BookingHandler handles the self-service reservation endpoints.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

type bookRoomRequest struct {
	RoomName     string `json:"room_name" validate:"required"`
	Date         string `json:"date" validate:"required"`
	StartTime    string `json:"start_time,omitempty"`
	EndTime      string `json:"end_time,omitempty"`
	Participants int    `json:"participants" validate:"required,min=1"`
}

type listBookingsResponse struct {
	Items []domain.Booking `json:"items"`
	Total int              `json:"total"`
}

// Create handles POST /v1/bookings.
//
// @Summary      Book a room
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookRoomRequest  true  "Reservation details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  map[string]string
// @Router       /v1/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req bookRoomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	booking, err := h.service.Book(c.Request().Context(), actor, ports.BookRoomInput{
		RoomName:     req.RoomName,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Participants: req.Participants,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, booking)
}

// List handles GET /v1/bookings — the caller's own reservations.
//
// @Summary      List own bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listBookingsResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	bookings, err := h.service.ListOwn(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listBookingsResponse{Items: bookings, Total: len(bookings)})
}

// Cancel handles DELETE /v1/bookings/:id.
//
// @Summary      Cancel a booking
// @Tags         bookings
// @Security     BearerAuth
// @Param        id  path  string  true  "Booking id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/bookings/{id} [delete]
func (h *BookingHandler) Cancel(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	if err := h.service.Cancel(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

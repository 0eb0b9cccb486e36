package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mutreserve/reservation-system/internal/core/domain"
	"github.com/mutreserve/reservation-system/internal/core/ports"
)

// RoomHandler handles HTTP requests for the room lifecycle workflow.
type RoomHandler struct {
	service ports.RoomService
}

func NewRoomHandler(service ports.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// --- Request / Response types ---

type roomRequest struct {
	Name      string `json:"name" validate:"required"`
	Floor     int    `json:"floor" validate:"required,min=1,max=5"`
	Building  string `json:"building" validate:"required,oneof=A B C"`
	Capacity  int    `json:"capacity" validate:"min=0"`
	Type      string `json:"type" validate:"required,oneof=standard vip"`
	Status    string `json:"status" validate:"omitempty,oneof=available unavailable maintenance"`
	Date      string `json:"date,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

type approveRoomRequest struct {
	Reason    string `json:"reason" validate:"required"`
	Date      string `json:"date,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

type listRoomsResponse struct {
	Items []domain.Room `json:"items"`
	Total int           `json:"total"`
}

// List handles GET /v1/rooms.
//
// @Summary      List all rooms
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listRoomsResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/rooms [get]
func (h *RoomHandler) List(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	rooms, err := h.service.ListRooms(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listRoomsResponse{Items: rooms, Total: len(rooms)})
}

// Create handles POST /v1/rooms.
//
// @Summary      Create a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      roomRequest  true  "Room attributes"
// @Success      201   {object}  domain.Room
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req roomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	room, err := h.service.CreateRoom(c.Request().Context(), actor, ports.CreateRoomInput{
		Name:      req.Name,
		Floor:     req.Floor,
		Building:  req.Building,
		Capacity:  req.Capacity,
		Type:      domain.RoomType(req.Type),
		Status:    domain.RoomStatus(req.Status),
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, room)
}

// Edit handles PUT /v1/rooms/:id. Editing an id absent from the registry
// completes as a no-op and answers 204.
//
// @Summary      Edit a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Room id"
// @Param        body  body      roomRequest  true  "Room attributes"
// @Success      200   {object}  domain.Room
// @Success      204
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/rooms/{id} [put]
func (h *RoomHandler) Edit(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req roomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	room, err := h.service.EditRoom(c.Request().Context(), actor, c.Param("id"), ports.EditRoomInput{
		Name:      req.Name,
		Floor:     req.Floor,
		Building:  req.Building,
		Capacity:  req.Capacity,
		Type:      domain.RoomType(req.Type),
		Status:    domain.RoomStatus(req.Status),
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return err
	}
	if room == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, room)
}

// Approve handles POST /v1/rooms/:id/approve.
//
// @Summary      Approve a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Room id"
// @Param        body  body      approveRoomRequest  true  "Approval decision"
// @Success      200   {object}  domain.Room
// @Success      204
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/rooms/{id}/approve [post]
func (h *RoomHandler) Approve(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req approveRoomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	room, err := h.service.ApproveRoom(c.Request().Context(), actor, c.Param("id"), ports.ApproveRoomInput{
		Reason:    req.Reason,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return err
	}
	if room == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, room)
}

// Close handles POST /v1/rooms/:id/close.
//
// @Summary      Close a room
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Room id"
// @Success      200  {object}  domain.Room
// @Success      204
// @Failure      403  {object}  map[string]string
// @Router       /v1/rooms/{id}/close [post]
func (h *RoomHandler) Close(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	room, err := h.service.CloseRoom(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	if room == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, room)
}

// Delete handles DELETE /v1/rooms/:id. Deleting is idempotent: an absent id
// answers 204 exactly like a successful removal.
//
// @Summary      Delete a room
// @Tags         rooms
// @Security     BearerAuth
// @Param        id  path  string  true  "Room id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Router       /v1/rooms/{id} [delete]
func (h *RoomHandler) Delete(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteRoom(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

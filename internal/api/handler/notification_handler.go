package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mutreserve/reservation-system/internal/core/domain"
	"github.com/mutreserve/reservation-system/internal/core/ports"
)

// NotificationHandler exposes the caller's session-scoped event log.
type NotificationHandler struct {
	log ports.NotificationLog
}

func NewNotificationHandler(log ports.NotificationLog) *NotificationHandler {
	return &NotificationHandler{log: log}
}

type listNotificationsResponse struct {
	Items []domain.NotificationEntry `json:"items"`
	Total int                        `json:"total"`
}

// List handles GET /v1/notifications — newest first.
//
// @Summary      List session notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listNotificationsResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	entries := h.log.List(actor.Username)
	return c.JSON(http.StatusOK, listNotificationsResponse{Items: entries, Total: len(entries)})
}

// Clear handles DELETE /v1/notifications — bulk clear only.
//
// @Summary      Clear session notifications
// @Tags         notifications
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /v1/notifications [delete]
func (h *NotificationHandler) Clear(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	h.log.Clear(actor.Username)
	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"consigna/internal/mail"
	"consigna/internal/service"
)

type NotificationHandler struct {
	service service.NotificationService
}

type notificationRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

type notificationResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Info    mail.SendInfo `json:"info"`
}

func NewNotificationHandler(service service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/send-notification", h.Send)
}

// Send delivers one email through the configured SMTP account.
func (h *NotificationHandler) Send(c echo.Context) error {
	var req notificationRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request body")
	}
	info, err := h.service.Send(c.Request().Context(), mail.Message{
		To:      req.To,
		Subject: req.Subject,
		Text:    req.Text,
		HTML:    req.HTML,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, notificationResponse{
		Success: true,
		Message: "notification sent",
		Info:    info,
	})
}

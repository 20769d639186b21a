package handler

import (
	"context"
	"encoding/json"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"matchapi/internal/chat"
	"matchapi/internal/http/middleware"
)

type sendMessageRequest struct {
	Text string `json:"text"`
}

// SendMessage appends a message to a conversation and fans it out to live
// subscribers.
func SendMessage(ch *chat.Channel) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req sendMessageRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "malformed request body")
		}
		msg, err := ch.Send(c.UserContext(), c.Params("key"), middleware.UserIDFromCtx(c), req.Text)
		if err != nil {
			return writeAppError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(msg)
	}
}

// RequireWebSocketUpgrade rejects plain HTTP requests on websocket routes.
func RequireWebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return writeError(c, fiber.StatusUpgradeRequired, "UPGRADE_REQUIRED", "websocket upgrade required")
		}
		return c.Next()
	}
}

// StreamMessages upgrades to a websocket and streams the conversation
// history followed by live messages, each as a JSON frame. Closing the
// socket cancels the subscription.
func StreamMessages(ch *chat.Channel) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		sub, err := ch.Subscribe(context.Background(), conn.Params("key"))
		if err != nil {
			frame, _ := json.Marshal(errorEnvelope{Code: "NETWORK_ERROR", Message: "cannot open conversation"})
			_ = conn.WriteMessage(websocket.TextMessage, frame)
			_ = conn.Close()
			return
		}
		defer sub.Cancel()

		// Drain client frames so we notice the peer closing.
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					sub.Cancel()
					return
				}
			}
		}()

		for msg := range sub.C() {
			frame, err := json.Marshal(msg)
			if err != nil {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		}
	})
}
